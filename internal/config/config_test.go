package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(cfg.Search.Regions) != 7 {
		t.Fatalf("default regions = %d, want 7", len(cfg.Search.Regions))
	}
	if len(cfg.Search.Keywords) != 4 {
		t.Fatalf("default keywords = %d, want 4", len(cfg.Search.Keywords))
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("reported a nonexistent config as found")
	}
	if cfg.Synthetic.Count != defaultSyntheticCount {
		t.Fatalf("synthetic count = %d, want default", cfg.Synthetic.Count)
	}
}

func TestLoadOverridesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[paths]
data_dir = "~/corfetch-data"

[search]
regions = [" collier ", "lee"]
keywords = ["association"]

[synthetic]
count = 42
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Synthetic.Count != 42 {
		t.Fatalf("synthetic count = %d, want 42", cfg.Synthetic.Count)
	}
	if cfg.Search.Regions[0] != "COLLIER" {
		t.Fatalf("region not normalized: %q", cfg.Search.Regions[0])
	}
	if strings.HasPrefix(cfg.Paths.DataDir, "~") {
		t.Fatalf("data_dir not expanded: %q", cfg.Paths.DataDir)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"empty data dir":      func(c *Config) { c.Paths.DataDir = "" },
		"bad mirror url":      func(c *Config) { c.Mirror.URLs = []string{"::not-a-url"} },
		"zero mirror timeout": func(c *Config) { c.Mirror.TimeoutSeconds = 0 },
		"no regions":          func(c *Config) { c.Search.Regions = nil },
		"no keywords":         func(c *Config) { c.Search.Keywords = nil },
		"negative delay":      func(c *Config) { c.Search.DelayMS = -1 },
		"zero count":          func(c *Config) { c.Synthetic.Count = 0 },
		"bad log format":      func(c *Config) { c.Logging.Format = "xml" },
		"bad log level":       func(c *Config) { c.Logging.Level = "loud" },
	}
	for name, mutate := range cases {
		cfg := Default()
		if err := cfg.normalize(); err != nil {
			t.Fatalf("%s: normalize: %v", name, err)
		}
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate accepted invalid config", name)
		}
	}
}

func TestSampleConfigParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, exists, err := Load(path); err != nil || !exists {
		t.Fatalf("Load sample: exists=%v err=%v", exists, err)
	}
}
