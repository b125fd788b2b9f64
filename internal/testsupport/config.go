// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"corfetch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// Network tiers point at nothing by default; tests supply their own URLs.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Mirror.URLs = nil
	cfg.Search.DelayMS = 0
	cfg.Synthetic.Count = 10

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithMirrorURLs sets the mirror candidate list on the test config.
func WithMirrorURLs(urls ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Mirror.URLs = urls
	}
}

// WithSearchBaseURL points the search tier at a test server.
func WithSearchBaseURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Search.BaseURL = url
	}
}

// WithSyntheticCount overrides the fallback record count.
func WithSyntheticCount(count int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Synthetic.Count = count
	}
}
