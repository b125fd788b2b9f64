package acquire_test

import (
	"context"
	"errors"
	"testing"

	"corfetch/internal/acquire"
	"corfetch/internal/batch"
	"corfetch/internal/logging"
	"corfetch/internal/records"
	"corfetch/internal/status"
	"corfetch/internal/synth"
	"corfetch/internal/testsupport"
)

type stubTier struct {
	name string
	recs []records.Record
	ok   bool
}

func (s stubTier) Name() string { return s.name }

func (s stubTier) Fetch(context.Context) ([]records.Record, bool) { return s.recs, s.ok }

type captureWriter struct {
	recs  []records.Record
	paths []string
}

func (c *captureWriter) Write(recs []records.Record) ([]string, error) {
	c.recs = recs
	return c.paths, nil
}

func TestRunFirstSucceedingTierWins(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writer := &captureWriter{paths: []string{"cordata0.txt"}}

	tiers := []acquire.Tier{
		stubTier{name: "mirror", ok: false},
		stubTier{name: "search", recs: []records.Record{{records.FieldEntityName: "SCRAPED"}}, ok: true},
		stubTier{name: "synthetic", recs: synth.Generate(5), ok: true},
	}
	controller := acquire.New(tiers, writer, nil, cfg.Paths.DataDir, logging.NewNop())

	result, err := controller.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Tier != "search" {
		t.Fatalf("winning tier = %q, want search", result.Tier)
	}
	if len(writer.recs) != 1 || writer.recs[0].Field(records.FieldEntityName) != "SCRAPED" {
		t.Fatalf("batch writer received %+v", writer.recs)
	}
}

func TestRunFallsBackToSynthetic(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writer := &captureWriter{}

	tiers := acquire.Tiers(
		stubTier{name: "mirror", ok: false},
		stubTier{name: "search", ok: false},
		synth.NewGenerator(7),
	)
	controller := acquire.New(tiers, writer, nil, cfg.Paths.DataDir, logging.NewNop())

	result, err := controller.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Tier != "synthetic" {
		t.Fatalf("winning tier = %q, want synthetic", result.Tier)
	}
	if len(writer.recs) != 7 {
		t.Fatalf("batch writer received %d records, want 7", len(writer.recs))
	}

	// The status artifact still reports success.
	artifact, err := status.Read(cfg.Paths.DataDir)
	if err != nil {
		t.Fatalf("Read status: %v", err)
	}
	if artifact.Status != "success" {
		t.Fatalf("status = %q, want success", artifact.Status)
	}
}

func TestRunFailsWhenEveryTierFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	controller := acquire.New(
		[]acquire.Tier{stubTier{name: "mirror"}, stubTier{name: "search"}},
		&captureWriter{}, nil, cfg.Paths.DataDir, logging.NewNop(),
	)

	if _, err := controller.Run(context.Background()); !errors.Is(err, acquire.ErrTiersExhausted) {
		t.Fatalf("err = %v, want ErrTiersExhausted", err)
	}
}

func TestRunArchivePathBypassesWriter(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writer := &captureWriter{}

	tiers := []acquire.Tier{
		stubTier{name: "mirror", recs: nil, ok: true}, // extracted files directly
	}
	controller := acquire.New(tiers, writer, nil, cfg.Paths.DataDir, logging.NewNop())

	result, err := controller.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Tier != "mirror" {
		t.Fatalf("winning tier = %q, want mirror", result.Tier)
	}
	if writer.recs != nil {
		t.Fatal("batch writer was invoked for the archive-extraction path")
	}
	if _, err := status.Read(cfg.Paths.DataDir); err != nil {
		t.Fatalf("status artifact missing: %v", err)
	}
}

func TestRunWritesRealFiles(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writer := batch.NewWriter(cfg.Paths.DataDir, logging.NewNop())

	tiers := acquire.Tiers(
		stubTier{name: "mirror", ok: false},
		stubTier{name: "search", ok: false},
		synth.NewGenerator(150),
	)
	controller := acquire.New(tiers, writer, nil, cfg.Paths.DataDir, logging.NewNop())

	result, err := controller.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.RecordCount != 150 {
		t.Fatalf("record count = %d, want 150", result.RecordCount)
	}
	if len(result.Files) != 2 {
		t.Fatalf("got %d files, want 2", len(result.Files))
	}
	if result.RunID == "" {
		t.Fatal("missing run id")
	}
}
