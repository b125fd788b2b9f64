package mirror_test

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"corfetch/internal/logging"
	"corfetch/internal/mirror"
	"corfetch/internal/records"
	"corfetch/internal/testsupport"
)

func zipPayload(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry: %v", err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestFetchExtractsArchiveEntries(t *testing.T) {
	payload := zipPayload(t, map[string]string{
		"cordata0.txt":       strings.Repeat("A", 1440) + "\n",
		"quarterly/cordata1.txt": strings.Repeat("B", 1440) + "\n",
		"readme.txt":         "not a data file",
	})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/zip")
		w.Write(payload)
	}))
	defer server.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithMirrorURLs(server.URL+"/cordata.zip"))
	downloader := mirror.New(cfg, logging.NewNop())

	recs, ok := downloader.Fetch(context.Background())
	if !ok {
		t.Fatal("expected archive extraction to succeed")
	}
	if recs != nil {
		t.Fatalf("archive path returned %d records, want none", len(recs))
	}

	for _, name := range []string{"cordata0.txt", "cordata1.txt"} {
		if _, err := os.Stat(filepath.Join(cfg.Paths.DataDir, name)); err != nil {
			t.Errorf("expected %s to be extracted: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.DataDir, "readme.txt")); err == nil {
		t.Error("non-data entry was extracted")
	}
}

func TestFetchParsesTabularPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("name,city,zip\nOAK HOA,NAPLES,34108\nPINE CONDO,ESTERO,33928\n"))
	}))
	defer server.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithMirrorURLs(server.URL+"/cordata.csv"))
	downloader := mirror.New(cfg, logging.NewNop())

	recs, ok := downloader.Fetch(context.Background())
	if !ok {
		t.Fatal("expected tabular fetch to succeed")
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if got := recs[0].Field(records.FieldEntityName); got != "OAK HOA" {
		t.Fatalf("entity name = %q", got)
	}
}

func TestFetchFallsThroughToNextCandidate(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer failing.Close()
	working := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("name\nOAK HOA\n"))
	}))
	defer working.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithMirrorURLs(
		failing.URL+"/cordata.zip",
		working.URL+"/cordata.csv",
	))
	downloader := mirror.New(cfg, logging.NewNop())

	recs, ok := downloader.Fetch(context.Background())
	if !ok {
		t.Fatal("expected second candidate to win")
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
}

func TestFetchFailsWhenAllCandidatesFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no", http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithMirrorURLs(server.URL+"/a.zip", server.URL+"/b.csv"))
	downloader := mirror.New(cfg, logging.NewNop())

	if _, ok := downloader.Fetch(context.Background()); ok {
		t.Fatal("expected failure when every candidate fails")
	}
}

func TestFetchRejectsArchiveWithoutDataFiles(t *testing.T) {
	payload := zipPayload(t, map[string]string{"readme.txt": "nothing"})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/zip")
		w.Write(payload)
	}))
	defer server.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithMirrorURLs(server.URL+"/cordata.zip"))
	downloader := mirror.New(cfg, logging.NewNop())

	if _, ok := downloader.Fetch(context.Background()); ok {
		t.Fatal("expected archive without data files to be treated as failure")
	}
}
