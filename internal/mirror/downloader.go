// Package mirror implements the first acquisition tier: downloading a
// pre-built registry export from a fixed list of candidate locations.
package mirror

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"corfetch/internal/config"
	"corfetch/internal/logging"
	"corfetch/internal/records"
)

// maxPayloadBytes bounds how much of a candidate response is buffered.
const maxPayloadBytes = 256 << 20

// Downloader tries candidate URLs in order until one yields usable data.
type Downloader struct {
	urls      []string
	dataDir   string
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

// New constructs a Downloader from configuration.
func New(cfg *config.Config, logger *slog.Logger) *Downloader {
	return &Downloader{
		urls:      cfg.Mirror.URLs,
		dataDir:   cfg.Paths.DataDir,
		userAgent: cfg.Search.UserAgent,
		client: &http.Client{
			Timeout: time.Duration(cfg.Mirror.TimeoutSeconds) * time.Second,
		},
		logger: logging.NewComponentLogger(logger, "mirror"),
	}
}

// Name identifies the tier in logs and the run journal.
func (d *Downloader) Name() string { return "mirror" }

// Fetch tries each candidate in order. For tabular payloads it returns the
// parsed records. For archive payloads the matching data files are extracted
// straight into the data directory and recs is nil — extraction alone counts
// as success. Every per-candidate failure is swallowed; the next candidate
// is tried.
func (d *Downloader) Fetch(ctx context.Context) (recs []records.Record, ok bool) {
	for _, candidate := range d.urls {
		recs, ok, err := d.tryCandidate(ctx, candidate)
		if err != nil {
			d.logger.Warn("mirror candidate failed",
				logging.String("url", candidate),
				logging.Error(err),
			)
			continue
		}
		if ok {
			d.logger.Info("mirror candidate succeeded",
				logging.String("url", candidate),
				logging.Int("records", len(recs)),
			)
			return recs, true
		}
	}
	return nil, false
}

func (d *Downloader) tryCandidate(ctx context.Context, candidate string) ([]records.Record, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, candidate, nil)
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("unexpected status %s", resp.Status)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, false, fmt.Errorf("read body: %w", err)
	}

	if isArchive(candidate, resp.Header.Get("Content-Type")) {
		extracted, err := d.extractArchive(payload)
		if err != nil {
			return nil, false, err
		}
		if extracted == 0 {
			return nil, false, fmt.Errorf("archive contained no data files")
		}
		d.logger.Info("extracted data files from archive",
			logging.String("url", candidate),
			logging.Int("files", extracted),
		)
		return nil, true, nil
	}

	recs, err := records.FromTable(strings.NewReader(string(payload)))
	if err != nil {
		return nil, false, fmt.Errorf("parse tabular payload: %w", err)
	}
	if len(recs) == 0 {
		return nil, false, fmt.Errorf("tabular payload yielded no records")
	}
	return recs, true, nil
}

func isArchive(candidate, contentType string) bool {
	if strings.HasSuffix(strings.ToLower(candidate), ".zip") {
		return true
	}
	return strings.Contains(strings.ToLower(contentType), "zip")
}
