package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"corfetch/internal/config"
	"corfetch/internal/logging"
	"corfetch/internal/records"
)

// Scraper drives the search interface across every region/keyword
// combination, one request at a time.
type Scraper struct {
	baseURL   string
	regions   []string
	keywords  []string
	delay     time.Duration
	timeout   time.Duration
	userAgent string
	logger    *slog.Logger
}

// New constructs a Scraper from configuration.
func New(cfg *config.Config, logger *slog.Logger) *Scraper {
	return &Scraper{
		baseURL:   cfg.Search.BaseURL,
		regions:   cfg.Search.Regions,
		keywords:  cfg.Search.Keywords,
		delay:     time.Duration(cfg.Search.DelayMS) * time.Millisecond,
		timeout:   time.Duration(cfg.Search.TimeoutSeconds) * time.Second,
		userAgent: cfg.Search.UserAgent,
		logger:    logging.NewComponentLogger(logger, "scrape"),
	}
}

// Name identifies the tier in logs and the run journal.
func (s *Scraper) Name() string { return "search" }

// Fetch runs every region/keyword combination in order, accumulating parsed
// rows. A failing combination is logged and skipped; the loop never aborts
// early. ok reports whether the accumulated set is non-empty.
func (s *Scraper) Fetch(ctx context.Context) ([]records.Record, bool) {
	var out []records.Record
	first := true
	for _, region := range s.regions {
		for _, keyword := range s.keywords {
			if !first {
				if err := s.pause(ctx); err != nil {
					return out, len(out) > 0
				}
			}
			first = false

			recs, err := s.fetchCombination(ctx, region, keyword)
			if err != nil {
				s.logger.Warn("search combination failed",
					logging.String("region", region),
					logging.String("keyword", keyword),
					logging.Error(err),
				)
				continue
			}
			s.logger.Debug("search combination parsed",
				logging.String("region", region),
				logging.String("keyword", keyword),
				logging.Int("records", len(recs)),
			)
			out = append(out, recs...)
		}
	}
	s.logger.Info("search sweep finished", logging.Int("records", len(out)))
	return out, len(out) > 0
}

// fetchCombination establishes fresh session state, submits the filtered
// query, and parses the response rows.
func (s *Scraper) fetchCombination(ctx context.Context, region, keyword string) ([]records.Record, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	client := &http.Client{Jar: jar, Timeout: s.timeout}

	// Landing request seeds the session cookies the search endpoint expects.
	if err := s.get(ctx, client, s.baseURL, nil); err != nil {
		return nil, fmt.Errorf("establish session: %w", err)
	}

	params := url.Values{}
	params.Set("searchTerm", keyword)
	params.Set("county", region)
	params.Set("inquiryType", "EntityName")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build query request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return Parse(resp.Body), nil
}

func (s *Scraper) get(ctx context.Context, client *http.Client, target string, params url.Values) error {
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", s.userAgent)
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return nil
}

// pause bounds the request rate between combinations.
func (s *Scraper) pause(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
