// Package acquire runs the acquisition tiers in priority order and hands the
// winning record set to the batch writer.
package acquire

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"corfetch/internal/logging"
	"corfetch/internal/records"
	"corfetch/internal/runlog"
	"corfetch/internal/status"
)

// ErrTiersExhausted reports that no tier produced data. With the synthetic
// tier in place it is unreachable.
var ErrTiersExhausted = errors.New("all acquisition tiers failed")

// Tier is one acquisition strategy. ok reports whether the tier succeeded; a
// succeeding tier may return nil records when it wrote the data files itself.
type Tier interface {
	Name() string
	Fetch(ctx context.Context) ([]records.Record, bool)
}

// Writer is the batch writer contract the controller needs.
type Writer interface {
	Write(recs []records.Record) ([]string, error)
}

// Controller tries each tier in order; the first success wins. The final
// tier is expected to be infallible.
type Controller struct {
	tiers   []Tier
	writer  Writer
	journal *runlog.Store
	dataDir string
	logger  *slog.Logger
}

// New constructs a controller. journal may be nil; outcomes are then only
// logged.
func New(tiers []Tier, writer Writer, journal *runlog.Store, dataDir string, logger *slog.Logger) *Controller {
	return &Controller{
		tiers:   tiers,
		writer:  writer,
		journal: journal,
		dataDir: dataDir,
		logger:  logging.NewComponentLogger(logger, "acquire"),
	}
}

// Result summarizes one acquisition run.
type Result struct {
	RunID       string
	Tier        string
	RecordCount int
	Files       []string
	Duration    time.Duration
}

// Run executes the tiers in priority order, writes the data files for the
// winning tier, and unconditionally writes the status artifact. The artifact
// reports success regardless of which tier produced the data; the run
// journal carries the per-tier outcome.
func (c *Controller) Run(ctx context.Context) (Result, error) {
	started := time.Now().UTC()
	result := Result{RunID: uuid.NewString()}
	logger := c.logger.With(logging.String(logging.FieldRunID, result.RunID))

	var recs []records.Record
	for _, tier := range c.tiers {
		logger.Info("trying acquisition tier", logging.String(logging.FieldTier, tier.Name()))
		tierRecs, ok := tier.Fetch(ctx)
		if !ok {
			logger.Warn("acquisition tier failed", logging.String(logging.FieldTier, tier.Name()))
			continue
		}
		result.Tier = tier.Name()
		recs = tierRecs
		break
	}
	if result.Tier == "" {
		// The synthetic tier cannot fail, so reaching this point means the
		// controller was assembled without it.
		return result, fmt.Errorf("%w (%d tried)", ErrTiersExhausted, len(c.tiers))
	}

	// A tier that extracted data files directly reports success with no
	// record list; the batch writer is bypassed entirely.
	if recs != nil {
		files, err := c.writer.Write(recs)
		if err != nil {
			return result, fmt.Errorf("write data files: %w", err)
		}
		result.Files = files
		result.RecordCount = len(recs)
	}

	message := fmt.Sprintf("data fetch completed: %d records in %d files", result.RecordCount, len(result.Files))
	if err := status.Write(c.dataDir, message); err != nil {
		return result, err
	}

	result.Duration = time.Since(started)
	logger.Info("acquisition run finished",
		logging.String(logging.FieldTier, result.Tier),
		logging.Int("records", result.RecordCount),
		logging.Int("files", len(result.Files)),
		logging.Duration("duration", result.Duration),
	)

	if c.journal != nil {
		entry := runlog.Run{
			RunID:       result.RunID,
			StartedAt:   started,
			FinishedAt:  time.Now().UTC(),
			Tier:        result.Tier,
			RecordCount: result.RecordCount,
			FileCount:   len(result.Files),
			Message:     message,
		}
		if err := c.journal.Record(ctx, entry); err != nil {
			logger.Warn("failed to journal run outcome", logging.Error(err))
		}
	}

	return result, nil
}

// Tiers builds the standard tier order from the supplied implementations.
func Tiers(mirror, search, synthetic Tier) []Tier {
	return []Tier{mirror, search, synthetic}
}
