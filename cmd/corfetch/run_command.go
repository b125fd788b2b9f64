package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"corfetch/internal/acquire"
	"corfetch/internal/batch"
	"corfetch/internal/logging"
	"corfetch/internal/mirror"
	"corfetch/internal/runlog"
	"corfetch/internal/scrape"
	"corfetch/internal/synth"
)

func newRunCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run a full acquisition: mirror, then search, then synthetic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, logger, err := loadEnvironment(*configFlag)
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			// One acquisition at a time: an overlapping scheduler invocation
			// exits instead of interleaving file writes.
			lock := flock.New(filepath.Join(cfg.Paths.DataDir, "corfetch.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another acquisition run is in progress")
			}
			defer lock.Unlock() //nolint:errcheck

			journal, err := runlog.Open(cfg)
			if err != nil {
				return fmt.Errorf("open run journal: %w", err)
			}
			defer journal.Close()

			tiers := acquire.Tiers(
				mirror.New(cfg, logger),
				scrape.New(cfg, logger),
				synth.NewGenerator(cfg.Synthetic.Count),
			)
			writer := batch.NewWriter(cfg.Paths.DataDir, logger)
			controller := acquire.New(tiers, writer, journal, cfg.Paths.DataDir, logger)

			result, err := controller.Run(ctx)
			if err != nil {
				return err
			}

			logger.Info("run complete",
				logging.String(logging.FieldRunID, result.RunID),
				logging.String(logging.FieldTier, result.Tier),
				logging.Int("records", result.RecordCount),
				logging.Int("files", len(result.Files)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Acquired %d records via %s tier (%d files)\n",
				result.RecordCount, result.Tier, len(result.Files))
			return nil
		},
	}
}
