package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"corfetch/internal/batch"
	"corfetch/internal/records"
)

func newEncodeCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <csv-file>",
		Short: "Encode a local CSV export into fixed-width cordata files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadEnvironment(*configFlag)
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer file.Close()

			recs, err := records.FromTable(file)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			if len(recs) == 0 {
				return fmt.Errorf("%s yielded no records", args[0])
			}

			files, err := batch.NewWriter(cfg.Paths.DataDir, logger).Write(recs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Encoded %d records into %d files under %s\n",
				len(recs), len(files), cfg.Paths.DataDir)
			return nil
		},
	}
}
