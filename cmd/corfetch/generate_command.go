package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"corfetch/internal/batch"
	"corfetch/internal/synth"
)

func newGenerateCommand(configFlag *string) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write synthetic cordata files without touching the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadEnvironment(*configFlag)
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			if count <= 0 {
				count = cfg.Synthetic.Count
			}
			recs := synth.Generate(count)
			files, err := batch.NewWriter(cfg.Paths.DataDir, logger).Write(recs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d records into %d files under %s\n",
				len(recs), len(files), cfg.Paths.DataDir)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "Number of records to generate (default from config)")
	return cmd
}
