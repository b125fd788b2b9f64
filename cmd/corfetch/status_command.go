package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"corfetch/internal/runlog"
	"corfetch/internal/status"
)

func newStatusCommand(configFlag *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the status artifact and recent run journal entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadEnvironment(*configFlag)
			if err != nil {
				return err
			}

			colorize := isatty.IsTerminal(os.Stdout.Fd())
			out := cmd.OutOrStdout()

			artifact, err := status.Read(cfg.Paths.DataDir)
			if err != nil {
				fmt.Fprintln(out, renderStatusLine("Status artifact", statusWarn, "not found (no run yet?)", colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("Status artifact", statusOK, artifact.Status, colorize))
				fmt.Fprintln(out, renderStatusLine("Last update", statusInfo, artifact.LastUpdate, colorize))
				fmt.Fprintln(out, renderStatusLine("Message", statusInfo, artifact.Message, colorize))
			}

			journal, err := runlog.Open(cfg)
			if err != nil {
				return fmt.Errorf("open run journal: %w", err)
			}
			defer journal.Close()

			runs, err := journal.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, renderStatusLine("Run journal", statusInfo, "empty", colorize))
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.FinishedAt.Local().Format(time.RFC3339),
					run.Tier,
					strconv.Itoa(run.RecordCount),
					strconv.Itoa(run.FileCount),
					run.Message,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Finished", "Tier", "Records", "Files", "Message"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of journal entries to show")
	return cmd
}
