package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"corfetch/internal/config"
	"corfetch/internal/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "corfetch",
		Short:         "Acquire registry data and publish fixed-width cordata files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newRunCommand(&configFlag))
	rootCmd.AddCommand(newGenerateCommand(&configFlag))
	rootCmd.AddCommand(newEncodeCommand(&configFlag))
	rootCmd.AddCommand(newStatusCommand(&configFlag))
	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}

// loadEnvironment resolves config and builds the logger shared by commands.
func loadEnvironment(configFlag string) (*config.Config, *slog.Logger, error) {
	cfg, _, _, err := config.Load(configFlag)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
