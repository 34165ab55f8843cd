package main

import (
	"log/slog"

	"github.com/andriiyaremenko/typeinspect/internal/logging"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "typeinspect",
		Short:         "Inspect list-like types described in a manifest",
		Long:          `typeinspect resolves type descriptors and reports their erasure, wrapped type and printable names.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	logger := func(cmd *cobra.Command) (*slog.Logger, error) {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return nil, err
		}

		return logging.New(cmd.ErrOrStderr(), level), nil
	}

	rootCmd.AddCommand(newDescribeCmd(logger), newVersionCmd())

	return rootCmd
}
