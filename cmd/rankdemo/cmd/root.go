// Package cmd provides the CLI commands for rankdemo.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var debugMode bool

// NewRootCmd creates the root command for the rankdemo CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rankdemo",
		Short: "Demonstrates the rankcore ranking pipeline over a toy in-memory corpus",
		Long: `rankdemo indexes a small built-in document set and runs it
through the full rankcore pipeline: candidate resolution, bare-match
extraction, raw-document assembly, and cascaded criteria ranking.

It exists to exercise rankcore end to end, not as a production search
tool.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if debugMode {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	cmd.AddCommand(newSearchCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
