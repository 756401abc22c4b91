package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"qazaqspace/internal/logging"
)

var (
	configPath string
	schemaPath string
	logLevel   string
	logFile    string

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "qazaqspace",
	Short:         "QazaqSpace satellite mission control",
	Long:          "QazaqSpace simulates satellite telemetry, scores mission risk and answers operator questions in English and Kazakh.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		var out io.Writer = cmd.ErrOrStderr()
		if cmd == dashboardCmd {
			// the dashboard owns the screen
			out = nil
		}
		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			logCloser = f
			out = f
		}
		cmd.SetContext(logging.NewContext(cmd.Context(), logging.New(out, level)))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			err := logCloser.Close()
			logCloser = nil
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/dashboard.yaml", "Path to dashboard configuration YAML")
	rootCmd.PersistentFlags().StringVar(&schemaPath, "schema", "schemas/dashboard.cue", "Path to CUE schema file (empty skips validation)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file instead of stderr")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(replayCmd)
}
