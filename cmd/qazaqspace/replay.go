package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"qazaqspace/internal/console"
	"qazaqspace/internal/session"
)

var (
	replayInput    string
	replayJSON     bool
	replayDelay    time.Duration
	replayJSONLOut string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a scripted session",
	Long:  "replay feeds a JSONL script of interactions (set, scenario, analyze, ask, risk, log) into a fresh session and prints every outcome.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, _, err := sessionOptions(cmd)
		if err != nil {
			return err
		}
		opts.AnalysisDelay = replayDelay
		s := session.New(opts)

		var w console.OutcomeWriter = console.NewColorWriter(cmd.OutOrStdout(), console.TerminalWidth())
		if replayJSON {
			w = console.NewJSONWriter(cmd.OutOrStdout())
		}
		if replayJSONLOut != "" {
			f, err := os.Create(replayJSONLOut)
			if err != nil {
				return fmt.Errorf("create outcome file: %w", err)
			}
			defer f.Close()
			w = console.NewMultiWriter(w, console.NewJSONWriter(f))
		}
		return console.ReplayFile(cmd.Context(), replayInput, s, w)
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayInput, "input", "", "Path to the JSONL interaction script")
	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "Print outcomes as JSON lines")
	replayCmd.Flags().DurationVar(&replayDelay, "delay", 0, "Pause before each analysis result (e.g. 1.2s)")
	replayCmd.Flags().StringVar(&replayJSONLOut, "jsonl-out", "", "Also write every outcome as a JSON line to this file")
	replayCmd.MarkFlagRequired("input")
}
