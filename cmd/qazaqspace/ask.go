package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"qazaqspace/internal/console"
	"qazaqspace/internal/session"
)

var (
	askSample sampleFlags
	askJSON   bool
)

var askCmd = &cobra.Command{
	Use:   "ask QUESTION...",
	Short: "Ask the assistant one question",
	Long:  "ask answers a single question about the telemetry, e.g. `qazaqspace ask --scenario solar-storm what to do`.",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, _, err := sessionOptions(cmd)
		if err != nil {
			return err
		}
		s := session.New(opts)
		if err := askSample.apply(cmd, s); err != nil {
			return err
		}
		o, err := s.Ask(strings.Join(args, " "))
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), o.Warning)
			return err
		}
		if askJSON {
			return console.NewJSONWriter(cmd.OutOrStdout()).WriteOutcome(o)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), o.Text())
		return err
	},
}

func init() {
	askSample.register(askCmd)
	askCmd.Flags().BoolVar(&askJSON, "json", false, "Print the outcome as JSON")
}
