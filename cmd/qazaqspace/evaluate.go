package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"qazaqspace/internal/risk"
	"qazaqspace/internal/session"
	"qazaqspace/internal/telemetry"
)

var (
	evalSample sampleFlags
	evalJSON   bool
)

type dashboardResult struct {
	risk.Evaluation
	Actions []string `json:"actions"`
}

// evaluation is both scoring models applied to one sample.
type evaluation struct {
	Telemetry telemetry.Sample         `json:"telemetry"`
	Dashboard dashboardResult          `json:"dashboard"`
	Assistant risk.AssistantEvaluation `json:"assistant"`
}

func evaluate(s telemetry.Sample) evaluation {
	return evaluation{
		Telemetry: s,
		Dashboard: dashboardResult{
			Evaluation: risk.Dashboard(s),
			Actions:    risk.DashboardActions(s.Energy, s.Temperature, s.Signal),
		},
		Assistant: risk.Assistant(s),
	}
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score telemetry with both risk models",
	Long:  "evaluate prints the dashboard and assistant risk scores, tiers and recommended actions for one telemetry sample.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, _, err := sessionOptions(cmd)
		if err != nil {
			return err
		}
		s := session.New(opts)
		if err := evalSample.apply(cmd, s); err != nil {
			return err
		}
		ev := evaluate(s.Sample())
		out := cmd.OutOrStdout()
		if evalJSON {
			data, err := json.Marshal(ev)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Telemetry:\t%s\n", ev.Telemetry)
		fmt.Fprintf(tw, "Dashboard:\t%s\n", ev.Dashboard.Evaluation)
		fmt.Fprintf(tw, "Dashboard actions:\t%s\n", strings.Join(ev.Dashboard.Actions, "; "))
		fmt.Fprintf(tw, "Assistant:\t%s Risk — %d/100\n", ev.Assistant.Tier, ev.Assistant.Score)
		fmt.Fprintf(tw, "Assistant actions:\t%s\n", strings.Join(ev.Assistant.Actions, "; "))
		return tw.Flush()
	},
}

func init() {
	evalSample.register(evaluateCmd)
	evaluateCmd.Flags().BoolVar(&evalJSON, "json", false, "Print the evaluation as JSON")
}
