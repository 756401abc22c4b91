// Package assistant answers free-text questions about the satellite by keyword
// routing over the current telemetry. It has no model behind it: a query is
// matched against fixed English and Kazakh keyword lists and answered from a
// table of bilingual messages.
package assistant

import (
	"fmt"
	"strings"

	"qazaqspace/internal/risk"
	"qazaqspace/internal/telemetry"
)

// Answer is a classified response.
type Answer struct {
	Intent Intent `json:"intent"`
	Text   string `json:"text"`
}

// Respond answers query for the given telemetry.
func Respond(query string, energy, temperature, signal int) string {
	return Reply(query, telemetry.Sample{Energy: energy, Temperature: temperature, Signal: signal}).Text
}

// Reply classifies query and renders the answer for sample s.
func Reply(query string, s telemetry.Sample) Answer {
	intent := Classify(query)
	ev := risk.Assistant(s)

	var text string
	switch intent {
	case IntentStatus:
		text = strings.Join([]string{
			Text(ReportHeader),
			fmt.Sprintf(Text(ReportBattery), s.Energy),
			fmt.Sprintf(Text(ReportTemperature), s.Temperature),
			fmt.Sprintf(Text(ReportSignal), s.Signal),
			"",
			fmt.Sprintf(Text(ReportRiskLevel), TierLabel(ev.Tier), ev.Score),
			"",
			actionList(ev.Actions),
		}, "\n")
	case IntentRisk:
		text = fmt.Sprintf(Text(RiskHeader), TierLabel(ev.Tier), ev.Score) + "\n\n" + actionList(ev.Actions)
	case IntentBattery:
		text = Text(batteryMessage(s.Energy))
	case IntentSignal:
		text = Text(signalMessage(s.Signal))
	case IntentTemperature:
		text = Text(temperatureMessage(s.Temperature))
	case IntentRecommend:
		text = actionList(ev.Actions)
	default:
		text = Text(Fallback)
	}
	return Answer{Intent: intent, Text: text}
}

func actionList(actions []string) string {
	return Text(ActionsHeader) + "\n- " + strings.Join(actions, "\n- ")
}
