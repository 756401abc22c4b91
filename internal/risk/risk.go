// Package risk scores satellite telemetry and recommends actions.
//
// Two scoring models coexist: the weighted dashboard score shown in the risk
// banner and the banded additive score the assistant reports. They use
// different thresholds and can disagree for the same input.
package risk

import (
	"fmt"

	"qazaqspace/internal/telemetry"
)

// Tier is a coarse risk level.
type Tier string

const (
	Low    Tier = "Low"
	Medium Tier = "Medium"
	High   Tier = "High"
)

// Evaluation is the dashboard risk banner result.
type Evaluation struct {
	Score int  `json:"score"`
	Tier  Tier `json:"tier"`
}

// String renders the risk banner text, e.g. "Medium Risk — 36/100".
func (e Evaluation) String() string {
	return fmt.Sprintf("%s Risk — %d/100", e.Tier, e.Score)
}

// AssistantEvaluation is the assistant's view of the same telemetry.
type AssistantEvaluation struct {
	Score   int      `json:"score"`
	Tier    Tier     `json:"tier"`
	Actions []string `json:"actions"`
}

// DashboardRisk returns the weighted risk score in [0,100].
//
// Negative temperatures contribute nothing, but temperatures above 100 are
// weighted uncapped; only the final sum is clamped.
func DashboardRisk(energy, temperature, signal int) int {
	raw := float64(100-energy)*0.4 + float64(max(temperature, 0))*0.3 + float64(100-signal)*0.3
	return clampScore(int(raw))
}

// DashboardTier maps a dashboard score to its tier.
func DashboardTier(score int) Tier {
	switch {
	case score < 30:
		return Low
	case score < 60:
		return Medium
	default:
		return High
	}
}

// Dashboard evaluates a sample for the risk banner.
func Dashboard(s telemetry.Sample) Evaluation {
	score := DashboardRisk(s.Energy, s.Temperature, s.Signal)
	return Evaluation{Score: score, Tier: DashboardTier(score)}
}

// AssistantRisk returns the banded additive score and its tier.
func AssistantRisk(energy, temperature, signal int) (int, Tier) {
	r := 0
	switch {
	case energy < 20:
		r += 35
	case energy < 40:
		r += 20
	case energy < 60:
		r += 10
	}
	switch {
	case temperature > 80:
		r += 30
	case temperature > 60:
		r += 15
	}
	switch {
	case signal < 20:
		r += 35
	case signal < 40:
		r += 20
	case signal < 60:
		r += 10
	}
	r = clampScore(r)
	return r, AssistantTier(r)
}

// AssistantTier maps an assistant score to its tier. The thresholds differ
// from DashboardTier.
func AssistantTier(score int) Tier {
	switch {
	case score >= 70:
		return High
	case score >= 35:
		return Medium
	default:
		return Low
	}
}

// Assistant evaluates a sample the way the assistant reports it.
func Assistant(s telemetry.Sample) AssistantEvaluation {
	score, tier := AssistantRisk(s.Energy, s.Temperature, s.Signal)
	return AssistantEvaluation{
		Score:   score,
		Tier:    tier,
		Actions: AssistantActions(s.Energy, s.Temperature, s.Signal),
	}
}

func clampScore(v int) int {
	return min(max(v, 0), 100)
}
