package session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qazaqspace/internal/assistant"
	"qazaqspace/internal/risk"
	"qazaqspace/internal/scenario"
	"qazaqspace/internal/telemetry"
)

// fakeClock advances one second per call.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, time.March, 1, 9, 59, 59, 0, time.UTC)}
	return New(Options{Now: clock.Now})
}

func TestNewDefaults(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, telemetry.Default(), s.Sample())
	assert.Empty(t, s.Log())
	assert.Equal(t, DefaultLogCapacity, s.LogCapacity())
	assert.Len(t, s.Presets(), 4)
	assert.NotEmpty(t, s.ID())
	assert.NotEqual(t, s.ID(), New(Options{}).ID())
}

func TestNewClampsInitialSample(t *testing.T) {
	s := New(Options{Sample: &telemetry.Sample{Energy: 140, Temperature: 400, Signal: -1}})
	assert.Equal(t, telemetry.Sample{Energy: 100, Temperature: 150, Signal: 0}, s.Sample())
}

func TestSetClampsAndDoesNotLog(t *testing.T) {
	s := newTestSession(t)
	o := s.Set(telemetry.Energy, 250)
	assert.Equal(t, 100, s.Sample().Energy)
	assert.Equal(t, ActionSet, o.Action)
	s.Adjust(telemetry.Temperature, -500)
	assert.Equal(t, -50, s.Sample().Temperature)
	assert.Empty(t, s.Log())
}

func TestApplyScenarioIsIdempotent(t *testing.T) {
	s := newTestSession(t)
	storm := scenario.BuiltIn()[1]
	s.ApplyScenario(storm)
	first := s.Sample()
	s.ApplyScenario(storm)
	assert.Equal(t, first, s.Sample())
	assert.Equal(t, telemetry.Sample{Energy: 28, Temperature: 92, Signal: 40}, first)

	log := s.Log()
	require.Len(t, log, 2)
	assert.Equal(t, "Scenario: Solar Storm", log[0].Message)
}

func TestApplyNamed(t *testing.T) {
	s := newTestSession(t)
	o, err := s.ApplyNamed("Battery Failure")
	require.NoError(t, err)
	assert.Equal(t, 10, o.Sample.Energy)
	assert.Equal(t, risk.Medium, o.Risk.Tier)

	_, err = s.ApplyNamed("meteor shower")
	assert.ErrorIs(t, err, scenario.ErrUnknownScenario)
}

func TestRecommendLogsEachAction(t *testing.T) {
	s := newTestSession(t)
	_, err := s.ApplyNamed("solar-storm")
	require.NoError(t, err)
	o := s.Recommend()
	assert.Equal(t, []string{risk.ActionPowerSaving, risk.ActionCooling, risk.ActionAntenna}, o.Lines)

	log := s.Log()
	require.Len(t, log, 4)
	assert.Equal(t, "AI Engine: "+risk.ActionAntenna, log[0].Message)
	assert.Equal(t, "AI Engine: "+risk.ActionPowerSaving, log[2].Message)
	assert.Equal(t, "Scenario: Solar Storm", log[3].Message)
}

func TestAnalyzeWithoutDelay(t *testing.T) {
	s := newTestSession(t)
	o, err := s.Analyze(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{risk.ActionStable}, o.Lines)
	assert.Len(t, s.Log(), 1)
}

func TestAnalyzeCancelledHasNoSideEffects(t *testing.T) {
	s := New(Options{AnalysisDelay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Analyze(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.Log())
}

func TestAnalyzeWaitsForDelay(t *testing.T) {
	s := New(Options{AnalysisDelay: 20 * time.Millisecond})
	start := time.Now()
	_, err := s.Analyze(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestAskLogsRawQuery(t *testing.T) {
	s := newTestSession(t)
	o, err := s.Ask("  status  ")
	require.NoError(t, err)
	assert.Equal(t, assistant.IntentStatus, o.Intent)
	assert.Contains(t, o.Text(), "LOW / ТӨМЕН")
	assert.Contains(t, o.Text(), "65%")

	log := s.Log()
	require.Len(t, log, 1)
	assert.Equal(t, "Assistant:   status   → answered", log[0].Message)
}

func TestAskUnknownIntentStillLogged(t *testing.T) {
	s := newTestSession(t)
	o, err := s.Ask("sing a song")
	require.NoError(t, err)
	assert.Equal(t, assistant.IntentUnknown, o.Intent)
	assert.Equal(t, assistant.Text(assistant.Fallback), o.Text())
	assert.Len(t, s.Log(), 1)
}

func TestAskEmptyQuery(t *testing.T) {
	s := newTestSession(t)
	before := s.Sample()
	for _, q := range []string{"", "   ", "\t\n"} {
		o, err := s.Ask(q)
		require.True(t, errors.Is(err, ErrEmptyQuery), "query %q", q)
		assert.Equal(t, assistant.Text(assistant.EmptyQuery), o.Warning)
		assert.Empty(t, o.Lines)
	}
	assert.Empty(t, s.Log())
	assert.Equal(t, before, s.Sample())
}

func TestLogKeepsEightNewest(t *testing.T) {
	s := newTestSession(t)
	for i := 1; i <= 9; i++ {
		_, err := s.Ask(fmt.Sprintf("status %d", i))
		require.NoError(t, err)
	}
	log := s.Log()
	require.Len(t, log, 8)
	for i, e := range log {
		assert.Equal(t, fmt.Sprintf("Assistant: status %d → answered", 9-i), e.Message)
	}
}

func TestLogEntryFormat(t *testing.T) {
	s := newTestSession(t)
	s.ApplyScenario(scenario.BuiltIn()[0])
	lines := s.Activity().Lines
	require.Len(t, lines, 1)
	assert.Equal(t, "10:00:00 — Scenario: Normal", lines[0])
}

func TestRiskOutcome(t *testing.T) {
	s := newTestSession(t)
	o := s.Risk()
	assert.Equal(t, []string{"Medium Risk — 36/100"}, o.Lines)
	assert.Equal(t, 36, o.Risk.Score)
}

func TestActivityLogCapacity(t *testing.T) {
	l := NewActivityLog(3)
	for i := 0; i < 5; i++ {
		l.Add(Entry{Message: fmt.Sprint(i)})
	}
	assert.Equal(t, 3, l.Len())
	got := l.Entries()
	assert.Equal(t, "4", got[0].Message)
	assert.Equal(t, "2", got[2].Message)

	got[0].Message = "changed"
	assert.Equal(t, "4", l.Entries()[0].Message)
	assert.Equal(t, DefaultLogCapacity, NewActivityLog(0).Capacity())
}
