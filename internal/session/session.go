// Package session owns the state of one dashboard session: the telemetry
// sample, the activity log and the handlers that change them. Every user
// interaction maps to exactly one handler call returning an Outcome.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"qazaqspace/internal/assistant"
	"qazaqspace/internal/risk"
	"qazaqspace/internal/scenario"
	"qazaqspace/internal/telemetry"
)

// ErrEmptyQuery is returned by Ask for a blank question.
var ErrEmptyQuery = errors.New("empty query")

// Action names a handler in outcomes and scripts.
type Action string

const (
	ActionSet      Action = "set"
	ActionScenario Action = "scenario"
	ActionAnalyze  Action = "analyze"
	ActionAsk      Action = "ask"
	ActionRisk     Action = "risk"
	ActionLog      Action = "log"
)

// Outcome is what a handler produced, ready to render.
type Outcome struct {
	Action  Action           `json:"action"`
	Input   string           `json:"input,omitempty"`
	Intent  assistant.Intent `json:"intent,omitempty"`
	Lines   []string         `json:"lines,omitempty"`
	Warning string           `json:"warning,omitempty"`
	Sample  telemetry.Sample `json:"telemetry"`
	Risk    risk.Evaluation  `json:"risk"`
	Time    time.Time        `json:"ts"`
}

// Text joins the outcome lines.
func (o Outcome) Text() string { return strings.Join(o.Lines, "\n") }

// Options configures a new session. Zero values select the defaults.
type Options struct {
	Sample        *telemetry.Sample
	LogCapacity   int
	AnalysisDelay time.Duration
	Presets       []scenario.Scenario
	Logger        *slog.Logger
	Now           func() time.Time
}

// Session is the mutable state of one interactive session. It is not safe
// for concurrent use; the UI event loop is its only caller.
type Session struct {
	id      string
	sample  telemetry.Sample
	log     *ActivityLog
	delay   time.Duration
	presets []scenario.Scenario
	logger  *slog.Logger
	now     func() time.Time
}

// New starts a session.
func New(opts Options) *Session {
	s := &Session{
		id:      uuid.New().String(),
		sample:  telemetry.Default(),
		log:     NewActivityLog(opts.LogCapacity),
		delay:   opts.AnalysisDelay,
		presets: opts.Presets,
		logger:  opts.Logger,
		now:     opts.Now,
	}
	if opts.Sample != nil {
		s.sample = opts.Sample.Clamp()
	}
	if s.delay < 0 {
		s.delay = 0
	}
	if s.presets == nil {
		s.presets = scenario.BuiltIn()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.logger = s.logger.With("session", s.id)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Sample returns the current telemetry.
func (s *Session) Sample() telemetry.Sample { return s.sample }

// Log returns the activity log entries, newest first.
func (s *Session) Log() []Entry { return s.log.Entries() }

// LogCapacity returns the activity log size limit.
func (s *Session) LogCapacity() int { return s.log.Capacity() }

// Presets returns the scenario presets available to this session.
func (s *Session) Presets() []scenario.Scenario {
	out := make([]scenario.Scenario, len(s.presets))
	copy(out, s.presets)
	return out
}

// AnalysisDelay returns the cosmetic pause before analysis results.
func (s *Session) AnalysisDelay() time.Duration { return s.delay }

// Set moves one slider. The value is clamped to the field's domain and no
// log entry is written.
func (s *Session) Set(f telemetry.Field, v int) Outcome {
	s.sample = s.sample.With(f, v)
	s.logger.Debug("telemetry set", "field", f, "value", s.sample.Get(f))
	return s.outcome(ActionSet, f.Label(), nil)
}

// Adjust moves one slider by delta steps.
func (s *Session) Adjust(f telemetry.Field, delta int) Outcome {
	return s.Set(f, s.sample.Get(f)+delta)
}

// ApplyScenario overwrites all three readings with the preset and logs it.
func (s *Session) ApplyScenario(sc scenario.Scenario) Outcome {
	s.sample = sc.Telemetry.Clamp()
	s.record("Scenario: " + sc.Name)
	s.logger.Debug("scenario applied", "scenario", sc.Key, "telemetry", s.sample.String())
	return s.outcome(ActionScenario, sc.Name, []string{"Scenario: " + sc.Name})
}

// ApplyNamed resolves a preset by key or name and applies it.
func (s *Session) ApplyNamed(name string) (Outcome, error) {
	sc, err := scenario.Find(s.presets, name)
	if err != nil {
		return Outcome{}, err
	}
	return s.ApplyScenario(sc), nil
}

// Analyze waits for the configured delay and then runs Recommend. If ctx is
// cancelled during the wait nothing is recorded and ctx.Err() is returned.
func (s *Session) Analyze(ctx context.Context) (Outcome, error) {
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			s.logger.Debug("analysis cancelled")
			return Outcome{}, ctx.Err()
		case <-t.C:
		}
	}
	return s.Recommend(), nil
}

// Recommend runs the dashboard decision engine on the current telemetry and
// logs every recommended action.
func (s *Session) Recommend() Outcome {
	actions := risk.DashboardActions(s.sample.Energy, s.sample.Temperature, s.sample.Signal)
	for _, a := range actions {
		s.record("AI Engine: " + a)
	}
	s.logger.Debug("analysis complete", "actions", len(actions))
	return s.outcome(ActionAnalyze, "", actions)
}

// Ask answers a free-text question. A blank query returns ErrEmptyQuery with
// the warning text set and leaves the session untouched.
func (s *Session) Ask(query string) (Outcome, error) {
	if strings.TrimSpace(query) == "" {
		s.logger.Warn("empty assistant query")
		o := s.outcome(ActionAsk, query, nil)
		o.Warning = assistant.Text(assistant.EmptyQuery)
		return o, ErrEmptyQuery
	}
	ans := assistant.Reply(query, s.sample)
	s.record("Assistant: " + query + " → answered")
	s.logger.Debug("assistant answered", "intent", ans.Intent)
	o := s.outcome(ActionAsk, query, strings.Split(ans.Text, "\n"))
	o.Intent = ans.Intent
	return o, nil
}

// Risk evaluates the dashboard risk banner.
func (s *Session) Risk() Outcome {
	ev := risk.Dashboard(s.sample)
	return s.outcome(ActionRisk, "", []string{ev.String()})
}

// Activity renders the activity log as an outcome.
func (s *Session) Activity() Outcome {
	return s.outcome(ActionLog, "", s.log.Lines())
}

func (s *Session) record(msg string) {
	s.log.Add(Entry{Time: s.now(), Message: msg})
}

func (s *Session) outcome(a Action, input string, lines []string) Outcome {
	return Outcome{
		Action: a,
		Input:  input,
		Lines:  lines,
		Sample: s.sample,
		Risk:   risk.Dashboard(s.sample),
		Time:   s.now(),
	}
}
