package console

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"qazaqspace/internal/logging"
	"qazaqspace/internal/session"
	"qazaqspace/internal/telemetry"
)

var (
	// ErrUnknownAction is returned for a script step naming no handler.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidStep is returned for a step missing a required argument.
	ErrInvalidStep = errors.New("invalid step")
)

// Step is one scripted interaction, one JSON object per line:
//
//	{"action":"set","field":"energy","value":20}
//	{"action":"set","field":"signal","delta":-10}
//	{"action":"scenario","scenario":"solar-storm"}
//	{"action":"analyze"}
//	{"action":"ask","query":"what to do?"}
//	{"action":"risk"}
//	{"action":"log"}
type Step struct {
	Action   session.Action `json:"action"`
	Field    string         `json:"field,omitempty"`
	Value    *int           `json:"value,omitempty"`
	Delta    int            `json:"delta,omitempty"`
	Scenario string         `json:"scenario,omitempty"`
	Query    string         `json:"query,omitempty"`
}

// Apply runs the step against s. An empty query is not an error: the
// outcome carries the warning instead.
func (st Step) Apply(ctx context.Context, s *session.Session) (session.Outcome, error) {
	switch st.Action {
	case session.ActionSet:
		f, err := telemetry.ParseField(st.Field)
		if err != nil {
			return session.Outcome{}, fmt.Errorf("%w: %v", ErrInvalidStep, err)
		}
		if st.Value != nil {
			return s.Set(f, *st.Value), nil
		}
		return s.Adjust(f, st.Delta), nil
	case session.ActionScenario:
		if st.Scenario == "" {
			return session.Outcome{}, fmt.Errorf("%w: scenario name required", ErrInvalidStep)
		}
		return s.ApplyNamed(st.Scenario)
	case session.ActionAnalyze:
		return s.Analyze(ctx)
	case session.ActionAsk:
		o, err := s.Ask(st.Query)
		if errors.Is(err, session.ErrEmptyQuery) {
			return o, nil
		}
		return o, err
	case session.ActionRisk:
		return s.Risk(), nil
	case session.ActionLog:
		return s.Activity(), nil
	}
	return session.Outcome{}, fmt.Errorf("%w %q", ErrUnknownAction, st.Action)
}

// Replay decodes steps from r, applies each to s and writes every outcome.
// It stops at the first failing step and reports its position.
func Replay(ctx context.Context, r io.Reader, s *session.Session, w OutcomeWriter) error {
	log := logging.FromContext(ctx)
	dec := json.NewDecoder(r)
	for n := 1; ; n++ {
		var st Step
		if err := dec.Decode(&st); err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("step %d: %w", n, err)
		}
		o, err := st.Apply(ctx, s)
		if err != nil {
			return fmt.Errorf("step %d: %w", n, err)
		}
		log.Debug("replayed step", "step", n, "action", st.Action)
		if err := w.WriteOutcome(o); err != nil {
			return err
		}
	}
}

// ReplayFile opens a script file and replays it.
func ReplayFile(ctx context.Context, path string, s *session.Session, w OutcomeWriter) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Replay(ctx, f, s, w)
}
