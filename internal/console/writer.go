// Package console prints session outcomes outside the interactive dashboard
// and replays scripted interactions against a session.
package console

import "qazaqspace/internal/session"

// OutcomeWriter renders one handler outcome.
type OutcomeWriter interface {
	WriteOutcome(o session.Outcome) error
}

// MultiWriter fan-outs outcomes to multiple writers.
type MultiWriter struct {
	writers []OutcomeWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(ws ...OutcomeWriter) *MultiWriter {
	return &MultiWriter{writers: ws}
}

// WriteOutcome sends the outcome to all writers and stops at the first error.
func (mw *MultiWriter) WriteOutcome(o session.Outcome) error {
	for _, w := range mw.writers {
		if err := w.WriteOutcome(o); err != nil {
			return err
		}
	}
	return nil
}
