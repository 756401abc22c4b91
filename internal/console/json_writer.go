package console

import (
	"encoding/json"
	"fmt"
	"io"

	"qazaqspace/internal/session"
)

// JSONWriter prints outcomes as JSON lines.
type JSONWriter struct {
	out io.Writer
}

// NewJSONWriter creates a JSONWriter writing to w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{out: w}
}

// WriteOutcome outputs one outcome in JSON format.
func (w *JSONWriter) WriteOutcome(o session.Outcome) error {
	data, err := json.Marshal(o)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w.out, string(data))
	return err
}
