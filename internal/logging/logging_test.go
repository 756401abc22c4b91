package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn)
	l.Info("hidden")
	l.Warn("shown", "k", "v")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "k=v") {
		t.Fatalf("missing warn record: %s", out)
	}
}

func TestNewNilWriterDiscards(t *testing.T) {
	New(nil, slog.LevelDebug).Info("nowhere")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{"": slog.LevelInfo, "DEBUG": slog.LevelDebug, "warning": slog.LevelWarn, "error": slog.LevelError}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestContextRoundTrip(t *testing.T) {
	l := New(nil, slog.LevelInfo)
	ctx := NewContext(context.Background(), l)
	if FromContext(ctx) != l {
		t.Fatalf("expected stored logger")
	}
	if FromContext(context.Background()) != slog.Default() {
		t.Fatalf("expected default logger")
	}
}
