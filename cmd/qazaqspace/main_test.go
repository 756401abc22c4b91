package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"qazaqspace/internal/assistant"
	"qazaqspace/internal/risk"
	"qazaqspace/internal/scenario"
	"qazaqspace/internal/session"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags()
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag default so tests do not leak state.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}
}

func TestEvaluateJSON(t *testing.T) {
	out, _, err := run(t, "evaluate", "--json", "--scenario", "solar-storm")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	var ev evaluation
	if err := json.Unmarshal([]byte(out), &ev); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if ev.Dashboard.Score != 74 || ev.Dashboard.Tier != risk.High {
		t.Fatalf("unexpected dashboard result %+v", ev.Dashboard)
	}
	if len(ev.Dashboard.Actions) != 3 {
		t.Fatalf("expected 3 dashboard actions, got %v", ev.Dashboard.Actions)
	}
	if ev.Assistant.Score != 60 || ev.Assistant.Tier != risk.Medium {
		t.Fatalf("unexpected assistant result %+v", ev.Assistant)
	}
}

func TestAskOverrides(t *testing.T) {
	out, _, err := run(t, "ask", "--energy", "10", "how", "is", "the", "battery?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if strings.TrimSpace(out) != assistant.Text(assistant.BatteryCritical) {
		t.Fatalf("unexpected answer %q", out)
	}
}

func TestAskEmpty(t *testing.T) {
	_, errOut, err := run(t, "ask")
	if !errors.Is(err, session.ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
	if !strings.Contains(errOut, "Please type a question.") {
		t.Fatalf("expected warning on stderr, got %q", errOut)
	}
}

func TestReplayJSON(t *testing.T) {
	out, _, err := run(t, "replay", "--json", "--input", "../../internal/console/testdata/storm.jsonl")
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 outcomes, got %d", len(lines))
	}
}

func TestConfigAndPresets(t *testing.T) {
	dir := t.TempDir()
	presets := filepath.Join(dir, "presets.yaml")
	if err := os.WriteFile(presets, []byte("presets:\n  - name: Eclipse Pass\n    telemetry: {energy: 32, temperature: -20, signal: 75}\n"), 0o644); err != nil {
		t.Fatalf("write presets: %v", err)
	}
	cfg := filepath.Join(dir, "dashboard.yaml")
	if err := os.WriteFile(cfg, []byte("presets_path: "+presets+"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, _, err := run(t, "--config", cfg, "--schema", "../../schemas/dashboard.cue", "ask", "--scenario", "eclipse-pass", "status")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if !strings.Contains(out, "-20°C") {
		t.Fatalf("expected eclipse telemetry in %q", out)
	}
}

func TestLoadPresetsMissingFile(t *testing.T) {
	if _, err := loadPresets(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error")
	}
	p, err := loadPresets("")
	if err != nil || len(p) != 4 {
		t.Fatalf("expected built-ins, got %d %v", len(p), err)
	}
}

func TestEvaluateUnknownScenario(t *testing.T) {
	_, _, err := run(t, "evaluate", "--scenario", "meteor-shower")
	if !errors.Is(err, scenario.ErrUnknownScenario) {
		t.Fatalf("expected ErrUnknownScenario, got %v", err)
	}
	if !strings.Contains(err.Error(), "solar-storm") {
		t.Fatalf("expected available presets in %q", err)
	}
}

func TestReplayJSONLOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outcomes.jsonl")
	out, _, err := run(t, "replay", "--input", "../../internal/console/testdata/storm.jsonl", "--jsonl-out", path)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !strings.Contains(out, "SCENARIO") || !strings.Contains(out, "High Risk — 74/100") {
		t.Fatalf("expected colored transcript on stdout, got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read outcome file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 outcome lines, got %d", len(lines))
	}
	var first session.Outcome
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if first.Action != session.ActionScenario || first.Risk.Tier != risk.High {
		t.Fatalf("unexpected first outcome %+v", first)
	}
}
