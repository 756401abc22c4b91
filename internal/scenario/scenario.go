package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"qazaqspace/internal/telemetry"
)

// ErrUnknownScenario is returned when a preset name cannot be resolved.
var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario is a named telemetry preset simulating an operating condition.
// Applying it overwrites all three readings at once.
type Scenario struct {
	Key         string           `yaml:"key"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	Telemetry   telemetry.Sample `yaml:"telemetry"`
}

// File is the on-disk layout of a preset file.
type File struct {
	Presets []Scenario `yaml:"presets"`
}

// Load reads additional presets from a YAML file. Telemetry values are
// clamped to their input domains and missing keys are derived from the name.
func Load(path string) ([]Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	out := make([]Scenario, 0, len(f.Presets))
	for i, p := range f.Presets {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("parse presets: preset %d has no name", i)
		}
		if p.Key == "" {
			p.Key = keyFor(p.Name)
		}
		p.Key = keyFor(p.Key)
		p.Telemetry = p.Telemetry.Clamp()
		out = append(out, p)
	}
	return out, nil
}

// Merge appends extra presets to base. An extra preset whose key matches an
// existing one replaces it in place.
func Merge(base, extra []Scenario) []Scenario {
	out := make([]Scenario, len(base), len(base)+len(extra))
	copy(out, base)
	for _, e := range extra {
		replaced := false
		for i := range out {
			if out[i].Key == e.Key {
				out[i] = e
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, e)
		}
	}
	return out
}

// Find resolves name against the presets by key or display name, ignoring
// case and separators.
func Find(presets []Scenario, name string) (Scenario, error) {
	k := keyFor(name)
	for _, p := range presets {
		if p.Key == k || keyFor(p.Name) == k {
			return p, nil
		}
	}
	return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
}

// Names lists preset keys in order.
func Names(presets []Scenario) []string {
	out := make([]string, len(presets))
	for i, p := range presets {
		out[i] = p.Key
	}
	return out
}

func keyFor(name string) string {
	k := strings.ToLower(strings.TrimSpace(name))
	k = strings.NewReplacer(" ", "-", "_", "-").Replace(k)
	return k
}
