package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"qazaqspace/internal/config"
	"qazaqspace/internal/logging"
	"qazaqspace/internal/scenario"
	"qazaqspace/internal/session"
	"qazaqspace/internal/telemetry"
)

// loadConfig reads the dashboard config. The default path may be absent, in
// which case the built-in defaults apply; an explicit --config must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			logging.FromContext(cmd.Context()).Debug("no config file, using defaults", "path", configPath)
			return config.Default(), nil
		}
	}
	return config.Load(configPath, schemaPath)
}

// loadPresets returns the built-in scenarios merged with the optional preset file.
func loadPresets(path string) ([]scenario.Scenario, error) {
	presets := scenario.BuiltIn()
	if path == "" {
		return presets, nil
	}
	extra, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	return scenario.Merge(presets, extra), nil
}

// sessionOptions builds session options from the config and presets.
func sessionOptions(cmd *cobra.Command) (session.Options, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return session.Options{}, nil, err
	}
	presets, err := loadPresets(cfg.PresetsPath)
	if err != nil {
		return session.Options{}, nil, err
	}
	sample := cfg.Telemetry
	return session.Options{
		Sample:        &sample,
		LogCapacity:   cfg.LogCapacity,
		AnalysisDelay: cfg.AnalysisDelay,
		Presets:       presets,
		Logger:        logging.FromContext(cmd.Context()),
	}, cfg, nil
}

// sampleFlags are the one-shot telemetry overrides of ask and evaluate.
type sampleFlags struct {
	energy      int
	temperature int
	signal      int
	scenario    string
}

func (f *sampleFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.energy, "energy", 0, "Battery level in percent (0-100)")
	cmd.Flags().IntVar(&f.temperature, "temperature", 0, "Temperature in °C (-50-150)")
	cmd.Flags().IntVar(&f.signal, "signal", 0, "Signal strength in percent (0-100)")
	cmd.Flags().StringVar(&f.scenario, "scenario", "", "Apply a scenario preset first (e.g. solar-storm)")
}

// apply loads the scenario, then the explicit field overrides.
func (f *sampleFlags) apply(cmd *cobra.Command, s *session.Session) error {
	if f.scenario != "" {
		if _, err := s.ApplyNamed(f.scenario); err != nil {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(scenario.Names(s.Presets()), ", "))
		}
	}
	overrides := []struct {
		name  string
		field telemetry.Field
		value int
	}{
		{"energy", telemetry.Energy, f.energy},
		{"temperature", telemetry.Temperature, f.temperature},
		{"signal", telemetry.Signal, f.signal},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.name) {
			s.Set(o.field, o.value)
		}
	}
	return nil
}
