// YAML config loader with CUE validation integration
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"

	"qazaqspace/internal/telemetry"
)

// Defaults used when the config file leaves a field out.
const (
	DefaultAnalysisDelay = 1200 * time.Millisecond
	DefaultAssetPath     = "images/satellite.gif"
	DefaultLogCapacity   = 8
)

// Config is the root dashboard configuration.
type Config struct {
	Telemetry     telemetry.Sample `yaml:"telemetry"`
	AnalysisDelay time.Duration    `yaml:"analysis_delay"`
	AssetPath     string           `yaml:"asset_path"`
	LogCapacity   int              `yaml:"log_capacity"`
	PresetsPath   string           `yaml:"presets_path"`
}

// Default returns the configuration of a session started without a file.
func Default() *Config {
	return &Config{
		Telemetry:     telemetry.Default(),
		AnalysisDelay: DefaultAnalysisDelay,
		AssetPath:     DefaultAssetPath,
		LogCapacity:   DefaultLogCapacity,
	}
}

// Load reads the YAML config at configPath over the defaults. When
// cueSchemaPath is set the file is validated against it first.
func Load(configPath, cueSchemaPath string) (*Config, error) {
	if cueSchemaPath != "" {
		if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot unmarshal YAML config: %w", err)
	}
	cfg.normalize()

	slog.Debug("loaded configuration", "path", configPath, "config", fmt.Sprintf("%+v", *cfg))
	return cfg, nil
}

func (c *Config) normalize() {
	c.Telemetry = c.Telemetry.Clamp()
	if c.AnalysisDelay < 0 {
		c.AnalysisDelay = 0
	}
	if c.LogCapacity <= 0 {
		c.LogCapacity = DefaultLogCapacity
	}
}

// ValidateWithCue validates a YAML configuration file using a CUE schema file.
func ValidateWithCue(configFile, cueFile string) error {
	ctx := cuecontext.New()

	// Read YAML config
	yamlBytes, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("cannot read YAML config: %w", err)
	}
	f, err := cueyaml.Extract(configFile, yamlBytes)
	if err != nil {
		return fmt.Errorf("cannot parse YAML config: %w", err)
	}
	configVal := ctx.BuildFile(f)
	if configVal.Err() != nil {
		return fmt.Errorf("cannot build YAML config: %w", configVal.Err())
	}

	// Read CUE schema
	schemaBytes, err := os.ReadFile(cueFile)
	if err != nil {
		return fmt.Errorf("cannot read CUE schema: %w", err)
	}
	schemaVal := ctx.CompileBytes(schemaBytes, cue.Filename(cueFile))
	if schemaVal.Err() != nil {
		return fmt.Errorf("cannot compile CUE schema: %w", schemaVal.Err())
	}

	// Merge values with schema
	final := schemaVal.Unify(configVal)
	if err := final.Validate(); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
