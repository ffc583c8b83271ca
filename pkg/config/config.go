// Package config provides configuration loading and management for gammaindex.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"gammaindex/pkg/gamma"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Tolerance holds the acceptance criteria of the gamma test
	Tolerance struct {
		// DTA is the distance-to-agreement in grid steps
		DTA float64 `yaml:"dta"`

		// DD is the absolute dose-difference tolerance
		DD float64 `yaml:"dd"`
	} `yaml:"tolerance"`

	// Evaluation parameters
	Evaluation struct {
		// Strategy selects the dense evaluator (scalar, pruned, parallel, kdtree, native)
		Strategy string `yaml:"strategy"`

		// Workers specifies how many goroutines the parallel evaluators use
		Workers int `yaml:"workers"`

		// IgnoreBelow excludes reference points whose value is under this threshold
		// from the windowed test; unset evaluates every point
		IgnoreBelow *float64 `yaml:"ignoreBelow,omitempty"`
	} `yaml:"evaluation"`

	// Output parameters
	Output struct {
		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default tolerances (1 grid step, 0.05 absolute dose)
	tol := gamma.DefaultTolerance()
	cfg.Tolerance.DTA = tol.DTA
	cfg.Tolerance.DD = tol.DD

	// Set default evaluation parameters
	cfg.Evaluation.Strategy = gamma.StrategyPruned
	cfg.Evaluation.Workers = runtime.NumCPU() // Use all available cores by default

	// Set default output parameters
	cfg.Output.Verbose = true

	return cfg
}

// GammaTolerance returns the configured tolerances
func (c *Config) GammaTolerance() gamma.Tolerance {
	return gamma.Tolerance{DTA: c.Tolerance.DTA, DD: c.Tolerance.DD}
}

// Ignore returns the configured ignore predicate, nil when no threshold is set
func (c *Config) Ignore() gamma.IgnoreFunc {
	if c.Evaluation.IgnoreBelow == nil {
		return nil
	}
	return gamma.IgnoreBelow(*c.Evaluation.IgnoreBelow)
}

// Evaluator builds the configured dense evaluator
func (c *Config) Evaluator() (gamma.Evaluator, error) {
	return gamma.NewEvaluator(c.Evaluation.Strategy, c.Evaluation.Workers)
}

// Validate checks the tolerances and the strategy name
func (c *Config) Validate() error {
	if err := c.GammaTolerance().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Evaluator(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig reads gamma settings from a YAML file on top of DefaultConfig.
// A missing file is not an error; the defaults are returned. Tolerances and the
// strategy name are validated so that a bad file fails before any evaluation.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading gamma config %s: %w", configPath, err)
	}

	// Keys absent from the file keep their default values
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing gamma config %s: %w", configPath, err)
	}

	// Reject dta/dd <= 0 and unknown strategies up front
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes the gamma settings as YAML, creating parent directories.
// An unset ignore threshold is left out of the file.
func SaveConfig(cfg *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating gamma config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding gamma config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing gamma config %s: %w", configPath, err)
	}
	return nil
}

// CreateDefaultConfigFile writes DefaultConfig (dta 1, dd 0.05, pruned strategy) to configPath
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}
