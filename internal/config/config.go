package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/benchcmp/internal/errors"
	"github.com/AndreyAkinshin/benchcmp/internal/extract"
	"github.com/AndreyAkinshin/benchcmp/internal/schema"
	"github.com/AndreyAkinshin/benchcmp/internal/validation"
)

// Default returns a configuration with defaults applied and no thresholds.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Parse decodes a YAML configuration document without validating it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("config file", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// LoadAndValidate reads a config file, checks it against the schema, applies
// defaults, validates it, and returns warnings for unknown fields.
func LoadAndValidate(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.NotFound("config file", path)
		}
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := schema.ValidateConfig(data); err != nil {
		return nil, nil, &errors.BenchcmpError{
			Kind:    errors.KindValidation,
			Message: err.Error(),
			Path:    path,
			Cause:   err,
		}
	}

	cfg, unknownWarnings, err := LoadWithWarnings(data)
	if err != nil {
		return nil, nil, errors.Configf("%s: %v", path, err)
	}

	applyDefaults(cfg)

	validationWarnings, err := Validate(cfg)

	// Combine warnings from both sources.
	allWarnings := make([]string, 0, len(unknownWarnings)+len(validationWarnings))
	allWarnings = append(allWarnings, unknownWarnings...)
	allWarnings = append(allWarnings, validationWarnings...)

	if err != nil {
		return nil, allWarnings, &errors.BenchcmpError{
			Kind:    errors.KindValidation,
			Message: err.Error(),
			Path:    path,
			Cause:   err,
		}
	}
	return cfg, allWarnings, nil
}

// Extractor returns the extractor selected by the configuration.
func (c *Config) Extractor() (extract.Extractor, error) {
	return extract.New(c.Extract.Mode, c.Extract.Tag)
}

// ToleranceTable converts the configured thresholds.
func (c *Config) ToleranceTable() validation.ToleranceTable {
	table := validation.ToleranceTable{Default: c.Tolerance.toTolerance()}
	if len(c.Fields) > 0 {
		table.Fields = make(map[string]validation.Tolerance, len(c.Fields))
		for name, tol := range c.Fields {
			table.Fields[name] = tol.toTolerance()
		}
	}
	return table
}

func (t ToleranceConfig) toTolerance() validation.Tolerance {
	var tol validation.Tolerance
	if t.Absolute != nil {
		v := *t.Absolute
		tol.Absolute = &v
	}
	if t.Relative != nil {
		v := *t.Relative
		tol.Relative = &v
	}
	return tol
}
