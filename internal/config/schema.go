// Package config provides loading and validation of comparison configuration files.
package config

// Config represents a complete comparison configuration.
type Config struct {
	Extract      ExtractConfig              `yaml:"extract,omitempty"`
	Tolerance    ToleranceConfig            `yaml:"tolerance,omitempty"`
	Fields       map[string]ToleranceConfig `yaml:"fields,omitempty"`
	IgnoreFields []string                   `yaml:"ignore_fields,omitempty"`
}

// ExtractConfig selects how data is extracted from program output.
type ExtractConfig struct {
	Mode string `yaml:"mode,omitempty"` // "tagged" or "table"
	Tag  string `yaml:"tag,omitempty"`  // Leading literal of data lines (tagged mode only)
}

// ToleranceConfig defines absolute and relative thresholds.
// A missing threshold is not checked.
type ToleranceConfig struct {
	Absolute *float64 `yaml:"absolute,omitempty"`
	Relative *float64 `yaml:"relative,omitempty"`
}
