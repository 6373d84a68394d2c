package config

import "github.com/AndreyAkinshin/benchcmp/internal/extract"

// Default configuration values.
const (
	DefaultFileName = "benchcmp.yaml"
	DefaultMode     = extract.ModeTagged
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Extract.Mode == "" {
		cfg.Extract.Mode = DefaultMode
	}
}
