package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/AndreyAkinshin/benchcmp/internal/extract"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
func Validate(cfg *Config) (warnings []string, err error) {
	warnings, err = validateExtract(cfg)
	if err != nil {
		return nil, err
	}

	if err := validateTolerance("tolerance", cfg.Tolerance); err != nil {
		return nil, err
	}
	for name, tol := range cfg.Fields {
		if strings.TrimSpace(name) == "" {
			return nil, &ValidationError{Field: "fields", Message: "field name must not be empty"}
		}
		if err := validateTolerance(fmt.Sprintf("fields.%s", name), tol); err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool, len(cfg.IgnoreFields))
	for i, name := range cfg.IgnoreFields {
		if name == "" {
			return nil, &ValidationError{Field: fmt.Sprintf("ignore_fields[%d]", i), Message: "must not be empty"}
		}
		if seen[name] {
			warnings = append(warnings, fmt.Sprintf("field %q listed more than once in ignore_fields", name))
		}
		seen[name] = true
		if _, ok := cfg.Fields[name]; ok {
			warnings = append(warnings, fmt.Sprintf("field %q has a tolerance but is ignored", name))
		}
	}

	return warnings, nil
}

func validateExtract(cfg *Config) ([]string, error) {
	switch cfg.Extract.Mode {
	case "", extract.ModeTagged:
		return nil, nil
	case extract.ModeTable:
		if cfg.Extract.Tag != "" {
			return []string{"extract.tag is ignored in table mode"}, nil
		}
		return nil, nil
	default:
		return nil, &ValidationError{
			Field:   "extract.mode",
			Message: fmt.Sprintf("must be %q or %q", extract.ModeTagged, extract.ModeTable),
		}
	}
}

func validateTolerance(field string, tol ToleranceConfig) error {
	check := func(name string, v *float64) error {
		if v == nil {
			return nil
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			return &ValidationError{Field: field + "." + name, Message: "must be a finite number"}
		}
		if *v < 0 {
			return &ValidationError{Field: field + "." + name, Message: "must not be negative"}
		}
		return nil
	}
	if err := check("absolute", tol.Absolute); err != nil {
		return err
	}
	return check("relative", tol.Relative)
}
