package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadWithWarnings parses a config document and returns any unknown field warnings.
func LoadWithWarnings(data []byte) (*Config, []string, error) {
	cfg, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}
	return cfg, detectUnknownFields(data), nil
}

// detectUnknownFields compares raw YAML keys with known struct fields.
// Note: Since this is called after successful Config parsing, a parse failure
// here would indicate an unexpected internal inconsistency.
func detectUnknownFields(data []byte) []string {
	var warnings []string

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return []string{"internal: failed to re-parse config for unknown field detection"}
	}

	knownTopLevel := getYAMLFields(reflect.TypeOf(Config{}))
	for _, key := range sortedKeys(raw) {
		if key == "$schema" {
			continue // $schema is explicitly allowed and ignored
		}
		if !knownTopLevel[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q at root level (ignored)", key))
		}
	}

	if node, ok := raw["extract"]; ok {
		warnings = append(warnings, checkSectionUnknownFields(node, "extract", reflect.TypeOf(ExtractConfig{}))...)
	}
	if node, ok := raw["tolerance"]; ok {
		warnings = append(warnings, checkSectionUnknownFields(node, "tolerance", reflect.TypeOf(ToleranceConfig{}))...)
	}

	return warnings
}

func checkSectionUnknownFields(node yaml.Node, section string, t reflect.Type) []string {
	var fields map[string]yaml.Node
	if err := node.Decode(&fields); err != nil {
		return nil
	}

	known := getYAMLFields(t)
	var warnings []string
	for _, key := range sortedKeys(fields) {
		if !known[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q in %s (ignored)", key, section))
		}
	}
	return warnings
}

// getYAMLFields returns a map of known YAML field names for a struct type.
func getYAMLFields(t reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		if name := strings.Split(tag, ",")[0]; name != "" {
			fields[name] = true
		}
	}
	return fields
}

func sortedKeys(m map[string]yaml.Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
