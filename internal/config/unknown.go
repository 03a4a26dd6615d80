package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadWithWarnings parses config data and returns any unknown field warnings.
func LoadWithWarnings(path string, data []byte) (*Config, []string, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	warnings := detectUnknownFields(data)

	return &cfg, warnings, nil
}

// detectUnknownFields compares the raw YAML mapping with known struct fields.
func detectUnknownFields(data []byte) []string {
	var warnings []string

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		// This should never happen since the data was already parsed successfully.
		return []string{"internal: failed to re-parse config for unknown field detection"}
	}

	knownTopLevel := getYAMLFields(reflect.TypeOf(Config{}))
	for _, key := range sortedKeys(raw) {
		if !knownTopLevel[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q at root level (ignored)", key))
		}
	}

	if list, ok := raw["list"].(map[string]interface{}); ok {
		knownListFields := getYAMLFields(reflect.TypeOf(ListConfig{}))
		for _, key := range sortedKeys(list) {
			if !knownListFields[key] {
				warnings = append(warnings, fmt.Sprintf("unknown field %q in list (ignored)", key))
			}
		}
	}

	return warnings
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// getYAMLFields returns a map of known YAML field names for a struct type.
func getYAMLFields(t reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name != "" {
			fields[name] = true
		}
	}
	return fields
}
