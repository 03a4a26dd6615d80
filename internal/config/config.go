// Package config loads the optional edfdur configuration file.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/edfdur/internal/schema"
)

// LoadAndValidate reads a config file, checks it against the schema, applies
// defaults, validates, and returns warnings for unknown keys.
// Relative env_files are resolved against the config file's directory;
// entries starting with ~ or $ are expanded later.
func LoadAndValidate(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	jsonData, err := yamlToJSON(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := schema.ValidateConfig(jsonData); err != nil {
		return nil, nil, err
	}

	cfg, unknownWarnings, err := LoadWithWarnings(path, data)
	if err != nil {
		return nil, nil, err
	}

	applyDefaults(cfg)

	validationWarnings, err := Validate(cfg)

	allWarnings := make([]string, 0, len(unknownWarnings)+len(validationWarnings))
	allWarnings = append(allWarnings, unknownWarnings...)
	allWarnings = append(allWarnings, validationWarnings...)

	if err != nil {
		return nil, allWarnings, err
	}

	base := filepath.Dir(path)
	for i, f := range cfg.EnvFiles {
		if !filepath.IsAbs(f) && !strings.HasPrefix(f, "~") && !strings.HasPrefix(f, "$") {
			cfg.EnvFiles[i] = filepath.Join(base, f)
		}
	}

	return cfg, allWarnings, nil
}

// yamlToJSON converts a YAML document to JSON for schema validation.
// An empty document becomes an empty object.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
