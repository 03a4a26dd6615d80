package config

import (
	"errors"
	"os"
	"path/filepath"
)

// FileName is the name of the configuration file.
const FileName = ".edfdur.yaml"

// ErrNoConfig is returned when no configuration file is found.
var ErrNoConfig = errors.New(FileName + " not found in the current directory or any parent")

// Find walks up from the current working directory until it finds .edfdur.yaml.
func Find() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindFrom(cwd)
}

// FindFrom walks up from the given directory until it finds .edfdur.yaml.
func FindFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, FileName)
		if fi, err := os.Stat(configPath); err == nil && !fi.IsDir() {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", ErrNoConfig
		}
		dir = parent
	}
}
