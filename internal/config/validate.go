package config

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/edfdur/internal/output"
)

// ValidColors lists the accepted color modes.
var ValidColors = []string{"auto", "always", "never"}

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
	if err := ValidateDebugLevel(cfg.DebugLevel); err != nil {
		return nil, err
	}
	if err := ValidateColor(cfg.Color); err != nil {
		return nil, err
	}
	if cfg.List != nil && strings.TrimSpace(cfg.List.CommentPrefix) != cfg.List.CommentPrefix {
		return nil, &ValidationError{
			Field:   "list.comment_prefix",
			Message: "must not start or end with whitespace",
		}
	}
	for i, f := range cfg.EnvFiles {
		if strings.TrimSpace(f) == "" {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("env_files[%d]", i),
				Message: "must not be empty",
			}
		}
	}
	return nil, nil
}

// ValidateDebugLevel checks a debug level name.
func ValidateDebugLevel(level string) error {
	if _, ok := output.ParseDebugLevel(level); !ok {
		return &ValidationError{
			Field:   "debug_level",
			Message: fmt.Sprintf("invalid value %q; valid values: %s", level, strings.Join(output.DebugLevelNames(), ", ")),
		}
	}
	return nil
}

// ValidateColor checks a color mode.
func ValidateColor(mode string) error {
	for _, c := range ValidColors {
		if mode == c {
			return nil
		}
	}
	return &ValidationError{
		Field:   "color",
		Message: fmt.Sprintf("invalid value %q; valid values: %s", mode, strings.Join(ValidColors, ", ")),
	}
}
