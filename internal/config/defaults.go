package config

import "github.com/AndreyAkinshin/edfdur/internal/filelist"

// Default configuration values.
const (
	DefaultDebugLevel    = "none"
	DefaultColor         = "auto"
	DefaultCommentPrefix = filelist.DefaultCommentPrefix
)

// Default returns a configuration with every default applied, for runs
// without a config file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.DebugLevel == "" {
		cfg.DebugLevel = DefaultDebugLevel
	}
	if cfg.Color == "" {
		cfg.Color = DefaultColor
	}
	if cfg.List == nil {
		cfg.List = &ListConfig{}
	}
	if cfg.List.CommentPrefix == "" {
		cfg.List.CommentPrefix = DefaultCommentPrefix
	}
}
