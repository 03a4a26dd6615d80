package config

// Config is the edfdur configuration file (.edfdur.yaml).
type Config struct {
	DebugLevel string      `yaml:"debug_level,omitempty"`
	Color      string      `yaml:"color,omitempty"`
	EnvFiles   []string    `yaml:"env_files,omitempty"`
	List       *ListConfig `yaml:"list,omitempty"`
}

// ListConfig controls how list files are read.
type ListConfig struct {
	CommentPrefix string `yaml:"comment_prefix,omitempty"`
}
