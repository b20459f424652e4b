// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Classifier ClassifierConfig `toml:"classifier"`
	Lexicon    LexiconConfig    `toml:"lexicon"`
	Report     ReportConfig     `toml:"report"`
	Log        LogConfig        `toml:"log"`
}

// ClassifierConfig maps classifier tuning.
type ClassifierConfig struct {
	MinLength      *int `toml:"min-length"`
	MaxInput       *int `toml:"max-input"`
	NegationWindow *int `toml:"negation-window"`
}

// LexiconConfig points at optional lexicon and stopword files.
type LexiconConfig struct {
	Path      *string `toml:"path"`
	Stopwords *string `toml:"stopwords"`
}

// ReportConfig maps report settings.
type ReportConfig struct {
	Top *int `toml:"top"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return FileConfig{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

func (c FileConfig) validate() error {
	positive := []struct {
		key string
		v   *int
	}{
		{"classifier.min-length", c.Classifier.MinLength},
		{"classifier.max-input", c.Classifier.MaxInput},
		{"classifier.negation-window", c.Classifier.NegationWindow},
		{"report.top", c.Report.Top},
	}
	for _, p := range positive {
		if p.v != nil && *p.v <= 0 {
			return fmt.Errorf("%s must be positive", p.key)
		}
	}
	if c.Log.Level != nil {
		switch strings.ToLower(*c.Log.Level) {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("log.level must be one of debug, info, warn, error")
		}
	}
	return nil
}
