// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Log      LogConfig      `toml:"log"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	Difficulty *string `toml:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Seed       *int64  `toml:"seed" validate:"omitempty,gte=0"`
	Samples    *string `toml:"samples" validate:"omitempty,min=1"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	File  *string `toml:"file"`
}

var validate = validator.New()

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
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FileConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field constraints on the decoded file.
func (c FileConfig) Validate() error {
	return validate.Struct(c)
}
