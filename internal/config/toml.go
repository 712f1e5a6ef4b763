package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Player PlayerFileConfig `toml:"player"`
}

// PlayerFileConfig maps player settings; nil fields keep the defaults.
type PlayerFileConfig struct {
	Width    *int    `toml:"width"`
	Height   *int    `toml:"height"`
	Color    *bool   `toml:"color"`
	Extended *bool   `toml:"extended"`
	Preview  *bool   `toml:"preview"`
	Listen   *string `toml:"listen"`
}

// LoadFile reads a TOML config from path. A missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// DefaultConfigPath returns the per-user config file location.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "asciivid", "config.toml")
}

func (f FileConfig) applyTo(cfg *PlayerConfig) {
	p := f.Player
	if p.Width != nil {
		cfg.Width = *p.Width
	}
	if p.Height != nil {
		cfg.Height = *p.Height
	}
	if p.Color != nil {
		cfg.Color = *p.Color
	}
	if p.Extended != nil {
		cfg.Extended = *p.Extended
	}
	if p.Preview != nil {
		cfg.Preview = *p.Preview
	}
	if p.Listen != nil {
		cfg.Listen = *p.Listen
	}
}
