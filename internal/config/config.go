package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS    = 30
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultFormat = "gif"
	DefaultOutDir = "media"
)

// Config holds the render settings for one pass. Flag values override
// file values, which override these defaults.
type Config struct {
	FPS     int    `yaml:"fps"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Format  string `yaml:"format"`  // gif, png or svg
	OutDir  string `yaml:"out_dir"` // where artifacts land
	Preview bool   `yaml:"preview"` // play in the terminal after render
}

func DefaultConfig() *Config {
	return &Config{
		FPS:    DefaultFPS,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Format: DefaultFormat,
		OutDir: DefaultOutDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Width < 64 || c.Height < 36 {
		return fmt.Errorf("frame geometry too small: %dx%d", c.Width, c.Height)
	}
	switch c.Format {
	case "gif", "png", "svg":
	default:
		return fmt.Errorf("unknown format: %s", c.Format)
	}
	return nil
}
