// Package config loads the YAML configuration of the game window, assets
// and logging.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	Assets AssetsConfig `yaml:"assets"`
	Log    LogConfig    `yaml:"log"`
	Seed   int64        `yaml:"seed"`
}

type WindowConfig struct {
	Title string `yaml:"title"`
	Scale int    `yaml:"scale"` // Window size is the canvas size times Scale
}

type AssetsConfig struct {
	StartImage string  `yaml:"start_image"` // Empty = embedded start button
	ScoreFont  string  `yaml:"score_font"`
	FontSize   float64 `yaml:"font_size"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Window.Scale < 1 {
		return fmt.Errorf("window.scale must be at least 1, got %d", c.Window.Scale)
	}
	if c.Assets.FontSize <= 0 {
		return fmt.Errorf("assets.font_size must be positive, got %v", c.Assets.FontSize)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// ParseLevel converts the configured level name into a log level.
func (c LogConfig) ParseLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
