package config

import (
	_ "embed"
)

//go:embed defaults/pepero.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title: "Pepero",
			Scale: 1,
		},
		Assets: AssetsConfig{
			StartImage: "",
			ScoreFont:  "scoreboard.ttf",
			FontSize:   32,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
