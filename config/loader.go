package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SeedEnv overrides the configured seed when set to an integer.
const SeedEnv = "GAME_RAND_SEED"

// LocalConfigPath is looked up relative to the working directory.
const LocalConfigPath = "pepero.yaml"

// Load reads the configuration.
// Search order: customPath -> ~/.pepero/config.yaml -> ./pepero.yaml -> embedded default
// Files only need to list the fields they change. The first file found is
// used; if it cannot be parsed or is invalid, Load fails instead of moving
// on to the next location.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	for _, path := range []string{userConfigPath(), LocalConfigPath} {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

func loadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Overrides are the command-line values that take precedence over the
// environment and the config file.
type Overrides struct {
	Seed     *int64 // nil when --seed was not given
	LogLevel string // empty when --log-level was not given
}

// ApplyEnv applies environment overrides.
func ApplyEnv(cfg *Config) {
	if s, err := strconv.ParseInt(os.Getenv(SeedEnv), 10, 64); err == nil {
		cfg.Seed = s
	}
}

// Resolve applies the environment and then o on top of cfg.
// Precedence: flags -> GAME_RAND_SEED -> config file.
func Resolve(cfg *Config, o Overrides) error {
	ApplyEnv(cfg)
	if o.Seed != nil {
		cfg.Seed = *o.Seed
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	return cfg.Validate()
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pepero", "config.yaml")
}
