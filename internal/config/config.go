package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the application configuration. Values are layered: built-in
// defaults, then the optional TOML file, then FITTRACK_* environment
// variables.
type Config struct {
	// DataDir holds the three store files and the log file.
	DataDir string `toml:"data_dir"`
	// LogLevel is a logrus level name ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`
}

func defaults() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("get home dir: %w", err)
	}
	return Config{
		DataDir:  filepath.Join(home, ".fittrack"),
		LogLevel: "info",
	}, nil
}

// Path returns the config file location:
// $XDG_CONFIG_HOME/fittrack/config.toml (or the platform equivalent).
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(dir, "fittrack", "config.toml"), nil
}

// Load reads the layered configuration. A missing config file is fine; a
// broken one is an error, not a silent fallback.
func Load() (Config, error) {
	cfg, err := defaults()
	if err != nil {
		return Config{}, err
	}

	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	if _, statErr := os.Stat(path); statErr == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FITTRACK_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("FITTRACK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// FoodsPath is the food catalog file.
func (c Config) FoodsPath() string { return filepath.Join(c.DataDir, "foods.json") }

// WorkoutsPath is the workout log file.
func (c Config) WorkoutsPath() string { return filepath.Join(c.DataDir, "workouts.json") }

// NutritionPath is the nutrition (meal) log file.
func (c Config) NutritionPath() string { return filepath.Join(c.DataDir, "nutrition.json") }

// LogPath is the application log file.
func (c Config) LogPath() string { return filepath.Join(c.DataDir, "fittrack.log") }
