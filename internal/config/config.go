// Package config loads fileseek configuration from a YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable settings shared by every command surface.
type Config struct {
	// Workers bounds per-file search concurrency.
	Workers int `yaml:"workers"`
	// MMapThreshold is the minimum file size, in bytes, for mmap-backed
	// pattern scans. Negative disables memory mapping.
	MMapThreshold int64 `yaml:"mmap_threshold"`
	// ExcludeDirs lists directory base names pruned from every walk.
	// Empty by default: the engine sees the whole tree unless told
	// otherwise.
	ExcludeDirs []string `yaml:"exclude_dirs"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Workers:       4,
		MMapThreshold: 4 << 20,
		LogLevel:      "info",
	}
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults unchanged; a path that cannot be read or parsed
// is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Workers < 0 {
		return Config{}, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	return cfg, nil
}

// SlogLevel maps the configured log level onto slog's scale, defaulting
// to info for anything unrecognized.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
