// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/vmunix/medley/internal/progress"
)

// Config is the root configuration structure.
type Config struct {
	Log        LogConfig               `toml:"log"`
	Database   DatabaseConfig          `toml:"database"`
	Resolver   ResolverConfig          `toml:"resolver"`
	Classifier ClassifierConfig        `toml:"classifier"`
	Aliases    map[string]string       `toml:"aliases"`
	Sources    map[string]SourceConfig `toml:"sources"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type ResolverConfig struct {
	// FanOut caps concurrent progress lookups per resolve call.
	FanOut int `toml:"fan_out"`
}

// ClassifierConfig tunes the watch-status thresholds. Zero fields keep the
// built-in defaults.
type ClassifierConfig struct {
	WatchedPercent    float64 `toml:"watched_percent"`
	MinWatchTime      int64   `toml:"min_watch_time"`
	ShortformDuration int64   `toml:"shortform_duration"`
	ShortformPercent  float64 `toml:"shortform_percent"`
	RemainingSeconds  int64   `toml:"remaining_seconds"`
}

// SourceConfig declares one content source. The map key is the source name.
type SourceConfig struct {
	Type string `toml:"type"` // currently "localfs"
	Root string `toml:"root"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/medley.db"
	}

	return &cfg, nil
}

// ProgressConfig converts the classifier section to runtime thresholds,
// keeping defaults for unset fields.
func (c *Config) ProgressConfig() progress.Config {
	pc := progress.DefaultConfig()
	if c.Classifier.WatchedPercent > 0 {
		pc.WatchedPercent = c.Classifier.WatchedPercent
	}
	if c.Classifier.MinWatchTime > 0 {
		pc.MinWatchTime = c.Classifier.MinWatchTime
	}
	if c.Classifier.ShortformDuration > 0 {
		pc.ShortformDuration = c.Classifier.ShortformDuration
	}
	if c.Classifier.ShortformPercent > 0 {
		pc.ShortformPercent = c.Classifier.ShortformPercent
	}
	if c.Classifier.RemainingSeconds > 0 {
		pc.RemainingSeconds = c.Classifier.RemainingSeconds
	}
	return pc
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
