// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
// The extension table and plugin allow-list are fixed and not configurable.
type Config struct {
	Log       LogConfig       `toml:"log"`
	Organizer OrganizerConfig `toml:"organizer"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type OrganizerConfig struct {
	// Root is the folder to organize; empty means the working directory.
	Root string `toml:"root"`
	// Exclude lists extra entry names that are never moved.
	Exclude  []string `toml:"exclude"`
	Rollback bool     `toml:"rollback"`
	// Lock is a pointer so an absent key keeps the default (true).
	Lock    *bool  `toml:"lock"`
	LockDir string `toml:"lock_dir"`
	Jobs    int    `toml:"jobs"`
}

// LockEnabled reports whether runs take the per-root lock.
func (o OrganizerConfig) LockEnabled() bool {
	return o.Lock == nil || *o.Lock
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, parses, and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, applying
// defaults but skipping validation.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Organizer.Jobs == 0 {
		c.Organizer.Jobs = 1
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment references in content.
// Unresolved references are left unchanged and reported in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]

		value, ok := os.LookupEnv(name)
		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, name+": "+strings.TrimSpace(arg))
				return match
			}
			return value
		}

		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	})
	return out, missing
}
