// Package config loads the faaah configuration with koanf, layering
// defaults, the global and local config files, and environment
// variables. Configuration is re-read on every trigger evaluation, never
// cached, so runtime edits take effect immediately.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is one immutable read of the notification settings.
type Config struct {
	Enabled          bool   `koanf:"enabled" json:"enabled"`
	OnTestFailure    bool   `koanf:"on_test_failure" json:"on_test_failure"`
	OnErrors         bool   `koanf:"on_errors" json:"on_errors"`
	ReadErrorMessage bool   `koanf:"read_error_message" json:"read_error_message"`
	SoundFilePath    string `koanf:"sound_file_path" json:"sound_file_path"`
	CooldownMs       int    `koanf:"cooldown_ms" json:"cooldown_ms" validate:"min=0"`
	CustomPhrase     string `koanf:"custom_phrase" json:"custom_phrase"`
}

// Cooldown returns the rate-limit window as a duration.
func (c *Config) Cooldown() time.Duration {
	return time.Duration(c.CooldownMs) * time.Millisecond
}

// Loader re-reads configuration from its sources. The trigger handler
// calls it on every event.
type Loader func() (*Config, error)

// Load loads configuration from global, local, and environment sources.
// Priority: environment variables > local config > global config >
// defaults. localConfigPath defaults to ./.faaah/config.json when empty.
func Load(localConfigPath string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".faaah", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("loading global config: %w", err)
			}
		}
	}

	if localConfigPath == "" {
		localConfigPath = filepath.Join(".faaah", "config.json")
	}
	if _, err := os.Stat(localConfigPath); err == nil {
		if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
			return nil, fmt.Errorf("loading local config: %w", err)
		}
	}

	k.Load(env.Provider("FAAAH_", ".", envTransform), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Clamped rather than rejected: a negative cooldown means "no
	// cooldown", whatever source it came from.
	if cfg.CooldownMs < 0 {
		cfg.CooldownMs = 0
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: FAAAH_COOLDOWN_MS -> cooldown_ms
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "FAAAH_"))
}
