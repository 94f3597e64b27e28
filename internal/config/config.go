// Package config loads settings from defaults, an optional YAML file and
// TIPS_ environment variables, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultConfigFile is picked up from the working directory when present.
	DefaultConfigFile = "tips.yaml"

	// EnvPrefix marks environment overrides, e.g. TIPS_STORE_PATH.
	EnvPrefix = "TIPS_"

	DefaultUndoDepth     = 10
	DefaultStatusTimeout = 4 * time.Second
)

// Config is the root configuration structure.
type Config struct {
	Store  StoreConfig  `koanf:"store"`
	Undo   UndoConfig   `koanf:"undo"`
	Status StatusConfig `koanf:"status"`
	UI     UIConfig     `koanf:"ui"`
	Log    LogConfig    `koanf:"log"`
}

type StoreConfig struct {
	Path string `koanf:"path" validate:"required"`
}

type UndoConfig struct {
	Depth int `koanf:"depth" validate:"required,min=1,max=100"`
}

// StatusConfig controls how long transient status messages stay visible.
type StatusConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"required,min=100ms"`
}

type UIConfig struct {
	Theme string `koanf:"theme" validate:"required,oneof=classic neon mono"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=text json logfmt"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"    validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"maxsize" validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"maxage"  validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

func defaults() map[string]any {
	return map[string]any{
		"store.path":     "mental_health_tips.txt",
		"undo.depth":     DefaultUndoDepth,
		"status.timeout": DefaultStatusTimeout.String(),
		"ui.theme":       "classic",

		"log.level":         "warn",
		"log.format":        "text",
		"log.file.enabled":  false,
		"log.file.path":     "tips.log",
		"log.file.maxsize":  10,
		"log.file.backups":  3,
		"log.file.maxage":   28,
		"log.file.compress": false,
	}
}

// Load builds the configuration. An explicit path must exist; with an empty
// path DefaultConfigFile is used only if present.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %q: %w", path, err)
		}
	} else if err := loadFileIfExists(k, DefaultConfigFile); err != nil {
		return nil, fmt.Errorf("loading config %q: %w", DefaultConfigFile, err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, EnvPrefix)),
			"_",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}
