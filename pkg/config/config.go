// Package config loads fenestra's configuration: built-in defaults, an
// optional user file, and FENESTRA_* environment overrides, in that order.
// Defaults reproduce the long-standing policy constants, so an absent config
// changes nothing observable.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/fenestra-app/fenestra/pkg/errors"
	"github.com/fenestra-app/fenestra/pkg/paths"
	"github.com/fenestra-app/fenestra/pkg/store"
)

// EnvPrefix is the prefix for environment overrides. Nested keys use a
// double underscore: FENESTRA_CFG_RECOVERY__MAX_BYTES -> recovery.max_bytes.
// Kept distinct from FENESTRA_DATA_DIR, which pkg/paths reads directly.
const EnvPrefix = "FENESTRA_CFG_"

// Config holds the complete application configuration.
type Config struct {
	Storage  StorageConfig  `koanf:"storage"`
	Recovery RecoveryConfig `koanf:"recovery"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// StorageConfig configures where persisted data lives.
type StorageConfig struct {
	// DataDir overrides the platform app-data directory when non-empty.
	DataDir string `koanf:"data_dir"`
}

// RecoveryConfig configures the emergency snapshot policy.
type RecoveryConfig struct {
	MaxBytes  int           `koanf:"max_bytes"`
	Retention time.Duration `koanf:"retention"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Verbosity int `koanf:"verbosity"`
}

// Load reads the configuration from defaults, the user file (if present),
// and the environment.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	userFile := paths.ConfigFile()
	if _, err := os.Stat(userFile); err == nil {
		if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to parse config file %s", userFile)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps FENESTRA_CFG_RECOVERY__MAX_BYTES to recovery.max_bytes.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func (c *Config) validate() error {
	if c.Recovery.MaxBytes <= 0 {
		return errors.New(errors.ErrInvalidInput, "recovery.max_bytes must be positive")
	}
	if c.Recovery.Retention <= 0 {
		return errors.New(errors.ErrInvalidInput, "recovery.retention must be positive")
	}
	return nil
}

// Paths resolves the path layout, honoring the configured data directory.
func (c *Config) Paths() *paths.Paths {
	if c.Storage.DataDir != "" {
		return paths.NewWithDataDir(c.Storage.DataDir)
	}
	return paths.New()
}

// StoreOptions translates the configured policy into store options.
func (c *Config) StoreOptions() []store.Option {
	return []store.Option{
		store.WithMaxRecoveryBytes(c.Recovery.MaxBytes),
		store.WithRetention(c.Recovery.Retention),
	}
}
