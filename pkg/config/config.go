// Package config loads changegraph settings from a TOML file.
//
// The file is optional. Its default location follows the XDG convention:
// $XDG_CONFIG_HOME/changegraph/config.toml, falling back to
// ~/.config/changegraph/config.toml.
//
//	hash_length = 7
//	format = "svg"
//	scale = 2.0
//	no_cache = false
//	cache_ttl = "168h"
//
// Command-line flags take precedence over file values.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/changegraph/pkg/cache"
	"github.com/matzehuels/changegraph/pkg/errors"
	"github.com/matzehuels/changegraph/pkg/render"
)

const appName = "changegraph"

// Config holds user-level defaults for the CLI.
type Config struct {
	// HashLength is the number of hex characters kept per node identifier.
	// Zero keeps the full hash.
	HashLength int `toml:"hash_length"`

	// Format is the output format used when it cannot be inferred from the
	// output path. Empty means DOT.
	Format string `toml:"format"`

	// Scale enlarges PNG output; zero renders at native resolution.
	Scale float64 `toml:"scale"`

	// NoCache disables the rendered-artifact cache.
	NoCache bool `toml:"no_cache"`

	// CacheTTL is how long rendered artifacts stay cached.
	CacheTTL time.Duration `toml:"cache_ttl"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{CacheTTL: cache.TTLArtifact}
}

// Validate checks that every set field holds a usable value.
func (c Config) Validate() error {
	if c.HashLength < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "hash_length cannot be negative: %d", c.HashLength)
	}
	if c.Format != "" {
		if err := errors.ValidateFormat(c.Format, render.Formats); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "format")
		}
	}
	if c.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale cannot be negative: %g", c.Scale)
	}
	if c.CacheTTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache_ttl cannot be negative: %s", c.CacheTTL)
	}
	return nil
}

// Load reads the configuration at path on top of [Default].
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDefault reads the configuration from [DefaultPath].
// A missing file yields [Default] without error.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// DefaultPath returns the XDG location of the configuration file.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
