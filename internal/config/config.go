// SPDX-License-Identifier: MIT

// Package config resolves the qstab CLI settings. Precedence, lowest first:
// built-in defaults, a YAML config file, QSTAB_* environment variables and
// command-line flags bound by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/qstab/entropy"
	"github.com/katalvlaran/qstab/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. QSTAB_LOG_LEVEL.
const EnvPrefix = "QSTAB"

// EnvConfigFile names the variable holding an explicit config file path.
const EnvConfigFile = "QSTAB_CONFIG"

// Keys.
const (
	KeyAlgorithm = "algorithm"
	KeyPhases    = "phases"
	KeyClip      = "clip"
	KeyValidate  = "validate"
	KeyFormat    = "format"
	KeyLogLevel  = "log.level"
	KeyLogColor  = "log.color"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrInvalidConfig indicates a setting outside its allowed values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the resolved settings.
type Config struct {
	Algorithm string    `mapstructure:"algorithm"`
	Phases    bool      `mapstructure:"phases"`
	Clip      bool      `mapstructure:"clip"`
	Validate  bool      `mapstructure:"validate"`
	Format    string    `mapstructure:"format"`
	Log       LogConfig `mapstructure:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// New returns a viper instance with defaults and environment overrides
// installed. Flags may be bound to it before Load.
func New() *viper.Viper {
	v := viper.New()

	// default values
	v.SetDefault(KeyAlgorithm, entropy.Clip.String())
	v.SetDefault(KeyPhases, true)
	v.SetDefault(KeyClip, true)
	v.SetDefault(KeyValidate, false)
	v.SetDefault(KeyFormat, FormatText)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogColor, string(logging.ColorAuto))

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file, unmarshals and validates.
//
// path selects the file; when empty, $QSTAB_CONFIG is used, and failing
// that $XDG_CONFIG_HOME/qstab/config.yaml (or ~/.config/qstab) is read if
// present. An explicitly named file must exist.
func Load(v *viper.Viper, path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "qstab"))
		}
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Check(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Check rejects unknown algorithms, formats, levels and colour modes.
func (c Config) Check() error {
	if _, err := entropy.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%s: %w: %w", KeyAlgorithm, ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Format) {
	case FormatText, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%s %q: %w", KeyFormat, c.Format, ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%s: %w: %w", KeyLogLevel, ErrInvalidConfig, err)
	}
	if _, err := logging.ParseColor(c.Log.Color); err != nil {
		return fmt.Errorf("%s: %w: %w", KeyLogColor, ErrInvalidConfig, err)
	}

	return nil
}

// AlgorithmTag returns the parsed algorithm; c must be valid.
func (c Config) AlgorithmTag() entropy.Algorithm {
	a, _ := entropy.ParseAlgorithm(c.Algorithm)

	return a
}
