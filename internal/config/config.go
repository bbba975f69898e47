// Package config loads CLI settings with viper.
//
// Values are layered, highest first: command-line flags bound by the CLI,
// STACKBADGE_* environment variables, a stackbadge.{toml,yaml,json} config
// file, and the defaults set by [SetDefaults]. Nested keys map to
// environment variables with '.' replaced by '_', so cache.enabled is
// STACKBADGE_CACHE_ENABLED.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/matzehuels/stackbadge/pkg/badge"
	"github.com/matzehuels/stackbadge/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "STACKBADGE"

// FileName is the config file name searched for, without extension.
const FileName = "stackbadge"

// Config holds the resolved settings.
type Config struct {
	Style  string       `mapstructure:"style"`
	Fonts  FontsConfig  `mapstructure:"fonts"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Render RenderConfig `mapstructure:"render"`
}

// FontsConfig locates additional width tables.
type FontsConfig struct {
	// Dir holds *.json width tables that override the built-in fonts.
	Dir string `mapstructure:"dir"`
}

// CacheConfig controls the render cache used by batch runs.
type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Dir holds the persistent entries. Empty means the user cache
	// directory chosen by the CLI.
	Dir string        `mapstructure:"dir"`
	TTL time.Duration `mapstructure:"ttl"`
}

// RenderConfig tunes rendering.
type RenderConfig struct {
	Workers      int  `mapstructure:"workers"`
	StrictColors bool `mapstructure:"strict_colors"`
}

// SetDefaults registers the built-in defaults. Every key needs a default so
// that AutomaticEnv picks it up during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("style", badge.Flat.String())

	v.SetDefault("fonts.dir", "")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.dir", "")
	v.SetDefault("cache.ttl", "0s")

	v.SetDefault("render.workers", 0)
	v.SetDefault("render.strict_colors", false)
}

// Default returns the configuration with only defaults applied.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("unmarshal default config: %v", err))
	}
	return &cfg
}

// Load reads settings into v and returns them. An explicit file must exist;
// otherwise stackbadge.* is looked up in the working directory and the user
// config directory, and a missing file is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, FileName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := badge.ParseStyle(c.Style); err != nil {
		return errors.NewValidationError("style", err.Error(), err)
	}
	if c.Render.Workers < 0 {
		return errors.NewValidationError("render.workers", "must not be negative", nil)
	}
	if c.Cache.TTL < 0 {
		return errors.NewValidationError("cache.ttl", "must not be negative", nil)
	}
	return nil
}

// BadgeStyle returns the parsed default style.
func (c *Config) BadgeStyle() badge.Style {
	s, _ := badge.ParseStyle(c.Style)
	return s
}

// File returns the config file v read, if any.
func File(v *viper.Viper) string {
	return v.ConfigFileUsed()
}
