// Package config resolves hopdom settings from flags, HOPDOM_* environment
// variables and an optional YAML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/hopdom/logging"
	"github.com/katalvlaran/hopdom/report"
	"github.com/katalvlaran/hopdom/selector"
)

// EnvPrefix is prepended to every environment key: HOPDOM_SEED, HOPDOM_LOG_LEVEL, ...
const EnvPrefix = "HOPDOM"

// Keys understood by Load.
const (
	KeySeed     = "seed"
	KeyWorkers  = "workers"
	KeyFormat   = "format"
	KeyInput    = "input"
	KeyLogLevel = "log.level"
	KeyLogFile  = "log.file"
	KeyLogDev   = "log.development"
)

// ErrInvalid is returned when a resolved value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved configuration of one hopdom invocation.
type Config struct {
	// Seed for both heuristics; 0 seeds from the clock.
	Seed    int64  `mapstructure:"seed"`
	Workers int    `mapstructure:"workers"`
	Format  string `mapstructure:"format"`
	// Input is the edge-list path; empty or "-" reads stdin.
	Input string         `mapstructure:"input"`
	Log   logging.Config `mapstructure:"log"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Seed:    1,
		Workers: selector.DefaultWorkers,
		Format:  report.FormatText,
		Log:     logging.DefaultConfig(),
	}
}

// NewViper returns a viper instance with defaults registered and environment
// lookup enabled under EnvPrefix.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults registers every key so that AutomaticEnv can see it.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyInput, d.Input)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFile, d.Log.File)
	v.SetDefault(KeyLogDev, d.Log.Development)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.compress", d.Log.Compress)
}

// ReadFile merges the YAML file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers=%d, need >= 1", ErrInvalid, c.Workers)
	}
	if !slices.Contains(report.Formats(), strings.ToLower(c.Format)) {
		return fmt.Errorf("%w: format %q, want one of %v", ErrInvalid, c.Format, report.Formats())
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}
