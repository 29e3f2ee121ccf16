// Package config loads seqgraph settings from defaults, an optional YAML
// file and SEQGRAPH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/seqpattern/pattern"
)

// EnvPrefix is prepended to every environment override, e.g. SEQGRAPH_LOG_LEVEL.
const EnvPrefix = "SEQGRAPH"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all configuration for the seqgraph tool
type Config struct {
	// Threshold is "auto" or a fraction in [0,1].
	Threshold string `mapstructure:"threshold"`

	// Penalty is the wildcard penalty in (0,1].
	Penalty float64 `mapstructure:"penalty"`

	// SpanScaling raises the penalty to the wildcard span when scoring.
	SpanScaling bool `mapstructure:"span_scaling"`

	// Workers bounds concurrent query scoring.
	Workers int `mapstructure:"workers"`

	// Log configuration
	Log LogConfig `mapstructure:"log"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New returns a viper instance with defaults and environment binding in place.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ReadFile merges the YAML file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	return nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if _, err := pattern.ParseThreshold(c.Threshold); err != nil {
		return fmt.Errorf("%w: threshold: %w", ErrInvalid, err)
	}
	if !(c.Penalty > 0 && c.Penalty <= 1) {
		return fmt.Errorf("%w: penalty %g outside (0,1]", ErrInvalid, c.Penalty)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, c.Workers)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// ThresholdValue returns the parsed threshold. Call after Validate.
func (c *Config) ThresholdValue() pattern.Threshold {
	th, _ := pattern.ParseThreshold(c.Threshold)
	return th
}

// ScoreOptions maps scoring settings onto pattern options.
func (c *Config) ScoreOptions() []pattern.ScoreOption {
	if c.SpanScaling {
		return []pattern.ScoreOption{pattern.WithSpanScaling()}
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("threshold", "auto")
	v.SetDefault("penalty", 0.1)
	v.SetDefault("span_scaling", false)
	v.SetDefault("workers", 4)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
