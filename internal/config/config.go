// Package config loads the command-line tool's solver settings.
//
// Settings come from, in increasing precedence: built-in defaults, an
// optional YAML file, KNAPSTACK_* environment variables, and finally
// command-line flags applied by the caller.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/knapstack/knapsack"
)

// EnvPrefix is the prefix of environment overrides (KNAPSTACK_VARIANT, …).
const EnvPrefix = "KNAPSTACK"

// Config holds the solver settings of one CLI run.
type Config struct {
	Variant   string        `mapstructure:"variant" yaml:"variant"`
	Algorithm string        `mapstructure:"algorithm" yaml:"algorithm"`
	TimeLimit time.Duration `mapstructure:"time_limit" yaml:"time_limit"`
	LogLevel  string        `mapstructure:"log_level" yaml:"log_level"`
	ShowItems bool          `mapstructure:"show_items" yaml:"show_items"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Variant:   "zero-one",
		Algorithm: "branch-and-bound",
		LogLevel:  "info",
	}
}

// Load reads path (if non-empty) over the defaults and applies environment
// overrides. A missing path is an error; an empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetDefault("variant", cfg.Variant)
	v.SetDefault("algorithm", cfg.Algorithm)
	v.SetDefault("time_limit", cfg.TimeLimit)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("show_items", cfg.ShowItems)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every setting names something the solvers know.
func (c *Config) Validate() error {
	if _, err := ParseVariant(c.Variant); err != nil {
		return err
	}
	if _, err := ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("config: time_limit must be >= 0, got %s", c.TimeLimit)
	}

	return nil
}

// Options converts the settings into solver options.
func (c *Config) Options() (knapsack.Options, error) {
	opts := knapsack.DefaultOptions()
	variant, err := ParseVariant(c.Variant)
	if err != nil {
		return opts, err
	}
	algo, err := ParseAlgorithm(c.Algorithm)
	if err != nil {
		return opts, err
	}
	opts.Variant = variant
	opts.Algorithm = algo
	opts.TimeLimit = c.TimeLimit

	return opts, nil
}

// ParseVariant accepts "zero-one" (also "01", "0-1", "binary") and "unbounded".
func ParseVariant(s string) (knapsack.Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zero-one", "01", "0-1", "binary":
		return knapsack.ZeroOne, nil
	case "unbounded":
		return knapsack.Unbounded, nil
	default:
		return 0, fmt.Errorf("config: unknown variant %q", s)
	}
}

// ParseAlgorithm accepts "branch-and-bound" ("bnb") and "dynamic-programming" ("dp").
func ParseAlgorithm(s string) (knapsack.Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "branch-and-bound", "bnb":
		return knapsack.BranchAndBound, nil
	case "dynamic-programming", "dp":
		return knapsack.DynamicProgramming, nil
	default:
		return 0, fmt.Errorf("config: unknown algorithm %q", s)
	}
}
