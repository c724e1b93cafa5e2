package config

import "errors"

// Config is the top-level configuration struct for distpatch.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Root      string `mapstructure:"root"`
	Include   string `mapstructure:"include"`
	DryRun    bool   `mapstructure:"dry_run"`
	ShowDiff  bool   `mapstructure:"show_diff"`
	Quiet     bool   `mapstructure:"quiet"`
	RulesFile string `mapstructure:"rules_file"`
}

// Sentinel errors for configuration validation.
var (
	// ErrEmptyRoot indicates the root directory setting is empty.
	ErrEmptyRoot = errors.New("root must not be empty")
	// ErrEmptyInclude indicates the include glob setting is empty.
	ErrEmptyInclude = errors.New("include must not be empty")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if c.Root == "" {
		return ErrEmptyRoot
	}

	if c.Include == "" {
		return ErrEmptyInclude
	}

	return nil
}
