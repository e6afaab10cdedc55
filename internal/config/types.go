// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"aamvakit/pkg/aamva"
)

var (
	// ErrInvalidGenerateCount is returned when the configured batch size is
	// not positive.
	ErrInvalidGenerateCount = errors.New("invalid generate count")
	// ErrInvalidJurisdiction is returned when the configured default
	// jurisdiction is not in the AAMVA table.
	ErrInvalidJurisdiction = errors.New("invalid jurisdiction")
)

type (
	// Config is the tool configuration, loaded from config.toml with
	// defaults applied for absent keys.
	Config struct {
		// OutputDir is where generated payload files are written.
		OutputDir string `mapstructure:"output_dir"`
		// Generate holds synthetic-generation defaults.
		Generate GenerateConfig `mapstructure:"generate"`
		// UI holds presentation settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// GenerateConfig holds the defaults of the generate command.
	GenerateConfig struct {
		// Count is the default number of records per batch.
		Count int `mapstructure:"count"`
		// Jurisdiction pins generation to one jurisdiction code; empty
		// means a random jurisdiction per record.
		Jurisdiction string `mapstructure:"jurisdiction"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		// Verbose enables diagnostic output everywhere.
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: "out",
		Generate: GenerateConfig{
			Count: 1,
		},
	}
}

// Validate checks constraints the TOML schema cannot express.
func (c *Config) Validate() error {
	if c.Generate.Count < 1 {
		return fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidGenerateCount, c.Generate.Count)
	}
	if j := strings.TrimSpace(c.Generate.Jurisdiction); j != "" {
		if _, ok := aamva.LookupJurisdiction(j); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidJurisdiction, c.Generate.Jurisdiction)
		}
	}
	return nil
}
