// SPDX-License-Identifier: MPL-2.0

// Package config loads the aamvakit tool configuration: defaults first,
// then an optional TOML config file merged on top via viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"aamvakit/internal/issue"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "aamvakit"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// ConfigDir returns the aamvakit configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load resolves the configuration: defaults, then the config file named by
// the --config override, the config dir, or the current directory —
// whichever is found first. A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("generate.count", defaults.Generate.Count)
	v.SetDefault("generate.jurisdiction", defaults.Generate.Jurisdiction)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadTOMLIntoViper(v, path); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid TOML syntax").
				WithSuggestion("Remove the file to fall back to defaults").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("See 'aamvakit jurisdictions' for valid jurisdiction codes").
			Wrap(err).
			BuildError()
	}
	return &cfg, nil
}

// resolveConfigPath returns the config file to load, or "" when none
// exists. An explicit --config path must exist; the default locations are
// optional.
func resolveConfigPath() (string, error) {
	if configFileOverride != "" {
		if !fileExists(configFileOverride) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFileOverride).
				WithSuggestion("Verify the file path is correct").
				BuildError()
		}
		return configFileOverride, nil
	}

	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	candidates := []string{
		filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt),
		ConfigFileName + "." + ConfigFileExt, // current directory
	}
	for _, p := range candidates {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", nil
}

// loadTOMLIntoViper parses a TOML file and merges its contents into viper,
// preserving defaults for absent keys.
func loadTOMLIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var configMap map[string]any
	if err := toml.Unmarshal(data, &configMap); err != nil {
		return err
	}
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
