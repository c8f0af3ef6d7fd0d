// Copyright (c) 2026 Keyspect Team
// Keyspect - SSH public key inspection tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and persists the Keyspect configuration. Values come
// from, in increasing precedence: built-in defaults, the YAML config file,
// environment variables (KEYSPECT_*), and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the user-tunable settings of Keyspect.
type Config struct {
	Language string `mapstructure:"language" yaml:"language"`
	Output   string `mapstructure:"output" yaml:"output"`
	Debug    bool   `mapstructure:"debug" yaml:"debug"`
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Keyspect")
		default: // Linux, macOS, etc.
			configDir = "/etc/keyspect"
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "keyspect")
	}

	return filepath.Join(configDir, "keyspect.yaml"), nil
}

// LoadConfig builds a configuration value of type T from defaults, the
// keyspect.yaml file, KEYSPECT_* environment variables, and the flags of the
// given command. A missing config file is reported as
// viper.ConfigFileNotFoundError so callers can fall back to defaults.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search (keyspect.yaml)
	v.SetConfigName("keyspect")
	v.SetConfigType("yaml")

	// 3. An explicit config file path from the --config flag has the highest
	// precedence for file-based configuration.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	// 4. Add standard config locations
	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".") // Look for keyspect.yaml in current dir

	// 5. Read in the primary config file. A missing file is not fatal: the
	// config is still populated from defaults, env, and flags, and the
	// not-found error is handed back so callers can write a fresh file.
	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	// 6. Read from environment variables
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("keyspect")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 7. Bind command-line flags
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFile persists the configuration as YAML to the user (or system)
// config path, creating the directory if needed.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}
