// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and writes the Courier configuration. Files are
// discovered through viper (user config dir, system dir, working dir),
// merged with COURIER_* environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Courier")
		default: // Linux, macOS, etc.
			configDir = "/etc/courier"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "courier")
	}

	return filepath.Join(configDir, "courier.yaml"), nil
}

// LoadConfig builds a configuration of type T from defaults, discovered
// config files, an optional explicit config file path, environment
// variables and bound command flags, in that precedence order.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("courier")
	v.SetConfigType("yaml")

	// An explicit --config path has the highest precedence for file-based
	// configuration.
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// It's okay if the file is not found, but other errors are fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	// Credentials are commonly dropped into a .env next to the config during
	// development; merge it before environment lookups. Best effort only.
	_ = godotenv.Load()

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("courier")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	fileUsed = v.ConfigFileUsed()
	return c, nil
}

// fileUsed records which config file the last LoadConfig call read, if any.
var fileUsed string

// FileUsed returns the path of the config file the last load actually read,
// or "" when the process is running on built-in defaults.
func FileUsed() string { return fileUsed }

// WriteConfigFile persists the configuration to the standard location.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
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

	// 0600: the file may contain secrets.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}

// DefaultConfigYAML is the commented starter configuration written by
// `courier config init`.
const DefaultConfigYAML = `# Courier configuration file.
# Every key is optional; channels are enabled unless disabled here.

# CLI language. Supported: "en", "de".
language: en

# Where provider session state (WhatsApp web sessions) lives.
# Defaults to the per-user config directory.
# sessionDir: /var/lib/courier/sessions

# Enable OS keyring lookups for bot tokens under this service name.
# keyringService: courier

channels:
  whatsapp:
    # dmPolicy controls who may open a direct conversation: "pairing",
    # "allowlist" or "open".
    dmPolicy: pairing
    # allowFrom:
    #   - "+15551234567"

  telegram:
    # botToken: "123456:ABC..."
    # tokenFile: /run/secrets/telegram_token

  discord:
    # botToken: "..."

  slack:
    # Socket mode needs both tokens.
    # botToken: "xoxb-..."
    # appToken: "xapp-..."

  signal:
    # account: "+15551234567"
    # cliPath: /usr/local/bin/signal-cli

  imessage:
    # cliPath: /usr/local/bin/imsg
    enabled: false

  msteams:
    # appId: "..."
    # appPassword: "..."
    # tenantId: "..."
    enabled: false
`
