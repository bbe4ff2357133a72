// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/courierhq/courier/internal/config"
	"github.com/courierhq/courier/internal/i18n"
)

// configCmd is the root command for configuration housekeeping.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and bootstrap the configuration",
}

// configInitCmd writes a commented starter configuration so the available
// keys are discoverable. It never overwrites an existing file.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		system, _ := cmd.Flags().GetBool("system")
		path, err := config.GetConfigPath(system)
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.init_exists", path))
			return nil
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("could not create config directory: %w", err)
		}
		// 0600: the file is where users will put secrets.
		if err := os.WriteFile(path, []byte(config.DefaultConfigYAML), 0600); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.init_written", path))
		return nil
	},
}

// configSaveCmd persists the resolved in-memory configuration, so values
// merged from the environment and flags become the file's contents.
var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist the resolved configuration",
	Long: `Writes the configuration as this invocation resolved it (file values
merged with COURIER_* environment variables and flags) back to the standard
location. Useful to materialize environment-driven settings into a file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		system, _ := cmd.Flags().GetBool("system")
		if err := config.WriteConfigFile(&appConfig, system); err != nil {
			return err
		}
		path, err := config.GetConfigPath(system)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.saved", path))
		return nil
	},
}

// configPathCmd shows which config file the current invocation read.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		if used := config.FileUsed(); used != "" {
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.path_in_use", used))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.path_none"))
		}
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("system", false, "write the system-wide config instead of the user config")
	configSaveCmd.Flags().Bool("system", false, "write the system-wide config instead of the user config")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSaveCmd)
	configCmd.AddCommand(configPathCmd)
}
