// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for the Courier gateway
// using the Cobra library. It defines the root command, subcommands (status,
// config), flags, and the shared configuration bootstrap.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/courierhq/courier/internal/config"
	"github.com/courierhq/courier/internal/i18n"
	"github.com/courierhq/courier/internal/logging"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var cfgFile string
var verbose bool

// appConfig is the configuration shared by all commands, loaded once in
// PersistentPreRunE.
var appConfig config.Config

// setupDefaultServices loads the configuration and initializes i18n and
// logging. It runs before every command.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := map[string]any{
		"language": "en",
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	if err != nil {
		return errors.New(i18n.T("config.error_load", err))
	}

	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}
	i18n.Init(appConfig.Language)
	logging.SetDebug(verbose)
	logging.Debugf("config loaded (file: %q)", config.FileUsed())

	return nil
}

// Execute runs the CLI entrypoint. The root main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only honor --config when the user explicitly set it.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command. This function
// is used to create the main application command as well as fresh instances
// for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courier",
		Short: "Courier is a multi-provider messaging gateway.",
		Long: `Courier bridges WhatsApp, Telegram, Discord, Slack, Signal,
iMessage and MS Teams behind a single gateway process. This CLI inspects
the local configuration and reports, per channel, whether it is ready to
connect and what is missing when it is not.

Running without a subcommand prints the channel status view.`,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd)
		},
	}

	cmd.AddCommand(statusCmd)
	cmd.AddCommand(configCmd)

	cmd.Version = version

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the user config dir or ./courier.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
