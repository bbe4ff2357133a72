// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
)

// Config is the root configuration for the gateway. Any nested field may be
// omitted from the file; defaults are resolved once, here at the boundary,
// rather than scattered through the status logic.
type Config struct {
	// Language selects the CLI language ("en", "de").
	Language string `mapstructure:"language" yaml:"language"`
	// SessionDir overrides where provider session state (e.g. WhatsApp web
	// sessions) is stored. Empty means the per-user default.
	SessionDir string `mapstructure:"sessionDir" yaml:"sessionDir,omitempty"`
	// KeyringService, when set, enables OS keyring lookups for bot tokens
	// under this service name.
	KeyringService string `mapstructure:"keyringService" yaml:"keyringService,omitempty"`

	Channels ChannelsConfig `mapstructure:"channels" yaml:"channels"`
}

// ChannelsConfig groups the per-provider channel sections.
type ChannelsConfig struct {
	WhatsApp WhatsAppConfig `mapstructure:"whatsapp" yaml:"whatsapp"`
	Telegram TelegramConfig `mapstructure:"telegram" yaml:"telegram"`
	Discord  DiscordConfig  `mapstructure:"discord" yaml:"discord"`
	Slack    SlackConfig    `mapstructure:"slack" yaml:"slack"`
	Signal   SignalConfig   `mapstructure:"signal" yaml:"signal"`
	IMessage IMessageConfig `mapstructure:"imessage" yaml:"imessage"`
	MSTeams  MSTeamsConfig  `mapstructure:"msteams" yaml:"msteams"`
}

// enabledOrDefault resolves the tri-state enabled flag: an absent key means
// enabled.
func enabledOrDefault(b *bool) bool { return b == nil || *b }

// WhatsAppConfig configures the WhatsApp channel. WhatsApp carries no
// credential in the config; readiness comes from a linked web session.
type WhatsAppConfig struct {
	Enabled   *bool                            `mapstructure:"enabled" yaml:"enabled,omitempty"`
	Name      string                           `mapstructure:"name" yaml:"name,omitempty"`
	DMPolicy  string                           `mapstructure:"dmPolicy" yaml:"dmPolicy,omitempty"`
	SelfChat  bool                             `mapstructure:"selfChat" yaml:"selfChat,omitempty"`
	AllowFrom []string                         `mapstructure:"allowFrom" yaml:"allowFrom,omitempty"`
	Accounts  map[string]WhatsAppAccountConfig `mapstructure:"accounts" yaml:"accounts,omitempty"`
}

// WhatsAppAccountConfig overrides channel-level WhatsApp settings for one
// account.
type WhatsAppAccountConfig struct {
	Enabled   *bool    `mapstructure:"enabled" yaml:"enabled,omitempty"`
	Name      string   `mapstructure:"name" yaml:"name,omitempty"`
	DMPolicy  string   `mapstructure:"dmPolicy" yaml:"dmPolicy,omitempty"`
	SelfChat  *bool    `mapstructure:"selfChat" yaml:"selfChat,omitempty"`
	AllowFrom []string `mapstructure:"allowFrom" yaml:"allowFrom,omitempty"`
}

// IsEnabled resolves the channel enabled flag (default true).
func (c WhatsAppConfig) IsEnabled() bool { return enabledOrDefault(c.Enabled) }

// TelegramConfig configures the Telegram channel.
type TelegramConfig struct {
	Enabled   *bool                            `mapstructure:"enabled" yaml:"enabled,omitempty"`
	BotToken  string                           `mapstructure:"botToken" yaml:"botToken,omitempty"`
	TokenFile string                           `mapstructure:"tokenFile" yaml:"tokenFile,omitempty"`
	Accounts  map[string]TelegramAccountConfig `mapstructure:"accounts" yaml:"accounts,omitempty"`
}

// TelegramAccountConfig overrides channel-level Telegram settings for one
// account.
type TelegramAccountConfig struct {
	Enabled   *bool  `mapstructure:"enabled" yaml:"enabled,omitempty"`
	BotToken  string `mapstructure:"botToken" yaml:"botToken,omitempty"`
	TokenFile string `mapstructure:"tokenFile" yaml:"tokenFile,omitempty"`
}

// IsEnabled resolves the channel enabled flag (default true).
func (c TelegramConfig) IsEnabled() bool { return enabledOrDefault(c.Enabled) }

// DiscordConfig configures the Discord channel.
type DiscordConfig struct {
	Enabled  *bool                           `mapstructure:"enabled" yaml:"enabled,omitempty"`
	BotToken string                          `mapstructure:"botToken" yaml:"botToken,omitempty"`
	Accounts map[string]DiscordAccountConfig `mapstructure:"accounts" yaml:"accounts,omitempty"`
}

// DiscordAccountConfig overrides channel-level Discord settings for one
// account.
type DiscordAccountConfig struct {
	Enabled  *bool  `mapstructure:"enabled" yaml:"enabled,omitempty"`
	BotToken string `mapstructure:"botToken" yaml:"botToken,omitempty"`
}

// IsEnabled resolves the channel enabled flag (default true).
func (c DiscordConfig) IsEnabled() bool { return enabledOrDefault(c.Enabled) }

// SlackConfig configures the Slack channel. Socket mode needs both a bot
// token and an app-level token.
type SlackConfig struct {
	Enabled  *bool                         `mapstructure:"enabled" yaml:"enabled,omitempty"`
	BotToken string                        `mapstructure:"botToken" yaml:"botToken,omitempty"`
	AppToken string                        `mapstructure:"appToken" yaml:"appToken,omitempty"`
	Accounts map[string]SlackAccountConfig `mapstructure:"accounts" yaml:"accounts,omitempty"`
}

// SlackAccountConfig overrides channel-level Slack settings for one account.
type SlackAccountConfig struct {
	Enabled  *bool  `mapstructure:"enabled" yaml:"enabled,omitempty"`
	BotToken string `mapstructure:"botToken" yaml:"botToken,omitempty"`
	AppToken string `mapstructure:"appToken" yaml:"appToken,omitempty"`
}

// IsEnabled resolves the channel enabled flag (default true).
func (c SlackConfig) IsEnabled() bool { return enabledOrDefault(c.Enabled) }

// SignalConfig configures the Signal channel, which relies on an external
// signal-cli installation and a registered account number.
type SignalConfig struct {
	Enabled  *bool                          `mapstructure:"enabled" yaml:"enabled,omitempty"`
	Account  string                         `mapstructure:"account" yaml:"account,omitempty"`
	CLIPath  string                         `mapstructure:"cliPath" yaml:"cliPath,omitempty"`
	Accounts map[string]SignalAccountConfig `mapstructure:"accounts" yaml:"accounts,omitempty"`
}

// SignalAccountConfig overrides channel-level Signal settings for one account.
type SignalAccountConfig struct {
	Enabled *bool  `mapstructure:"enabled" yaml:"enabled,omitempty"`
	Account string `mapstructure:"account" yaml:"account,omitempty"`
}

// IsEnabled resolves the channel enabled flag (default true).
func (c SignalConfig) IsEnabled() bool { return enabledOrDefault(c.Enabled) }

// IMessageConfig configures the iMessage channel, which shells out to a
// helper binary on macOS.
type IMessageConfig struct {
	Enabled  *bool                            `mapstructure:"enabled" yaml:"enabled,omitempty"`
	CLIPath  string                           `mapstructure:"cliPath" yaml:"cliPath,omitempty"`
	Accounts map[string]IMessageAccountConfig `mapstructure:"accounts" yaml:"accounts,omitempty"`
}

// IMessageAccountConfig overrides channel-level iMessage settings for one
// account.
type IMessageAccountConfig struct {
	Enabled *bool  `mapstructure:"enabled" yaml:"enabled,omitempty"`
	CLIPath string `mapstructure:"cliPath" yaml:"cliPath,omitempty"`
}

// IsEnabled resolves the channel enabled flag (default true).
func (c IMessageConfig) IsEnabled() bool { return enabledOrDefault(c.Enabled) }

// MSTeamsConfig configures the MS Teams channel. Each field falls back to
// the matching MSTEAMS_* environment variable when unset.
type MSTeamsConfig struct {
	Enabled     *bool                           `mapstructure:"enabled" yaml:"enabled,omitempty"`
	AppID       string                          `mapstructure:"appId" yaml:"appId,omitempty"`
	AppPassword string                          `mapstructure:"appPassword" yaml:"appPassword,omitempty"`
	TenantID    string                          `mapstructure:"tenantId" yaml:"tenantId,omitempty"`
	Accounts    map[string]MSTeamsAccountConfig `mapstructure:"accounts" yaml:"accounts,omitempty"`
}

// MSTeamsAccountConfig overrides channel-level MS Teams settings for one
// account.
type MSTeamsAccountConfig struct {
	Enabled     *bool  `mapstructure:"enabled" yaml:"enabled,omitempty"`
	AppID       string `mapstructure:"appId" yaml:"appId,omitempty"`
	AppPassword string `mapstructure:"appPassword" yaml:"appPassword,omitempty"`
	TenantID    string `mapstructure:"tenantId" yaml:"tenantId,omitempty"`
}

// IsEnabled resolves the channel enabled flag (default true).
func (c MSTeamsConfig) IsEnabled() bool { return enabledOrDefault(c.Enabled) }

// DefaultDMPolicy is applied when a WhatsApp account declares no DM
// admission policy.
const DefaultDMPolicy = "pairing"

// SessionDirOrDefault returns the configured session directory, or the
// per-user default location when unset.
func (c *Config) SessionDirOrDefault() string {
	if c.SessionDir != "" {
		return c.SessionDir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".courier", "sessions")
	}
	return filepath.Join(base, "courier", "sessions")
}
