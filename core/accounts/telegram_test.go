// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package accounts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/courierhq/courier/internal/config"
)

func telegramConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	return &config.Config{}
}

func TestResolveTelegramAccountFromConfig(t *testing.T) {
	cfg := telegramConfig(t)
	cfg.Channels.Telegram.BotToken = "123456:config-token"

	acc := ResolveTelegramAccount(cfg, DefaultAccountID)
	if string(acc.BotToken) != "123456:config-token" {
		t.Errorf("token = %q, want the config value", acc.BotToken)
	}
	if acc.TokenSource != "config" {
		t.Errorf("source = %q, want %q", acc.TokenSource, "config")
	}
	if !acc.Enabled {
		t.Error("account should be enabled by default")
	}
}

func TestResolveTelegramAccountFromFile(t *testing.T) {
	cfg := telegramConfig(t)
	file := filepath.Join(t.TempDir(), "bot.token")
	if err := os.WriteFile(file, []byte("  123456:file-token\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg.Channels.Telegram.TokenFile = file

	acc := ResolveTelegramAccount(cfg, DefaultAccountID)
	if string(acc.BotToken) != "123456:file-token" {
		t.Errorf("token = %q, want the trimmed file contents", acc.BotToken)
	}
	if acc.TokenSource != "telegram.tokenFile" {
		t.Errorf("source = %q, want %q", acc.TokenSource, "telegram.tokenFile")
	}
	if acc.TokenFile != file {
		t.Errorf("TokenFile = %q, want the declared path carried through", acc.TokenFile)
	}
}

func TestResolveTelegramAccountFromEnv(t *testing.T) {
	cfg := telegramConfig(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456:env-token")

	acc := ResolveTelegramAccount(cfg, DefaultAccountID)
	if string(acc.BotToken) != "123456:env-token" {
		t.Errorf("token = %q, want the env value", acc.BotToken)
	}
	if acc.TokenSource != "env:TELEGRAM_BOT_TOKEN" {
		t.Errorf("source = %q, want %q", acc.TokenSource, "env:TELEGRAM_BOT_TOKEN")
	}
}

func TestResolveTelegramAccountOverride(t *testing.T) {
	off := false
	cfg := telegramConfig(t)
	cfg.Channels.Telegram.BotToken = "123456:channel-token"
	cfg.Channels.Telegram.Accounts = map[string]config.TelegramAccountConfig{
		"alerts": {BotToken: "999:alerts-token"},
		"silent": {Enabled: &off},
	}

	alerts := ResolveTelegramAccount(cfg, "alerts")
	if string(alerts.BotToken) != "999:alerts-token" {
		t.Errorf("token = %q, want the override value", alerts.BotToken)
	}
	if want := "channels.telegram.accounts.alerts"; alerts.TokenSource != want {
		t.Errorf("source = %q, want %q", alerts.TokenSource, want)
	}

	silent := ResolveTelegramAccount(cfg, "silent")
	if silent.Enabled {
		t.Error("override Enabled=false must disable the account")
	}
	if string(silent.BotToken) != "123456:channel-token" {
		t.Errorf("token = %q, want the channel-level fallback", silent.BotToken)
	}
}

func TestResolveTelegramAccountMissing(t *testing.T) {
	acc := ResolveTelegramAccount(telegramConfig(t), DefaultAccountID)
	if !acc.BotToken.IsZero() {
		t.Errorf("token = %q, want none", acc.BotToken)
	}
	if acc.TokenSource != "" {
		t.Errorf("source = %q, want empty", acc.TokenSource)
	}
}
