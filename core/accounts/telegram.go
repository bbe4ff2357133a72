// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package accounts

import (
	"fmt"

	"github.com/courierhq/courier/core/model"
	"github.com/courierhq/courier/internal/config"
)

// ListTelegramAccountIDs returns the Telegram account ids in deterministic
// order.
func ListTelegramAccountIDs(cfg *config.Config) []string {
	return accountIDs(cfg.Channels.Telegram.Accounts)
}

// ResolveTelegramAccount resolves one Telegram bot account. The token is
// looked up across the config value, the declared token file,
// TELEGRAM_BOT_TOKEN and the OS keyring, in that order.
func ResolveTelegramAccount(cfg *config.Config, id string) model.TelegramAccount {
	ch := cfg.Channels.Telegram
	acc := model.TelegramAccount{ID: id, Enabled: ch.IsEnabled()}

	value := ch.BotToken
	valueSource := "config"
	file := ch.TokenFile
	if ov, ok := ch.Accounts[id]; ok {
		if ov.Enabled != nil {
			acc.Enabled = *ov.Enabled
		}
		if ov.BotToken != "" {
			value = ov.BotToken
			valueSource = fmt.Sprintf("channels.telegram.accounts.%s", id)
		}
		if ov.TokenFile != "" {
			file = ov.TokenFile
		}
	}
	acc.TokenFile = file

	acc.BotToken, acc.TokenSource = resolveToken(cfg, tokenSpec{
		value:       value,
		valueSource: valueSource,
		filePath:    file,
		fileSource:  "telegram.tokenFile",
		envVars:     []string{"TELEGRAM_BOT_TOKEN"},
		keyringKey:  "telegram/" + id,
	})
	return acc
}
