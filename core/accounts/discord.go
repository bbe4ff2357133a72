// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package accounts

import (
	"fmt"

	"github.com/courierhq/courier/core/model"
	"github.com/courierhq/courier/internal/config"
)

// ListDiscordAccountIDs returns the Discord account ids in deterministic
// order.
func ListDiscordAccountIDs(cfg *config.Config) []string {
	return accountIDs(cfg.Channels.Discord.Accounts)
}

// ResolveDiscordAccount resolves one Discord bot account. The token is
// looked up across the config value, DISCORD_BOT_TOKEN and the OS keyring.
func ResolveDiscordAccount(cfg *config.Config, id string) model.DiscordAccount {
	ch := cfg.Channels.Discord
	acc := model.DiscordAccount{ID: id, Enabled: ch.IsEnabled()}

	value := ch.BotToken
	valueSource := "config"
	if ov, ok := ch.Accounts[id]; ok {
		if ov.Enabled != nil {
			acc.Enabled = *ov.Enabled
		}
		if ov.BotToken != "" {
			value = ov.BotToken
			valueSource = fmt.Sprintf("channels.discord.accounts.%s", id)
		}
	}

	acc.BotToken, acc.TokenSource = resolveToken(cfg, tokenSpec{
		value:       value,
		valueSource: valueSource,
		envVars:     []string{"DISCORD_BOT_TOKEN"},
		keyringKey:  "discord/" + id,
	})
	return acc
}
