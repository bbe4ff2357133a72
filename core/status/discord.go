// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package status

import (
	"fmt"

	"github.com/courierhq/courier/core/accounts"
	"github.com/courierhq/courier/core/model"
	"github.com/courierhq/courier/internal/config"
)

func discordStatus(cfg *config.Config, opts Options) model.ProviderRow {
	var views []accountView
	for _, id := range accounts.ListDiscordAccountIDs(cfg) {
		acc := accounts.ResolveDiscordAccount(cfg, id)
		v := accountView{
			Enabled:    acc.Enabled,
			Configured: !acc.BotToken.IsZero(),
			Credential: string(acc.BotToken),
		}
		if v.Configured {
			v.Sources = []string{acc.TokenSource}
		}
		views = append(views, v)
	}

	return classify(providerDescriptor{
		Name:        "Discord",
		Enabled:     cfg.Channels.Discord.IsEnabled(),
		Accounts:    views,
		SetupDetail: "missing bot token (set channels.discord.botToken or DISCORD_BOT_TOKEN)",
		OKDetail: func(c okContext) string {
			return fmt.Sprintf("token via %s · %s · %d/%d accounts",
				c.Sources.Label, c.Hint, c.Configured, c.Enabled)
		},
	}, opts.ShowSecrets)
}
