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

func telegramStatus(cfg *config.Config, opts Options) model.ProviderRow {
	var views []accountView
	for _, id := range accounts.ListTelegramAccountIDs(cfg) {
		acc := accounts.ResolveTelegramAccount(cfg, id)
		v := accountView{
			Enabled:    acc.Enabled,
			Configured: !acc.BotToken.IsZero(),
			Credential: string(acc.BotToken),
		}
		if v.Configured {
			v.Sources = []string{acc.TokenSource}
		}
		// A declared token file that is gone is an inconsistency even when a
		// token was found elsewhere: the operator's intent is not being read.
		if acc.TokenFile != "" && ProbePath(acc.TokenFile) == PresenceAbsent {
			v.Warning = fmt.Sprintf("token file missing (telegram.tokenFile: %s)", acc.TokenFile)
		}
		views = append(views, v)
	}

	return classify(providerDescriptor{
		Name:        "Telegram",
		Enabled:     cfg.Channels.Telegram.IsEnabled(),
		Accounts:    views,
		SetupDetail: "missing bot token (set channels.telegram.botToken or TELEGRAM_BOT_TOKEN)",
		OKDetail: func(c okContext) string {
			return fmt.Sprintf("token via %s · %s · %d/%d accounts",
				c.Sources.Label, c.Hint, c.Configured, c.Enabled)
		},
	}, opts.ShowSecrets)
}
