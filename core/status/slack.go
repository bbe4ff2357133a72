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

func slackStatus(cfg *config.Config, opts Options) model.ProviderRow {
	var views []accountView
	for _, id := range accounts.ListSlackAccountIDs(cfg) {
		acc := accounts.ResolveSlackAccount(cfg, id)
		hasBot := !acc.BotToken.IsZero()
		hasApp := !acc.AppToken.IsZero()
		v := accountView{
			Enabled:    acc.Enabled,
			Configured: hasBot && hasApp,
			Credential: string(acc.BotToken),
		}
		switch {
		case hasBot && hasApp:
			v.Sources = []string{acc.BotTokenSource, acc.AppTokenSource}
		case hasBot:
			v.Warning = "partial tokens (bot token present, app token missing)"
		case hasApp:
			v.Warning = "partial tokens (app token present, bot token missing)"
		}
		views = append(views, v)
	}

	return classify(providerDescriptor{
		Name:        "Slack",
		Enabled:     cfg.Channels.Slack.IsEnabled(),
		Accounts:    views,
		SetupDetail: "missing tokens (set channels.slack.botToken and channels.slack.appToken)",
		OKDetail: func(c okContext) string {
			return fmt.Sprintf("tokens via %s · bot %s · %d/%d accounts",
				c.Sources.Label, c.Hint, c.Configured, c.Enabled)
		},
	}, opts.ShowSecrets)
}
