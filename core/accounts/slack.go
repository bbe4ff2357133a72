// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package accounts

import (
	"fmt"

	"github.com/courierhq/courier/core/model"
	"github.com/courierhq/courier/internal/config"
)

// ListSlackAccountIDs returns the Slack account ids in deterministic order.
func ListSlackAccountIDs(cfg *config.Config) []string {
	return accountIDs(cfg.Channels.Slack.Accounts)
}

// ResolveSlackAccount resolves one Slack app account. Bot and app tokens are
// looked up independently; socket mode needs both.
func ResolveSlackAccount(cfg *config.Config, id string) model.SlackAccount {
	ch := cfg.Channels.Slack
	acc := model.SlackAccount{ID: id, Enabled: ch.IsEnabled()}

	botValue, appValue := ch.BotToken, ch.AppToken
	botSource, appSource := "config", "config"
	if ov, ok := ch.Accounts[id]; ok {
		if ov.Enabled != nil {
			acc.Enabled = *ov.Enabled
		}
		if ov.BotToken != "" {
			botValue = ov.BotToken
			botSource = fmt.Sprintf("channels.slack.accounts.%s", id)
		}
		if ov.AppToken != "" {
			appValue = ov.AppToken
			appSource = fmt.Sprintf("channels.slack.accounts.%s", id)
		}
	}

	acc.BotToken, acc.BotTokenSource = resolveToken(cfg, tokenSpec{
		value:       botValue,
		valueSource: botSource,
		envVars:     []string{"SLACK_BOT_TOKEN"},
		keyringKey:  "slack/" + id + "/bot",
	})
	acc.AppToken, acc.AppTokenSource = resolveToken(cfg, tokenSpec{
		value:       appValue,
		valueSource: appSource,
		envVars:     []string{"SLACK_APP_TOKEN"},
		keyringKey:  "slack/" + id + "/app",
	})
	return acc
}
