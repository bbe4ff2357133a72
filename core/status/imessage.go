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

func imessageStatus(cfg *config.Config, opts Options) model.ProviderRow {
	var views []accountView
	for _, id := range accounts.ListIMessageAccountIDs(cfg) {
		acc := accounts.ResolveIMessageAccount(cfg, id)
		v := accountView{Enabled: acc.Enabled, Configured: acc.Configured}
		if acc.Configured {
			v.Sources = []string{acc.Source}
		}
		views = append(views, v)
	}

	return classify(providerDescriptor{
		Name:        "iMessage",
		Enabled:     cfg.Channels.IMessage.IsEnabled(),
		Accounts:    views,
		SetupDetail: "not configured (set channels.imessage.cliPath)",
		OKDetail: func(c okContext) string {
			return fmt.Sprintf("configured via %s · %d/%d accounts",
				c.Sources.Label, c.Configured, c.Enabled)
		},
	}, opts.ShowSecrets)
}
