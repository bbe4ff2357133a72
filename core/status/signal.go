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

func signalStatus(cfg *config.Config, opts Options) model.ProviderRow {
	var views []accountView
	for _, id := range accounts.ListSignalAccountIDs(cfg) {
		acc := accounts.ResolveSignalAccount(cfg, id)
		v := accountView{Enabled: acc.Enabled, Configured: acc.Configured}
		if acc.Configured {
			v.Sources = []string{acc.Source}
		}
		views = append(views, v)
	}

	return classify(providerDescriptor{
		Name:        "Signal",
		Enabled:     cfg.Channels.Signal.IsEnabled(),
		Accounts:    views,
		SetupDetail: "account not configured (set channels.signal.account)",
		OKDetail: func(c okContext) string {
			return fmt.Sprintf("configured via %s · %d/%d accounts",
				c.Sources.Label, c.Configured, c.Enabled)
		},
	}, opts.ShowSecrets)
}
