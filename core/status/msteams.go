// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package status

import (
	"fmt"
	"strings"

	"github.com/courierhq/courier/core/accounts"
	"github.com/courierhq/courier/core/model"
	"github.com/courierhq/courier/internal/config"
)

func msteamsStatus(cfg *config.Config, opts Options) model.ProviderRow {
	var views []accountView
	var defaultMissing []string
	for _, id := range accounts.ListTeamsAccountIDs(cfg) {
		acc := accounts.ResolveTeamsAccount(cfg, id)
		missing := accounts.MissingTeamsKeys(acc)
		if id == accounts.DefaultAccountID {
			defaultMissing = missing
		}
		v := accountView{
			Enabled:    acc.Enabled,
			Configured: len(missing) == 0,
			Credential: string(acc.AppPassword.Bytes()),
		}
		switch {
		case len(missing) == 0:
			v.Sources = []string{acc.AppIDSource, acc.PasswordSource, acc.TenantSource}
		case len(missing) < 3:
			v.Warning = fmt.Sprintf("partial app credentials (missing %s)", strings.Join(missing, ", "))
		}
		views = append(views, v)
	}

	setup := "missing app credentials"
	if len(defaultMissing) > 0 {
		setup = fmt.Sprintf("missing app credentials: %s", strings.Join(defaultMissing, ", "))
	}

	return classify(providerDescriptor{
		Name:        "MS Teams",
		Enabled:     cfg.Channels.MSTeams.IsEnabled(),
		Accounts:    views,
		SetupDetail: setup,
		OKDetail: func(c okContext) string {
			return fmt.Sprintf("app credentials via %s · %s · %d/%d accounts",
				c.Sources.Label, c.Hint, c.Configured, c.Enabled)
		},
	}, opts.ShowSecrets)
}
