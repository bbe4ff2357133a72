// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package accounts

import (
	"strings"

	"github.com/courierhq/courier/core/model"
	"github.com/courierhq/courier/internal/config"
)

// ListIMessageAccountIDs returns the iMessage account ids in deterministic
// order.
func ListIMessageAccountIDs(cfg *config.Config) []string {
	return accountIDs(cfg.Channels.IMessage.Accounts)
}

// ResolveIMessageAccount resolves one iMessage account. The readiness flag
// is owned here: an account is configured once a helper binary path is
// declared.
func ResolveIMessageAccount(cfg *config.Config, id string) model.IMessageAccount {
	ch := cfg.Channels.IMessage
	acc := model.IMessageAccount{ID: id, Enabled: ch.IsEnabled()}

	cliPath := ch.CLIPath
	if ov, ok := ch.Accounts[id]; ok {
		if ov.Enabled != nil {
			acc.Enabled = *ov.Enabled
		}
		if ov.CLIPath != "" {
			cliPath = ov.CLIPath
		}
	}

	if strings.TrimSpace(cliPath) != "" {
		acc.Configured = true
		acc.Source = "config"
	}
	return acc
}
