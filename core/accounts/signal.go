// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package accounts

import (
	"strings"

	"github.com/courierhq/courier/core/model"
	"github.com/courierhq/courier/internal/config"
)

// ListSignalAccountIDs returns the Signal account ids in deterministic order.
func ListSignalAccountIDs(cfg *config.Config) []string {
	return accountIDs(cfg.Channels.Signal.Accounts)
}

// ResolveSignalAccount resolves one Signal account. The readiness flag is
// owned here: an account is configured once a registered number is present.
func ResolveSignalAccount(cfg *config.Config, id string) model.SignalAccount {
	ch := cfg.Channels.Signal
	acc := model.SignalAccount{ID: id, Enabled: ch.IsEnabled()}

	number := ch.Account
	if ov, ok := ch.Accounts[id]; ok {
		if ov.Enabled != nil {
			acc.Enabled = *ov.Enabled
		}
		if ov.Account != "" {
			number = ov.Account
		}
	}

	if strings.TrimSpace(number) != "" {
		acc.Configured = true
		acc.Source = "config"
	}
	return acc
}
