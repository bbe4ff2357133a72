// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package accounts

import (
	"github.com/courierhq/courier/core/model"
	"github.com/courierhq/courier/core/session"
	"github.com/courierhq/courier/internal/config"
)

// ListWhatsAppAccountIDs returns the WhatsApp account ids in deterministic
// order.
func ListWhatsAppAccountIDs(cfg *config.Config) []string {
	return accountIDs(cfg.Channels.WhatsApp.Accounts)
}

// ResolveWhatsAppAccount resolves one WhatsApp account, probing the session
// store for a linked web session. Probe failures read as "not linked".
func ResolveWhatsAppAccount(cfg *config.Config, id string) model.WhatsAppAccount {
	ch := cfg.Channels.WhatsApp
	acc := model.WhatsAppAccount{
		ID:             id,
		Name:           ch.Name,
		Enabled:        ch.IsEnabled(),
		SelfChat:       ch.SelfChat,
		DMPolicy:       ch.DMPolicy,
		AllowFrom:      ch.AllowFrom,
		SessionAgeDays: -1,
	}
	if ov, ok := ch.Accounts[id]; ok {
		if ov.Enabled != nil {
			acc.Enabled = *ov.Enabled
		}
		if ov.Name != "" {
			acc.Name = ov.Name
		}
		if ov.DMPolicy != "" {
			acc.DMPolicy = ov.DMPolicy
		}
		if ov.SelfChat != nil {
			acc.SelfChat = *ov.SelfChat
		}
		if len(ov.AllowFrom) > 0 {
			acc.AllowFrom = ov.AllowFrom
		}
	}
	if acc.Name == "" {
		acc.Name = id
	}
	if acc.DMPolicy == "" {
		acc.DMPolicy = config.DefaultDMPolicy
	}

	dir := cfg.SessionDirOrDefault()
	acc.Linked = session.Exists(dir, id)
	if age, ok := session.Age(dir, id); ok {
		acc.SessionAgeDays = int(age.Hours() / 24)
	}
	return acc
}
