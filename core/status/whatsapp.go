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

// maxAllowFromNotes caps how many allow-list numbers appear in the account
// notes column.
const maxAllowFromNotes = 3

func whatsappStatus(cfg *config.Config, opts Options) (model.ProviderRow, []model.DetailTable) {
	enabled := cfg.Channels.WhatsApp.IsEnabled()

	var resolved []model.WhatsAppAccount
	for _, id := range accounts.ListWhatsAppAccountIDs(cfg) {
		resolved = append(resolved, accounts.ResolveWhatsAppAccount(cfg, id))
	}

	views := make([]accountView, len(resolved))
	for i, acc := range resolved {
		views[i] = accountView{
			Enabled:    acc.Enabled,
			Configured: acc.Linked,
		}
	}

	row := classify(providerDescriptor{
		Name:        "WhatsApp",
		Enabled:     enabled,
		Accounts:    views,
		SetupDetail: "no linked session (scan the QR pairing code to link this device)",
		OKDetail: func(c okContext) string {
			return fmt.Sprintf("linked · %d/%d accounts", c.Configured, c.Enabled)
		},
	}, opts.ShowSecrets)

	if !enabled {
		return row, nil
	}
	table := whatsappAccountTable(resolved)
	if len(table.Rows) == 0 {
		return row, nil
	}
	return row, []model.DetailTable{table}
}

// whatsappAccountTable enumerates every resolved account with its status and
// a notes column: disabled, self-chat, the DM admission policy, up to three
// normalized allow-list numbers, and the session age for linked accounts,
// in that order.
func whatsappAccountTable(resolved []model.WhatsAppAccount) model.DetailTable {
	table := model.DetailTable{
		Title:   "WhatsApp accounts",
		Columns: []string{"Account", "Status", "Notes"},
	}
	for _, acc := range resolved {
		status := "OFF"
		if acc.Enabled && acc.Linked {
			status = "OK"
		}
		var notes []string
		if !acc.Enabled {
			notes = append(notes, "disabled")
		}
		if acc.SelfChat {
			notes = append(notes, "self-chat")
		}
		notes = append(notes, "dm:"+acc.DMPolicy)
		// The cap counts rendered numbers; entries the normalizer rejects do
		// not consume a slot.
		added := 0
		for _, raw := range acc.AllowFrom {
			if added >= maxAllowFromNotes {
				break
			}
			if n := accounts.NormalizePhone(raw); n != "" {
				notes = append(notes, n)
				added++
			}
		}
		if acc.Linked && acc.SessionAgeDays >= 0 {
			notes = append(notes, fmt.Sprintf("session:%dd", acc.SessionAgeDays))
		}
		table.Rows = append(table.Rows, map[string]string{
			"Account": acc.Name,
			"Status":  status,
			"Notes":   strings.Join(notes, ", "),
		})
	}
	return table
}
