// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package accounts

import (
	"github.com/courierhq/courier/core/model"
	"github.com/courierhq/courier/core/security"
	"github.com/courierhq/courier/internal/config"
)

// Environment fallbacks for the MS Teams app registration.
const (
	EnvTeamsAppID       = "MSTEAMS_APP_ID"
	EnvTeamsAppPassword = "MSTEAMS_APP_PASSWORD"
	EnvTeamsTenantID    = "MSTEAMS_TENANT_ID"
)

// ListTeamsAccountIDs returns the MS Teams account ids in deterministic
// order.
func ListTeamsAccountIDs(cfg *config.Config) []string {
	return accountIDs(cfg.Channels.MSTeams.Accounts)
}

// ResolveTeamsAccount resolves one MS Teams app account. Each credential
// field is taken from config first, then from its MSTEAMS_* environment
// variable.
func ResolveTeamsAccount(cfg *config.Config, id string) model.TeamsAccount {
	ch := cfg.Channels.MSTeams
	acc := model.TeamsAccount{ID: id, Enabled: ch.IsEnabled()}

	appID, password, tenant := ch.AppID, ch.AppPassword, ch.TenantID
	if ov, ok := ch.Accounts[id]; ok {
		if ov.Enabled != nil {
			acc.Enabled = *ov.Enabled
		}
		if ov.AppID != "" {
			appID = ov.AppID
		}
		if ov.AppPassword != "" {
			password = ov.AppPassword
		}
		if ov.TenantID != "" {
			tenant = ov.TenantID
		}
	}

	acc.AppID, acc.AppIDSource = fieldOrEnv(appID, EnvTeamsAppID)
	if pw, src := fieldOrEnv(password, EnvTeamsAppPassword); pw != "" {
		acc.AppPassword = security.FromString(pw)
		acc.PasswordSource = src
	}
	acc.TenantID, acc.TenantSource = fieldOrEnv(tenant, EnvTeamsTenantID)
	return acc
}

// TeamsCredentialsConfigured reports whether the default MS Teams account
// carries a complete app registration (app id, app password and tenant id),
// consulting config first and the MSTEAMS_* environment as fallback.
func TeamsCredentialsConfigured(cfg *config.Config) bool {
	acc := ResolveTeamsAccount(cfg, DefaultAccountID)
	return acc.AppID != "" && !acc.AppPassword.IsZero() && acc.TenantID != ""
}

// MissingTeamsKeys names the environment keys for the credential fields the
// account is missing, in a fixed order.
func MissingTeamsKeys(acc model.TeamsAccount) []string {
	var missing []string
	if acc.AppID == "" {
		missing = append(missing, EnvTeamsAppID)
	}
	if acc.AppPassword.IsZero() {
		missing = append(missing, EnvTeamsAppPassword)
	}
	if acc.TenantID == "" {
		missing = append(missing, EnvTeamsTenantID)
	}
	return missing
}
