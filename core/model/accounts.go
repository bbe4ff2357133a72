// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "github.com/courierhq/courier/core/security"

// WhatsAppAccount is a resolved WhatsApp identity. Linked reflects whether a
// web session exists in the session store; SessionAgeDays is -1 when the age
// could not be determined.
type WhatsAppAccount struct {
	ID             string
	Name           string
	Enabled        bool
	Linked         bool
	SessionAgeDays int
	SelfChat       bool
	DMPolicy       string
	AllowFrom      []string
}

// TelegramAccount is a resolved Telegram bot identity.
type TelegramAccount struct {
	ID          string
	Enabled     bool
	BotToken    security.Secret
	TokenSource string
	// TokenFile is the declared token file path, if any. It is recorded even
	// when the token was obtained elsewhere so the status layer can flag a
	// declared-but-missing file.
	TokenFile string
}

// DiscordAccount is a resolved Discord bot identity.
type DiscordAccount struct {
	ID          string
	Enabled     bool
	BotToken    security.Secret
	TokenSource string
}

// SlackAccount is a resolved Slack app identity. Socket-mode operation needs
// both the bot token (xoxb-) and the app-level token (xapp-).
type SlackAccount struct {
	ID             string
	Enabled        bool
	BotToken       security.Secret
	BotTokenSource string
	AppToken       security.Secret
	AppTokenSource string
}

// SignalAccount is a resolved Signal identity. Configured is a readiness
// flag owned by the resolver; the status layer treats it as opaque.
type SignalAccount struct {
	ID         string
	Enabled    bool
	Configured bool
	Source     string
}

// IMessageAccount is a resolved iMessage identity. Configured is a readiness
// flag owned by the resolver; the status layer treats it as opaque.
type IMessageAccount struct {
	ID         string
	Enabled    bool
	Configured bool
	Source     string
}

// TeamsAccount is a resolved MS Teams app identity. Each credential field
// carries its own source tag since config and environment can mix.
type TeamsAccount struct {
	ID             string
	Enabled        bool
	AppID          string
	AppIDSource    string
	AppPassword    security.Secret
	PasswordSource string
	TenantID       string
	TenantSource   string
}
