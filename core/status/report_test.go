// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package status

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/courierhq/courier/core/model"
	"github.com/courierhq/courier/internal/config"
)

func boolPtr(b bool) *bool { return &b }

// baseConfig returns a config with an isolated session directory and the
// ambient credential environment cleared, so results do not depend on the
// machine running the tests.
func baseConfig(t *testing.T) *config.Config {
	t.Helper()
	for _, v := range []string{
		"TELEGRAM_BOT_TOKEN", "DISCORD_BOT_TOKEN",
		"SLACK_BOT_TOKEN", "SLACK_APP_TOKEN",
		"MSTEAMS_APP_ID", "MSTEAMS_APP_PASSWORD", "MSTEAMS_TENANT_ID",
	} {
		t.Setenv(v, "")
	}
	return &config.Config{SessionDir: t.TempDir()}
}

func rowFor(t *testing.T, rep model.Report, provider string) model.ProviderRow {
	t.Helper()
	for _, r := range rep.Rows {
		if r.Provider == provider {
			return r
		}
	}
	t.Fatalf("no row for provider %q", provider)
	return model.ProviderRow{}
}

func TestBuildReportRowOrder(t *testing.T) {
	rep := BuildReport(baseConfig(t), Options{})

	want := []string{"WhatsApp", "Telegram", "Discord", "Slack", "Signal", "iMessage", "MS Teams"}
	if len(rep.Rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rep.Rows), len(want))
	}
	for i, name := range want {
		if rep.Rows[i].Provider != name {
			t.Errorf("row[%d].Provider = %q, want %q", i, rep.Rows[i].Provider, name)
		}
	}
}

func TestBuildReportPristineConfigNeedsSetup(t *testing.T) {
	rep := BuildReport(baseConfig(t), Options{})

	for _, r := range rep.Rows {
		if !r.Enabled {
			t.Errorf("%s: enabled = false, want true by default", r.Provider)
		}
		if r.State != model.StateSetup {
			t.Errorf("%s: state = %v, want %v", r.Provider, r.State, model.StateSetup)
		}
	}
}

func TestBuildReportDisabledProviders(t *testing.T) {
	cfg := baseConfig(t)
	off := boolPtr(false)
	cfg.Channels.WhatsApp.Enabled = off
	cfg.Channels.Telegram.Enabled = off
	cfg.Channels.Discord.Enabled = off
	cfg.Channels.Slack.Enabled = off
	cfg.Channels.Signal.Enabled = off
	cfg.Channels.IMessage.Enabled = off
	cfg.Channels.MSTeams.Enabled = off

	rep := BuildReport(cfg, Options{})
	for _, r := range rep.Rows {
		if r.Enabled {
			t.Errorf("%s: enabled = true, want false", r.Provider)
		}
		if r.State != model.StateOff {
			t.Errorf("%s: state = %v, want %v", r.Provider, r.State, model.StateOff)
		}
		if r.Detail != "disabled" {
			t.Errorf("%s: detail = %q, want %q", r.Provider, r.Detail, "disabled")
		}
	}
	if len(rep.Details) != 0 {
		t.Errorf("disabled providers must not emit detail tables, got %d", len(rep.Details))
	}
}

func TestBuildReportTelegramConfigured(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Channels.Telegram.BotToken = "123456:AAE-abcdefghij"

	rep := BuildReport(cfg, Options{})
	row := rowFor(t, rep, "Telegram")
	if row.State != model.StateOK {
		t.Fatalf("state = %v, want %v", row.State, model.StateOK)
	}
	want := fmt.Sprintf("token via config · %s · 1/1 accounts", Hint("123456:AAE-abcdefghij", false))
	if row.Detail != want {
		t.Errorf("detail = %q, want %q", row.Detail, want)
	}
}

func TestBuildReportTelegramEnvToken(t *testing.T) {
	cfg := baseConfig(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123456:from-the-env")

	row := rowFor(t, BuildReport(cfg, Options{}), "Telegram")
	if row.State != model.StateOK {
		t.Fatalf("state = %v, want %v", row.State, model.StateOK)
	}
	if !strings.HasPrefix(row.Detail, "token via env:TELEGRAM_BOT_TOKEN · ") {
		t.Errorf("detail = %q, want env source label", row.Detail)
	}
}

func TestBuildReportTelegramTokenFileMissing(t *testing.T) {
	cfg := baseConfig(t)
	missing := filepath.Join(t.TempDir(), "token.txt")
	cfg.Channels.Telegram.BotToken = "123456:present-anyway"
	cfg.Channels.Telegram.TokenFile = missing

	row := rowFor(t, BuildReport(cfg, Options{}), "Telegram")
	if row.State != model.StateWarn {
		t.Fatalf("state = %v, want %v", row.State, model.StateWarn)
	}
	want := fmt.Sprintf("token file missing (telegram.tokenFile: %s)", missing)
	if row.Detail != want {
		t.Errorf("detail = %q, want %q", row.Detail, want)
	}
}

func TestBuildReportTelegramTokenFilePresent(t *testing.T) {
	cfg := baseConfig(t)
	file := filepath.Join(t.TempDir(), "token.txt")
	if err := os.WriteFile(file, []byte("123456:file-token\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg.Channels.Telegram.TokenFile = file

	row := rowFor(t, BuildReport(cfg, Options{}), "Telegram")
	if row.State != model.StateOK {
		t.Fatalf("state = %v, want %v (detail %q)", row.State, model.StateOK, row.Detail)
	}
	if !strings.HasPrefix(row.Detail, "token via telegram.tokenFile · ") {
		t.Errorf("detail = %q, want token-file source label", row.Detail)
	}
}

func TestBuildReportSlackPartialTokens(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Channels.Slack.BotToken = "xoxb-1234"

	row := rowFor(t, BuildReport(cfg, Options{}), "Slack")
	if row.State != model.StateWarn {
		t.Fatalf("state = %v, want %v", row.State, model.StateWarn)
	}
	if want := "partial tokens (bot token present, app token missing)"; row.Detail != want {
		t.Errorf("detail = %q, want %q", row.Detail, want)
	}

	cfg2 := baseConfig(t)
	cfg2.Channels.Slack.AppToken = "xapp-1234"
	row2 := rowFor(t, BuildReport(cfg2, Options{}), "Slack")
	if want := "partial tokens (app token present, bot token missing)"; row2.Detail != want {
		t.Errorf("detail = %q, want %q", row2.Detail, want)
	}
}

func TestBuildReportSlackBothTokens(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Channels.Slack.BotToken = "xoxb-1234"
	cfg.Channels.Slack.AppToken = "xapp-5678"

	row := rowFor(t, BuildReport(cfg, Options{}), "Slack")
	if row.State != model.StateOK {
		t.Fatalf("state = %v, want %v (detail %q)", row.State, model.StateOK, row.Detail)
	}
	if !strings.HasPrefix(row.Detail, "tokens via config×2 · bot ") {
		t.Errorf("detail = %q, want combined config source label", row.Detail)
	}
	if !strings.HasSuffix(row.Detail, " · 1/1 accounts") {
		t.Errorf("detail = %q, want account counts suffix", row.Detail)
	}
}

func TestBuildReportTeamsSetupListsMissingKeys(t *testing.T) {
	row := rowFor(t, BuildReport(baseConfig(t), Options{}), "MS Teams")
	if row.State != model.StateSetup {
		t.Fatalf("state = %v, want %v", row.State, model.StateSetup)
	}
	want := "missing app credentials: MSTEAMS_APP_ID, MSTEAMS_APP_PASSWORD, MSTEAMS_TENANT_ID"
	if row.Detail != want {
		t.Errorf("detail = %q, want %q", row.Detail, want)
	}
}

func TestBuildReportTeamsPartialCredentials(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Channels.MSTeams.AppID = "00000000-0000-0000-0000-000000000000"
	cfg.Channels.MSTeams.AppPassword = "s3cr3t-password"

	row := rowFor(t, BuildReport(cfg, Options{}), "MS Teams")
	if row.State != model.StateWarn {
		t.Fatalf("state = %v, want %v", row.State, model.StateWarn)
	}
	if want := "partial app credentials (missing MSTEAMS_TENANT_ID)"; row.Detail != want {
		t.Errorf("detail = %q, want %q", row.Detail, want)
	}
}

func TestBuildReportTeamsEnvFallback(t *testing.T) {
	cfg := baseConfig(t)
	t.Setenv("MSTEAMS_APP_ID", "app-id")
	t.Setenv("MSTEAMS_APP_PASSWORD", "app-pass")
	t.Setenv("MSTEAMS_TENANT_ID", "tenant")

	row := rowFor(t, BuildReport(cfg, Options{}), "MS Teams")
	if row.State != model.StateOK {
		t.Fatalf("state = %v, want %v (detail %q)", row.State, model.StateOK, row.Detail)
	}
	if !strings.Contains(row.Detail, "env:MSTEAMS_APP_ID") {
		t.Errorf("detail = %q, want env source labels", row.Detail)
	}
}

func TestBuildReportWhatsAppLinked(t *testing.T) {
	cfg := baseConfig(t)
	sess := filepath.Join(cfg.SessionDir, "default")
	if err := os.MkdirAll(sess, 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sess, "creds.json"), []byte("{}"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rep := BuildReport(cfg, Options{})
	row := rowFor(t, rep, "WhatsApp")
	if row.State != model.StateOK {
		t.Fatalf("state = %v, want %v (detail %q)", row.State, model.StateOK, row.Detail)
	}
	if want := "linked · 1/1 accounts"; row.Detail != want {
		t.Errorf("detail = %q, want %q", row.Detail, want)
	}
}

func TestBuildReportWhatsAppAccountTable(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Channels.WhatsApp.SelfChat = true
	// The leading junk entry normalizes to nothing and must not use up one
	// of the three number slots.
	cfg.Channels.WhatsApp.AllowFrom = []string{"not a number", "+49 171 1234567", "0172-2345678", "+1 (555) 000-1111", "+44 20 7946 0000"}
	cfg.Channels.WhatsApp.Accounts = map[string]config.WhatsAppAccountConfig{
		"work": {Enabled: boolPtr(false), Name: "Work phone"},
	}

	rep := BuildReport(cfg, Options{})
	if len(rep.Details) != 1 {
		t.Fatalf("got %d detail tables, want 1", len(rep.Details))
	}
	table := rep.Details[0]
	if table.Title != "WhatsApp accounts" {
		t.Errorf("title = %q, want %q", table.Title, "WhatsApp accounts")
	}
	if want := []string{"Account", "Status", "Notes"}; !reflect.DeepEqual(table.Columns, want) {
		t.Errorf("columns = %v, want %v", table.Columns, want)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("got %d table rows, want 2", len(table.Rows))
	}

	def := table.Rows[0]
	if def["Account"] != "default" {
		t.Errorf("row[0].Account = %q, want %q", def["Account"], "default")
	}
	if def["Status"] != "OFF" {
		t.Errorf("row[0].Status = %q, want OFF for an unlinked account", def["Status"])
	}
	// self-chat before the policy tag, then at most three normalized numbers.
	if want := "self-chat, dm:pairing, +491711234567, +01722345678, +15550001111"; def["Notes"] != want {
		t.Errorf("row[0].Notes = %q, want %q", def["Notes"], want)
	}

	work := table.Rows[1]
	if work["Account"] != "Work phone" {
		t.Errorf("row[1].Account = %q, want the override name", work["Account"])
	}
	if !strings.HasPrefix(work["Notes"], "disabled, ") {
		t.Errorf("row[1].Notes = %q, want leading disabled marker", work["Notes"])
	}
}

func TestBuildReportWhatsAppTableSessionAge(t *testing.T) {
	cfg := baseConfig(t)
	path := filepath.Join(cfg.SessionDir, "default", "creds.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	old := time.Now().Add(-72 * time.Hour)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	rep := BuildReport(cfg, Options{})
	if len(rep.Details) != 1 {
		t.Fatalf("got %d detail tables, want 1", len(rep.Details))
	}
	row := rep.Details[0].Rows[0]
	if row["Status"] != "OK" {
		t.Errorf("Status = %q, want OK for a linked account", row["Status"])
	}
	if !strings.Contains(row["Notes"], "session:3d") {
		t.Errorf("Notes = %q, want the session age", row["Notes"])
	}
}

func TestBuildReportNoZeroDenominator(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Channels.Telegram.BotToken = "123456:tok"
	cfg.Channels.Telegram.Accounts = map[string]config.TelegramAccountConfig{
		"default": {Enabled: boolPtr(false)},
	}

	rep := BuildReport(cfg, Options{})
	for _, r := range rep.Rows {
		if strings.Contains(r.Detail, "/0 ") || strings.HasSuffix(r.Detail, "/0") {
			t.Errorf("%s: detail %q renders a zero denominator", r.Provider, r.Detail)
		}
	}
}

func TestBuildReportDeterministic(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Channels.Telegram.BotToken = "123456:tok"
	cfg.Channels.Slack.BotToken = "xoxb-1"
	cfg.Channels.MSTeams.Enabled = boolPtr(false)

	a := BuildReport(cfg, Options{})
	b := BuildReport(cfg, Options{})
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two builds over the same config differ")
	}

	ja, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	jb, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(ja) != string(jb) {
		t.Fatal("JSON encodings of identical reports differ")
	}
}
