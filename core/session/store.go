// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

// Package session exposes read-only probes over the provider session store.
// The gateway writes session material when an account is paired; this
// package only ever inspects it, so status checks cannot disturb a live
// session. All probes degrade to "not there" / "unknown" instead of
// returning errors.
package session

import (
	"os"
	"path/filepath"
	"time"
)

// credsFile is the marker written by the pairing flow once a web session is
// established.
const credsFile = "creds.json"

// CredsPath returns where the session credentials for an account live.
func CredsPath(dir, accountID string) string {
	return filepath.Join(dir, accountID, credsFile)
}

// Exists reports whether a linked session is present for the account.
// Filesystem errors count as "no session".
func Exists(dir, accountID string) bool {
	if dir == "" || accountID == "" {
		return false
	}
	info, err := os.Stat(CredsPath(dir, accountID))
	return err == nil && !info.IsDir()
}

// Age returns how old the stored session is, based on the credential file's
// modification time. The second return is false when the age could not be
// determined.
func Age(dir, accountID string) (time.Duration, bool) {
	if dir == "" || accountID == "" {
		return 0, false
	}
	info, err := os.Stat(CredsPath(dir, accountID))
	if err != nil || info.IsDir() {
		return 0, false
	}
	age := time.Since(info.ModTime())
	if age < 0 {
		age = 0
	}
	return age, true
}
