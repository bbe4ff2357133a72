// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package status

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// revealThreshold is the length at or below which a revealed credential is
// printed in full. Partially revealing four characters of an eight-character
// secret would give most of it away anyway; showing it whole at least makes
// the exposure obvious.
const revealThreshold = 10

// Hint renders a credential for display. With show=false the output is an
// irreversible fingerprint: the first 8 hex characters of the SHA-256
// digest plus the length, stable across runs so "same secret as yesterday"
// can be checked without disclosure. With show=true short values are shown
// in full and longer ones as first-4…last-4. Lengths count runes.
func Hint(secret string, show bool) string {
	if strings.TrimSpace(secret) == "" {
		return "empty"
	}
	runes := []rune(secret)
	n := len(runes)
	if !show {
		sum := sha256.Sum256([]byte(secret))
		return fmt.Sprintf("sha256:%s · len %d", hex.EncodeToString(sum[:])[:8], n)
	}
	if n <= revealThreshold {
		return fmt.Sprintf("%s · len %d", secret, n)
	}
	return fmt.Sprintf("%s…%s · len %d", string(runes[:4]), string(runes[n-4:]), n)
}
