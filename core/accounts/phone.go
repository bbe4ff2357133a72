// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package accounts

import "strings"

// NormalizePhone renders a phone number in a canonical E.164-ish form for
// display: digits only, one leading plus. Used for allow-list output; it is
// not a validator.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	return "+" + digits
}
