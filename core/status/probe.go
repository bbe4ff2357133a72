// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package status

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// Presence is the outcome of a best-effort existence probe. Unknown covers
// both "not applicable" (no path declared) and "could not tell" (the stat
// itself failed); neither may abort report generation.
type Presence int

const (
	PresenceUnknown Presence = iota
	PresenceAbsent
	PresencePresent
)

// Known reports whether the probe produced a definite answer.
func (p Presence) Known() bool { return p != PresenceUnknown }

// String returns the probe outcome for logs and tests.
func (p Presence) String() string {
	switch p {
	case PresencePresent:
		return "present"
	case PresenceAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// ProbePath checks whether a configured file path exists. A blank path is
// not applicable; stat errors other than "not exist" (permissions, invalid
// path) collapse to Unknown rather than propagating.
func ProbePath(path string) Presence {
	if strings.TrimSpace(path) == "" {
		return PresenceUnknown
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return PresenceAbsent
		}
		return PresenceUnknown
	}
	return PresencePresent
}
