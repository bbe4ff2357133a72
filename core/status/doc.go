// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

// Package status builds the point-in-time diagnostic report behind
// `courier status`. Given a loaded configuration it classifies every
// messaging channel into ok/setup/warn/off with a human-readable detail,
// summarizes where credentials came from, and renders secret material at
// two fidelity levels (fingerprint vs. partial reveal).
//
// Everything here is read-only and recomputed from scratch per report.
// Probes that fail degrade to neutral values; building a report cannot
// return an error.
package status
