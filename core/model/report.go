// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package model

// State classifies how usable a provider channel currently is.
type State string

const (
	// StateOK means at least one enabled account is fully configured.
	StateOK State = "ok"
	// StateSetup means the channel is enabled but missing configuration.
	StateSetup State = "setup"
	// StateWarn means an enabled account carries inconsistent configuration.
	StateWarn State = "warn"
	// StateOff means the channel is explicitly disabled.
	StateOff State = "off"
)

// ProviderRow is one line of the status report. A row is StateOff exactly
// when Enabled is false.
type ProviderRow struct {
	Provider string `json:"provider"`
	Enabled  bool   `json:"enabled"`
	State    State  `json:"state"`
	Detail   string `json:"detail"`
}

// DetailTable is an optional drill-down table attached to the report for
// providers with per-account detail worth showing.
type DetailTable struct {
	Title   string              `json:"title"`
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

// Report is the full point-in-time status snapshot. Row order is fixed and
// detail tables appear only when they have at least one row.
type Report struct {
	Rows    []ProviderRow `json:"rows"`
	Details []DetailTable `json:"details,omitempty"`
}

// SourceSummary is a compact rendering of where credential values were read
// from across a set of accounts. Label joins the distinct tags with "+",
// most frequent first; Parts holds the distinct tags in the same order.
type SourceSummary struct {
	Label string   `json:"label"`
	Parts []string `json:"parts"`
}
