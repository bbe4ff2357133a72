// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

// Package accounts resolves per-provider account records from the loaded
// configuration. Resolution happens once at this boundary: defaults are
// applied (accounts are enabled unless disabled, DM policy falls back to
// pairing), credentials are located across config values, token files,
// environment variables and the OS keyring, and every credential is tagged
// with the source it was read from. The status layer consumes the resolved
// records without re-deriving any of this.
package accounts
