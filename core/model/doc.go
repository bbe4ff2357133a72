// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the data shapes shared across Courier: resolved
// per-provider accounts and the status report structures. These are plain
// structs with no behavior so the accounts, status and CLI layers can
// exchange them without depending on each other.
package model
