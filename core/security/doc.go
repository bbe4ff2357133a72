// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

// Package security provides lightweight secret handling helpers used to keep
// bot tokens and app passwords in memory-safe wrappers and to centralize
// redaction without pulling heavy crypto dependencies into all packages.
package security
