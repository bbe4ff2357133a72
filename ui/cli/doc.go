// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the Courier command-line interface: the status
// view over the configured messaging channels and configuration
// housekeeping commands.
package cli
