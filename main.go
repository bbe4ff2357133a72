// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Courier.
//
// Usage:
//
//	go run . [flags]
//	./courier [flags]
//
// This launches the Courier CLI. See --help for options.
package main

import (
	"log"
	"os"

	"github.com/courierhq/courier/ui/cli"
)

// main is the entrypoint for the Courier CLI.
func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("Courier CLI error: %v", err)
		os.Exit(1)
	}
}
