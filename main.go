// Copyright (c) 2026 Keyspect Team
// Keyspect - SSH public key inspection tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Keyspect.
//
// Usage:
//
//	go run . [flags]
//	./keyspect [flags]
//
// This launches the Keyspect CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/keyspect/internal/logging"
	"github.com/toeirei/keyspect/ui/cli"
)

// main is the entrypoint for the Keyspect CLI.
func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
