// SPDX-License-Identifier: MIT
// Package main is the entry point for the poet CLI.
package main

import (
	"os"

	"github.com/saad1551/sclab9/cmd/poet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
