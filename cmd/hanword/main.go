// Package main is the entry point for the hanword CLI.
package main

import (
	"os"

	"hanword/cmd/hanword/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
