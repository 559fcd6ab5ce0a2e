// Package main is the entry point for the forecast CLI.
package main

import (
	"os"

	"charter-forecast/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
