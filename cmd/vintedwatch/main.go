// Package main is the entry point for the vintedwatch server.
package main

import (
	"os"

	"github.com/tdevries/vintedwatch/cmd/vintedwatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
