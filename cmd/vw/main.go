// Package main is the entry point for the vw CLI.
package main

import "github.com/tdevries/vintedwatch/cmd/vw/cmd"

func main() {
	cmd.Execute()
}
