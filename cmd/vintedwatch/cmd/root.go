// Package cmd implements the CLI commands for the vintedwatch server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "vintedwatch",
	Short: "Watch Vinted searches and notify about new listings",
	Long: "A service that polls Vinted searches on behalf of watch subscriptions,\n" +
		"detects listings not seen before, and delivers exactly one notification\n" +
		"per watch and listing to Discord or a webhook.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
