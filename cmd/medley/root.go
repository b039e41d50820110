package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "medley",
	Short: "Content resolution for a personal media hub",
	Long: `medley - content resolution for a personal media hub

Resolves content references like "library:series/pilot" or legacy
aliases like "hymn:2" into playable items, enriched with watch
progress and filtered by a selection strategy.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: auto-discover)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("medley {{.Version}}\n")
}
