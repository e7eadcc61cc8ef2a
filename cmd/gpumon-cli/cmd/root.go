package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "gpumon-cli",
	Short: "gpumon-cli pokes at the GPU stock monitor's scrape pipeline.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "Path to the monitor configuration file.")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
