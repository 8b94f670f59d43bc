// Package main provides the docrank command line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const app = "docrank"

var (
	flagDebug bool
	flagJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "Ranks document sections against a persona and a job-to-be-done, with extractive summaries",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "json format for logging")
}

func main() {
	// Load .env if present (API keys for remote embedders).
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
