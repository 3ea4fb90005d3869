// Package main provides the entry point for the resume_site CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_site",
	Short: "Static résumé site generator",
	Long: "resume_site renders a résumé record into a single self-contained HTML page " +
		"with every image, video and stylesheet embedded inline.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
