// Package main provides the entry point for the bwporter CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-edge"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "bwporter",
	Short: "Convert password-manager CSV exports to Bitwarden CSV",
	Long: `bwporter converts a password-manager CSV export (Apple Passwords,
iCloud Keychain, Safari, and similar) into the Bitwarden CSV import format.

Input column names are auto-detected by name-based heuristics; the output
always uses the fixed ten-column Bitwarden schema.

Examples:
  # Convert to bitwarden.csv (the default output path)
  bwporter convert passwords.csv

  # Convert to a specific file
  bwporter convert passwords.csv -o vault.csv

  # Inspect the detected column mapping without converting
  bwporter preview passwords.csv`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
