package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bwporter/internal/bitwarden"
	"bwporter/internal/sources"
)

var convertFlags struct {
	output  string
	verbose bool
	quiet   bool
}

var convertCmd = &cobra.Command{
	Use:   "convert <input-csv>",
	Short: "Convert a password CSV export to Bitwarden CSV",
	Long: `Convert a password-manager CSV export to the Bitwarden import format.

The convert command reads one CSV file, resolves its column names onto the
semantic fields Bitwarden needs (title, URL, username, password, notes,
TOTP, folder, favorite), and writes the rows in the fixed ten-column
Bitwarden schema. Rows with no recoverable login data are dropped.

Examples:
  # Write to bitwarden.csv
  bwporter convert passwords.csv

  # Write to a chosen path
  bwporter convert passwords.csv -o vault.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFlags.output, "output", "o", "bitwarden.csv", "Output CSV path")
	convertCmd.Flags().BoolVarP(&convertFlags.verbose, "verbose", "v", false, "Verbose output")
	convertCmd.Flags().BoolVarP(&convertFlags.quiet, "quiet", "q", false, "Suppress all output except errors")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	source := sources.NewCSVSource()
	if err := source.Open(inputPath); err != nil {
		return err
	}
	defer source.Close()

	if convertFlags.verbose && !convertFlags.quiet {
		fmt.Fprintf(os.Stderr, "Reading entries from %s...\n", inputPath)
	}

	// Read everything before touching the output path, so a missing or
	// headerless input never creates or truncates the output file.
	entries, err := source.Read()
	if err != nil {
		if sources.IsPartialRead(err) {
			if !convertFlags.quiet {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		} else {
			return err
		}
	}

	records, skipped := bitwarden.Convert(entries)

	out, err := os.Create(convertFlags.output)
	if err != nil {
		return fmt.Errorf("create output %q: %w", convertFlags.output, err)
	}
	defer out.Close()

	writer := bitwarden.NewWriter(out)
	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	for _, rec := range records {
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if !convertFlags.quiet {
		fmt.Fprintf(os.Stderr, "Converted %d entries (%d skipped)\n", len(records), skipped)
		if convertFlags.verbose {
			printFieldMapping(source)
		}
		fmt.Fprintf(os.Stderr, "Written: %s\n", convertFlags.output)
	}

	return nil
}
