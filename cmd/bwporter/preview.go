package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bwporter/internal/bitwarden"
	"bwporter/internal/fieldmap"
	"bwporter/internal/sources"
)

var previewFlags struct {
	verbose bool
}

var previewCmd = &cobra.Command{
	Use:   "preview <input-csv>",
	Short: "Preview a conversion without writing any output",
	Long: `Preview how an input CSV would convert, without writing anything.

The preview command shows the detected column mapping and a summary of how
many rows would be emitted or dropped by the empty-row filter.

Examples:
  # Inspect the detected columns
  bwporter preview passwords.csv

  # Also list the entries that would be converted
  bwporter preview passwords.csv -v`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().BoolVarP(&previewFlags.verbose, "verbose", "v", false, "List individual entries")
}

func runPreview(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	source := sources.NewCSVSource()
	if err := source.Open(inputPath); err != nil {
		return err
	}
	defer source.Close()

	entries, err := source.Read()
	if err != nil {
		if sources.IsPartialRead(err) {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			return err
		}
	}

	fmt.Printf("Input: %s (%d columns, %d entries)\n", inputPath, len(source.Headers()), len(entries))
	fmt.Println()
	printFieldMapping(source)

	records, skipped := bitwarden.Convert(entries)
	fmt.Println()
	fmt.Printf("Would emit %d rows, skip %d\n", len(records), skipped)

	if previewFlags.verbose {
		fmt.Println()
		for i, e := range entries {
			rec, ok := bitwarden.FromEntry(e)
			status := "emit"
			if !ok {
				status = "skip"
			}
			fmt.Printf("  %3d  [%s]  %-8s  %s\n", i+1, e.ID[:8], status, rec.Name)
		}
	}

	return nil
}

// printFieldMapping reports which input column resolved to each semantic
// field, in the fixed key order.
func printFieldMapping(source *sources.CSVSource) {
	fmt.Fprintln(os.Stderr, "Detected columns:")
	m := source.FieldMap()
	for _, key := range fieldmap.Keys {
		if h, ok := m[key]; ok {
			fmt.Fprintf(os.Stderr, "  %-10s <- %q\n", key, h)
		} else {
			fmt.Fprintf(os.Stderr, "  %-10s (not found)\n", key)
		}
	}
}
