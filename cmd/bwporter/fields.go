package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bwporter/internal/fieldmap"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List recognized input column names",
	Long: `List the semantic fields and the input column names recognized for each.

Column matching is case-insensitive and ignores spaces, underscores, and
hyphens, so "Website URL", "website_url" and "WEBSITE-URL" are equivalent.
The first name listed for a field has the highest priority when several
candidate columns are present.

Examples:
  # List all recognized column names
  bwporter fields`,
	Run: runFields,
}

func runFields(cmd *cobra.Command, args []string) {
	fmt.Println("Recognized input columns per field (highest priority first):")
	fmt.Println()

	for _, key := range fieldmap.Keys {
		fmt.Printf("  %-10s %s\n", key, strings.Join(fieldmap.Synonyms(key), ", "))
	}

	fmt.Println()
	fmt.Println("Matching ignores case, spaces, underscores, and hyphens.")
}
