package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runegrid/runegrid/internal/search"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search characters without opening the explorer",
	Long: `Search the character index by glyph, name, hex or decimal code point
and print the matches, exact matches first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	results := search.NewIndex().Search(query, nil)
	if len(results) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no matches for %q\n", query)
		return nil
	}

	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	out := cmd.OutOrStdout()
	for _, rec := range results {
		name := rec.CommonName
		if name == "" {
			name = rec.Name
		}
		fmt.Fprintf(out, "%s  %-8s %-40s %s\n", rec.Glyph, rec.Hex, name, rec.CategoryName)
	}
	return nil
}
