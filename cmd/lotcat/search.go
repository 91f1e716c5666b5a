package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lotcat/internal/catalog"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of text")
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search items by title and description",
	Long: `Search the catalog's text index over titles and descriptions.

An item matching any word of the query is a hit; results are ordered by
descending relevance.

Examples:
  lotcat search surfboard
  lotcat search "paper clip"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenStore(cfg)
	defer db.Close()

	results, err := db.TextSearch(args[0])
	if errors.Is(err, catalog.ErrEmptyQuery) {
		opError("search query is required")
		return nil
	}
	if err != nil {
		opError("searching: %v", err)
		return nil
	}

	if jsonOutput {
		return outputJSON(results)
	}

	if len(results) == 0 {
		fmt.Println("No items found")
		return nil
	}
	fmt.Printf("Found %d items:\n", len(results))
	for i, r := range results {
		fmt.Printf("[%d] %.2f %s (start: $%.2f)\n",
			i+1, r.Score, truncateString(r.Title, ListTitleMaxLen), r.StartPrice)
	}
	return nil
}
