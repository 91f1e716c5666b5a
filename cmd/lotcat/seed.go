package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lotcat/internal/catalog"
)

func init() {
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the catalog with sample auction items",
	Long: `Seed the catalog with the built-in sample auction items.

This is a destructive replace-all: every existing item is removed first,
then the sample set is inserted and the text index is rebuilt. Running
seed twice leaves the same sample set, not duplicates.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenStore(cfg)
	defer db.Close()

	// Deliberately not atomic with the insert below: a failure in between
	// leaves an empty catalog, which the next seed repairs.
	if _, err := db.DeleteAll(); err != nil {
		opError("clearing catalog: %v", err)
		return nil
	}

	items := catalog.SeedItems()
	count, err := db.InsertMany(items)
	if err != nil {
		opError("seeding catalog: %v", err)
		return nil
	}

	if err := db.RebuildTextIndex(); err != nil {
		opError("rebuilding text index: %v", err)
		return nil
	}

	fmt.Printf("Catalog seeded with %d items:\n", count)
	for _, item := range items {
		printItemLine(item)
	}
	fmt.Println("Text index rebuilt for title and description fields")
	return nil
}
