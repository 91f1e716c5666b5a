package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lotcat/internal/catalog"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new auction item",
	Long: `Add a new auction item interactively.

Prompts for title, description, starting price and reserve price.
Invalid input re-prompts; prices must be positive numbers.`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenStore(cfg)
	defer db.Close()

	reader := bufio.NewReader(os.Stdin)

	title, err := promptRequired(reader, "Item title")
	if err != nil {
		opError("%v", err)
		return nil
	}
	description, err := promptRequired(reader, "Item description")
	if err != nil {
		opError("%v", err)
		return nil
	}
	startPrice, err := promptPrice(reader, "Starting price")
	if err != nil {
		opError("%v", err)
		return nil
	}
	reservePrice, err := promptPrice(reader, "Reserve price")
	if err != nil {
		opError("%v", err)
		return nil
	}

	id, err := db.InsertOne(catalog.Item{
		Title:        title,
		Description:  description,
		StartPrice:   startPrice,
		ReservePrice: reservePrice,
	})
	if err != nil {
		opError("adding item: %v", err)
		return nil
	}

	fmt.Printf("New item added successfully (id: %s)\n", id)
	return nil
}
