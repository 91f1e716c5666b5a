package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of text")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all auction items",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenStore(cfg)
	defer db.Close()

	items, err := db.FindAll()
	if err != nil {
		opError("listing items: %v", err)
		return nil
	}

	if jsonOutput {
		return outputJSON(items)
	}

	if len(items) == 0 {
		fmt.Println("No items in the catalog")
		return nil
	}
	fmt.Printf("%d items:\n", len(items))
	for _, item := range items {
		printItemLine(item)
		fmt.Printf("  id: %s\n", item.ID)
	}
	return nil
}
