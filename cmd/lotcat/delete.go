package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lotcat/internal/catalog"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an auction item",
	Long: `Delete an auction item interactively.

Lists the catalog, asks which item to delete (with a cancel option), and
requires confirmation before removing anything. Cancelling or declining
leaves the catalog unchanged.`,
	Args: cobra.NoArgs,
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenStore(cfg)
	defer db.Close()

	items, err := db.FindAll()
	if err != nil {
		opError("listing items: %v", err)
		return nil
	}
	if len(items) == 0 {
		fmt.Println("No items found in the catalog to delete")
		return nil
	}

	target, confirmed, err := chooseDeletion(bufio.NewReader(os.Stdin), items)
	if err != nil {
		opError("%v", err)
		return nil
	}
	if !confirmed {
		return nil
	}

	deleted, err := db.DeleteByID(target.ID)
	if err != nil {
		opError("deleting item: %v", err)
		return nil
	}
	if !deleted {
		opError("item %q no longer exists", target.ID)
		return nil
	}

	fmt.Println("Item deleted successfully")
	return nil
}

// chooseDeletion lists the catalog, asks which item to delete (0 cancels)
// and for confirmation. Reports the chosen item and whether deletion should
// proceed; cancelling or declining means no deletion.
func chooseDeletion(r *bufio.Reader, items []catalog.Item) (catalog.Item, bool, error) {
	for i, item := range items {
		fmt.Printf("%3d. %s (start: $%.2f, reserve: $%.2f)\n",
			i+1, truncateString(item.Title, ListTitleMaxLen), item.StartPrice, item.ReservePrice)
	}
	fmt.Printf("%3d. Cancel - don't delete anything\n", 0)

	selection, err := promptSelection(r, len(items))
	if err != nil {
		return catalog.Item{}, false, err
	}
	if selection == 0 {
		fmt.Println("Operation cancelled")
		return catalog.Item{}, false, nil
	}
	target := items[selection-1]

	confirmed, err := promptConfirm(r, fmt.Sprintf("Are you sure you want to delete %q?", target.Title))
	if err != nil {
		return catalog.Item{}, false, err
	}
	if !confirmed {
		fmt.Println("Deletion cancelled")
		return catalog.Item{}, false, nil
	}
	return target, true, nil
}

// promptSelection asks for a number between 0 (cancel) and max, re-prompting
// on anything else.
func promptSelection(r *bufio.Reader, max int) (int, error) {
	for {
		fmt.Printf("Select an item to delete (0-%d): ", max)
		line, err := r.ReadString('\n')
		value := strings.TrimSpace(line)
		if value != "" {
			n, perr := strconv.Atoi(value)
			if perr == nil && n >= 0 && n <= max {
				return n, nil
			}
		}
		if err != nil {
			return 0, fmt.Errorf("reading input: %w", err)
		}
		fmt.Printf("Enter a number between 0 and %d\n", max)
	}
}
