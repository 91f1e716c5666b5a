package main

import (
	"encoding/json"
	"fmt"
	"os"

	"lotcat/internal/catalog"
)

// ListTitleMaxLen bounds titles in list output so prices stay aligned.
const ListTitleMaxLen = 50

// jsonOutput switches list/search output to JSON for scripting.
var jsonOutput bool

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// opError prints an operation-level error without failing the process.
func opError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// exitWithError prints an error to stderr and exits with the given code.
func exitWithError(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(code)
}

func printItemLine(item catalog.Item) {
	fmt.Printf("- %s (start: $%.2f, reserve: $%.2f)\n",
		truncateString(item.Title, ListTitleMaxLen), item.StartPrice, item.ReservePrice)
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
