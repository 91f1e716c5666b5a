// Package main provides the lotcat CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lotcat/internal/config"
	"lotcat/internal/storage"
)

// Version is set at build time via ldflags
var Version = "dev"

// dbPathFlag overrides the configured database path.
var dbPathFlag string

func main() {
	// No subcommand prints help rather than an error
	if len(os.Args) == 1 {
		rootCmd.Help()
		os.Exit(ExitSuccess)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lotcat",
	Short: "Auction item catalog manager",
	Long: `lotcat manages a catalog of auction items.

The catalog is a single SQLite database with a full-text index over item
titles and descriptions. Manage it from the shell:

  - seed the catalog with sample items (destructive replace-all)
  - add an item interactively
  - delete an item interactively, with confirmation
  - list and search items

or run 'lotcat serve' to expose listing, text search, price filtering and
similar-item lookup over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "Path to the catalog database (overrides config)")
	rootCmd.Version = Version
}

// mustLoadConfig loads configuration and applies the --db override.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitError, "loading config: %v", err)
	}
	if dbPathFlag != "" {
		cfg.DBPath = dbPathFlag
	}
	return cfg
}

// mustOpenStore opens the catalog database, exits on connection failure.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenStore(cfg *config.Config) *storage.DB {
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		exitWithError(ExitError, "connecting to catalog database: %v", err)
	}
	return db
}
