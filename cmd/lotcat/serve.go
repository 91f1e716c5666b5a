package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lotcat/internal/server"
)

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog HTTP API",
	Long: `Serve the catalog query API over HTTP.

Endpoints:
  GET /                      liveness
  GET /api/items             all items
  GET /api/items/search      ranked text search (?query=...)
  GET /api/items/price       price range filter (?min=...&max=...)
  GET /api/items/similar/:id top 5 similar items

The store connection is held for the life of the process. Shuts down
gracefully on SIGINT/SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	db := mustOpenStore(cfg)
	defer db.Close()

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(db, logger)
	logger.Info("listening", zap.String("addr", cfg.Addr), zap.String("db", cfg.DBPath))
	return srv.Run(ctx, cfg.Addr)
}
