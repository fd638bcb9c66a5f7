package main

import (
	"context"
	"fmt"
	"os"

	"haccp-ledger/internal/config"
	"haccp-ledger/internal/database"
	"haccp-ledger/internal/ledger"
	"haccp-ledger/internal/logging"
	"haccp-ledger/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "haccp-ledger",
	Short: "Food-safety compliance ledger",
	Long: `Records HACCP hazards, critical control points, ISO certification
progress and supporting records, with an append-only audit trail.

Without a subcommand the HTTP server is started.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")
	rootCmd.AddCommand(serveCmd, statsCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads configuration and opens the ledger over the configured
// durable store, or process memory when none is reachable.
func bootstrap(ctx context.Context) (*config.Config, *zap.Logger, *ledger.Ledger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logger := logging.New(cfg.LogLevel)

	// a nil durable backend makes the store fall back to process memory
	var durable storage.Backend
	if cfg.DBDSN != "" {
		db, err := database.Open(cfg.DBDriver, cfg.DBDSN, cfg.DBConnectAttempts, logger)
		if err != nil {
			logger.Warn("durable storage not available", zap.Error(err))
		} else {
			durable = storage.NewGormBackend(db)
		}
	}

	kv := storage.New(durable, logger)
	l := ledger.New(kv, ledger.WithLogger(logger), ledger.WithSeed(cfg.SeedDemo))
	logger.Info("compliance ledger ready", zap.String("storage", string(kv.Mode(ctx))))
	return cfg, logger, l, nil
}
