package main

import (
	"context"
	"fmt"

	"haccp-ledger/internal/handlers"
	"haccp-ledger/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, l, err := bootstrap(context.Background())
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := cfg.RequireServer(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	creds, err := handlers.NewCredentials(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash operator password: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	r := server.NewRouter(cfg, handlers.New(l, creds, logger), logger)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Info("starting server", zap.String("addr", addr), zap.String("operator", cfg.AdminUsername))
	if err := r.Run(addr); err != nil {
		logger.Error("server error", zap.Error(err))
		return err
	}
	return nil
}
