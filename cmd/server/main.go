package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rfnaufal/snake-spectacle/internal/config"
	"github.com/rfnaufal/snake-spectacle/internal/handler"
	"github.com/rfnaufal/snake-spectacle/internal/service"
	"github.com/rfnaufal/snake-spectacle/internal/session"
	"github.com/rfnaufal/snake-spectacle/internal/store"
	"github.com/rfnaufal/snake-spectacle/internal/websocket"
	"github.com/rfnaufal/snake-spectacle/internal/worker"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("failed to load config file, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the in-memory store with seed data. All state is volatile
	// and resets on restart.
	db := store.New(logger)
	logger.Info("in-memory store seeded")

	// Initialize spectator hub
	wsHub := websocket.NewHub(logger)
	go wsHub.Run()
	logger.Info("spectator hub initialized")

	// Initialize services
	gameService := service.NewGameService(db, logger)
	gameService.SetHub(wsHub)

	// Session resolver: the cookie value is the user's email in plaintext,
	// kept as-is to match the original mock contract.
	sessions := session.NewResolver(cfg.Session.CookieName, db)

	// Initialize broadcast worker
	broadcastWorker := worker.NewBroadcastWorker(db, wsHub, &cfg.Broadcast, logger)
	if cfg.Broadcast.Enabled {
		if err := broadcastWorker.Start(ctx); err != nil {
			logger.Error("failed to start broadcast worker", "error", err)
			os.Exit(1)
		}
	}

	// Initialize HTTP handler
	httpHandler := handler.NewHandler(gameService, sessions, wsHub, cfg.CORS.AllowedOrigins, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      httpHandler.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Stop spectator hub
	wsHub.Stop()

	// Stop broadcast worker
	if cfg.Broadcast.Enabled {
		if err := broadcastWorker.Stop(); err != nil {
			logger.Error("failed to stop broadcast worker", "error", err)
		}
	}

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	}

	logger.Info("server stopped")
}
