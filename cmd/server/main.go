package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"eduai/internal/app"
	"eduai/internal/config"
	"eduai/internal/handlers"
	"eduai/internal/logging"
	"eduai/internal/router"
	"eduai/internal/websocket"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	logger := logging.New(cfg.Env, cfg.LogLevel)
	logger.Info().Str("env", cfg.Env).Msg("🚀 Starting eduAI Assistant server...")
	logger.Info().Msg("✓ Environment variables loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ──── Step 2: Initialize Gemini Client ────
	chatApp := app.NewChatApp(ctx, cfg, logger)
	defer chatApp.Close()

	// ──── Step 3: Start HTTP Server ────
	r := router.New(
		logger,
		handlers.NewChatHandler(chatApp.Endpoint),
		websocket.NewChatSocket(chatApp.Endpoint, logger),
		cfg.CORSAllowedOrigins,
	)

	// No WriteTimeout: a chat request waits on Gemini for as long as it takes.
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info().Msgf("✓ eduAI Assistant server listening on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egCtx.Done()
		logger.Info().Msg("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSec)*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("Server error")
	}
	logger.Info().Msg("server shutdown complete")
}
