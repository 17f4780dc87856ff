// Package app builds the chat endpoint from configuration. Every deployment
// target (long-running server, serverless function) goes through here so the
// credential check happens exactly once per process.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"eduai/internal/chat"
	"eduai/internal/config"
	"eduai/internal/services"
)

type ChatApp struct {
	Endpoint *chat.Endpoint
	gemini   *services.GeminiService
}

// NewChatApp never fails: a missing or unusable credential is recorded on the
// endpoint as a ConfigurationError and logged once.
func NewChatApp(ctx context.Context, cfg *config.Config, logger zerolog.Logger) *ChatApp {
	opts := chat.Options{
		DevMode:      cfg.IsDevelopment(),
		MaxBodyBytes: cfg.MaxBodyBytes,
		Logger:       logger,
	}

	gemini, err := services.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	if err != nil {
		if err == services.ErrMissingAPIKey {
			logger.Warn().Msg("GEMINI_API_KEY is not set in .env – Gemini API calls will fail.")
		} else {
			logger.Error().Err(err).Msg("✗ Gemini client initialization failed")
		}
		return &ChatApp{Endpoint: chat.NewUnconfiguredEndpoint(err, opts)}
	}

	logger.Info().Str("model", gemini.ModelName()).Msg("✓ Gemini client initialized")
	return &ChatApp{
		Endpoint: chat.NewEndpoint(gemini, opts),
		gemini:   gemini,
	}
}

func (a *ChatApp) Close() error {
	if a.gemini == nil {
		return nil
	}
	return a.gemini.Close()
}
