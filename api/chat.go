// Package handler is the serverless deployment of the chat endpoint
// (POST /api/chat). The platform calls Handler once per request; the Gemini
// client is built on first use and reused while the instance stays warm.
package handler

import (
	"context"
	"net/http"
	"sync"

	"eduai/internal/app"
	"eduai/internal/config"
	"eduai/internal/handlers"
	"eduai/internal/logging"
)

var (
	initOnce    sync.Once
	chatHandler *handlers.ChatHandler
)

func setup() {
	cfg := config.Load()
	logger := logging.New(cfg.Env, cfg.LogLevel)
	chatApp := app.NewChatApp(context.Background(), cfg, logger)
	chatHandler = handlers.NewChatHandler(chatApp.Endpoint)
}

func Handler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error":"Method not allowed"}`))
		return
	}

	initOnce.Do(setup)
	chatHandler.Ask(w, r)
}
