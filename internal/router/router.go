package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"eduai/internal/handlers"
	"eduai/internal/middleware"
	"eduai/internal/websocket"
)

func New(
	logger zerolog.Logger,
	chatHandler *handlers.ChatHandler,
	chatSocket *websocket.ChatSocket,
	allowedOrigins []string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(allowedOrigins))

	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", chatHandler.Ask)
		r.Get("/chat/ws", chatSocket.HandleWebSocket)
	})

	return r
}
