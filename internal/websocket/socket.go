package websocket

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"eduai/internal/chat"
	"eduai/internal/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Frame is written once per inbound chat request. Body has the same shape as
// the HTTP response body for Status.
type Frame struct {
	Status int `json:"status"`
	Body   any `json:"body"`
}

// ChatSocket carries the chat contract over a WebSocket: every text frame is a
// chat request, answered by exactly one Frame. Frames on one connection are
// handled in order, one at a time.
type ChatSocket struct {
	endpoint *chat.Endpoint
	logger   zerolog.Logger
}

func NewChatSocket(endpoint *chat.Endpoint, logger zerolog.Logger) *ChatSocket {
	return &ChatSocket{endpoint: endpoint, logger: logger}
}

func (s *ChatSocket) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.With().Str("request_id", middleware.GetRequestID(r.Context())).Logger()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	logger.Debug().Str("remote_addr", r.RemoteAddr).Msg("WebSocket connected")
	ctx := logger.WithContext(r.Context())

	for {
		_, reader, err := conn.NextReader()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("WebSocket closed unexpectedly")
			}
			break
		}

		resp := s.endpoint.Handle(ctx, reader)
		if err := conn.WriteJSON(Frame{Status: resp.Status, Body: resp.Body}); err != nil {
			logger.Warn().Err(err).Msg("WebSocket write failed")
			break
		}
	}

	logger.Debug().Msg("WebSocket disconnected")
}
