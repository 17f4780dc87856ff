package handlers

import (
	"net/http"

	"eduai/internal/chat"
)

type ChatHandler struct {
	endpoint *chat.Endpoint
}

func NewChatHandler(endpoint *chat.Endpoint) *ChatHandler {
	return &ChatHandler{endpoint: endpoint}
}

// Ask serves POST /api/chat.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	resp := h.endpoint.Handle(r.Context(), r.Body)
	writeJSON(w, resp.Status, resp.Body)
}

// Health serves GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
