package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler_RejectsNonPost(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			Handler(rr, httptest.NewRequest(method, "/api/chat", nil))

			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Equal(t, http.MethodPost, rr.Header().Get("Allow"))
			assert.JSONEq(t, `{"error":"Method not allowed"}`, rr.Body.String())
		})
	}
}

func TestHandler_WithoutCredential(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("LOG_LEVEL", "disabled")

	bodies := []string{`{"message":"Explain Newton's first law"}`, `{"message":"   "}`, `{}`}
	for _, body := range bodies {
		rr := httptest.NewRecorder()
		Handler(rr, httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body)))

		assert.Equal(t, http.StatusInternalServerError, rr.Code, body)
		assert.JSONEq(t,
			`{"error":"Gemini API not configured on server. Please check your GEMINI_API_KEY in .env file."}`,
			rr.Body.String())
	}
}
