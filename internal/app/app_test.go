package app

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduai/internal/config"
	"eduai/internal/models"
)

func TestNewChatApp_MissingKeyYieldsConfigurationError(t *testing.T) {
	var logs bytes.Buffer
	cfg := &config.Config{Env: config.EnvDevelopment, MaxBodyBytes: 1024}

	a := NewChatApp(context.Background(), cfg, zerolog.New(&logs))
	defer a.Close()

	require.NotNil(t, a.Endpoint)
	assert.False(t, a.Endpoint.Configured())
	assert.Contains(t, logs.String(), "GEMINI_API_KEY is not set")

	resp := a.Endpoint.Handle(context.Background(), strings.NewReader(`{"message":"hi"}`))
	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.Equal(t, models.ErrorResponse{
		Error: "Gemini API not configured on server. Please check your GEMINI_API_KEY in .env file.",
	}, resp.Body)
}

func TestChatApp_CloseWithoutClient(t *testing.T) {
	a := &ChatApp{}
	assert.NoError(t, a.Close())
}
