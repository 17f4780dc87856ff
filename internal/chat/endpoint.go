// Package chat implements the eduAI chat contract shared by every deployment
// target: validation, prompt construction, the single provider call and the
// mapping of failures onto JSON error bodies.
package chat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"eduai/internal/models"
)

// DefaultMaxBodyBytes caps a chat request body at 100kb.
const DefaultMaxBodyBytes int64 = 100 << 10

// Generator produces text for a single-turn prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Response is a transport-neutral chat response. Body is either a
// models.ChatResponse or a models.ErrorResponse.
type Response struct {
	Status int
	Body   any
}

type Options struct {
	// DevMode adds stack traces to provider error responses.
	DevMode      bool
	MaxBodyBytes int64
	Logger       zerolog.Logger
}

// Endpoint is safe for concurrent use; it holds no per-request state.
type Endpoint struct {
	generator    Generator
	configErr    *ConfigurationError
	devMode      bool
	maxBodyBytes int64
	logger       zerolog.Logger
}

// NewEndpoint builds an endpoint backed by gen. A nil gen yields an endpoint
// that answers every request with a ConfigurationError.
func NewEndpoint(gen Generator, opts Options) *Endpoint {
	e := &Endpoint{
		generator:    gen,
		devMode:      opts.DevMode,
		maxBodyBytes: opts.MaxBodyBytes,
		logger:       opts.Logger,
	}
	if e.maxBodyBytes <= 0 {
		e.maxBodyBytes = DefaultMaxBodyBytes
	}
	if gen == nil {
		e.configErr = &ConfigurationError{Cause: errors.New("no generator configured")}
	}
	return e
}

// NewUnconfiguredEndpoint records why the provider could not be built.
func NewUnconfiguredEndpoint(cause error, opts Options) *Endpoint {
	e := NewEndpoint(nil, opts)
	e.configErr = &ConfigurationError{Cause: cause}
	return e
}

// Configured reports whether requests can reach the provider.
func (e *Endpoint) Configured() bool {
	return e.configErr == nil
}

// Handle runs one chat request end to end.
func (e *Endpoint) Handle(ctx context.Context, body io.Reader) Response {
	if e.configErr != nil {
		return e.respondError(ctx, e.configErr)
	}

	message, err := e.decodeMessage(body)
	if err != nil {
		return e.respondError(ctx, err)
	}

	reply, err := e.generator.Generate(ctx, BuildPrompt(message))
	if err != nil {
		return e.respondError(ctx, newProviderError(err))
	}

	return Response{Status: http.StatusOK, Body: models.ChatResponse{Reply: reply}}
}

func (e *Endpoint) decodeMessage(body io.Reader) (string, error) {
	if body == nil {
		return "", &ValidationError{Reason: "empty body"}
	}

	data, err := io.ReadAll(io.LimitReader(body, e.maxBodyBytes+1))
	if err != nil {
		return "", &ValidationError{Reason: "unreadable body"}
	}
	if int64(len(data)) > e.maxBodyBytes {
		return "", &PayloadTooLargeError{Limit: e.maxBodyBytes}
	}

	var req struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return "", &ValidationError{Reason: "malformed JSON body"}
	}
	if len(req.Message) == 0 {
		return "", &ValidationError{Reason: "message is missing"}
	}

	var message string
	if err := json.Unmarshal(req.Message, &message); err != nil {
		return "", &ValidationError{Reason: "message is not a string"}
	}
	if strings.TrimSpace(message) == "" {
		return "", &ValidationError{Reason: "message is empty"}
	}

	return message, nil
}

func (e *Endpoint) respondError(ctx context.Context, err error) Response {
	logger := e.loggerFor(ctx)

	switch ce := err.(type) {
	case *ConfigurationError:
		logger.Warn().Err(ce.Cause).Msg("chat request rejected: Gemini API not configured")
		return Response{Status: http.StatusInternalServerError, Body: models.ErrorResponse{Error: ce.Error()}}
	case *ValidationError:
		logger.Debug().Str("reason", ce.Reason).Msg("chat request rejected")
		return Response{Status: http.StatusBadRequest, Body: models.ErrorResponse{Error: ce.Error()}}
	case *PayloadTooLargeError:
		logger.Debug().Int64("limit", ce.Limit).Msg("chat request rejected: body too large")
		return Response{Status: http.StatusRequestEntityTooLarge, Body: models.ErrorResponse{Error: ce.Error()}}
	case *ProviderError:
		logger.Error().Err(ce.Err).Msg("Error in /api/chat")
		resp := models.ErrorResponse{Error: ce.Error()}
		if e.devMode {
			resp.Details = ce.Stack()
		}
		return Response{Status: http.StatusInternalServerError, Body: resp}
	default:
		logger.Error().Err(err).Msg("unexpected chat error")
		return Response{Status: http.StatusInternalServerError, Body: models.ErrorResponse{Error: providerErrorPrefix}}
	}
}

// loggerFor prefers the request-scoped logger installed by the HTTP middleware.
func (e *Endpoint) loggerFor(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &e.logger
}
