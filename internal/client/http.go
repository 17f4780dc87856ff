package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"eduai/internal/models"
)

const chatPath = "/api/chat"

// StatusError is returned for any non-2xx answer from the chat endpoint.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("chat endpoint returned %d", e.StatusCode)
	}
	return fmt.Sprintf("chat endpoint returned %d: %s", e.StatusCode, e.Message)
}

// HTTPTransport posts chat requests to a chat endpoint over HTTP.
type HTTPTransport struct {
	client *resty.Client
}

func NewHTTPTransport(baseURL string) *HTTPTransport {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &HTTPTransport{client: c}
}

func (t *HTTPTransport) Send(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	var (
		out     models.ChatResponse
		errBody models.ErrorResponse
	)

	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&errBody).
		Post(chatPath)
	if err != nil {
		// An unreadable error body still carries the status.
		if resp != nil && resp.StatusCode() >= http.StatusMultipleChoices {
			return nil, &StatusError{StatusCode: resp.StatusCode()}
		}
		return nil, fmt.Errorf("failed to reach chat endpoint: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode(), Message: errBody.Error}
	}

	return &out, nil
}
