// Package client is the chat client side of the eduAI contract: a linear
// transcript, a single in-flight request and one generic error message.
package client

import (
	"context"
	"strings"
	"sync"

	"eduai/internal/models"
)

// GenericErrorMessage is shown for every failed exchange, whatever the cause.
const GenericErrorMessage = "Something went wrong. Please try again."

// Transport delivers one chat request to the chat endpoint.
type Transport interface {
	Send(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

// Session holds the state of one chat session. While a request is
// outstanding further submissions are dropped, not queued.
type Session struct {
	mu           sync.Mutex
	transport    Transport
	transcript   []models.ChatMessage
	pendingInput string
	waiting      bool
	lastError    string
}

func NewSession(transport Transport) *Session {
	return &Session{transport: transport}
}

func (s *Session) SetInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingInput = text
}

// Begin records a user message and marks the session as waiting. It returns
// false, changing nothing, when text is blank or a request is outstanding.
func (s *Session) Begin(text string) (models.ChatRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content := strings.TrimSpace(text)
	if content == "" || s.waiting {
		return models.ChatRequest{}, false
	}

	s.transcript = append(s.transcript, models.ChatMessage{Role: models.RoleUser, Content: content})
	s.pendingInput = ""
	s.lastError = ""
	s.waiting = true

	return models.ChatRequest{Message: content}, true
}

// Resolve completes the outstanding request. A nil resp with a nil err counts
// as an empty reply.
func (s *Session) Resolve(resp *models.ChatResponse, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.waiting {
		return
	}
	s.waiting = false

	if err != nil {
		s.lastError = GenericErrorMessage
		return
	}

	reply := ""
	if resp != nil {
		reply = resp.Reply
	}
	s.transcript = append(s.transcript, models.ChatMessage{Role: models.RoleAssistant, Content: reply})
}

// Submit runs one full exchange and blocks until it resolves. It reports
// whether the submission was accepted.
func (s *Session) Submit(ctx context.Context, text string) bool {
	req, ok := s.Begin(text)
	if !ok {
		return false
	}
	s.Resolve(s.transport.Send(ctx, req))
	return true
}

// Send exposes the session's transport for callers that drive Begin and
// Resolve themselves.
func (s *Session) Send(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	return s.transport.Send(ctx, req)
}

// Transcript returns a copy of the messages exchanged so far.
func (s *Session) Transcript() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *Session) PendingInput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingInput
}

func (s *Session) Waiting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waiting
}

func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}
