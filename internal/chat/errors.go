package chat

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	configurationErrorMessage   = "Gemini API not configured on server. Please check your GEMINI_API_KEY in .env file."
	validationErrorMessage      = "Invalid message. Message must be a non-empty string."
	providerErrorPrefix         = "Internal server error calling Gemini."
	payloadTooLargeErrorMessage = "Request body too large."
)

// ConfigurationError means the provider could not be set up at startup.
// The cause is kept for logging only; the response text is fixed.
type ConfigurationError struct {
	Cause error
}

func (e *ConfigurationError) Error() string { return configurationErrorMessage }

func (e *ConfigurationError) Unwrap() error { return e.Cause }

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return validationErrorMessage }

type PayloadTooLargeError struct {
	Limit int64
}

func (e *PayloadTooLargeError) Error() string { return payloadTooLargeErrorMessage }

// ProviderError wraps any failure returned by the upstream Generator.
type ProviderError struct {
	Err error
}

func newProviderError(err error) *ProviderError {
	if _, ok := err.(stackTracer); !ok {
		err = errors.WithStack(err)
	}
	return &ProviderError{Err: err}
}

func (e *ProviderError) Error() string {
	msg := e.Err.Error()
	if msg == "" {
		return providerErrorPrefix
	}
	return providerErrorPrefix + " Details: " + msg
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Stack renders the wrapped error with its stack trace.
func (e *ProviderError) Stack() string {
	return fmt.Sprintf("%+v", e.Err)
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}
