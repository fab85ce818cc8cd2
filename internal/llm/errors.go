package llm

import "fmt"

// AuthError indicates a credential or token acquisition failure.
type AuthError struct {
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("auth error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("auth error: %s", e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// GenerationError indicates a non-2xx response or a malformed envelope from
// the generation endpoint. Body carries the provider error details so the
// request handler can pass them through to the caller.
type GenerationError struct {
	StatusCode int
	Body       string
	Message    string
	Cause      error
}

func (e *GenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation error: %s (status %d)", e.Message, e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
