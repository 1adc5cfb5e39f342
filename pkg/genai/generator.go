package genai

import (
	"context"
	"errors"
)

// Generator sends a prompt to a text-generation service and returns the raw
// text response. Constructed once at startup and injected; no global client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the disabled generator when no API key was
// provided at startup.
var ErrNotConfigured = errors.New("text generation is not configured")

// Disabled is the Generator used when AI features are turned off.
type Disabled struct{}

func (Disabled) Generate(_ context.Context, _ string) (string, error) {
	return "", ErrNotConfigured
}
