// Package ai wraps the text-generation providers behind a single Backend
// interface and routes calls through a sticky primary/fallback pair.
package ai

import "context"

// GenerateOptions tune one model call. Zero values mean provider
// defaults.
type GenerateOptions struct {
	Temperature float64
	MaxTokens   int
}

// Backend is one text-generation provider.
type Backend interface {
	Name() string
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}
