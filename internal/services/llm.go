package services

import (
	"context"
)

// LLMService is the live scene-generation collaborator: one system
// instruction plus the player's input in, raw generator text out. Any
// failure mode (network, timeout, rate limit, API error) surfaces as an
// error; the resolver treats them all identically.
type LLMService interface {
	// Generate produces raw generator text for the player's input.
	Generate(ctx context.Context, systemPrompt string, userInput string) (string, error)
}
