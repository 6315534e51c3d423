package services

import "context"

// LLMClient sends a single-turn prompt to a completion provider and returns
// the text of its one completion.
type LLMClient interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}
