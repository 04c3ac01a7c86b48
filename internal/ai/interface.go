package ai

import "context"

// TextGenerator is the contract for one synchronous LLM completion.
// This interface allows swapping providers (Gemini, OpenAI, etc.) and
// substituting fakes in tests.
type TextGenerator interface {
	// GenerateText issues one chat completion and returns the raw model text.
	// A failed provider call returns a *ProviderError; callers must treat it
	// as "no answer", never as an empty-but-valid one.
	GenerateText(ctx context.Context, req GenerationRequest) (string, error)
}
