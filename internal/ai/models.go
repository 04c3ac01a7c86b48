package ai

import "fmt"

// GenerationRequest describes one chat-completion call.
// Built per call site and immutable afterwards.
type GenerationRequest struct {
	// Prompt is the user-role message sent to the model.
	Prompt string

	// SystemMessage sets the model's role and output contract.
	SystemMessage string

	// Temperature controls creativity, in [0,1]. Cost-sensitive structured
	// calls use lower values than free-text description calls.
	Temperature float32

	// MaxTokens caps the response length. Request-specific: itinerary calls
	// size this from the trip length.
	MaxTokens int32
}

// ProviderError reports that the LLM call itself failed (network, auth,
// quota, timeout). Never retried automatically.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("llm provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// rawPreviewLimit caps how much of the raw response a ParseError carries.
const rawPreviewLimit = 5000

// ParseError reports model text that could not be coerced into valid JSON
// even after repair. Raw preserves the response, capped at rawPreviewLimit;
// Length is the full length of the original text.
type ParseError struct {
	Raw    string
	Length int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse llm response (%d chars): %v", e.Length, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
