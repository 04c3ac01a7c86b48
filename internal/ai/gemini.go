package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.0-flash"

// GeminiProvider implements TextGenerator using Google's Gemini models.
// One provider is constructed at process start and shared by all request
// handlers; the underlying client is safe for concurrent use.
type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiProvider{client: client, modelName: defaultModel}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// GenerateText issues one completion with per-request tuning. Temperature and
// MaxTokens come from the request because every call site sizes them
// differently; the model handle itself is cheap to derive from the client.
func (p *GeminiProvider) GenerateText(ctx context.Context, req GenerationRequest) (string, error) {
	model := p.client.GenerativeModel(p.modelName)
	model.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(req.MaxTokens)
	}
	if req.SystemMessage != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemMessage)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		log.Error().Err(err).Msg("gemini generation failed")
		return "", &ProviderError{Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &ProviderError{Err: fmt.Errorf("gemini: no response candidates")}
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", &ProviderError{Err: fmt.Errorf("gemini: empty text parts")}
	}
	return b.String(), nil
}

// GenerateStructured issues one completion through g, normalizes the text
// into valid JSON and unmarshals it into out. Provider failures pass through
// unchanged; unrecoverable JSON returns a *ParseError carrying the raw text.
// On any failure the caller must treat the whole response as absent.
func GenerateStructured(ctx context.Context, g TextGenerator, req GenerationRequest, out any) error {
	text, err := g.GenerateText(ctx, req)
	if err != nil {
		return err
	}
	cleaned, err := Normalize(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(cleaned, out); err != nil {
		return newParseError(text, err)
	}
	return nil
}
