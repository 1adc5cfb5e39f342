package genai

import (
	"context"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Gemini generates text through Google's Gemini models.
type Gemini struct {
	llm llms.Model
}

// NewGemini creates the client once; reuse it for every request.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, err
	}
	return &Gemini{llm: llm}, nil
}

// Generate forwards the prompt and returns the raw text response. No retries,
// no response parsing; callers surface failures as a generation error.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.llm, prompt)
}
