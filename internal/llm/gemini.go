package llm

import (
	"context"
	"fmt"

	"github.com/mhartleigh/paydeck/internal/common"

	"google.golang.org/genai"
)

// geminiClient implements the Client interface using the Gemini API with
// structured output.
type geminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
}

// newGeminiClient creates a new Gemini API client.
func newGeminiClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, common.ErrMissingAPIKey
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	temperature := float32(cfg.Temperature)
	if temperature == 0 {
		temperature = 0.3
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &geminiClient{
		client:      client,
		model:       model,
		temperature: temperature,
	}, nil
}

// ResolveIntent sends the prompt with the result schema attached and parses
// the single JSON document that comes back.
func (c *geminiClient) ResolveIntent(ctx context.Context, prompt string) (*IntentResponse, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
		Temperature:      genai.Ptr(c.temperature),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("Gemini request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, common.ErrEmptyResponse
	}

	return parseIntent(text)
}
