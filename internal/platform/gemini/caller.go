package gemini

import (
	"context"
	"fmt"

	"github.com/anatolism/meditation-api-backend/internal/generation"
	"google.golang.org/genai"
)

// contentCaller is the seam between the generator and the Gemini SDK.
// Tests substitute a stub; production uses genaiCaller.
type contentCaller interface {
	generate(ctx context.Context, model, prompt string, cfg generation.ModelConfig) (string, error)
}

// genaiCaller adapts the genai client to the contentCaller seam.
type genaiCaller struct {
	client *genai.Client
}

// newGenaiCaller establishes a Gemini API session with the given key.
func newGenaiCaller(ctx context.Context, apiKey string) (*genaiCaller, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &genaiCaller{client: client}, nil
}

// generate performs one remote generation call with the resolved model
// configuration and returns the raw response text.
func (c *genaiCaller) generate(
	ctx context.Context,
	model, prompt string,
	cfg generation.ModelConfig,
) (string, error) {
	contentConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(cfg.Temperature)),
		TopP:            genai.Ptr(float32(cfg.TopP)),
		TopK:            genai.Ptr(float32(cfg.TopK)),
		MaxOutputTokens: cfg.MaxOutputTokens,
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), contentConfig)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}
