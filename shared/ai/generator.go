package ai

import (
	"context"
	"fmt"

	"command-center/shared/config"

	"google.golang.org/genai"
)

// Generator is the completion provider: one prompt in, the full
// generated text out. It satisfies strategy.Completer.
type Generator struct {
	client *genai.Client
	model  string
}

func NewGenerator(ctx context.Context, cfg *config.AIConfig) (*Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Generator{client: client, model: cfg.Model}, nil
}

// Complete sends the prompt and returns the generated text atomically.
// No streaming, no retry; any provider problem is one error.
func (g *Generator) Complete(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("empty completion response from model %s", g.model)
	}
	return text, nil
}
