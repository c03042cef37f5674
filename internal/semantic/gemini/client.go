// Package gemini provides a semantic.Embedder backed by the Gemini
// embedding API.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "text-embedding-004"

// maxEmbedChars bounds request size; the embedding API rejects very long inputs.
const maxEmbedChars = 2000

// Client calls the Gemini embedding API.
type Client struct {
	client *genai.Client
	model  string
}

// New creates a Gemini embedding client. An empty model falls back to
// text-embedding-004.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{client: client, model: model}, nil
}

// Embed returns the embedding vector for text.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	if len(text) > maxEmbedChars {
		text = text[:maxEmbedChars]
	}
	result, err := c.client.Models.EmbedContent(ctx, c.model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini: embed content: %w", err)
	}
	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, errors.New("gemini: empty embedding response")
	}
	return result.Embeddings[0].Values, nil
}
