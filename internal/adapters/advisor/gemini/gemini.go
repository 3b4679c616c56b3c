// Package gemini talks to the Generative Language API for the advisor
// feature. It is a thin outbound adapter: prompt in, answer text out.
package gemini

import (
	"context"
	"fmt"

	generativelanguage "google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"

	"github.com/umarali/qisst_management_app/internal/apperrors"
)

// Client implements the advice generator port over the Generative Language
// REST API.
type Client struct {
	apiKey string
	model  string
}

// NewClient creates the client. An empty API key yields an unconfigured
// client; the service layer degrades gracefully instead of calling out.
func NewClient(apiKey, model string) *Client {
	return &Client{apiKey: apiKey, model: model}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// GenerateAdvice sends the prompt and returns the first candidate's text.
func (c *Client) GenerateAdvice(ctx context.Context, prompt string) (string, error) {
	svc, err := generativelanguage.NewService(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create generative language client: %w", apperrors.ErrAdvisoryUnavailable)
	}

	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{
			{
				Role:  "user",
				Parts: []*generativelanguage.Part{{Text: prompt}},
			},
		},
	}

	resp, err := svc.Models.GenerateContent("models/"+c.model, req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("generate content call failed: %v: %w", err, apperrors.ErrAdvisoryUnavailable)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
