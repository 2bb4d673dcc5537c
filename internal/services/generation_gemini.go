package services

import (
	"context"
	"fmt"

	genai "google.golang.org/genai"

	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
)

// GeminiModels is the part of the genai client the Gemini generator uses
type GeminiModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator calls the Gemini API directly
type GeminiGenerator struct {
	models GeminiModels
	model  string
}

// NewGeminiGenerator creates a Gemini API client authenticated with apiKey
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return NewGeminiGeneratorWithModels(client.Models, model), nil
}

// NewGeminiGeneratorWithModels creates a generator over an existing models
// service (for testing)
func NewGeminiGeneratorWithModels(models GeminiModels, model string) *GeminiGenerator {
	return &GeminiGenerator{models: models, model: model}
}

// Generate sends a single request and returns the response text
func (g *GeminiGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, geminiContents(req), nil)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return resp.Text(), nil
}

func geminiContents(req domain.GenerationRequest) []*genai.Content {
	if !req.IsMultipart() {
		return genai.Text(req.Prompt)
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(req.Attachment.Data, req.Attachment.MimeType),
		genai.NewPartFromText(req.Prompt),
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}
