package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	sdk "github.com/inference-gateway/sdk"

	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
)

// defaultGatewayProvider is used when the model carries no provider prefix
const defaultGatewayProvider = "google"

// GatewayClient is the part of the Inference Gateway SDK client the gateway
// generator uses
type GatewayClient interface {
	GenerateContent(ctx context.Context, provider sdk.Provider, model string, messages []sdk.Message) (*sdk.CreateChatCompletionResponse, error)
}

// GatewayGenerator routes generation requests through an Inference Gateway
type GatewayGenerator struct {
	client   GatewayClient
	provider string
	model    string
}

// NewGatewayGenerator creates a generator for the gateway at baseURL. The
// model uses provider/model notation; a bare model name is sent to Google.
func NewGatewayGenerator(baseURL, apiKey, model string) *GatewayGenerator {
	if !strings.HasSuffix(baseURL, "/v1") {
		baseURL = strings.TrimSuffix(baseURL, "/") + "/v1"
	}

	client := sdk.NewClient(&sdk.ClientOptions{
		BaseURL: baseURL,
		APIKey:  apiKey,
	})
	return NewGatewayGeneratorWithClient(client, model)
}

// NewGatewayGeneratorWithClient creates a generator over an existing client (for testing)
func NewGatewayGeneratorWithClient(client GatewayClient, model string) *GatewayGenerator {
	provider, modelName := splitGatewayModel(model)
	return &GatewayGenerator{
		client:   client,
		provider: provider,
		model:    modelName,
	}
}

// Generate sends one chat completion and returns the first choice's text
func (g *GatewayGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	message, err := gatewayMessage(req)
	if err != nil {
		return "", err
	}

	response, err := g.client.GenerateContent(ctx, sdk.Provider(g.provider), g.model, []sdk.Message{message})
	if err != nil {
		return "", fmt.Errorf("gateway request failed: %w", err)
	}
	if response == nil || len(response.Choices) == 0 {
		return "", fmt.Errorf("gateway returned no choices")
	}

	contentStr, err := response.Choices[0].Message.Content.AsMessageContent0()
	if err != nil {
		return "", fmt.Errorf("failed to extract response content: %w", err)
	}
	return contentStr, nil
}

func gatewayMessage(req domain.GenerationRequest) (sdk.Message, error) {
	if !req.IsMultipart() {
		return sdk.Message{
			Role:    sdk.User,
			Content: sdk.NewMessageContent(req.Prompt),
		}, nil
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", req.Attachment.MimeType, base64.StdEncoding.EncodeToString(req.Attachment.Data))
	imagePart, err := sdk.NewImageContentPart(dataURL, nil)
	if err != nil {
		return sdk.Message{}, fmt.Errorf("failed to create image content: %w", err)
	}
	textPart, err := sdk.NewTextContentPart(req.Prompt)
	if err != nil {
		return sdk.Message{}, fmt.Errorf("failed to create text content: %w", err)
	}

	return sdk.Message{
		Role:    sdk.User,
		Content: sdk.NewMessageContent([]sdk.ContentPart{imagePart, textPart}),
	}, nil
}

func splitGatewayModel(model string) (provider, name string) {
	provider, name, found := strings.Cut(model, "/")
	if !found {
		return defaultGatewayProvider, model
	}
	return provider, name
}
