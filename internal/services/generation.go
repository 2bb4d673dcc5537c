package services

import (
	"context"
	"fmt"

	config "github.com/inference-gateway/osint-toolkit/config"
	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
	logger "github.com/inference-gateway/osint-toolkit/internal/logger"
)

// NewGenerator builds the generator for the configured backend. Without an
// API key every call fails with domain.ErrMissingCredential.
func NewGenerator(ctx context.Context, cfg config.GenerationConfig, apiKey string) (domain.Generator, error) {
	switch cfg.Backend {
	case config.BackendGemini, "":
		if apiKey == "" {
			logger.Warn("no API key configured, runs will fail", "backend", config.BackendGemini)
			return &unavailableGenerator{}, nil
		}
		generator, err := NewGeminiGenerator(ctx, apiKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return generator, nil
	case config.BackendGateway:
		return NewGatewayGenerator(cfg.GatewayURL, apiKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown generation backend %q", cfg.Backend)
	}
}

type unavailableGenerator struct{}

func (g *unavailableGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	return "", domain.ErrMissingCredential
}
