package services

import (
	"context"
	"time"

	uuid "github.com/google/uuid"
	zap "go.uber.org/zap"

	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
	logger "github.com/inference-gateway/osint-toolkit/internal/logger"
)

// ToolRunnerService dispatches one generation request per tool run
type ToolRunnerService struct {
	generator domain.Generator
	prompts   *PromptBuilder
}

// NewToolRunnerService creates a runner that builds prompts with files and
// sends them through generator
func NewToolRunnerService(generator domain.Generator, files FileReader) *ToolRunnerService {
	return &ToolRunnerService{
		generator: generator,
		prompts:   NewPromptBuilder(files),
	}
}

// CanRun reports whether Run would dispatch a request for the pair
func (s *ToolRunnerService) CanRun(tool domain.ToolRecord, input domain.Input) bool {
	return s.prompts.CanBuild(tool, input)
}

// Run builds the request and returns the generated text verbatim. File and
// generation errors are wrapped in *domain.RequestFailure.
func (s *ToolRunnerService) Run(ctx context.Context, tool domain.ToolRecord, input domain.Input) (string, error) {
	if !s.CanRun(tool, input) {
		return "", domain.ErrNothingToDispatch
	}

	ctx = logger.With(ctx,
		zap.String("request_id", uuid.NewString()),
		zap.String("tool_id", tool.ID),
		zap.String("profile", string(tool.Profile)),
	)
	log := logger.FromContext(ctx)

	req, err := s.prompts.Build(tool, input)
	if err != nil {
		log.Error("failed to build generation request", zap.Error(err))
		return "", &domain.RequestFailure{ToolID: tool.ID, Err: err}
	}

	start := time.Now()
	log.Debug("dispatching generation request",
		zap.Int("prompt_length", len(req.Prompt)),
		zap.Bool("multipart", req.IsMultipart()),
	)

	output, err := s.generator.Generate(ctx, req)
	if err != nil {
		log.Error("generation request failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return "", &domain.RequestFailure{ToolID: tool.ID, Err: err}
	}

	log.Info("generation request completed",
		zap.Int("output_length", len(output)),
		zap.Duration("duration", time.Since(start)),
	)
	return output, nil
}
