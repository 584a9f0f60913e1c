package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quizagent/quizagent-backend/internal/llm"
)

// Per-task completion parameters. Analysis favors a balanced temperature,
// extraction a conservative one, generation a more creative one.
var (
	analyzeParams  = taskParams{maxTokens: 2000, temperature: 0.7}
	termsParams    = taskParams{maxTokens: 1500, temperature: 0.5}
	questionParams = taskParams{maxTokens: 3000, temperature: 0.8}
)

type taskParams struct {
	maxTokens   int
	temperature float64
}

// GatewayService forwards caller-supplied prompts to the model gateway
// with fixed per-task parameters. It backs the pass-through proxy
// endpoints used by browser clients that build their own prompts.
type GatewayService struct {
	provider llm.Provider
	log      zerolog.Logger
}

// NewGatewayService creates a new GatewayService.
func NewGatewayService(provider llm.Provider, log zerolog.Logger) *GatewayService {
	return &GatewayService{
		provider: provider,
		log:      log.With().Str("component", "gateway_service").Logger(),
	}
}

// Analyze forwards an analysis prompt.
func (s *GatewayService) Analyze(ctx context.Context, prompt string) (string, error) {
	return s.complete(ctx, "analyze", prompt, analyzeParams)
}

// ExtractTerms forwards a term-extraction prompt.
func (s *GatewayService) ExtractTerms(ctx context.Context, prompt string) (string, error) {
	return s.complete(ctx, "extract_terms", prompt, termsParams)
}

// GenerateQuestions forwards a question-generation prompt.
func (s *GatewayService) GenerateQuestions(ctx context.Context, prompt string) (string, error) {
	return s.complete(ctx, "generate_questions", prompt, questionParams)
}

func (s *GatewayService) complete(ctx context.Context, task, prompt string, p taskParams) (string, error) {
	out, err := s.provider.Complete(ctx, llm.Request{
		Prompt:      prompt,
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	})
	if err != nil {
		s.log.Error().Err(err).Str("task", task).Msg("upstream completion failed")
		return "", err
	}
	s.log.Debug().Str("task", task).Int("response_chars", len(out)).Msg("completion ok")
	return out, nil
}
