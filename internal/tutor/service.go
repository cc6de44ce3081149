package tutor

import (
	"context"
	"fmt"

	"github.com/truthcom/learnmate/internal/llm"
)

// Service generates study plans, daily lessons and answers through an
// LLM provider. Each method makes exactly one model call.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a study-plan generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// GeneratePlan produces the plan text for a new course. The first line
// of the result is expected to carry the total number of study days.
func (s *Service) GeneratePlan(ctx context.Context, input PlanInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "plan")

	req := llm.Request{
		System: planSystemPrompt(input),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanUserMessage(input)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("plan generation: %w", err)
	}
	return resp.Text(), nil
}

// GenerateDaily produces the lesson text for one day of a course.
func (s *Service) GenerateDaily(ctx context.Context, input DailyInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "daily-content")

	req := llm.Request{
		System: dailySystemPrompt(input),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildDailyUserMessage(input)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("daily content generation: %w", err)
	}
	return resp.Text(), nil
}

// Answer responds to a free-form follow-up question. The provider's
// default temperature is used here, not the configured one.
func (s *Service) Answer(ctx context.Context, input QuestionInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "question")

	req := llm.Request{
		System: questionSystemPrompt(input),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionUserMessage(input)},
		},
		MaxTokens: s.cfg.MaxTokens,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("answer generation: %w", err)
	}
	return resp.Text(), nil
}
