// Package assistant forwards free-form staff prompts to a text generator.
// Replies are returned verbatim and never stored.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

const MaxPromptLength = 8000

type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service answers staff prompts.
type Service struct {
	gen textGenerator
	log *slog.Logger
}

// NewService creates a new Assistant service.
func NewService(log *slog.Logger, gen textGenerator) *Service {
	return &Service{
		gen: gen,
		log: log.With("service", "assistant"),
	}
}

// AskInput holds the parameters for Ask.
type AskInput struct {
	Prompt string
}

// Validate checks all fields and collects all errors.
func (i AskInput) Validate() error {
	prompt := strings.TrimSpace(i.Prompt)
	if prompt == "" {
		return domain.NewValidationError("prompt", "Prompt is required.")
	}
	if utf8.RuneCountInString(prompt) > MaxPromptLength {
		return domain.NewValidationError("prompt", fmt.Sprintf("max %d characters", MaxPromptLength))
	}
	return nil
}

// Ask sends the prompt to the generator and returns its reply.
func (s *Service) Ask(ctx context.Context, input AskInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	prompt := strings.TrimSpace(input.Prompt)
	reply, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate reply: %w", err)
	}

	s.log.InfoContext(ctx, "assistant answered",
		slog.Int("prompt_chars", utf8.RuneCountInString(prompt)),
		slog.Int("reply_chars", utf8.RuneCountInString(reply)),
	)

	return reply, nil
}
