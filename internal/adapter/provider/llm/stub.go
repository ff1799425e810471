package llm

import (
	"context"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

// Stub stands in for the provider when no API key is configured.
type Stub struct{}

// NewStub creates a new Stub.
func NewStub() *Stub { return &Stub{} }

// Generate always reports the assistant as unavailable.
func (s *Stub) Generate(ctx context.Context, prompt string) (string, error) {
	return "", domain.ErrAssistantUnavailable
}
