package query

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

// GetQuery returns a query with the live view of its client attached.
func (s *Service) GetQuery(ctx context.Context, id uuid.UUID) (*domain.QueryView, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	q, err := s.queries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get query: %w", err)
	}

	view, err := s.attachClient(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("resolve client: %w", err)
	}
	return view, nil
}
