package query

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

// GetHistory returns the audit trail of a query and its notes, newest first.
// The trail outlives the query, so a deleted query still has a history.
func (s *Service) GetHistory(ctx context.Context, queryID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if queryID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	if limit < 0 {
		return nil, domain.NewValidationError("limit", "must be positive")
	}
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	records, err := s.audit.GetByQuery(ctx, queryID, limit)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	return records, nil
}
