package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

// DeleteQuery removes a query together with all of its notes.
// Deleting an already deleted query returns ErrNotFound.
func (s *Service) DeleteQuery(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.queries.GetByIDForUpdate(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get query: %w", getErr)
		}

		if delErr := s.queries.Delete(txCtx, id); delErr != nil {
			return fmt.Errorf("delete query: %w", delErr)
		}

		if auditErr := s.logAudit(txCtx, domain.EntityTypeQuery, id, id, domain.AuditActionDelete, map[string]any{
			"client_name": current.ClientName,
			"description": current.Description,
			"notes":       len(current.Notes),
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "query deleted", slog.String("query_id", id.String()))

	return nil
}
