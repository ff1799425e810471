package query

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

// UpdateQuery applies the present fields of input to a query. The id, client
// snapshot, creation time and notes are never touched. An input with no
// fields is a no-op: nothing is saved or audited and UpdatedAt keeps its
// stored value.
func (s *Service) UpdateQuery(ctx context.Context, input UpdateQueryInput) (*domain.QueryView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.QueryUpdateParams{
		Status: input.Status,
	}
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		params.Description = &trimmed
	}
	if input.CreatedDate != nil {
		d := domain.DateOnly(*input.CreatedDate)
		params.CreatedDate = &d
	}
	if input.Resolution != nil {
		trimmed := strings.TrimSpace(*input.Resolution)
		params.Resolution = &trimmed
	}

	if params.IsEmpty() {
		return s.GetQuery(ctx, input.QueryID)
	}

	var updated domain.Query
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.queries.GetByIDForUpdate(txCtx, input.QueryID)
		if getErr != nil {
			return fmt.Errorf("get query: %w", getErr)
		}

		old := current
		current.Apply(params, s.now())

		var saveErr error
		updated, saveErr = s.queries.Save(txCtx, current)
		if saveErr != nil {
			return fmt.Errorf("save query: %w", saveErr)
		}

		changes := buildQueryChanges(old, updated)
		if len(changes) > 0 {
			if auditErr := s.logAudit(txCtx, domain.EntityTypeQuery, updated.ID, updated.ID, domain.AuditActionUpdate, changes); auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "query updated",
		slog.String("query_id", updated.ID.String()),
		slog.String("status", string(updated.Status)),
	)

	view, err := s.attachClient(ctx, updated)
	if err != nil {
		return nil, fmt.Errorf("resolve client: %w", err)
	}
	return view, nil
}

// buildQueryChanges returns only changed fields for audit.
func buildQueryChanges(old, updated domain.Query) map[string]any {
	changes := make(map[string]any)

	if old.Description != updated.Description {
		changes["description"] = map[string]any{"old": old.Description, "new": updated.Description}
	}
	if !old.CreatedDate.Equal(updated.CreatedDate) {
		changes["created_date"] = map[string]any{
			"old": old.CreatedDate.Format("2006-01-02"),
			"new": updated.CreatedDate.Format("2006-01-02"),
		}
	}
	if old.Status != updated.Status {
		changes["status"] = map[string]any{"old": string(old.Status), "new": string(updated.Status)}
	}
	if old.Resolution != updated.Resolution {
		changes["resolution"] = map[string]any{"old": old.Resolution, "new": updated.Resolution}
	}

	return changes
}
