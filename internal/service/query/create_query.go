package query

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

// CreateQuery resolves the client and stores a new query with the client's
// current name captured as its snapshot. Nothing is stored if the client
// does not resolve.
func (s *Service) CreateQuery(ctx context.Context, input CreateQueryInput) (*domain.QueryView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ref, err := s.clients.Resolve(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("resolve client: %w", err)
	}

	now := s.now()
	q := domain.Query{
		ID:          uuid.New(),
		ClientID:    ref.ID,
		ClientName:  ref.DisplayName,
		Description: strings.TrimSpace(input.Description),
		CreatedDate: domain.DateOnly(input.CreatedDate),
		Status:      input.Status,
		Resolution:  strings.TrimSpace(input.Resolution),
		Notes:       []domain.Note{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created domain.Query
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.queries.Create(txCtx, q)
		if createErr != nil {
			return fmt.Errorf("create query: %w", createErr)
		}

		if auditErr := s.logAudit(txCtx, domain.EntityTypeQuery, created.ID, created.ID, domain.AuditActionCreate, map[string]any{
			"client_id":   created.ClientID.String(),
			"client_name": created.ClientName,
			"status":      string(created.Status),
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "query created",
		slog.String("query_id", created.ID.String()),
		slog.String("client_id", created.ClientID.String()),
	)

	return &domain.QueryView{Query: created, Client: &ref}, nil
}
