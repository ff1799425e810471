// Package query implements the support query record store and its note log.
// Every mutation of an existing query runs in one transaction that locks the
// query row first, so concurrent writers of the same query serialize while
// writers of different queries never wait on each other.
package query

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/querydesk-backend/internal/config"
	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

const (
	MaxDescriptionLength = 2000
	MaxResolutionLength  = 10000
	MaxNoteLength        = 2000
	DefaultHistoryLimit  = 50
	MaxHistoryLimit      = 200
)

type queryRepo interface {
	Create(ctx context.Context, q domain.Query) (domain.Query, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Query, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Query, error)
	List(ctx context.Context, limit, offset int) ([]domain.Query, int, error)
	Save(ctx context.Context, q domain.Query) (domain.Query, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientResolver interface {
	Resolve(ctx context.Context, clientID uuid.UUID) (domain.ClientRef, error)
	ResolveMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.ClientRef, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	GetByQuery(ctx context.Context, queryID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides support query operations.
type Service struct {
	queries queryRepo
	clients clientResolver
	audit   auditRepo
	tx      txManager
	cfg     config.QueriesConfig
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new Query service.
func NewService(
	log *slog.Logger,
	queries queryRepo,
	clients clientResolver,
	audit auditRepo,
	tx txManager,
	cfg config.QueriesConfig,
) *Service {
	return &Service{
		queries: queries,
		clients: clients,
		audit:   audit,
		tx:      tx,
		cfg:     cfg,
		log:     log.With("service", "query"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// attachClient resolves the live client view for a single query. A client
// that no longer resolves leaves Client nil; the stored snapshot still stands.
func (s *Service) attachClient(ctx context.Context, q domain.Query) (*domain.QueryView, error) {
	view := &domain.QueryView{Query: q}
	refs, err := s.clients.ResolveMany(ctx, []uuid.UUID{q.ClientID})
	if err != nil {
		return nil, err
	}
	if ref, ok := refs[q.ClientID]; ok {
		view.Client = &ref
	}
	return view, nil
}

// logAudit writes one audit record stamped with the service clock.
func (s *Service) logAudit(ctx context.Context, entityType domain.EntityType, entityID, queryID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	return s.audit.Log(ctx, domain.AuditRecord{
		ID:         uuid.New(),
		EntityType: entityType,
		EntityID:   entityID,
		QueryID:    queryID,
		Action:     action,
		Changes:    changes,
		CreatedAt:  s.now(),
	})
}
