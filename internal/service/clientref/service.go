// Package clientref resolves client ids against the client directory.
// Resolution is a pure read; nothing here writes to the directory.
package clientref

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type clientRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Client, error)
}

// Service resolves client references.
type Service struct {
	clients clientRepo
	log     *slog.Logger
}

// NewService creates a new client reference resolver.
func NewService(log *slog.Logger, clients clientRepo) *Service {
	return &Service{
		clients: clients,
		log:     log.With("service", "clientref"),
	}
}

// Resolve returns the display view of a client.
// Returns ErrReferenceNotFound if the directory has no such client.
func (s *Service) Resolve(ctx context.Context, clientID uuid.UUID) (domain.ClientRef, error) {
	if clientID == uuid.Nil {
		return domain.ClientRef{}, fmt.Errorf("client %s: %w", clientID, domain.ErrReferenceNotFound)
	}

	c, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ClientRef{}, fmt.Errorf("client %s: %w", clientID, domain.ErrReferenceNotFound)
		}
		return domain.ClientRef{}, fmt.Errorf("get client: %w", err)
	}

	return c.Ref(), nil
}

// ResolveMany resolves a set of client ids in batches of at most maxBatch,
// querying each distinct id once. Ids that do not resolve are absent from
// the returned map.
func (s *Service) ResolveMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.ClientRef, error) {
	out := make(map[uuid.UUID]domain.ClientRef, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	loader := dataloader.NewBatchedLoader(
		s.batchFn,
		dataloader.WithWait[uuid.UUID, *domain.ClientRef](wait),
		dataloader.WithBatchCapacity[uuid.UUID, *domain.ClientRef](maxBatch),
	)

	refs, errs := loader.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("resolve clients: %w", err)
		}
	}

	for _, ref := range refs {
		if ref != nil {
			out[ref.ID] = *ref
		}
	}

	s.log.DebugContext(ctx, "clients resolved",
		slog.Int("requested", len(ids)),
		slog.Int("resolved", len(out)),
	)

	return out, nil
}

func (s *Service) batchFn(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.ClientRef] {
	clients, err := s.clients.GetByIDs(ctx, keys)
	if err != nil {
		results := make([]*dataloader.Result[*domain.ClientRef], len(keys))
		for i := range results {
			results[i] = &dataloader.Result[*domain.ClientRef]{Error: err}
		}
		return results
	}

	byID := make(map[uuid.UUID]domain.ClientRef, len(clients))
	for _, c := range clients {
		byID[c.ID] = c.Ref()
	}

	results := make([]*dataloader.Result[*domain.ClientRef], len(keys))
	for i, key := range keys {
		if ref, ok := byID[key]; ok {
			results[i] = &dataloader.Result[*domain.ClientRef]{Data: &ref}
		} else {
			results[i] = &dataloader.Result[*domain.ClientRef]{}
		}
	}
	return results
}
