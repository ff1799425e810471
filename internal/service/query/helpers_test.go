package query

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/querydesk-backend/internal/config"
	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

var testCfg = config.QueriesConfig{DefaultPageSize: 10, MaxPageSize: 100, DefaultNaming: "historical"}

// memStore is an in-memory stand-in for the query table, wired into a
// queryRepoMock so call counts stay observable.
type memStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]domain.Query
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[uuid.UUID]domain.Query)}
}

func cloneQuery(q domain.Query) domain.Query {
	notes := make([]domain.Note, len(q.Notes))
	copy(notes, q.Notes)
	q.Notes = notes
	return q
}

func (m *memStore) get(id uuid.UUID) (domain.Query, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.rows[id]
	if !ok {
		return domain.Query{}, fmt.Errorf("query %s: %w", id, domain.ErrNotFound)
	}
	return cloneQuery(q), nil
}

func (m *memStore) repo() *queryRepoMock {
	return &queryRepoMock{
		CreateFunc: func(ctx context.Context, q domain.Query) (domain.Query, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.rows[q.ID] = cloneQuery(q)
			return cloneQuery(q), nil
		},
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.Query, error) {
			return m.get(id)
		},
		GetByIDForUpdateFunc: func(ctx context.Context, id uuid.UUID) (domain.Query, error) {
			return m.get(id)
		},
		SaveFunc: func(ctx context.Context, q domain.Query) (domain.Query, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.rows[q.ID]; !ok {
				return domain.Query{}, fmt.Errorf("query %s: %w", q.ID, domain.ErrNotFound)
			}
			m.rows[q.ID] = cloneQuery(q)
			return cloneQuery(q), nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.rows[id]; !ok {
				return fmt.Errorf("query %s: %w", id, domain.ErrNotFound)
			}
			delete(m.rows, id)
			return nil
		},
		ListFunc: func(ctx context.Context, limit, offset int) ([]domain.Query, int, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			all := make([]domain.Query, 0, len(m.rows))
			for _, q := range m.rows {
				all = append(all, cloneQuery(q))
			}
			sort.Slice(all, func(i, j int) bool {
				if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
					return all[i].CreatedAt.After(all[j].CreatedAt)
				}
				return bytes.Compare(all[i].ID[:], all[j].ID[:]) > 0
			})
			if offset >= len(all) {
				return []domain.Query{}, len(all), nil
			}
			end := offset + limit
			if end > len(all) {
				end = len(all)
			}
			return all[offset:end], len(all), nil
		},
	}
}

// memDirectory is a renameable client directory behind a clientResolverMock.
type memDirectory struct {
	mu    sync.Mutex
	names map[uuid.UUID]string
}

func newMemDirectory() *memDirectory {
	return &memDirectory{names: make(map[uuid.UUID]string)}
}

func (d *memDirectory) add(name string) uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := uuid.New()
	d.names[id] = name
	return id
}

func (d *memDirectory) rename(id uuid.UUID, name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.names[id] = name
}

func (d *memDirectory) remove(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.names, id)
}

func (d *memDirectory) resolver() *clientResolverMock {
	return &clientResolverMock{
		ResolveFunc: func(ctx context.Context, clientID uuid.UUID) (domain.ClientRef, error) {
			d.mu.Lock()
			defer d.mu.Unlock()
			name, ok := d.names[clientID]
			if !ok {
				return domain.ClientRef{}, fmt.Errorf("client %s: %w", clientID, domain.ErrReferenceNotFound)
			}
			return domain.ClientRef{ID: clientID, DisplayName: name}, nil
		},
		ResolveManyFunc: func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.ClientRef, error) {
			d.mu.Lock()
			defer d.mu.Unlock()
			out := make(map[uuid.UUID]domain.ClientRef)
			for _, id := range ids {
				if name, ok := d.names[id]; ok {
					out[id] = domain.ClientRef{ID: id, DisplayName: name}
				}
			}
			return out, nil
		},
	}
}

// defaultTxMock returns a txManagerMock that simply calls the function with the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

// defaultAuditMock returns an auditRepoMock that always succeeds.
func defaultAuditMock() *auditRepoMock {
	return &auditRepoMock{
		LogFunc: func(ctx context.Context, record domain.AuditRecord) error {
			return nil
		},
		GetByQueryFunc: func(ctx context.Context, queryID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
			return nil, nil
		},
	}
}

// steppingClock returns a clock that advances one second per call.
func steppingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}

type fixture struct {
	svc   *Service
	store *memStore
	repo  *queryRepoMock
	dir   *memDirectory
	res   *clientResolverMock
	audit *auditRepoMock
	tx    *txManagerMock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store: newMemStore(),
		dir:   newMemDirectory(),
		audit: defaultAuditMock(),
		tx:    defaultTxMock(),
	}
	f.repo = f.store.repo()
	f.res = f.dir.resolver()
	f.svc = NewService(slog.Default(), f.repo, f.res, f.audit, f.tx, testCfg)
	f.svc.now = steppingClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	return f
}

// create stores a query for a fresh client with the given name.
func (f *fixture) create(t *testing.T, clientName string) *domain.QueryView {
	t.Helper()
	clientID := f.dir.add(clientName)
	view, err := f.svc.CreateQuery(context.Background(), CreateQueryInput{
		ClientID:    clientID,
		Description: "printer jam",
		CreatedDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Status:      domain.QueryStatusOpen,
	})
	if err != nil {
		t.Fatalf("CreateQuery: %v", err)
	}
	return view
}

func ptr[T any](v T) *T {
	return &v
}

func assertValidation(t *testing.T, err error, field string) {
	t.Helper()
	var ve *domain.ValidationError
	if err == nil {
		t.Fatalf("expected validation error on %q, got nil", field)
	}
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %T: %v", err, err)
	}
	for _, fe := range ve.Errors {
		if fe.Field == field {
			return
		}
	}
	t.Errorf("expected field error on %q, got %+v", field, ve.Errors)
}
