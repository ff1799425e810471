// Package client implements the client directory repository using PostgreSQL.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/querydesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

const table = "clients"

var columns = []string{"id", "name", "created_at", "updated_at"}

// Repo provides client persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new client repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type clientRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r clientRow) toDomain() domain.Client {
	return domain.Client{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

// Create inserts a client.
func (r *Repo) Create(ctx context.Context, c domain.Client) (domain.Client, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.Name, c.CreatedAt, c.UpdatedAt).
		Suffix("RETURNING id, name, created_at, updated_at").
		ToSql()
	if err != nil {
		return domain.Client{}, fmt.Errorf("build insert query: %w", err)
	}

	var row clientRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.Client{}, postgres.MapError(err, "client", c.ID)
	}
	return row.toDomain(), nil
}

// GetByID returns the client with the given ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Client{}, fmt.Errorf("build select query: %w", err)
	}

	var row clientRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.Client{}, postgres.MapError(err, "client", id)
	}
	return row.toDomain(), nil
}

// GetByIDs returns the clients matching ids. Unknown ids are simply absent
// from the result; order is unspecified.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Client, error) {
	if len(ids) == 0 {
		return []domain.Client{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where("id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	var rows []clientRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("get clients by ids: %w", err)
	}

	out := make([]domain.Client, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Rename changes the client's name. Queries keep the name they captured.
func (r *Repo) Rename(ctx context.Context, id uuid.UUID, name string, now time.Time) (domain.Client, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("name", name).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, created_at, updated_at").
		ToSql()
	if err != nil {
		return domain.Client{}, fmt.Errorf("build update query: %w", err)
	}

	var row clientRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.Client{}, postgres.MapError(err, "client", id)
	}
	return row.toDomain(), nil
}

// Delete removes a client. Returns ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "client", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
