// Package query implements the Query repository using PostgreSQL.
// A query and its notes live in one row; notes are stored as a JSONB array
// so every read and write moves the aggregate as a single unit.
package query

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/querydesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

const table = "queries"

var columns = []string{
	"id", "client_id", "client_name", "description", "created_date",
	"status", "resolution", "notes", "created_at", "updated_at",
}

// Repo provides query persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new query repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new query together with its notes.
func (r *Repo) Create(ctx context.Context, q domain.Query) (domain.Query, error) {
	notes, err := marshalNotes(q.Notes)
	if err != nil {
		return domain.Query{}, fmt.Errorf("query %s: %w", q.ID, err)
	}

	stmt := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(q.ID, q.ClientID, q.ClientName, q.Description, q.CreatedDate,
			string(q.Status), q.Resolution, notes, q.CreatedAt, q.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.getOne(ctx, stmt, q.ID)
}

// Save overwrites every mutable column of an existing query, notes included.
// Callers are expected to hold the row lock taken by GetByIDForUpdate.
func (r *Repo) Save(ctx context.Context, q domain.Query) (domain.Query, error) {
	notes, err := marshalNotes(q.Notes)
	if err != nil {
		return domain.Query{}, fmt.Errorf("query %s: %w", q.ID, err)
	}

	stmt := postgres.Builder().
		Update(table).
		Set("description", q.Description).
		Set("created_date", q.CreatedDate).
		Set("status", string(q.Status)).
		Set("resolution", q.Resolution).
		Set("notes", notes).
		Set("updated_at", q.UpdatedAt).
		Where(squirrel.Eq{"id": q.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.getOne(ctx, stmt, q.ID)
}

// Delete removes a query and its notes. Returns ErrNotFound if no row matched.
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
		return postgres.MapError(err, "query", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("query %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the query with the given ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Query, error) {
	stmt := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	return r.getOne(ctx, stmt, id)
}

// GetByIDForUpdate is GetByID with a row lock held until the surrounding
// transaction ends. Concurrent writers of the same query queue behind it.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Query, error) {
	stmt := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE")

	return r.getOne(ctx, stmt, id)
}

// List returns one page of queries, newest first, and the total row count.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Query, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count queries: %w", err)
	}

	if offset < 0 {
		return nil, 0, fmt.Errorf("list queries: negative offset %d: %w", offset, domain.ErrValidation)
	}
	if total == 0 || offset >= total {
		return []domain.Query{}, total, nil
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	var rows []queryRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list queries: %w", err)
	}

	items := make([]domain.Query, len(rows))
	for i, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, 0, err
		}
		items[i] = item
	}

	return items, total, nil
}

func (r *Repo) getOne(ctx context.Context, stmt squirrel.Sqlizer, id uuid.UUID) (domain.Query, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return domain.Query{}, fmt.Errorf("build query: %w", err)
	}

	var row queryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.Query{}, postgres.MapError(err, "query", id)
	}

	return row.toDomain()
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type queryRow struct {
	ID          uuid.UUID `db:"id"`
	ClientID    uuid.UUID `db:"client_id"`
	ClientName  string    `db:"client_name"`
	Description string    `db:"description"`
	CreatedDate time.Time `db:"created_date"`
	Status      string    `db:"status"`
	Resolution  string    `db:"resolution"`
	Notes       []byte    `db:"notes"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type noteRow struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func (row queryRow) toDomain() (domain.Query, error) {
	q := domain.Query{
		ID:          row.ID,
		ClientID:    row.ClientID,
		ClientName:  row.ClientName,
		Description: row.Description,
		CreatedDate: domain.DateOnly(row.CreatedDate),
		Status:      domain.QueryStatus(row.Status),
		Resolution:  row.Resolution,
		Notes:       []domain.Note{},
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if len(row.Notes) == 0 {
		return q, nil
	}

	var notes []noteRow
	if err := json.Unmarshal(row.Notes, &notes); err != nil {
		return domain.Query{}, fmt.Errorf("query %s unmarshal notes: %w", row.ID, err)
	}
	for _, n := range notes {
		q.Notes = append(q.Notes, domain.Note{ID: n.ID, Text: n.Text, CreatedAt: n.CreatedAt})
	}

	return q, nil
}

func marshalNotes(notes []domain.Note) ([]byte, error) {
	rows := make([]noteRow, len(notes))
	for i, n := range notes {
		rows[i] = noteRow{ID: n.ID, Text: n.Text, CreatedAt: n.CreatedAt}
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("marshal notes: %w", err)
	}
	return b, nil
}
