package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedClient inserts a client with a unique name.
func SeedClient(t *testing.T, pool *pgxpool.Pool) domain.Client {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Client{
		ID:        uuid.New(),
		Name:      "Client " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO clients (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClient: %v", err)
	}

	return c
}

// SeedQuery inserts an OPEN query for client with the given notes texts.
func SeedQuery(t *testing.T, pool *pgxpool.Pool, client domain.Client, notes ...string) domain.Query {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	q := domain.Query{
		ID:          uuid.New(),
		ClientID:    client.ID,
		ClientName:  client.Name,
		Description: "Seeded query " + uniqueSuffix(),
		CreatedDate: domain.DateOnly(now),
		Status:      domain.QueryStatusOpen,
		Notes:       []domain.Note{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, text := range notes {
		q.Notes = append(q.Notes, domain.Note{ID: uuid.New(), Text: text, CreatedAt: now})
	}

	type noteJSON struct {
		ID        uuid.UUID `json:"id"`
		Text      string    `json:"text"`
		CreatedAt time.Time `json:"created_at"`
	}
	raw := make([]noteJSON, len(q.Notes))
	for i, n := range q.Notes {
		raw[i] = noteJSON{ID: n.ID, Text: n.Text, CreatedAt: n.CreatedAt}
	}
	notesJSON, err := json.Marshal(raw)
	if err != nil {
		t.Fatalf("testhelper: SeedQuery marshal notes: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO queries (id, client_id, client_name, description, created_date, status, resolution, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		q.ID, q.ClientID, q.ClientName, q.Description, q.CreatedDate, string(q.Status), q.Resolution, notesJSON, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuery: %v", err)
	}

	return q
}
