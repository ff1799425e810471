package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Query is a customer-support case raised for a client. It owns its notes:
// a Query and its Notes are read and written as one unit.
type Query struct {
	ID       uuid.UUID
	ClientID uuid.UUID
	// ClientName is the client's name as it was when the query was created.
	// It is never refreshed from the client directory.
	ClientName  string
	Description string
	// CreatedDate is the business date supplied by the caller, distinct from CreatedAt.
	CreatedDate time.Time
	Status      QueryStatus
	Resolution  string
	Notes       []Note
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Note is a staff annotation on a Query. Its ID is unique within the owning
// query and is never reused after deletion.
type Note struct {
	ID        uuid.UUID
	Text      string
	CreatedAt time.Time
}

// QueryUpdateParams holds the mutable scalar fields of a Query.
// nil means "leave unchanged".
type QueryUpdateParams struct {
	Description *string
	CreatedDate *time.Time
	Status      *QueryStatus
	Resolution  *string
}

// IsEmpty reports whether no field is set.
func (p QueryUpdateParams) IsEmpty() bool {
	return p.Description == nil && p.CreatedDate == nil && p.Status == nil && p.Resolution == nil
}

// Apply copies the set fields onto q and refreshes UpdatedAt.
func (q *Query) Apply(p QueryUpdateParams, now time.Time) {
	if p.Description != nil {
		q.Description = *p.Description
	}
	if p.CreatedDate != nil {
		q.CreatedDate = *p.CreatedDate
	}
	if p.Status != nil {
		q.Status = *p.Status
	}
	if p.Resolution != nil {
		q.Resolution = *p.Resolution
	}
	q.UpdatedAt = now
}

// NoteIndex returns the position of the note with the given ID, or -1.
func (q *Query) NoteIndex(noteID uuid.UUID) int {
	for i := range q.Notes {
		if q.Notes[i].ID == noteID {
			return i
		}
	}
	return -1
}

// AppendNote adds a note at the end of the log.
func (q *Query) AppendNote(n Note, now time.Time) {
	q.Notes = append(q.Notes, n)
	q.UpdatedAt = now
}

// EditNote replaces the text of the note with the given ID, keeping its ID,
// CreatedAt and position.
func (q *Query) EditNote(noteID uuid.UUID, text string, now time.Time) (Note, error) {
	i := q.NoteIndex(noteID)
	if i < 0 {
		return Note{}, fmt.Errorf("note %s: %w", noteID, ErrNotFound)
	}
	q.Notes[i].Text = text
	q.UpdatedAt = now
	return q.Notes[i], nil
}

// RemoveNote deletes the note with the given ID. The remaining notes keep
// their relative order.
func (q *Query) RemoveNote(noteID uuid.UUID, now time.Time) (Note, error) {
	i := q.NoteIndex(noteID)
	if i < 0 {
		return Note{}, fmt.Errorf("note %s: %w", noteID, ErrNotFound)
	}
	removed := q.Notes[i]
	notes := make([]Note, 0, len(q.Notes)-1)
	notes = append(notes, q.Notes[:i]...)
	notes = append(notes, q.Notes[i+1:]...)
	q.Notes = notes
	q.UpdatedAt = now
	return removed, nil
}

// QueryView is a Query together with a live view of its client, resolved at
// read time. Client is nil when the client no longer resolves.
type QueryView struct {
	Query
	Client *ClientRef
}

// QueryPage is one window of the query listing.
type QueryPage struct {
	Items    []QueryView
	Total    int
	Page     int
	PageSize int
}

// TotalPages returns ceil(Total/PageSize).
func (p QueryPage) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
