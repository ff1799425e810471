package query

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

// CreateQueryInput holds the parameters for creating a query.
type CreateQueryInput struct {
	ClientID    uuid.UUID
	Description string
	CreatedDate time.Time
	Status      domain.QueryStatus
	Resolution  string
}

// Validate checks all fields and collects all errors.
func (i CreateQueryInput) Validate() error {
	var errs []domain.FieldError

	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client", Message: "required"})
	}
	errs = append(errs, validateDescription(i.Description)...)
	if i.CreatedDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "createdDate", Message: "required"})
	}
	errs = append(errs, validateStatus(i.Status)...)
	errs = append(errs, validateResolution(i.Resolution)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListQueriesInput holds the parameters for listing queries.
// Zero values mean "use the configured default".
type ListQueriesInput struct {
	Page     int
	PageSize int
}

// Validate checks all fields and collects all errors.
func (i ListQueriesInput) Validate(maxPageSize int) error {
	var errs []domain.FieldError
	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be positive"})
	}
	if i.PageSize < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	}
	if i.PageSize > maxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", maxPageSize)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateQueryInput holds the parameters for a partial update.
// nil fields are left unchanged.
type UpdateQueryInput struct {
	QueryID     uuid.UUID
	Description *string
	CreatedDate *time.Time
	Status      *domain.QueryStatus
	Resolution  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateQueryInput) Validate() error {
	var errs []domain.FieldError

	if i.QueryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Description != nil {
		errs = append(errs, validateDescription(*i.Description)...)
	}
	if i.CreatedDate != nil && i.CreatedDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "createdDate", Message: "invalid date"})
	}
	if i.Status != nil {
		errs = append(errs, validateStatus(*i.Status)...)
	}
	if i.Resolution != nil {
		errs = append(errs, validateResolution(*i.Resolution)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AppendNoteInput holds the parameters for appending a note.
type AppendNoteInput struct {
	QueryID uuid.UUID
	Text    string
}

// Validate checks all fields and collects all errors.
func (i AppendNoteInput) Validate() error {
	var errs []domain.FieldError
	if i.QueryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateNoteText(i.Text)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditNoteInput holds the parameters for editing a note.
type EditNoteInput struct {
	QueryID uuid.UUID
	NoteID  uuid.UUID
	Text    string
}

// Validate checks all fields and collects all errors.
func (i EditNoteInput) Validate() error {
	var errs []domain.FieldError
	if i.QueryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "noteId", Message: "required"})
	}
	errs = append(errs, validateNoteText(i.Text)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteNoteInput holds the parameters for deleting a note.
type DeleteNoteInput struct {
	QueryID uuid.UUID
	NoteID  uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteNoteInput) Validate() error {
	var errs []domain.FieldError
	if i.QueryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "noteId", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateDescription(s string) []domain.FieldError {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return []domain.FieldError{{Field: "description", Message: "required"}}
	}
	if utf8.RuneCountInString(trimmed) > MaxDescriptionLength {
		return []domain.FieldError{{Field: "description", Message: fmt.Sprintf("max %d characters", MaxDescriptionLength)}}
	}
	return nil
}

func validateStatus(st domain.QueryStatus) []domain.FieldError {
	if st == "" {
		return []domain.FieldError{{Field: "status", Message: "required"}}
	}
	if !st.IsValid() {
		return []domain.FieldError{{Field: "status", Message: "must be one of OPEN, IN_PROGRESS, CLOSED"}}
	}
	return nil
}

func validateResolution(s string) []domain.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(s)) > MaxResolutionLength {
		return []domain.FieldError{{Field: "resolution", Message: fmt.Sprintf("max %d characters", MaxResolutionLength)}}
	}
	return nil
}

func validateNoteText(s string) []domain.FieldError {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return []domain.FieldError{{Field: "text", Message: "required"}}
	}
	if utf8.RuneCountInString(trimmed) > MaxNoteLength {
		return []domain.FieldError{{Field: "text", Message: fmt.Sprintf("max %d characters", MaxNoteLength)}}
	}
	return nil
}
