package query

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

// AppendNote adds a note with a fresh id at the end of the query's note log.
func (s *Service) AppendNote(ctx context.Context, input AppendNoteInput) (*domain.QueryView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	var note domain.Note

	updated, err := s.mutateNotes(ctx, input.QueryID, func(txCtx context.Context, q *domain.Query) error {
		now := s.now()
		note = domain.Note{ID: uuid.New(), Text: text, CreatedAt: now}
		q.AppendNote(note, now)
		return nil
	}, func(txCtx context.Context, q domain.Query) error {
		return s.logAudit(txCtx, domain.EntityTypeNote, note.ID, q.ID, domain.AuditActionCreate, map[string]any{
			"text": note.Text,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note appended",
		slog.String("query_id", input.QueryID.String()),
		slog.String("note_id", note.ID.String()),
	)

	return s.viewAfterMutation(ctx, updated)
}

// EditNote replaces the text of a note. The note keeps its id, creation
// time and position.
func (s *Service) EditNote(ctx context.Context, input EditNoteInput) (*domain.QueryView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	var oldText string

	updated, err := s.mutateNotes(ctx, input.QueryID, func(txCtx context.Context, q *domain.Query) error {
		i := q.NoteIndex(input.NoteID)
		if i >= 0 {
			oldText = q.Notes[i].Text
		}
		_, editErr := q.EditNote(input.NoteID, text, s.now())
		return editErr
	}, func(txCtx context.Context, q domain.Query) error {
		if oldText == text {
			return nil
		}
		return s.logAudit(txCtx, domain.EntityTypeNote, input.NoteID, q.ID, domain.AuditActionUpdate, map[string]any{
			"text": map[string]any{"old": oldText, "new": text},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note edited",
		slog.String("query_id", input.QueryID.String()),
		slog.String("note_id", input.NoteID.String()),
	)

	return s.viewAfterMutation(ctx, updated)
}

// DeleteNote removes exactly one note; the others keep their order.
func (s *Service) DeleteNote(ctx context.Context, input DeleteNoteInput) (*domain.QueryView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var removed domain.Note

	updated, err := s.mutateNotes(ctx, input.QueryID, func(txCtx context.Context, q *domain.Query) error {
		var rmErr error
		removed, rmErr = q.RemoveNote(input.NoteID, s.now())
		return rmErr
	}, func(txCtx context.Context, q domain.Query) error {
		return s.logAudit(txCtx, domain.EntityTypeNote, removed.ID, q.ID, domain.AuditActionDelete, map[string]any{
			"text": removed.Text,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("query_id", input.QueryID.String()),
		slog.String("note_id", input.NoteID.String()),
	)

	return s.viewAfterMutation(ctx, updated)
}

// mutateNotes locks the query row, applies mutate to the loaded aggregate,
// writes the whole aggregate back and records the audit entry, all in one
// transaction.
func (s *Service) mutateNotes(
	ctx context.Context,
	queryID uuid.UUID,
	mutate func(txCtx context.Context, q *domain.Query) error,
	audit func(txCtx context.Context, q domain.Query) error,
) (domain.Query, error) {
	var updated domain.Query
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q, getErr := s.queries.GetByIDForUpdate(txCtx, queryID)
		if getErr != nil {
			return fmt.Errorf("get query: %w", getErr)
		}

		if mutErr := mutate(txCtx, &q); mutErr != nil {
			return mutErr
		}

		var saveErr error
		updated, saveErr = s.queries.Save(txCtx, q)
		if saveErr != nil {
			return fmt.Errorf("save query: %w", saveErr)
		}

		if auditErr := audit(txCtx, updated); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	return updated, err
}

func (s *Service) viewAfterMutation(ctx context.Context, q domain.Query) (*domain.QueryView, error) {
	view, err := s.attachClient(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("resolve client: %w", err)
	}
	return view, nil
}
