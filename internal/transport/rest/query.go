package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
	"github.com/heartmarshall/querydesk-backend/internal/service/listing"
	"github.com/heartmarshall/querydesk-backend/internal/service/query"
)

const (
	queryNotFound = "Query not found."
	noteNotFound  = "Query or note not found."
)

// queryService defines the query operations needed by QueryHandler.
type queryService interface {
	CreateQuery(ctx context.Context, input query.CreateQueryInput) (*domain.QueryView, error)
	GetQuery(ctx context.Context, id uuid.UUID) (*domain.QueryView, error)
	UpdateQuery(ctx context.Context, input query.UpdateQueryInput) (*domain.QueryView, error)
	DeleteQuery(ctx context.Context, id uuid.UUID) error
	GetHistory(ctx context.Context, queryID uuid.UUID, limit int) ([]domain.AuditRecord, error)
	AppendNote(ctx context.Context, input query.AppendNoteInput) (*domain.QueryView, error)
	EditNote(ctx context.Context, input query.EditNoteInput) (*domain.QueryView, error)
	DeleteNote(ctx context.Context, input query.DeleteNoteInput) (*domain.QueryView, error)
}

// displayLister defines the listing operation needed by QueryHandler.
type displayLister interface {
	ListForDisplay(ctx context.Context, input listing.ListForDisplayInput) (*listing.DisplayPage, error)
}

// QueryHandler serves the /api/queries endpoints.
type QueryHandler struct {
	queries queryService
	listing displayLister
	log     *slog.Logger
}

// NewQueryHandler creates a QueryHandler.
func NewQueryHandler(queries queryService, lister displayLister, logger *slog.Logger) *QueryHandler {
	return &QueryHandler{queries: queries, listing: lister, log: logger.With("handler", "query")}
}

// List handles GET /api/queries.
func (h *QueryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	var naming domain.ClientNaming
	if raw := r.URL.Query().Get("naming"); raw != "" {
		naming = domain.ParseClientNaming(raw)
	}

	result, err := h.listing.ListForDisplay(r.Context(), listing.ListForDisplayInput{
		Page:     page,
		PageSize: limit,
		Naming:   naming,
	})
	if err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(result))
}

// Create handles POST /api/queries.
func (h *QueryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createQueryRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	clientID, err := parseClientID(strings.TrimSpace(req.Client))
	if err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	var createdDate time.Time
	if raw := strings.TrimSpace(req.CreatedDate); raw != "" {
		if createdDate, err = parseDate(raw); err != nil {
			handleError(h.log, w, r, err, queryNotFound)
			return
		}
	}

	view, err := h.queries.CreateQuery(r.Context(), query.CreateQueryInput{
		ClientID:    clientID,
		Description: req.Description,
		CreatedDate: createdDate,
		Status:      domain.ParseQueryStatus(req.Status),
		Resolution:  req.Resolution,
	})
	if err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, toViewResponse(view))
}

// Get handles GET /api/queries/{id}.
func (h *QueryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	view, err := h.queries.GetQuery(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toViewResponse(view))
}

// Update handles PUT /api/queries/{id}. Absent fields are left unchanged.
func (h *QueryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	var req updateQueryRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	input := query.UpdateQueryInput{
		QueryID:     id,
		Description: req.Description,
		Resolution:  req.Resolution,
	}
	if req.Status != nil {
		st := domain.ParseQueryStatus(*req.Status)
		input.Status = &st
	}
	if req.CreatedDate != nil {
		d, err := parseDate(strings.TrimSpace(*req.CreatedDate))
		if err != nil {
			handleError(h.log, w, r, err, queryNotFound)
			return
		}
		input.CreatedDate = &d
	}

	view, err := h.queries.UpdateQuery(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toViewResponse(view))
}

// Delete handles DELETE /api/queries/{id}.
func (h *QueryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	if err := h.queries.DeleteQuery(r.Context(), id); err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Query deleted successfully."})
}

// History handles GET /api/queries/{id}/history.
func (h *QueryHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	records, err := h.queries.GetHistory(r.Context(), id, limit)
	if err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryResponse(records))
}

// AppendNote handles POST /api/queries/{id}/notes.
func (h *QueryHandler) AppendNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	var req noteRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	view, err := h.queries.AppendNote(r.Context(), query.AppendNoteInput{QueryID: id, Text: req.Text})
	if err != nil {
		handleError(h.log, w, r, err, queryNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, toViewResponse(view))
}

// EditNote handles PUT /api/queries/{id}/notes/{noteId}.
func (h *QueryHandler) EditNote(w http.ResponseWriter, r *http.Request) {
	id, noteID, err := noteIDs(r)
	if err != nil {
		handleError(h.log, w, r, err, noteNotFound)
		return
	}

	var req noteRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err, noteNotFound)
		return
	}

	view, err := h.queries.EditNote(r.Context(), query.EditNoteInput{QueryID: id, NoteID: noteID, Text: req.Text})
	if err != nil {
		handleError(h.log, w, r, err, noteNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toViewResponse(view))
}

// DeleteNote handles DELETE /api/queries/{id}/notes/{noteId}.
func (h *QueryHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, noteID, err := noteIDs(r)
	if err != nil {
		handleError(h.log, w, r, err, noteNotFound)
		return
	}

	view, err := h.queries.DeleteNote(r.Context(), query.DeleteNoteInput{QueryID: id, NoteID: noteID})
	if err != nil {
		handleError(h.log, w, r, err, noteNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toViewResponse(view))
}

func noteIDs(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	noteID, err := pathUUID(r, "noteId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return id, noteID, nil
}
