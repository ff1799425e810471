package rest

import (
	"net/http"

	"github.com/heartmarshall/querydesk-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Queries   *QueryHandler
	Assistant *AssistantHandler
	// AssistantLimit wraps the assistant route; nil leaves it unlimited.
	AssistantLimit middleware.Middleware
}

// NewRouter registers every route on a fresh ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/queries", h.Queries.List)
	mux.HandleFunc("POST /api/queries", h.Queries.Create)
	mux.HandleFunc("GET /api/queries/{id}", h.Queries.Get)
	mux.HandleFunc("PUT /api/queries/{id}", h.Queries.Update)
	mux.HandleFunc("DELETE /api/queries/{id}", h.Queries.Delete)
	mux.HandleFunc("GET /api/queries/{id}/history", h.Queries.History)
	mux.HandleFunc("POST /api/queries/{id}/notes", h.Queries.AppendNote)
	mux.HandleFunc("PUT /api/queries/{id}/notes/{noteId}", h.Queries.EditNote)
	mux.HandleFunc("DELETE /api/queries/{id}/notes/{noteId}", h.Queries.DeleteNote)

	var ask http.Handler = http.HandlerFunc(h.Assistant.Ask)
	if h.AssistantLimit != nil {
		ask = h.AssistantLimit(ask)
	}
	mux.Handle("POST /api/queries/ai", ask)

	return mux
}
