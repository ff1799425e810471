package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/querydesk-backend/internal/service/assistant"
)

type assistantService interface {
	Ask(ctx context.Context, input assistant.AskInput) (string, error)
}

// AssistantHandler serves POST /api/queries/ai.
type AssistantHandler struct {
	svc assistantService
	log *slog.Logger
}

// NewAssistantHandler creates an AssistantHandler.
func NewAssistantHandler(svc assistantService, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{svc: svc, log: logger.With("handler", "assistant")}
}

// Ask forwards the prompt and returns the reply as {"aiResponse": ...}.
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err, "")
		return
	}

	reply, err := h.svc.Ask(r.Context(), assistant.AskInput{Prompt: req.Prompt})
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, askResponse{AIResponse: reply})
}
