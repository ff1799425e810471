package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
	"github.com/heartmarshall/querydesk-backend/internal/service/listing"
)

const dateLayout = "2006-01-02"

type createQueryRequest struct {
	Client      string `json:"client"`
	Description string `json:"description"`
	CreatedDate string `json:"createdDate"`
	Status      string `json:"status"`
	Resolution  string `json:"resolution"`
}

type updateQueryRequest struct {
	Description *string `json:"description"`
	CreatedDate *string `json:"createdDate"`
	Status      *string `json:"status"`
	Resolution  *string `json:"resolution"`
}

type noteRequest struct {
	Text string `json:"text"`
}

type askRequest struct {
	Prompt string `json:"prompt"`
}

type clientResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type queryResponse struct {
	ID          string          `json:"id"`
	Client      *clientResponse `json:"client"`
	ClientName  string          `json:"clientName"`
	DisplayName string          `json:"displayName,omitempty"`
	Description string          `json:"description"`
	CreatedDate string          `json:"createdDate"`
	Status      string          `json:"status"`
	Resolution  string          `json:"resolution"`
	Notes       []noteResponse  `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type listResponse struct {
	Data       []queryResponse `json:"data"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

type auditResponse struct {
	ID         string         `json:"id"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	QueryID    string         `json:"queryId"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type historyResponse struct {
	Data []auditResponse `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type askResponse struct {
	AIResponse string `json:"aiResponse"`
}

func toQueryResponse(q domain.Query, client *domain.ClientRef) queryResponse {
	resp := queryResponse{
		ID:          q.ID.String(),
		ClientName:  q.ClientName,
		Description: q.Description,
		CreatedDate: q.CreatedDate.Format(dateLayout),
		Status:      q.Status.String(),
		Resolution:  q.Resolution,
		Notes:       make([]noteResponse, len(q.Notes)),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
	if client != nil {
		resp.Client = &clientResponse{ID: client.ID.String(), Name: client.DisplayName}
	}
	for i, n := range q.Notes {
		resp.Notes[i] = noteResponse{ID: n.ID.String(), Text: n.Text, CreatedAt: n.CreatedAt}
	}
	return resp
}

func toViewResponse(v *domain.QueryView) queryResponse {
	return toQueryResponse(v.Query, v.Client)
}

func toListResponse(p *listing.DisplayPage) listResponse {
	resp := listResponse{
		Data:       make([]queryResponse, len(p.Items)),
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
	for i, item := range p.Items {
		qr := toQueryResponse(item.Query, item.Client)
		qr.DisplayName = item.DisplayName
		resp.Data[i] = qr
	}
	return resp
}

func toHistoryResponse(records []domain.AuditRecord) historyResponse {
	resp := historyResponse{Data: make([]auditResponse, len(records))}
	for i, rec := range records {
		resp.Data[i] = auditResponse{
			ID:         rec.ID.String(),
			EntityType: rec.EntityType.String(),
			EntityID:   rec.EntityID.String(),
			QueryID:    rec.QueryID.String(),
			Action:     rec.Action.String(),
			Changes:    rec.Changes,
			CreatedAt:  rec.CreatedAt,
		}
	}
	return resp
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError("createdDate", "must be a date (YYYY-MM-DD)")
	}
	return t, nil
}

// parseClientID leaves an empty value as uuid.Nil so the service reports
// the field as required.
func parseClientID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("client", "must be a valid id")
	}
	return id, nil
}
