// Package listing builds the display listing of support queries: one page of
// queries, each labelled with the client name chosen by the naming policy.
package listing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
	"github.com/heartmarshall/querydesk-backend/internal/service/query"
)

type queryLister interface {
	ListQueries(ctx context.Context, input query.ListQueriesInput) (*domain.QueryPage, error)
}

// Service produces display pages.
type Service struct {
	queries       queryLister
	defaultNaming domain.ClientNaming
	log           *slog.Logger
}

// NewService creates a new Listing service. An invalid defaultNaming falls
// back to the historical snapshot.
func NewService(log *slog.Logger, queries queryLister, defaultNaming domain.ClientNaming) *Service {
	if !defaultNaming.IsValid() {
		defaultNaming = domain.ClientNamingHistorical
	}
	return &Service{
		queries:       queries,
		defaultNaming: defaultNaming,
		log:           log.With("service", "listing"),
	}
}

// ListForDisplayInput holds the parameters for a display listing.
// An empty Naming uses the service default.
type ListForDisplayInput struct {
	Page     int
	PageSize int
	Naming   domain.ClientNaming
}

// DisplayRecord is a query with the name to show for its client.
type DisplayRecord struct {
	Query       domain.Query
	Client      *domain.ClientRef
	DisplayName string
}

// DisplayPage is one page of the display listing.
type DisplayPage struct {
	Items      []DisplayRecord
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// ListForDisplay returns one page of queries labelled per the naming policy.
// ClientNamingCurrent shows the live name where the client still resolves and
// falls back to the snapshot otherwise.
func (s *Service) ListForDisplay(ctx context.Context, input ListForDisplayInput) (*DisplayPage, error) {
	naming := input.Naming
	if naming == "" {
		naming = s.defaultNaming
	}
	if !naming.IsValid() {
		return nil, domain.NewValidationError("naming", "must be historical or current")
	}

	page, err := s.queries.ListQueries(ctx, query.ListQueriesInput{Page: input.Page, PageSize: input.PageSize})
	if err != nil {
		return nil, fmt.Errorf("list queries: %w", err)
	}

	items := make([]DisplayRecord, len(page.Items))
	for i, v := range page.Items {
		items[i] = DisplayRecord{
			Query:       v.Query,
			Client:      v.Client,
			DisplayName: displayName(v, naming),
		}
	}

	s.log.DebugContext(ctx, "listing built",
		slog.String("naming", string(naming)),
		slog.Int("page", page.Page),
		slog.Int("items", len(items)),
	)

	return &DisplayPage{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages(),
	}, nil
}

func displayName(v domain.QueryView, naming domain.ClientNaming) string {
	if naming == domain.ClientNamingCurrent && v.Client != nil && v.Client.DisplayName != "" {
		return v.Client.DisplayName
	}
	return v.ClientName
}
