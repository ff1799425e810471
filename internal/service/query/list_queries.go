package query

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/heartmarshall/querydesk-backend/internal/domain"
)

// ListQueries returns one page of queries, newest first, with the total
// number of stored queries. A page past the end is empty, not an error.
func (s *Service) ListQueries(ctx context.Context, input ListQueriesInput) (*domain.QueryPage, error) {
	if err := input.Validate(s.cfg.MaxPageSize); err != nil {
		return nil, err
	}

	page := input.Page
	if page == 0 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = s.cfg.DefaultPageSize
	}

	queries, total, err := s.queries.List(ctx, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("list queries: %w", err)
	}

	ids := make([]uuid.UUID, len(queries))
	for i, q := range queries {
		ids[i] = q.ClientID
	}
	refs, err := s.clients.ResolveMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve clients: %w", err)
	}

	items := make([]domain.QueryView, len(queries))
	for i, q := range queries {
		items[i] = domain.QueryView{Query: q}
		if ref, ok := refs[q.ClientID]; ok {
			items[i].Client = &ref
		}
	}

	return &domain.QueryPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// pageOffset returns (page-1)*pageSize, saturating at math.MaxInt so that a
// huge page number lands past the end instead of wrapping around.
func pageOffset(page, pageSize int) int {
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}
