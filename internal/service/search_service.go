package service

import (
	"context"
	"strings"

	"basesync/internal/domain"
	"basesync/internal/search"
)

// SearchService exposes the cross-sheet lookup surface consumed by the
// HTTP layer.
type SearchService interface {
	SearchGroups(ctx context.Context, term string) (domain.AggregateResult, error)
	SearchClients(ctx context.Context, term string) (domain.AggregateResult, error)
	SearchDomain(ctx context.Context, d domain.Domain, term string, mode domain.SearchMode) (domain.SearchResult, error)
}

type searchService struct {
	engine *search.Engine
	guard  *Guard
}

// NewSearchService creates a SearchService over engine. The guard is
// shared with the sync service so a full search pass and a sync run never
// overlap the same remote files.
func NewSearchService(engine *search.Engine, guard *Guard) SearchService {
	return &searchService{engine: engine, guard: guard}
}

func (s *searchService) SearchGroups(ctx context.Context, term string) (domain.AggregateResult, error) {
	return s.searchAll(ctx, term, domain.SearchGroups)
}

func (s *searchService) SearchClients(ctx context.Context, term string) (domain.AggregateResult, error) {
	return s.searchAll(ctx, term, domain.SearchClients)
}

func (s *searchService) searchAll(ctx context.Context, term string, mode domain.SearchMode) (domain.AggregateResult, error) {
	if strings.TrimSpace(term) == "" {
		return domain.AggregateResult{}, domain.ErrMissingTerm
	}
	if !s.guard.TryAcquire() {
		return domain.AggregateResult{}, domain.ErrSyncBusy
	}
	defer s.guard.Release()

	return s.engine.SearchAll(ctx, term, mode), nil
}

func (s *searchService) SearchDomain(ctx context.Context, d domain.Domain, term string, mode domain.SearchMode) (domain.SearchResult, error) {
	if strings.TrimSpace(term) == "" {
		return domain.SearchResult{}, domain.ErrMissingTerm
	}
	if !s.guard.TryAcquire() {
		return domain.SearchResult{}, domain.ErrSyncBusy
	}
	defer s.guard.Release()

	return s.engine.SearchDomain(ctx, d, term, mode), nil
}
