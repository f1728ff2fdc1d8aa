package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"basesync/internal/domain"
)

// MockSearchService is a mock implementation of service.SearchService.
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) SearchGroups(ctx context.Context, term string) (domain.AggregateResult, error) {
	args := m.Called(ctx, term)
	return args.Get(0).(domain.AggregateResult), args.Error(1)
}

func (m *MockSearchService) SearchClients(ctx context.Context, term string) (domain.AggregateResult, error) {
	args := m.Called(ctx, term)
	return args.Get(0).(domain.AggregateResult), args.Error(1)
}

func (m *MockSearchService) SearchDomain(ctx context.Context, d domain.Domain, term string, mode domain.SearchMode) (domain.SearchResult, error) {
	args := m.Called(ctx, d, term, mode)
	return args.Get(0).(domain.SearchResult), args.Error(1)
}
