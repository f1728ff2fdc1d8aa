package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"basesync/internal/domain"
)

// MockSyncService is a mock implementation of service.SyncService.
type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) Run(ctx context.Context, d domain.Domain) (*domain.SyncOutcome, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncOutcome), args.Error(1)
}
