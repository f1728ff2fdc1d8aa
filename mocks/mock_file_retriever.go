package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockFileRetriever is a mock implementation of port.FileRetriever.
type MockFileRetriever struct {
	mock.Mock
}

func (m *MockFileRetriever) FetchFile(ctx context.Context, sourceID string) (string, error) {
	args := m.Called(ctx, sourceID)
	return args.String(0), args.Error(1)
}
