package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockReportSender is a mock implementation of port.ReportSender.
type MockReportSender struct {
	mock.Mock
}

func (m *MockReportSender) Deliver(ctx context.Context, recipient, subject string, payload []byte) error {
	args := m.Called(ctx, recipient, subject, payload)
	return args.Error(0)
}
