package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// MockReportRepo is a mock implementation of port.ReportRepository.
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) GSTSummary(ctx context.Context, from, to time.Time) ([]domain.GSTSummaryRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTSummaryRow), args.Error(1)
}

func (m *MockReportRepo) Register(ctx context.Context, filter port.DocumentFilter) ([]domain.Document, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}
