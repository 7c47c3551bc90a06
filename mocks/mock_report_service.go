package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GSTSummary(ctx context.Context, from, to time.Time) ([]domain.GSTSummaryRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTSummaryRow), args.Error(1)
}

func (m *MockReportService) RegisterCSV(ctx context.Context, w io.Writer, filter port.DocumentFilter) error {
	args := m.Called(ctx, w, filter)
	return args.Error(0)
}

func (m *MockReportService) RegisterXLSX(ctx context.Context, w io.Writer, filter port.DocumentFilter) error {
	args := m.Called(ctx, w, filter)
	return args.Error(0)
}

func (m *MockReportService) GSTSummaryXLSX(ctx context.Context, w io.Writer, from, to time.Time) error {
	args := m.Called(ctx, w, from, to)
	return args.Error(0)
}
