package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/engine"
	"gstbill/internal/port"
	"gstbill/internal/service"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) CreateDraft(ctx context.Context, input *service.DocumentInput) (*domain.Document, []string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, warningsArg(args, 1), args.Error(2)
	}
	return args.Get(0).(*domain.Document), warningsArg(args, 1), args.Error(2)
}

func (m *MockDocumentService) UpdateDraft(ctx context.Context, id uuid.UUID, input *service.DocumentInput) (*domain.Document, []string, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, warningsArg(args, 1), args.Error(2)
	}
	return args.Get(0).(*domain.Document), warningsArg(args, 1), args.Error(2)
}

func (m *MockDocumentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, filter port.DocumentFilter) ([]domain.Document, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Document), args.Int(1), args.Error(2)
}

func (m *MockDocumentService) PreviewTotals(ctx context.Context, input *service.DocumentInput) (*engine.Totals, []string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, warningsArg(args, 1), args.Error(2)
	}
	return args.Get(0).(*engine.Totals), warningsArg(args, 1), args.Error(2)
}

func (m *MockDocumentService) Post(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentService) AttachReceipt(ctx context.Context, input *service.AttachReceiptInput) (*domain.Document, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) ReceiptURL(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func warningsArg(args mock.Arguments, idx int) []string {
	if args.Get(idx) == nil {
		return nil
	}
	return args.Get(idx).([]string)
}
