package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

// MockPaymentService is a mock implementation of service.PaymentService.
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Apply(ctx context.Context, input *service.ApplyPaymentInput) (*domain.Payment, *domain.SettlementResult, error) {
	args := m.Called(ctx, input)
	var payment *domain.Payment
	var result *domain.SettlementResult
	if args.Get(0) != nil {
		payment = args.Get(0).(*domain.Payment)
	}
	if args.Get(1) != nil {
		result = args.Get(1).(*domain.SettlementResult)
	}
	return payment, result, args.Error(2)
}

func (m *MockPaymentService) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.Payment, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
