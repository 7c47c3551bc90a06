package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

// MockPartyService is a mock implementation of service.PartyService.
type MockPartyService struct {
	mock.Mock
}

func (m *MockPartyService) Create(ctx context.Context, input *service.CreatePartyInput) (*domain.Party, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Party, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) List(ctx context.Context, kind *domain.PartyKind, offset, limit int) ([]domain.Party, int, error) {
	args := m.Called(ctx, kind, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Party), args.Int(1), args.Error(2)
}

func (m *MockPartyService) Update(ctx context.Context, input *service.UpdatePartyInput) (*domain.Party, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
