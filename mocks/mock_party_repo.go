package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
)

// MockPartyRepo is a mock implementation of port.PartyRepository.
type MockPartyRepo struct {
	mock.Mock
}

func (m *MockPartyRepo) Create(ctx context.Context, party *domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Party, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepo) List(ctx context.Context, kind *domain.PartyKind, offset, limit int) ([]domain.Party, int, error) {
	args := m.Called(ctx, kind, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Party), args.Int(1), args.Error(2)
}

func (m *MockPartyRepo) Update(ctx context.Context, party *domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
