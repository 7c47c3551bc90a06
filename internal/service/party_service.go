package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// CreatePartyInput is the DTO for creating a customer or vendor.
type CreatePartyInput struct {
	Kind          domain.PartyKind
	Name          string
	GSTIN         string
	StateOfSupply string
	Email         string
	Phone         string
	Address       string
}

// UpdatePartyInput is the DTO for editing an existing party.
type UpdatePartyInput struct {
	ID            uuid.UUID
	Name          string
	GSTIN         string
	StateOfSupply string
	Email         string
	Phone         string
	Address       string
}

// PartyService defines the customer/vendor management contract.
type PartyService interface {
	Create(ctx context.Context, input *CreatePartyInput) (*domain.Party, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Party, error)
	List(ctx context.Context, kind *domain.PartyKind, offset, limit int) ([]domain.Party, int, error)
	Update(ctx context.Context, input *UpdatePartyInput) (*domain.Party, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type partyService struct {
	partyRepo port.PartyRepository
}

// NewPartyService creates a new PartyService implementation.
func NewPartyService(partyRepo port.PartyRepository) PartyService {
	return &partyService{partyRepo: partyRepo}
}

func (s *partyService) Create(ctx context.Context, input *CreatePartyInput) (*domain.Party, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: party name is required", domain.ErrInvalidInput)
	}
	if input.Kind != domain.PartyKindCustomer && input.Kind != domain.PartyKindVendor {
		return nil, fmt.Errorf("%w: unknown party kind %q", domain.ErrInvalidInput, input.Kind)
	}

	party := &domain.Party{
		ID:            uuid.New(),
		Kind:          input.Kind,
		Name:          strings.TrimSpace(input.Name),
		GSTIN:         strings.TrimSpace(input.GSTIN),
		StateOfSupply: strings.TrimSpace(input.StateOfSupply),
		Email:         strings.TrimSpace(input.Email),
		Phone:         strings.TrimSpace(input.Phone),
		Address:       input.Address,
	}
	if err := s.partyRepo.Create(ctx, party); err != nil {
		return nil, fmt.Errorf("creating party: %w", err)
	}
	return party, nil
}

func (s *partyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Party, error) {
	return s.partyRepo.GetByID(ctx, id)
}

func (s *partyService) List(ctx context.Context, kind *domain.PartyKind, offset, limit int) ([]domain.Party, int, error) {
	return s.partyRepo.List(ctx, kind, offset, limit)
}

func (s *partyService) Update(ctx context.Context, input *UpdatePartyInput) (*domain.Party, error) {
	party, err := s.partyRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: party name is required", domain.ErrInvalidInput)
	}
	party.Name = strings.TrimSpace(input.Name)
	party.GSTIN = strings.TrimSpace(input.GSTIN)
	party.StateOfSupply = strings.TrimSpace(input.StateOfSupply)
	party.Email = strings.TrimSpace(input.Email)
	party.Phone = strings.TrimSpace(input.Phone)
	party.Address = input.Address

	if err := s.partyRepo.Update(ctx, party); err != nil {
		return nil, fmt.Errorf("updating party: %w", err)
	}
	return party, nil
}

func (s *partyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.partyRepo.Delete(ctx, id)
}
