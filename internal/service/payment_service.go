package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// ApplyPaymentInput is the DTO for recording money received against a
// document.
type ApplyPaymentInput struct {
	DocumentID uuid.UUID
	Amount     decimal.Decimal
	Method     string
	Reference  string
	PaidAt     *time.Time
}

// PaymentService defines the settlement contract.
type PaymentService interface {
	// Apply validates and records a payment. Validation and the settlement
	// update happen inside one repository transaction, so two concurrent
	// payments against one document cannot both pass the balance check.
	Apply(ctx context.Context, input *ApplyPaymentInput) (*domain.Payment, *domain.SettlementResult, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.Payment, error)
}

type paymentService struct {
	paymentRepo port.PaymentRepository
	docRepo     port.DocumentRepository
	partyRepo   port.PartyRepository
	email       port.EmailSender
}

// NewPaymentService creates a new PaymentService implementation. email may
// be nil; receipt confirmations are then skipped.
func NewPaymentService(
	paymentRepo port.PaymentRepository,
	docRepo port.DocumentRepository,
	partyRepo port.PartyRepository,
	emailSender port.EmailSender,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		docRepo:     docRepo,
		partyRepo:   partyRepo,
		email:       emailSender,
	}
}

func (s *paymentService) Apply(ctx context.Context, input *ApplyPaymentInput) (*domain.Payment, *domain.SettlementResult, error) {
	paidAt := time.Now().UTC()
	if input.PaidAt != nil {
		paidAt = input.PaidAt.UTC()
	}

	payment := &domain.Payment{
		ID:         uuid.New(),
		DocumentID: input.DocumentID,
		Amount:     input.Amount,
		Method:     input.Method,
		Reference:  input.Reference,
		PaidAt:     paidAt,
	}

	result, err := s.paymentRepo.ApplyPayment(ctx, payment)
	if err != nil {
		return nil, nil, err
	}

	log.Printf("paymentService.Apply: %s received %s against document %s, balance %s (%s)",
		payment.ID, payment.Amount.StringFixed(2), payment.DocumentID,
		result.BalanceDue.StringFixed(2), result.Status)

	s.sendReceipt(ctx, payment, result)

	return payment, result, nil
}

func (s *paymentService) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.Payment, error) {
	return s.paymentRepo.ListByDocument(ctx, documentID)
}

// sendReceipt emails a payment confirmation. Failures are logged and never
// unwind the already-committed payment.
func (s *paymentService) sendReceipt(ctx context.Context, payment *domain.Payment, result *domain.SettlementResult) {
	if s.email == nil {
		return
	}
	doc, err := s.docRepo.GetByID(ctx, payment.DocumentID)
	if err != nil {
		log.Printf("paymentService.sendReceipt: document lookup for %s failed: %v", payment.DocumentID, err)
		return
	}
	party, err := s.partyRepo.GetByID(ctx, doc.PartyID)
	if err != nil {
		log.Printf("paymentService.sendReceipt: party lookup for %s failed: %v", doc.PartyID, err)
		return
	}
	if party.Email == "" {
		return
	}
	if err := s.email.SendPaymentReceipt(ctx, party.Email, party.Name, doc, payment, result); err != nil {
		log.Printf("paymentService.sendReceipt: confirmation for %s failed: %v", payment.ID, err)
	}
}
