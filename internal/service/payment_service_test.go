package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
	"gstbill/internal/service"
	"gstbill/mocks"
)

func setupPaymentService() (
	service.PaymentService,
	*mocks.MockPaymentRepo,
	*mocks.MockDocumentRepo,
	*mocks.MockPartyRepo,
	*mocks.MockEmailSender,
) {
	paymentRepo := new(mocks.MockPaymentRepo)
	docRepo := new(mocks.MockDocumentRepo)
	partyRepo := new(mocks.MockPartyRepo)
	email := new(mocks.MockEmailSender)
	svc := service.NewPaymentService(paymentRepo, docRepo, partyRepo, email)
	return svc, paymentRepo, docRepo, partyRepo, email
}

func TestPaymentService_Apply_Success(t *testing.T) {
	svc, paymentRepo, docRepo, partyRepo, email := setupPaymentService()

	docID := uuid.New()
	partyID := uuid.New()
	result := &domain.SettlementResult{
		AmountReceived: decimal.RequireFromString("200"),
		BalanceDue:     decimal.RequireFromString("549"),
		Status:         domain.PaymentStatusPartial,
	}

	var recorded *domain.Payment
	paymentRepo.On("ApplyPayment", mock.Anything, mock.AnythingOfType("*domain.Payment")).
		Run(func(args mock.Arguments) { recorded = args.Get(1).(*domain.Payment) }).
		Return(result, nil)
	docRepo.On("GetByID", mock.Anything, docID).Return(&domain.Document{
		ID: docID, PartyID: partyID, GrandTotal: 749,
	}, nil)
	partyRepo.On("GetByID", mock.Anything, partyID).Return(intraStateParty(partyID), nil)
	email.On("SendPaymentReceipt", mock.Anything, "billing@buyer.example", "Buyer Inc",
		mock.Anything, mock.Anything, result).Return(nil)

	paidAt := time.Date(2025, 1, 20, 10, 30, 0, 0, time.UTC)
	payment, got, err := svc.Apply(context.Background(), &service.ApplyPaymentInput{
		DocumentID: docID,
		Amount:     decimal.RequireFromString("200"),
		Method:     "upi",
		Reference:  "UPI-12345",
		PaidAt:     &paidAt,
	})
	require.NoError(t, err)
	assert.Equal(t, result, got)

	require.NotNil(t, recorded)
	assert.Equal(t, docID, recorded.DocumentID)
	assert.True(t, recorded.Amount.Equal(decimal.RequireFromString("200")))
	assert.Equal(t, paidAt, recorded.PaidAt)
	assert.Equal(t, payment.ID, recorded.ID)
	email.AssertExpectations(t)
}

func TestPaymentService_Apply_RepoErrorsPropagate(t *testing.T) {
	svc, paymentRepo, _, _, email := setupPaymentService()

	for _, sentinel := range []error{
		domain.ErrInvalidPaymentAmount,
		domain.ErrPaymentExceedsDue,
		domain.ErrDocumentNotPosted,
		domain.ErrDocumentNotSettleable,
	} {
		paymentRepo.ExpectedCalls = nil
		paymentRepo.On("ApplyPayment", mock.Anything, mock.Anything).Return(nil, sentinel)

		_, _, err := svc.Apply(context.Background(), &service.ApplyPaymentInput{
			DocumentID: uuid.New(),
			Amount:     decimal.RequireFromString("10"),
		})
		assert.ErrorIs(t, err, sentinel)
	}
	email.AssertNotCalled(t, "SendPaymentReceipt",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_Apply_EmailFailureDoesNotFail(t *testing.T) {
	svc, paymentRepo, docRepo, partyRepo, email := setupPaymentService()

	docID := uuid.New()
	partyID := uuid.New()
	result := &domain.SettlementResult{
		AmountReceived: decimal.RequireFromString("749"),
		BalanceDue:     decimal.Zero,
		Status:         domain.PaymentStatusPaid,
	}
	paymentRepo.On("ApplyPayment", mock.Anything, mock.Anything).Return(result, nil)
	docRepo.On("GetByID", mock.Anything, docID).Return(&domain.Document{
		ID: docID, PartyID: partyID,
	}, nil)
	partyRepo.On("GetByID", mock.Anything, partyID).Return(intraStateParty(partyID), nil)
	email.On("SendPaymentReceipt", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	_, got, err := svc.Apply(context.Background(), &service.ApplyPaymentInput{
		DocumentID: docID,
		Amount:     decimal.RequireFromString("749"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, got.Status)
}

func TestPaymentService_ListByDocument(t *testing.T) {
	svc, paymentRepo, _, _, _ := setupPaymentService()

	docID := uuid.New()
	payments := []domain.Payment{
		{ID: uuid.New(), DocumentID: docID, Amount: decimal.RequireFromString("100")},
		{ID: uuid.New(), DocumentID: docID, Amount: decimal.RequireFromString("250.50")},
	}
	paymentRepo.On("ListByDocument", mock.Anything, docID).Return(payments, nil)

	got, err := svc.ListByDocument(context.Background(), docID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
