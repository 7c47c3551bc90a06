package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendDocumentIssued(ctx context.Context, toEmail, toName string, doc *domain.Document) error {
	args := m.Called(ctx, toEmail, toName, doc)
	return args.Error(0)
}

func (m *MockEmailSender) SendPaymentReceipt(ctx context.Context, toEmail, toName string, doc *domain.Document, payment *domain.Payment, result *domain.SettlementResult) error {
	args := m.Called(ctx, toEmail, toName, doc, payment, result)
	return args.Error(0)
}
