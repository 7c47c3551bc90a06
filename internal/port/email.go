package port

import (
	"context"

	"gstbill/internal/domain"
)

// EmailSender defines the contract for outbound billing emails.
type EmailSender interface {
	// SendDocumentIssued notifies the party that a document was posted.
	SendDocumentIssued(ctx context.Context, toEmail, toName string, doc *domain.Document) error
	// SendPaymentReceipt confirms a payment and the remaining balance.
	SendPaymentReceipt(ctx context.Context, toEmail, toName string, doc *domain.Document, payment *domain.Payment, result *domain.SettlementResult) error
}
