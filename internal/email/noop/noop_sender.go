// Package noop provides a development EmailSender that only logs.
package noop

import (
	"context"
	"log"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs outbound mail to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendDocumentIssued(_ context.Context, toEmail, toName string, doc *domain.Document) error {
	log.Printf("[NOOP EMAIL] Document %s (%s) issued notification for %s (%s), amount %.2f",
		doc.Number, doc.DocType, toName, toEmail, doc.GrandTotal)
	return nil
}

func (s *noopSender) SendPaymentReceipt(_ context.Context, toEmail, toName string, doc *domain.Document, payment *domain.Payment, result *domain.SettlementResult) error {
	log.Printf("[NOOP EMAIL] Payment receipt for %s (%s): %s against %s, balance %s (%s)",
		toName, toEmail, payment.Amount.StringFixed(2), doc.Number,
		result.BalanceDue.StringFixed(2), result.Status)
	return nil
}
