// Package ses sends billing emails through AWS SESv2.
package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendDocumentIssued(ctx context.Context, toEmail, toName string, doc *domain.Document) error {
	subject := fmt.Sprintf("%s %s for %.2f", docTypeTitle(doc.DocType), doc.Number, doc.GrandTotal)
	textBody := fmt.Sprintf(
		"Hi %s,\n\n%s %s dated %s has been issued.\n\nAmount: %.2f (%s)\n\nThank you.",
		toName, docTypeTitle(doc.DocType), doc.Number,
		doc.DocDate.Format("02 Jan 2006"), doc.GrandTotal, doc.AmountInWords)
	htmlBody := buildDocumentIssuedHTML(toName, doc)
	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendPaymentReceipt(ctx context.Context, toEmail, toName string, doc *domain.Document, payment *domain.Payment, result *domain.SettlementResult) error {
	subject := fmt.Sprintf("Payment received against %s %s", docTypeTitle(doc.DocType), doc.Number)
	textBody := fmt.Sprintf(
		"Hi %s,\n\nWe received your payment of %s against %s %s.\n\nBalance due: %s\nStatus: %s\n\nThank you.",
		toName, payment.Amount.StringFixed(2), docTypeTitle(doc.DocType), doc.Number,
		result.BalanceDue.StringFixed(2), result.Status)
	htmlBody := buildPaymentReceiptHTML(toName, doc, payment, result)
	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}

func docTypeTitle(t domain.DocType) string {
	switch t {
	case domain.DocTypeInvoice:
		return "Invoice"
	case domain.DocTypePurchase:
		return "Purchase Bill"
	case domain.DocTypeExpense:
		return "Expense"
	case domain.DocTypeQuotation:
		return "Quotation"
	default:
		return string(t)
	}
}

func buildDocumentIssuedHTML(toName string, doc *domain.Document) string {
	return fmt.Sprintf(`<html><body>
<p>Hi %s,</p>
<p>%s <strong>%s</strong> dated %s has been issued.</p>
<p>Amount: <strong>%.2f</strong><br/>%s</p>
<p>Thank you.</p>
</body></html>`,
		toName, docTypeTitle(doc.DocType), doc.Number,
		doc.DocDate.Format("02 Jan 2006"), doc.GrandTotal, doc.AmountInWords)
}

func buildPaymentReceiptHTML(toName string, doc *domain.Document, payment *domain.Payment, result *domain.SettlementResult) string {
	return fmt.Sprintf(`<html><body>
<p>Hi %s,</p>
<p>We received your payment of <strong>%s</strong> against %s <strong>%s</strong>.</p>
<p>Balance due: %s<br/>Status: %s</p>
<p>Thank you.</p>
</body></html>`,
		toName, payment.Amount.StringFixed(2), docTypeTitle(doc.DocType), doc.Number,
		result.BalanceDue.StringFixed(2), result.Status)
}
