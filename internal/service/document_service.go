package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"gstbill/internal/config"
	"gstbill/internal/domain"
	"gstbill/internal/engine"
	"gstbill/internal/numwords"
	"gstbill/internal/port"
)

// DocumentItemInput is one line on an incoming document payload. TaxRate
// accepts either a JSON number or a labeled string ("GST @ 18%", "None").
type DocumentItemInput struct {
	Description     string      `json:"description"`
	HSNCode         string      `json:"hsn_code"`
	Quantity        float64     `json:"quantity"`
	Unit            string      `json:"unit"`
	UnitRate        float64     `json:"unit_rate"`
	DiscountPercent float64     `json:"discount_percent"`
	TaxRate         engine.Rate `json:"tax_rate"`
}

// DocumentInput is the DTO for creating or updating a draft document.
// Aggregate-amount documents (expenses with no line breakdown) leave Items
// empty and set AggregateAmount/AggregateRate instead.
type DocumentInput struct {
	DocType         domain.DocType      `json:"doc_type"`
	Number          string              `json:"number"`
	PartyID         uuid.UUID           `json:"party_id"`
	DocDate         time.Time           `json:"doc_date"`
	DueDate         *time.Time          `json:"due_date,omitempty"`
	Notes           string              `json:"notes"`
	Items           []DocumentItemInput `json:"items"`
	DiscountMode    domain.DiscountMode `json:"discount_mode"`
	DiscountValue   float64             `json:"discount_value"`
	Surcharge       float64             `json:"surcharge"`
	TaxMode         domain.TaxMode      `json:"tax_mode"`
	RoundOff        *bool               `json:"round_off,omitempty"`
	AggregateAmount float64             `json:"aggregate_amount"`
	AggregateRate   engine.Rate         `json:"aggregate_rate"`
}

// AttachReceiptInput carries an uploaded receipt file for an expense document.
type AttachReceiptInput struct {
	DocumentID  uuid.UUID
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// DocumentService defines the document lifecycle contract. Write operations
// recompute totals through the tax engine; warnings carry non-fatal issues
// such as tax rates that could not be resolved.
type DocumentService interface {
	CreateDraft(ctx context.Context, input *DocumentInput) (*domain.Document, []string, error)
	UpdateDraft(ctx context.Context, id uuid.UUID, input *DocumentInput) (*domain.Document, []string, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, filter port.DocumentFilter) ([]domain.Document, int, error)
	// PreviewTotals runs the engine over the input without persisting
	// anything. Totals shown in an editing form come from here, so the
	// preview and the saved document can never disagree.
	PreviewTotals(ctx context.Context, input *DocumentInput) (*engine.Totals, []string, error)
	Post(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	DeleteDraft(ctx context.Context, id uuid.UUID) error
	AttachReceipt(ctx context.Context, input *AttachReceiptInput) (*domain.Document, error)
	ReceiptURL(ctx context.Context, id uuid.UUID) (string, error)
}

type documentService struct {
	docRepo   port.DocumentRepository
	partyRepo port.PartyRepository
	storage   port.ObjectStorage
	email     port.EmailSender
	seller    domain.SellerProfile
	s3cfg     config.S3Config
	billing   config.BillingConfig
}

// NewDocumentService creates a new DocumentService implementation. storage
// and email may be nil; receipt attachment and posting notifications degrade
// to errors and log lines respectively.
func NewDocumentService(
	docRepo port.DocumentRepository,
	partyRepo port.PartyRepository,
	storage port.ObjectStorage,
	emailSender port.EmailSender,
	seller domain.SellerProfile,
	s3cfg config.S3Config,
	billing config.BillingConfig,
) DocumentService {
	return &documentService{
		docRepo:   docRepo,
		partyRepo: partyRepo,
		storage:   storage,
		email:     emailSender,
		seller:    seller,
		s3cfg:     s3cfg,
		billing:   billing,
	}
}

func (s *documentService) CreateDraft(ctx context.Context, input *DocumentInput) (*domain.Document, []string, error) {
	doc, warnings, err := s.buildDocument(ctx, input)
	if err != nil {
		return nil, nil, err
	}
	doc.ID = uuid.New()
	doc.Status = domain.DocStatusDraft
	doc.PaymentStatus = domain.PaymentStatusUnpaid
	for i := range doc.Items {
		doc.Items[i].ID = uuid.New()
		doc.Items[i].DocumentID = doc.ID
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, nil, fmt.Errorf("creating document: %w", err)
	}

	log.Printf("documentService.CreateDraft: created %s %s (%s)", doc.DocType, doc.Number, doc.ID)
	return doc, warnings, nil
}

func (s *documentService) UpdateDraft(ctx context.Context, id uuid.UUID, input *DocumentInput) (*domain.Document, []string, error) {
	existing, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if existing.Status != domain.DocStatusDraft {
		return nil, nil, domain.ErrDocumentPosted
	}

	// The document type is fixed at creation; an expense cannot mutate into
	// an invoice mid-draft.
	if input.DocType != "" && input.DocType != existing.DocType {
		return nil, nil, fmt.Errorf("%w: document type cannot change after creation", domain.ErrInvalidInput)
	}
	input.DocType = existing.DocType

	doc, warnings, err := s.buildDocument(ctx, input)
	if err != nil {
		return nil, nil, err
	}
	doc.ID = existing.ID
	doc.Status = existing.Status
	doc.AmountReceived = existing.AmountReceived
	doc.PaymentStatus = existing.PaymentStatus
	doc.ReceiptKey = existing.ReceiptKey
	doc.CreatedAt = existing.CreatedAt
	for i := range doc.Items {
		doc.Items[i].ID = uuid.New()
		doc.Items[i].DocumentID = doc.ID
	}

	if err := s.docRepo.UpdateDraft(ctx, doc); err != nil {
		return nil, nil, err
	}
	return doc, warnings, nil
}

func (s *documentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	return s.docRepo.GetByID(ctx, id)
}

func (s *documentService) List(ctx context.Context, filter port.DocumentFilter) ([]domain.Document, int, error) {
	return s.docRepo.List(ctx, filter)
}

func (s *documentService) PreviewTotals(ctx context.Context, input *DocumentInput) (*engine.Totals, []string, error) {
	buyerState, err := s.buyerState(ctx, input.PartyID)
	if err != nil {
		return nil, nil, err
	}
	totals, warnings, err := s.compute(input, buyerState)
	if err != nil {
		return nil, nil, err
	}
	return &totals, warnings, nil
}

func (s *documentService) Post(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.Status != domain.DocStatusDraft {
		return nil, domain.ErrDocumentPosted
	}

	postedAt := time.Now().UTC()
	if err := s.docRepo.Post(ctx, id, postedAt); err != nil {
		return nil, err
	}
	doc.Status = domain.DocStatusPosted
	doc.PostedAt = &postedAt

	if s.email != nil {
		party, perr := s.partyRepo.GetByID(ctx, doc.PartyID)
		if perr != nil {
			log.Printf("documentService.Post: party lookup for %s failed: %v", doc.ID, perr)
		} else if party.Email != "" {
			if serr := s.email.SendDocumentIssued(ctx, party.Email, party.Name, doc); serr != nil {
				log.Printf("documentService.Post: issue notification for %s failed: %v", doc.ID, serr)
			}
		}
	}

	log.Printf("documentService.Post: posted %s %s (%s), grand total %.2f",
		doc.DocType, doc.Number, doc.ID, doc.GrandTotal)
	return doc, nil
}

func (s *documentService) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	return s.docRepo.DeleteDraft(ctx, id)
}

// receiptContentTypes lists the accepted receipt upload types.
var receiptContentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
}

func (s *documentService) AttachReceipt(ctx context.Context, input *AttachReceiptInput) (*domain.Document, error) {
	if s.storage == nil {
		return nil, domain.ErrUploadFailed
	}

	doc, err := s.docRepo.GetByID(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}
	if doc.DocType != domain.DocTypeExpense {
		return nil, fmt.Errorf("%w: receipts attach to expense documents only", domain.ErrInvalidInput)
	}

	if !receiptContentTypes[input.ContentType] {
		return nil, domain.ErrUnsupportedFileType
	}
	if maxBytes := s.s3cfg.MaxFileSizeMB * 1024 * 1024; maxBytes > 0 && input.Size > maxBytes {
		return nil, domain.ErrAttachmentTooLarge
	}

	key := fmt.Sprintf("receipts/%s/%s%s", doc.ID, uuid.New(), path.Ext(input.FileName))
	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        input.Body,
		ContentType: input.ContentType,
		Size:        input.Size,
	}); err != nil {
		log.Printf("documentService.AttachReceipt: upload for %s failed: %v", doc.ID, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	if err := s.docRepo.SetReceiptKey(ctx, doc.ID, key); err != nil {
		// Orphaned object; remove it so storage does not accumulate strays.
		if derr := s.storage.Delete(ctx, s.s3cfg.Bucket, key); derr != nil {
			log.Printf("documentService.AttachReceipt: cleanup of %s failed: %v", key, derr)
		}
		return nil, err
	}
	doc.ReceiptKey = key
	return doc, nil
}

func (s *documentService) ReceiptURL(ctx context.Context, id uuid.UUID) (string, error) {
	if s.storage == nil {
		return "", domain.ErrNotFound
	}
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if doc.ReceiptKey == "" {
		return "", domain.ErrNotFound
	}
	return s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, doc.ReceiptKey, s.s3cfg.PresignExpiry)
}

// buildDocument validates the input, resolves the buyer state from the party
// and runs the engine, returning a fully-derived document ready to persist.
func (s *documentService) buildDocument(ctx context.Context, input *DocumentInput) (*domain.Document, []string, error) {
	if !domain.ValidDocTypes[input.DocType] {
		return nil, nil, domain.ErrInvalidDocType
	}
	if strings.TrimSpace(input.Number) == "" {
		return nil, nil, fmt.Errorf("%w: document number is required", domain.ErrInvalidInput)
	}
	if input.DocDate.IsZero() {
		return nil, nil, fmt.Errorf("%w: document date is required", domain.ErrInvalidInput)
	}

	buyerState, err := s.buyerState(ctx, input.PartyID)
	if err != nil {
		return nil, nil, err
	}

	totals, warnings, err := s.compute(input, buyerState)
	if err != nil {
		return nil, nil, err
	}

	roundOff := s.billing.RoundOffDefault
	if input.RoundOff != nil {
		roundOff = *input.RoundOff
	}

	doc := &domain.Document{
		DocType:         input.DocType,
		Number:          strings.TrimSpace(input.Number),
		PartyID:         input.PartyID,
		DocDate:         input.DocDate,
		DueDate:         input.DueDate,
		Notes:           input.Notes,
		DiscountMode:    input.DiscountMode,
		DiscountValue:   input.DiscountValue,
		Surcharge:       input.Surcharge,
		TaxMode:         input.TaxMode,
		RoundOff:        roundOff,
		BuyerState:      buyerState,
		AggregateAmount: input.AggregateAmount,
		AggregateRate:   input.AggregateRate.Percent,

		Subtotal:             totals.Subtotal,
		ItemDiscountTotal:    totals.ItemDiscountTotal,
		TaxableAfterDiscount: totals.TaxableAfterDiscount,
		TaxAmount:            totals.TaxAmount,
		CGST:                 totals.CGST,
		SGST:                 totals.SGST,
		IGST:                 totals.IGST,
		AdditionalCharges:    totals.AdditionalCharges,
		PreRoundTotal:        totals.PreRoundTotal,
		RoundOffDelta:        totals.RoundOffDelta,
		GrandTotal:           totals.GrandTotal,
		AmountInWords:        numwords.Rupees(int64(totals.GrandTotal + 1e-9)),
	}

	doc.Items = make([]domain.DocumentItem, len(input.Items))
	for i, it := range input.Items {
		doc.Items[i] = domain.DocumentItem{
			Position:        i,
			Description:     it.Description,
			HSNCode:         it.HSNCode,
			Quantity:        it.Quantity,
			Unit:            it.Unit,
			UnitRate:        it.UnitRate,
			DiscountPercent: it.DiscountPercent,
			RateLabel:       it.TaxRate.Label,
			TaxRatePercent:  it.TaxRate.Percent,
			RateResolved:    it.TaxRate.Resolved,
		}
	}

	return doc, warnings, nil
}

// compute dispatches to the line-item or aggregate pipeline. Expense
// documents without line items fall back to the single aggregate amount.
func (s *documentService) compute(input *DocumentInput, buyerState string) (engine.Totals, []string, error) {
	roundOff := s.billing.RoundOffDefault
	if input.RoundOff != nil {
		roundOff = *input.RoundOff
	}

	var warnings []string

	if len(input.Items) == 0 && input.DocType == domain.DocTypeExpense {
		if !input.AggregateRate.Resolved {
			warnings = append(warnings,
				fmt.Sprintf("tax rate %q could not be resolved; treated as 0%%", input.AggregateRate.Label))
		}
		totals, err := engine.ComputeAggregate(engine.AggregateInput{
			Amount:      input.AggregateAmount,
			RatePercent: input.AggregateRate.Percent,
			Mode:        input.TaxMode,
			RoundOff:    roundOff,
			BuyerState:  buyerState,
			SellerState: s.seller.StateOfSupply,
		})
		return totals, warnings, err
	}

	items := make([]engine.LineItem, len(input.Items))
	for i, it := range input.Items {
		if !it.TaxRate.Resolved {
			warnings = append(warnings,
				fmt.Sprintf("line %d: tax rate %q could not be resolved; treated as 0%%", i+1, it.TaxRate.Label))
		}
		items[i] = engine.LineItem{
			Quantity:        it.Quantity,
			UnitRate:        it.UnitRate,
			DiscountPercent: it.DiscountPercent,
			TaxRatePercent:  it.TaxRate.Percent,
		}
	}

	totals, err := engine.ComputeDocument(engine.DocumentInput{
		Items: items,
		Discount: engine.Discount{
			Mode:  input.DiscountMode,
			Value: input.DiscountValue,
		},
		Surcharge:   input.Surcharge,
		RoundOff:    roundOff,
		BuyerState:  buyerState,
		SellerState: s.seller.StateOfSupply,
	})
	return totals, warnings, err
}

func (s *documentService) buyerState(ctx context.Context, partyID uuid.UUID) (string, error) {
	party, err := s.partyRepo.GetByID(ctx, partyID)
	if err != nil {
		return "", err
	}
	return party.StateOfSupply, nil
}
