package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gstbill/internal/domain"
)

// PartyRepository defines the contract for party persistence.
type PartyRepository interface {
	Create(ctx context.Context, party *domain.Party) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Party, error)
	List(ctx context.Context, kind *domain.PartyKind, offset, limit int) ([]domain.Party, int, error)
	Update(ctx context.Context, party *domain.Party) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	DocType       *domain.DocType
	Status        *domain.DocStatus
	PaymentStatus *domain.PaymentStatus
	PartyID       *uuid.UUID
	From          *time.Time
	To            *time.Time
	Offset        int
	Limit         int
}

// DocumentRepository defines the contract for document persistence. Create
// and UpdateDraft persist the document together with its line items; reads
// return the document with items attached.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, filter DocumentFilter) ([]domain.Document, int, error)
	// UpdateDraft replaces the document's fields and line items. It fails
	// with domain.ErrDocumentPosted when the document is no longer a draft.
	UpdateDraft(ctx context.Context, doc *domain.Document) error
	// Post transitions a draft to posted, freezing its line items.
	Post(ctx context.Context, id uuid.UUID, postedAt time.Time) error
	SetReceiptKey(ctx context.Context, id uuid.UUID, key string) error
	DeleteDraft(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository defines the contract for payment persistence.
type PaymentRepository interface {
	// ApplyPayment validates the payment against the document's current
	// balance due and records both the payment row and the document's new
	// settlement state as one atomic unit. The document row is locked for
	// the duration, so concurrent payments against one document serialize.
	ApplyPayment(ctx context.Context, payment *domain.Payment) (*domain.SettlementResult, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.Payment, error)
}

// ReportRepository defines the contract for reporting queries over posted
// documents.
type ReportRepository interface {
	GSTSummary(ctx context.Context, from, to time.Time) ([]domain.GSTSummaryRow, error)
	Register(ctx context.Context, filter DocumentFilter) ([]domain.Document, error)
}
