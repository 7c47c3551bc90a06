package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/settlement"
)

type paymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates a new PostgreSQL-backed PaymentRepository.
func NewPaymentRepo(db *sqlx.DB) port.PaymentRepository {
	return &paymentRepo{db: db}
}

// settlementRow is the locked snapshot a payment is validated against.
type settlementRow struct {
	DocType        domain.DocType   `db:"doc_type"`
	Status         domain.DocStatus `db:"status"`
	GrandTotal     float64          `db:"grand_total"`
	AmountReceived decimal.Decimal  `db:"amount_received"`
}

// ApplyPayment inserts the payment and updates the document's settlement
// state in a single transaction. The document row is locked with
// SELECT ... FOR UPDATE first, so two concurrent payments against the same
// document validate against consistent balance snapshots and can never
// jointly overpay.
func (r *paymentRepo) ApplyPayment(ctx context.Context, payment *domain.Payment) (*domain.SettlementResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ApplyPayment begin: %w", err)
	}
	defer tx.Rollback()

	var row settlementRow
	err = tx.GetContext(ctx, &row,
		`SELECT doc_type, status, grand_total, amount_received
		 FROM documents WHERE id = $1 FOR UPDATE`, payment.DocumentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("paymentRepo.ApplyPayment lock: %w", err)
	}

	if !row.DocType.Settleable() {
		return nil, domain.ErrDocumentNotSettleable
	}
	if row.Status != domain.DocStatusPosted {
		return nil, domain.ErrDocumentNotPosted
	}

	state := settlement.State{
		GrandTotal:     decimal.NewFromFloat(row.GrandTotal),
		AmountReceived: row.AmountReceived,
	}
	next, err := settlement.Apply(state, payment.Amount)
	if err != nil {
		return nil, err
	}

	payment.CreatedAt = time.Now().UTC()
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	if payment.PaidAt.IsZero() {
		payment.PaidAt = payment.CreatedAt
	}

	if _, err := tx.NamedExecContext(ctx,
		`INSERT INTO payments (id, document_id, amount, method, reference, paid_at, created_at)
		 VALUES (:id, :document_id, :amount, :method, :reference, :paid_at, :created_at)`,
		payment); err != nil {
		return nil, fmt.Errorf("paymentRepo.ApplyPayment insert: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE documents SET amount_received = $1, payment_status = $2, updated_at = $3
		 WHERE id = $4`,
		next.AmountReceived, next.Status(), payment.CreatedAt, payment.DocumentID); err != nil {
		return nil, fmt.Errorf("paymentRepo.ApplyPayment update document: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("paymentRepo.ApplyPayment commit: %w", err)
	}

	return &domain.SettlementResult{
		AmountReceived: next.AmountReceived,
		BalanceDue:     next.BalanceDue(),
		Status:         next.Status(),
	}, nil
}

func (r *paymentRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.SelectContext(ctx, &payments,
		"SELECT * FROM payments WHERE document_id = $1 ORDER BY paid_at ASC, created_at ASC",
		documentID)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByDocument: %w", err)
	}
	return payments, nil
}
