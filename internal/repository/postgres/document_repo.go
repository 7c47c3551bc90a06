package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

const insertDocumentQuery = `INSERT INTO documents (
	id, doc_type, number, status, party_id, doc_date, due_date, notes,
	discount_mode, discount_value, surcharge, tax_mode, round_off, buyer_state,
	aggregate_amount, aggregate_rate,
	subtotal, item_discount_total, taxable_after_discount, tax_amount,
	cgst, sgst, igst, additional_charges, pre_round_total, round_off_delta,
	grand_total, amount_in_words, amount_received, payment_status,
	receipt_key, posted_at, created_at, updated_at
) VALUES (
	:id, :doc_type, :number, :status, :party_id, :doc_date, :due_date, :notes,
	:discount_mode, :discount_value, :surcharge, :tax_mode, :round_off, :buyer_state,
	:aggregate_amount, :aggregate_rate,
	:subtotal, :item_discount_total, :taxable_after_discount, :tax_amount,
	:cgst, :sgst, :igst, :additional_charges, :pre_round_total, :round_off_delta,
	:grand_total, :amount_in_words, :amount_received, :payment_status,
	:receipt_key, :posted_at, :created_at, :updated_at
)`

const insertItemQuery = `INSERT INTO document_items (
	id, document_id, position, description, hsn_code, quantity, unit,
	unit_rate, discount_percent, rate_label, tax_rate_percent, rate_resolved
) VALUES (
	:id, :document_id, :position, :description, :hsn_code, :quantity, :unit,
	:unit_rate, :discount_percent, :rate_label, :tax_rate_percent, :rate_resolved
)`

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("documentRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, insertDocumentQuery, doc); err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "number") {
			return domain.ErrDuplicateDocNumber
		}
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	if err := insertItems(ctx, tx, doc); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("documentRepo.Create commit: %w", err)
	}
	return nil
}

func insertItems(ctx context.Context, tx *sqlx.Tx, doc *domain.Document) error {
	for i := range doc.Items {
		item := &doc.Items[i]
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.DocumentID = doc.ID
		item.Position = i
		if _, err := tx.NamedExecContext(ctx, insertItemQuery, item); err != nil {
			return fmt.Errorf("documentRepo insert item %d: %w", i, err)
		}
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.GetContext(ctx, &doc, "SELECT * FROM documents WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	if err := r.db.SelectContext(ctx, &doc.Items,
		"SELECT * FROM document_items WHERE document_id = $1 ORDER BY position ASC", id); err != nil {
		return nil, fmt.Errorf("documentRepo.GetByID items: %w", err)
	}
	return &doc, nil
}

func (r *documentRepo) List(ctx context.Context, filter port.DocumentFilter) ([]domain.Document, int, error) {
	where, args := buildDocumentWhere(filter)

	var total int
	if err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM documents "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List count: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(
		"SELECT * FROM documents %s ORDER BY doc_date DESC, created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, filter.Offset)

	var docs []domain.Document
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.List: %w", err)
	}
	return docs, total, nil
}

func buildDocumentWhere(filter port.DocumentFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	add := func(cond string, val interface{}) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.DocType != nil {
		add("doc_type = $%d", *filter.DocType)
	}
	if filter.Status != nil {
		add("status = $%d", *filter.Status)
	}
	if filter.PaymentStatus != nil {
		add("payment_status = $%d", *filter.PaymentStatus)
	}
	if filter.PartyID != nil {
		add("party_id = $%d", *filter.PartyID)
	}
	if filter.From != nil {
		add("doc_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		// The end date is inclusive even when doc_date carries a time of day.
		add("doc_date < $%d + interval '1 day'", *filter.To)
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

const updateDraftQuery = `UPDATE documents SET
	number = :number, party_id = :party_id, doc_date = :doc_date,
	due_date = :due_date, notes = :notes,
	discount_mode = :discount_mode, discount_value = :discount_value,
	surcharge = :surcharge, tax_mode = :tax_mode, round_off = :round_off,
	buyer_state = :buyer_state,
	aggregate_amount = :aggregate_amount, aggregate_rate = :aggregate_rate,
	subtotal = :subtotal, item_discount_total = :item_discount_total,
	taxable_after_discount = :taxable_after_discount, tax_amount = :tax_amount,
	cgst = :cgst, sgst = :sgst, igst = :igst,
	additional_charges = :additional_charges, pre_round_total = :pre_round_total,
	round_off_delta = :round_off_delta, grand_total = :grand_total,
	amount_in_words = :amount_in_words, updated_at = :updated_at
WHERE id = :id AND status = 'draft'`

func (r *documentRepo) UpdateDraft(ctx context.Context, doc *domain.Document) error {
	doc.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("documentRepo.UpdateDraft begin: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.NamedExecContext(ctx, updateDraftQuery, doc)
	if err != nil {
		return fmt.Errorf("documentRepo.UpdateDraft: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		// Distinguish a posted document from a missing one.
		var status domain.DocStatus
		err := tx.GetContext(ctx, &status, "SELECT status FROM documents WHERE id = $1", doc.ID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrDocumentNotFound
		}
		if err != nil {
			return fmt.Errorf("documentRepo.UpdateDraft status: %w", err)
		}
		return domain.ErrDocumentPosted
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM document_items WHERE document_id = $1", doc.ID); err != nil {
		return fmt.Errorf("documentRepo.UpdateDraft clear items: %w", err)
	}
	if err := insertItems(ctx, tx, doc); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("documentRepo.UpdateDraft commit: %w", err)
	}
	return nil
}

func (r *documentRepo) Post(ctx context.Context, id uuid.UUID, postedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE documents SET status = 'posted', posted_at = $1, updated_at = $1
		 WHERE id = $2 AND status = 'draft'`,
		postedAt.UTC(), id)
	if err != nil {
		return fmt.Errorf("documentRepo.Post: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		var status domain.DocStatus
		err := r.db.GetContext(ctx, &status, "SELECT status FROM documents WHERE id = $1", id)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrDocumentNotFound
		}
		if err != nil {
			return fmt.Errorf("documentRepo.Post status: %w", err)
		}
		return domain.ErrDocumentPosted
	}
	return nil
}

func (r *documentRepo) SetReceiptKey(ctx context.Context, id uuid.UUID, key string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE documents SET receipt_key = $1, updated_at = $2 WHERE id = $3",
		key, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("documentRepo.SetReceiptKey: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM documents WHERE id = $1 AND status = 'draft'", id)
	if err != nil {
		return fmt.Errorf("documentRepo.DeleteDraft: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		var status domain.DocStatus
		err := r.db.GetContext(ctx, &status, "SELECT status FROM documents WHERE id = $1", id)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrDocumentNotFound
		}
		if err != nil {
			return fmt.Errorf("documentRepo.DeleteDraft status: %w", err)
		}
		return domain.ErrDocumentPosted
	}
	return nil
}
