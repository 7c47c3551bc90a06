package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

const gstSummaryQuery = `SELECT
	doc_type,
	COUNT(*) AS doc_count,
	COALESCE(SUM(taxable_after_discount), 0) AS taxable_amount,
	COALESCE(SUM(cgst), 0) AS cgst,
	COALESCE(SUM(sgst), 0) AS sgst,
	COALESCE(SUM(igst), 0) AS igst,
	COALESCE(SUM(grand_total), 0) AS grand_total
FROM documents
WHERE status = 'posted' AND doc_date >= $1 AND doc_date < $2 + interval '1 day'
GROUP BY doc_type
ORDER BY doc_type`

func (r *reportRepo) GSTSummary(ctx context.Context, from, to time.Time) ([]domain.GSTSummaryRow, error) {
	var rows []domain.GSTSummaryRow
	if err := r.db.SelectContext(ctx, &rows, gstSummaryQuery, from, to); err != nil {
		return nil, fmt.Errorf("reportRepo.GSTSummary: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) Register(ctx context.Context, filter port.DocumentFilter) ([]domain.Document, error) {
	where, args := buildDocumentWhere(filter)
	query := "SELECT * FROM documents " + where + " ORDER BY doc_date ASC, number ASC"

	var docs []domain.Document
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.Register: %w", err)
	}
	return docs, nil
}
