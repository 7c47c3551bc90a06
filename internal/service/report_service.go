package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"gstbill/internal/csvexport"
	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/xlsxexport"
)

// ReportService defines the reporting contract over posted documents.
type ReportService interface {
	GSTSummary(ctx context.Context, from, to time.Time) ([]domain.GSTSummaryRow, error)
	RegisterCSV(ctx context.Context, w io.Writer, filter port.DocumentFilter) error
	RegisterXLSX(ctx context.Context, w io.Writer, filter port.DocumentFilter) error
	GSTSummaryXLSX(ctx context.Context, w io.Writer, from, to time.Time) error
}

type reportService struct {
	reportRepo port.ReportRepository
	partyRepo  port.PartyRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(reportRepo port.ReportRepository, partyRepo port.PartyRepository) ReportService {
	return &reportService{reportRepo: reportRepo, partyRepo: partyRepo}
}

func (s *reportService) GSTSummary(ctx context.Context, from, to time.Time) ([]domain.GSTSummaryRow, error) {
	return s.reportRepo.GSTSummary(ctx, from, to)
}

func (s *reportService) RegisterCSV(ctx context.Context, w io.Writer, filter port.DocumentFilter) error {
	docs, err := s.reportRepo.Register(ctx, filter)
	if err != nil {
		return fmt.Errorf("loading register: %w", err)
	}
	partyNames, err := s.partyNames(ctx, docs)
	if err != nil {
		return err
	}

	if _, err := w.Write(csvexport.BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}
	cw := csvexport.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := cw.WriteDocuments(docs, partyNames); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

func (s *reportService) RegisterXLSX(ctx context.Context, w io.Writer, filter port.DocumentFilter) error {
	docs, err := s.reportRepo.Register(ctx, filter)
	if err != nil {
		return fmt.Errorf("loading register: %w", err)
	}
	partyNames, err := s.partyNames(ctx, docs)
	if err != nil {
		return err
	}
	return xlsxexport.WriteRegister(w, docs, partyNames)
}

func (s *reportService) GSTSummaryXLSX(ctx context.Context, w io.Writer, from, to time.Time) error {
	rows, err := s.reportRepo.GSTSummary(ctx, from, to)
	if err != nil {
		return fmt.Errorf("loading summary: %w", err)
	}
	return xlsxexport.WriteGSTSummary(w, rows, from, to)
}

// partyNames resolves the distinct party IDs referenced by docs to display
// names. Missing parties render blank rather than failing the export.
func (s *reportService) partyNames(ctx context.Context, docs []domain.Document) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string)
	for i := range docs {
		id := docs[i].PartyID
		if _, ok := names[id]; ok {
			continue
		}
		party, err := s.partyRepo.GetByID(ctx, id)
		if err != nil {
			names[id] = ""
			continue
		}
		names[id] = party.Name
	}
	return names, nil
}
