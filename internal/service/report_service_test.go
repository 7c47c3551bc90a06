package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/service"
	"gstbill/mocks"
)

func TestReportService_GSTSummary(t *testing.T) {
	reportRepo := new(mocks.MockReportRepo)
	svc := service.NewReportService(reportRepo, new(mocks.MockPartyRepo))

	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
	rows := []domain.GSTSummaryRow{
		{DocType: domain.DocTypeInvoice, DocCount: 2, TaxableAmount: 1235, CGST: 111.15, SGST: 111.15},
	}
	reportRepo.On("GSTSummary", mock.Anything, from, to).Return(rows, nil)

	got, err := svc.GSTSummary(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestReportService_RegisterCSV(t *testing.T) {
	reportRepo := new(mocks.MockReportRepo)
	partyRepo := new(mocks.MockPartyRepo)
	svc := service.NewReportService(reportRepo, partyRepo)

	partyID := uuid.New()
	docs := []domain.Document{
		{
			Number:  "INV-001",
			DocType: domain.DocTypeInvoice,
			Status:  domain.DocStatusPosted,
			PartyID: partyID,
			DocDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Number:  "INV-002",
			DocType: domain.DocTypeInvoice,
			Status:  domain.DocStatusPosted,
			PartyID: partyID,
			DocDate: time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC),
		},
	}
	reportRepo.On("Register", mock.Anything, mock.AnythingOfType("port.DocumentFilter")).Return(docs, nil)
	partyRepo.On("GetByID", mock.Anything, partyID).Return(intraStateParty(partyID), nil).Once()

	var buf bytes.Buffer
	require.NoError(t, svc.RegisterCSV(context.Background(), &buf, port.DocumentFilter{}))

	// BOM prefix, then header plus one row per document.
	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))

	r := csv.NewReader(bytes.NewReader(raw[3:]))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "INV-001", records[1][0])
	assert.Equal(t, "Buyer Inc", records[1][4])
	assert.Equal(t, "Buyer Inc", records[2][4])

	// Both documents share a party; one lookup serves them all.
	partyRepo.AssertExpectations(t)
}

func TestReportService_RegisterCSV_MissingPartyRendersBlank(t *testing.T) {
	reportRepo := new(mocks.MockReportRepo)
	partyRepo := new(mocks.MockPartyRepo)
	svc := service.NewReportService(reportRepo, partyRepo)

	docs := []domain.Document{
		{Number: "EXP-1", DocType: domain.DocTypeExpense, PartyID: uuid.New(),
			DocDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	reportRepo.On("Register", mock.Anything, mock.Anything).Return(docs, nil)
	partyRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, domain.ErrPartyNotFound)

	var buf bytes.Buffer
	require.NoError(t, svc.RegisterCSV(context.Background(), &buf, port.DocumentFilter{}))

	r := csv.NewReader(bytes.NewReader(buf.Bytes()[3:]))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "", records[1][4])
}

func TestReportService_RegisterXLSX(t *testing.T) {
	reportRepo := new(mocks.MockReportRepo)
	partyRepo := new(mocks.MockPartyRepo)
	svc := service.NewReportService(reportRepo, partyRepo)

	partyID := uuid.New()
	docs := []domain.Document{
		{Number: "INV-009", DocType: domain.DocTypeInvoice, PartyID: partyID,
			DocDate: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)},
	}
	reportRepo.On("Register", mock.Anything, mock.Anything).Return(docs, nil)
	partyRepo.On("GetByID", mock.Anything, partyID).Return(intraStateParty(partyID), nil)

	var buf bytes.Buffer
	require.NoError(t, svc.RegisterXLSX(context.Background(), &buf, port.DocumentFilter{}))
	// XLSX files are zip archives.
	assert.Equal(t, []byte{0x50, 0x4B}, buf.Bytes()[:2])
}
