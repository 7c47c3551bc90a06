package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 18)
	assert.Equal(t, "Number", row[0])
	assert.Equal(t, "Payment Status", row[17])
}

func TestWriteDocuments(t *testing.T) {
	partyID := uuid.New()
	doc := domain.Document{
		ID:                   uuid.New(),
		DocType:              domain.DocTypeInvoice,
		Number:               "INV-001",
		Status:               domain.DocStatusPosted,
		PartyID:              partyID,
		DocDate:              time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		BuyerState:           "Karnataka",
		Subtotal:             700,
		ItemDiscountTotal:    50,
		TaxableAfterDiscount: 617.5,
		TaxAmount:            111.15,
		CGST:                 55.58,
		SGST:                 55.57,
		AdditionalCharges:    20,
		RoundOffDelta:        0.35,
		GrandTotal:           749,
		AmountReceived:       decimal.RequireFromString("200"),
		PaymentStatus:        domain.PaymentStatusPartial,
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteDocuments([]domain.Document{doc}, map[uuid.UUID]string{partyID: "Buyer Inc"}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, "INV-001", row[0])
	assert.Equal(t, "invoice", row[1])
	assert.Equal(t, "posted", row[2])
	assert.Equal(t, "2025-01-15", row[3])
	assert.Equal(t, "Buyer Inc", row[4])
	assert.Equal(t, "617.50", row[8])
	assert.Equal(t, "55.58", row[9])
	assert.Equal(t, "749.00", row[14])
	assert.Equal(t, "200.00", row[15])
	assert.Equal(t, "549.00", row[16])
	assert.Equal(t, "partial", row[17])
}

func TestWriteDocuments_UnknownPartyRendersEmpty(t *testing.T) {
	doc := domain.Document{
		DocType: domain.DocTypeExpense,
		Number:  "EXP-7",
		Status:  domain.DocStatusDraft,
		PartyID: uuid.New(),
		DocDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteDocuments([]domain.Document{doc}, nil))
	w.Flush()

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "", row[4])
}
