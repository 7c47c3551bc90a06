// Package csvexport renders a document register as CSV.
package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"gstbill/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (18 columns).
var columns = []string{
	"Number",
	"Type",
	"Status",
	"Date",
	"Party",
	"Buyer State",
	"Subtotal",
	"Item Discount",
	"Taxable Value",
	"CGST",
	"SGST",
	"IGST",
	"Additional Charges",
	"Round Off",
	"Grand Total",
	"Amount Received",
	"Balance Due",
	"Payment Status",
}

// Writer wraps csv.Writer for exporting a document register.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the 18-column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteDocuments converts a batch of documents to CSV rows and writes them.
// partyNames maps party IDs to display names; unknown IDs render empty.
func (w *Writer) WriteDocuments(docs []domain.Document, partyNames map[uuid.UUID]string) error {
	for i := range docs {
		row := documentToRow(&docs[i], partyNames[docs[i].PartyID])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// documentToRow converts a single document to an 18-element string slice.
func documentToRow(doc *domain.Document, partyName string) []string {
	balance := doc.GrandTotal - amountReceived(doc)

	row := make([]string, len(columns))
	row[0] = doc.Number
	row[1] = string(doc.DocType)
	row[2] = string(doc.Status)
	row[3] = doc.DocDate.Format(time.DateOnly)
	row[4] = partyName
	row[5] = doc.BuyerState
	row[6] = formatMoney(doc.Subtotal)
	row[7] = formatMoney(doc.ItemDiscountTotal)
	row[8] = formatMoney(doc.TaxableAfterDiscount)
	row[9] = formatMoney(doc.CGST)
	row[10] = formatMoney(doc.SGST)
	row[11] = formatMoney(doc.IGST)
	row[12] = formatMoney(doc.AdditionalCharges)
	row[13] = formatMoney(doc.RoundOffDelta)
	row[14] = formatMoney(doc.GrandTotal)
	row[15] = doc.AmountReceived.StringFixed(2)
	row[16] = formatMoney(balance)
	row[17] = string(doc.PaymentStatus)
	return row
}

func amountReceived(doc *domain.Document) float64 {
	f, _ := doc.AmountReceived.Float64()
	return f
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
