// Package xlsxexport renders the GST summary report and document register
// as Excel workbooks.
package xlsxexport

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"gstbill/internal/domain"
)

const (
	summarySheet  = "GST Summary"
	registerSheet = "Register"
)

var summaryColumns = []interface{}{
	"Document Type", "Documents", "Taxable Amount", "CGST", "SGST", "IGST", "Grand Total",
}

var registerColumns = []interface{}{
	"Number", "Type", "Status", "Date", "Party", "Buyer State",
	"Subtotal", "Item Discount", "Taxable Value", "CGST", "SGST", "IGST",
	"Additional Charges", "Round Off", "Grand Total",
	"Amount Received", "Balance Due", "Payment Status",
}

// WriteGSTSummary renders the per-document-type GST summary as a workbook
// with a single sheet, plus a totals row at the bottom.
func WriteGSTSummary(w io.Writer, rows []domain.GSTSummaryRow, from, to time.Time) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	title := fmt.Sprintf("GST Summary %s to %s", from.Format(time.DateOnly), to.Format(time.DateOnly))
	if err := f.SetCellValue(summarySheet, "A1", title); err != nil {
		return fmt.Errorf("write title: %w", err)
	}
	if err := f.SetSheetRow(summarySheet, "A2", &summaryColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := boldRow(f, summarySheet, 2, len(summaryColumns)); err != nil {
		return err
	}

	var totalTaxable, totalCGST, totalSGST, totalIGST, totalGrand float64
	var totalDocs int
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+3)
		values := []interface{}{
			string(row.DocType), row.DocCount, row.TaxableAmount,
			row.CGST, row.SGST, row.IGST, row.GrandTotal,
		}
		if err := f.SetSheetRow(summarySheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
		totalDocs += row.DocCount
		totalTaxable += row.TaxableAmount
		totalCGST += row.CGST
		totalSGST += row.SGST
		totalIGST += row.IGST
		totalGrand += row.GrandTotal
	}

	totalsRow := len(rows) + 3
	totals := []interface{}{
		"Total", totalDocs, totalTaxable, totalCGST, totalSGST, totalIGST, totalGrand,
	}
	if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", totalsRow), &totals); err != nil {
		return fmt.Errorf("write totals: %w", err)
	}
	if err := boldRow(f, summarySheet, totalsRow, len(summaryColumns)); err != nil {
		return err
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 18); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(summarySheet, "C", "G", 16); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteRegister renders the document register as a workbook with one row
// per document. partyNames maps party IDs to display names.
func WriteRegister(w io.Writer, docs []domain.Document, partyNames map[uuid.UUID]string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), registerSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(registerSheet, "A1", &registerColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := boldRow(f, registerSheet, 1, len(registerColumns)); err != nil {
		return err
	}

	for i := range docs {
		doc := &docs[i]
		received, _ := doc.AmountReceived.Float64()
		values := []interface{}{
			doc.Number,
			string(doc.DocType),
			string(doc.Status),
			doc.DocDate.Format(time.DateOnly),
			partyNames[doc.PartyID],
			doc.BuyerState,
			doc.Subtotal,
			doc.ItemDiscountTotal,
			doc.TaxableAfterDiscount,
			doc.CGST,
			doc.SGST,
			doc.IGST,
			doc.AdditionalCharges,
			doc.RoundOffDelta,
			doc.GrandTotal,
			received,
			doc.GrandTotal - received,
			string(doc.PaymentStatus),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(registerSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	if err := f.SetColWidth(registerSheet, "A", "F", 16); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func boldRow(f *excelize.File, sheet string, row, cols int) error {
	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("resolve cell: %w", err)
	}
	end, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return fmt.Errorf("resolve cell: %w", err)
	}
	if err := f.SetCellStyle(sheet, start, end, styleID); err != nil {
		return fmt.Errorf("apply style: %w", err)
	}
	return nil
}
