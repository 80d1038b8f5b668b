package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/txlog-dev/txlog/internal/ledger"
	"github.com/txlog-dev/txlog/internal/mps7"
)

// BuildPDF renders the aggregate totals and the record listing as a PDF.
func BuildPDF(b *ledger.Book, records []mps7.Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "MPS7 Transaction Log")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Records decoded: %d of %d declared", b.RecordsDecoded, b.DeclaredCount))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total credits: %.2f", b.TotalCredits))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total debits: %.2f", b.TotalDebits))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Net total: %.2f", b.NetTotal()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Autopay active: %d users", b.AutopayCount()))
	pdf.Ln(8)

	// Records table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 6, "Type", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Timestamp", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 6, "User ID", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Amount", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, rec := range records {
		amount := ""
		if rec.Type.HasAmount() {
			amount = fmt.Sprintf("%.2f", rec.Amount)
		}
		pdf.CellFormat(40, 6, rec.Type.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%d", rec.Timestamp), "1", 0, "R", false, 0, "")
		pdf.CellFormat(60, 6, fmt.Sprintf("%d", rec.UserID), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, amount, "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}
