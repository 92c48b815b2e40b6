// Package slip renders the printable instruction slip handed to a customer
// after checkout.
package slip

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

// Line is one purchased medicine on the slip. Dosage reuses the catalog
// description text.
type Line struct {
	Name       string
	Dosage     string
	ExpiryDate string
	Quantity   int
	UnitPrice  decimal.Decimal
}

// Slip is the fixed-shape record handed to the renderer.
type Slip struct {
	CustomerName string
	Date         time.Time
	Lines        []Line
	Total        decimal.Decimal
}

// Render writes the slip as a PDF document.
func Render(s Slip, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "MediCare Pharmacy")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "Medicine Instruction Slip")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Customer: %s", s.CustomerName))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Date: %s", s.Date.Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(60, 8, "Medicine", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, "Dosage", "1", 0, "L", false, 0, "")
	pdf.CellFormat(28, 8, "Expiry", "1", 0, "L", false, 0, "")
	pdf.CellFormat(14, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(28, 8, "Price", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range s.Lines {
		pdf.CellFormat(60, 8, line.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, line.Dosage, "1", 0, "L", false, 0, "")
		pdf.CellFormat(28, 8, line.ExpiryDate, "1", 0, "L", false, 0, "")
		pdf.CellFormat(14, 8, fmt.Sprintf("%d", line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 8, line.UnitPrice.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total Amount: %s", s.Total.StringFixed(2)))
	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, "Follow your doctor's advice. Keep medicines out of reach of children.")

	return pdf.Output(w)
}
