// Package pdfgen renders an invoice to a printable PDF document.
package pdfgen

import (
	"bytes"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"invoicer/models"
)

const dateLayout = "2006-01-02"

// Render produces an A4 portrait PDF for the invoice: header, bill-to
// block, item table and totals. The caller is expected to have loaded the
// customer and items.
func Render(inv *models.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "INVOICE")
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Invoice Number: "+inv.InvoiceNumber)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Issue Date: "+inv.IssueDate.Format(dateLayout))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Due Date: "+inv.DueDate.Format(dateLayout))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Status: "+string(inv.Status))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Bill To")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, inv.Customer.Name)
	pdf.Ln(6)
	pdf.Cell(0, 6, inv.Customer.Email)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(20, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(100, 8, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, "Unit Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Amount", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, it := range inv.Items {
		desc := it.Description
		if it.Unit != "" {
			desc += " (" + it.Unit + ")"
		}
		pdf.CellFormat(20, 8, strconv.FormatInt(it.Quantity, 10), "1", 0, "R", false, 0, "")
		pdf.CellFormat(100, 8, desc, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, it.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, it.LineTotal.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	writeTotal := func(label string, amount decimal.Decimal, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(155, 7, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, amount.StringFixed(2)+" "+inv.Currency, "", 1, "R", false, 0, "")
	}
	writeTotal("Subtotal", inv.Subtotal, false)
	if inv.TaxRate.Valid && inv.TaxAmount.Valid {
		writeTotal("Tax ("+inv.TaxRate.Decimal.StringFixed(2)+"%)", inv.TaxAmount.Decimal, false)
	}
	if inv.DiscountAmount.Valid {
		writeTotal("Discount", inv.DiscountAmount.Decimal.Neg(), false)
	}
	writeTotal("Total", inv.TotalAmount, true)

	if inv.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, "Notes: "+inv.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
