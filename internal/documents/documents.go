// Package documents renders the printable transmittal and receipt-note PDFs.
// The same data shapes serve live form state and persisted history records,
// and rendering is pure: identical input (including GeneratedAt) produces
// identical bytes.
package documents

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

type TransmittalLine struct {
	PartCode       string
	PartName       string
	Quantity       int
	AvailableStock int
}

// Transmittal holds everything the transfer document prints. ID is zero for
// a draft generated from an open form and the transfer's identity when
// regenerated from history.
type Transmittal struct {
	ID            int
	FromLocation  string
	ToLocation    string
	TransferredBy string
	Status        string
	TransferDate  time.Time
	Notes         string
	Lines         []TransmittalLine
	GeneratedAt   time.Time
}

func (t Transmittal) FileName() string {
	if t.ID > 0 {
		return fmt.Sprintf("transmittal_%d.pdf", t.ID)
	}
	return fmt.Sprintf("transfer-transmittal-%s.pdf", t.GeneratedAt.Format("2006-01-02"))
}

type ReceiptLine struct {
	PartCode string
	PartName string
	Quantity int
	UnitCost decimal.Decimal
}

func (l ReceiptLine) Total() decimal.Decimal {
	return l.UnitCost.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type ReceiptNote struct {
	ID              int
	ReceivedFrom    string
	ReceivedTo      string
	ReceivedBy      string
	Supplier        string
	ReferenceNumber string
	ReceivedDate    time.Time
	Lines           []ReceiptLine
	GeneratedAt     time.Time
}

func (r ReceiptNote) FileName() string {
	if r.ID > 0 {
		return fmt.Sprintf("receipt_note_%d.pdf", r.ID)
	}
	return fmt.Sprintf("receipt-note-%s.pdf", r.GeneratedAt.Format("2006-01-02"))
}

func (r ReceiptNote) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range r.Lines {
		total = total.Add(line.Total())
	}
	return total
}

const (
	titleFontSize  = 20
	headerFontSize = 12
	bodyFontSize   = 10
	tableFontSize  = 8
	lineHeight     = 7.0
)

func newDoc(generatedAt time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Pin both embedded timestamps so identical input renders identical bytes.
	pdf.SetCreationDate(generatedAt.UTC())
	pdf.SetModificationDate(generatedAt.UTC())
	pdf.AddPage()
	return pdf
}

func RenderTransmittal(t Transmittal) ([]byte, error) {
	pdf := newDoc(t.GeneratedAt)

	pdf.SetFont("Arial", "B", titleFontSize)
	pdf.CellFormat(0, 12, "Transfer Transmittal", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", headerFontSize)
	pdf.CellFormat(0, lineHeight, "Transfer Details:", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", bodyFontSize)
	if t.ID > 0 {
		writeHeaderField(pdf, "Transfer #", strconv.Itoa(t.ID))
	}
	writeHeaderField(pdf, "From Location", orNA(t.FromLocation))
	writeHeaderField(pdf, "To Location", orNA(t.ToLocation))
	writeHeaderField(pdf, "Transfer Date", t.TransferDate.Format("2006-01-02 15:04"))
	if t.TransferredBy != "" {
		writeHeaderField(pdf, "Transferred By", t.TransferredBy)
	}
	if t.Status != "" {
		writeHeaderField(pdf, "Status", t.Status)
	}
	writeHeaderField(pdf, "Notes", orNA(t.Notes))
	pdf.Ln(6)

	if len(t.Lines) > 0 {
		pdf.SetFont("Arial", "B", headerFontSize)
		pdf.CellFormat(0, lineHeight, "Transfer Items:", "", 1, "L", false, 0, "")

		widths := []float64{12, 35, 65, 28, 35}
		writeTableHeader(pdf, widths, []string{"#", "Part Code", "Part Name", "Quantity", "Available Stock"})

		pdf.SetFont("Arial", "", tableFontSize)
		pdf.SetTextColor(0, 0, 0)
		for i, line := range t.Lines {
			cells := []string{
				strconv.Itoa(i + 1),
				line.PartCode,
				line.PartName,
				strconv.Itoa(line.Quantity),
				strconv.Itoa(line.AvailableStock),
			}
			writeTableRow(pdf, widths, cells)
		}
	}

	writeFooter(pdf, "CMMS Transfer Transmittal", t.GeneratedAt)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render transmittal: %w", err)
	}
	return buf.Bytes(), nil
}

func RenderReceiptNote(r ReceiptNote) ([]byte, error) {
	pdf := newDoc(r.GeneratedAt)

	pdf.SetFont("Arial", "B", titleFontSize)
	pdf.CellFormat(0, 12, "Receipt Note", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", headerFontSize)
	pdf.CellFormat(0, lineHeight, "Receipt Details:", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", bodyFontSize)
	if r.ID > 0 {
		writeHeaderField(pdf, "Receipt #", strconv.Itoa(r.ID))
	}
	writeHeaderField(pdf, "Received From", orNA(r.ReceivedFrom))
	writeHeaderField(pdf, "Received To", orNA(r.ReceivedTo))
	writeHeaderField(pdf, "Received Date", r.ReceivedDate.Format("2006-01-02 15:04"))
	if r.ReceivedBy != "" {
		writeHeaderField(pdf, "Received By", r.ReceivedBy)
	}
	writeHeaderField(pdf, "Supplier", orNA(r.Supplier))
	writeHeaderField(pdf, "Reference Number", orNA(r.ReferenceNumber))
	pdf.Ln(6)

	if len(r.Lines) > 0 {
		pdf.SetFont("Arial", "B", headerFontSize)
		pdf.CellFormat(0, lineHeight, "Received Items:", "", 1, "L", false, 0, "")

		widths := []float64{35, 60, 25, 30, 30}
		writeTableHeader(pdf, widths, []string{"Part Code", "Part Name", "Quantity", "Unit Cost", "Total Cost"})

		pdf.SetFont("Arial", "", tableFontSize)
		pdf.SetTextColor(0, 0, 0)
		for _, line := range r.Lines {
			cells := []string{
				line.PartCode,
				line.PartName,
				strconv.Itoa(line.Quantity),
				"$" + line.UnitCost.StringFixed(2),
				"$" + line.Total().StringFixed(2),
			}
			writeTableRow(pdf, widths, cells)
		}

		pdf.Ln(4)
		pdf.SetFont("Arial", "B", bodyFontSize)
		pdf.CellFormat(0, lineHeight, "Total Cost: $"+r.GrandTotal().StringFixed(2), "", 1, "L", false, 0, "")
	}

	writeFooter(pdf, "CMMS Receipt Note", r.GeneratedAt)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt note: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveTransmittal renders the document into dir under its canonical name and
// returns the written path.
func SaveTransmittal(t Transmittal, dir string) (string, error) {
	data, err := RenderTransmittal(t)
	if err != nil {
		return "", err
	}
	return writeFile(dir, t.FileName(), data)
}

func SaveReceiptNote(r ReceiptNote, dir string) (string, error) {
	data, err := RenderReceiptNote(r)
	if err != nil {
		return "", err
	}
	return writeFile(dir, r.FileName(), data)
}

func writeFile(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func writeHeaderField(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(0, lineHeight, label+": "+value, "", 1, "L", false, 0, "")
}

func writeTableHeader(pdf *gofpdf.Fpdf, widths []float64, headers []string) {
	pdf.SetFont("Arial", "B", tableFontSize)
	pdf.SetFillColor(66, 139, 202)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], lineHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func writeTableRow(pdf *gofpdf.Fpdf, widths []float64, cells []string) {
	for i, cell := range cells {
		pdf.CellFormat(widths[i], lineHeight, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func writeFooter(pdf *gofpdf.Fpdf, caption string, generatedAt time.Time) {
	pdf.SetY(-25)
	pdf.SetFont("Arial", "", bodyFontSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, lineHeight, "Generated on: "+generatedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, lineHeight, caption, "", 1, "C", false, 0, "")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
