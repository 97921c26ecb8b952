// Package receiving implements the goods-receipt workflow. Lines are
// submitted as independent sequential requests sharing the header fields;
// the first failing line halts submission and nothing already applied is
// rolled back.
package receiving

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/srm221B/cmms/internal/documents"
	"github.com/srm221B/cmms/internal/inventory"
)

type Gateway interface {
	Locations(ctx context.Context) ([]inventory.Location, error)
	ListWithBalances(ctx context.Context) ([]inventory.Item, error)
	ReceiveParts(ctx context.Context, req inventory.ReceiveRequest) (int, error)
}

type Line struct {
	SparePartID int
	PartCode    string
	PartName    string
	Quantity    int
}

func (l Line) Resolved() bool {
	return l.SparePartID != 0
}

// PartialError reports a receive submission that failed after zero or more
// lines were already applied on the server. Applied lines stay applied; the
// caller must distinguish this from a fully-failed operation.
type PartialError struct {
	Applied   int
	Attempted int
	Err       error
}

func (e *PartialError) Error() string {
	if e.Applied == 0 {
		return fmt.Sprintf("receive failed, no lines applied: %v", e.Err)
	}
	return fmt.Sprintf("receive failed after %d of %d lines were applied (applied lines are NOT rolled back): %v",
		e.Applied, e.Attempted, e.Err)
}

func (e *PartialError) Unwrap() error {
	return e.Err
}

type Form struct {
	gateway Gateway
	log     *zap.Logger

	ReceivedDate    time.Time
	ReceivedFrom    string
	ReceivedTo      int
	ReceivedBy      int
	Supplier        string
	ReferenceNumber string
	UnitCost        *decimal.Decimal
	Lines           []Line

	locations []inventory.Location
	items     []inventory.Item
}

func NewForm(gateway Gateway, log *zap.Logger) *Form {
	return &Form{gateway: gateway, log: log}
}

func (f *Form) Open(ctx context.Context) error {
	locations, err := f.gateway.Locations(ctx)
	if err != nil {
		return fmt.Errorf("failed to load locations: %w", err)
	}

	items, err := f.gateway.ListWithBalances(ctx)
	if err != nil {
		return fmt.Errorf("failed to load inventory items: %w", err)
	}

	f.locations = locations
	f.items = items
	f.Reset()
	return nil
}

func (f *Form) Reset() {
	f.ReceivedDate = time.Now()
	f.ReceivedFrom = ""
	f.ReceivedTo = 0
	f.ReceivedBy = 0
	f.Supplier = ""
	f.ReferenceNumber = ""
	f.UnitCost = nil
	f.Lines = nil
}

func (f *Form) Locations() []inventory.Location {
	return f.locations
}

func (f *Form) AddLine() {
	f.Lines = append(f.Lines, Line{})
}

func (f *Form) RemoveLine(index int) error {
	if index < 0 || index >= len(f.Lines) {
		return fmt.Errorf("line index %d out of range", index)
	}
	f.Lines = append(f.Lines[:index], f.Lines[index+1:]...)
	return nil
}

func (f *Form) SearchItems(q string) []inventory.Item {
	return inventory.SearchItems(f.items, q)
}

func (f *Form) SetLineItem(index int, q string) error {
	if index < 0 || index >= len(f.Lines) {
		return fmt.Errorf("line index %d out of range", index)
	}

	matches := inventory.SearchItems(f.items, q)
	switch {
	case len(matches) == 0:
		return fmt.Errorf("no inventory item matches %q", q)
	case len(matches) > 1:
		lower := strings.ToLower(strings.TrimSpace(q))
		for _, m := range matches {
			if strings.ToLower(m.PartCode) == lower || strings.ToLower(m.PartName) == lower {
				f.bindLine(index, m)
				return nil
			}
		}
		return fmt.Errorf("%q matches %d inventory items", q, len(matches))
	}

	f.bindLine(index, matches[0])
	return nil
}

func (f *Form) bindLine(index int, item inventory.Item) {
	f.Lines[index].SparePartID = item.ID
	f.Lines[index].PartCode = item.PartCode
	f.Lines[index].PartName = item.PartName
}

func (f *Form) SetLineQuantity(index, quantity int) error {
	if index < 0 || index >= len(f.Lines) {
		return fmt.Errorf("line index %d out of range", index)
	}
	f.Lines[index].Quantity = quantity
	return nil
}

func (f *Form) resolvedLines() []Line {
	var lines []Line
	for _, line := range f.Lines {
		if line.Resolved() {
			lines = append(lines, line)
		}
	}
	return lines
}

// Submit posts one receive request per resolved line, strictly in order,
// awaiting each before the next. The first failure halts submission: lines
// after it are never attempted and lines before it stay applied. Receiving
// has no stock ceiling, so only header completeness is checked up front.
func (f *Form) Submit(ctx context.Context) error {
	lines := f.resolvedLines()
	if len(lines) == 0 {
		return fmt.Errorf("cannot receive: no resolved line items")
	}
	if f.ReceivedTo == 0 {
		return fmt.Errorf("cannot receive: destination location is required")
	}

	for i, line := range lines {
		req := inventory.ReceiveRequest{
			SparePartID:     line.SparePartID,
			LocationID:      f.ReceivedTo,
			Quantity:        line.Quantity,
			ReceivedBy:      f.ReceivedBy,
			ReceivedDate:    f.ReceivedDate.UTC(),
			Supplier:        f.Supplier,
			ReferenceNumber: f.ReferenceNumber,
			UnitCost:        f.UnitCost,
		}

		if _, err := f.gateway.ReceiveParts(ctx, req); err != nil {
			f.log.Warn("receive halted",
				zap.Int("applied", i),
				zap.Int("attempted", len(lines)),
				zap.String("part_code", line.PartCode),
				zap.Error(err))
			return &PartialError{Applied: i, Attempted: len(lines), Err: err}
		}
	}

	f.log.Info("parts received",
		zap.Int("lines", len(lines)),
		zap.Int("location_id", f.ReceivedTo))
	f.Reset()
	return nil
}

// ReceiptNote builds the printable document from the open form, usable
// whenever at least one line exists regardless of validation state.
func (f *Form) ReceiptNote(generatedAt time.Time) (documents.ReceiptNote, error) {
	if len(f.Lines) == 0 {
		return documents.ReceiptNote{}, fmt.Errorf("receipt has no line items")
	}

	unitCost := decimal.Zero
	if f.UnitCost != nil {
		unitCost = *f.UnitCost
	}

	doc := documents.ReceiptNote{
		ReceivedFrom:    f.ReceivedFrom,
		ReceivedTo:      f.locationName(f.ReceivedTo),
		Supplier:        f.Supplier,
		ReferenceNumber: f.ReferenceNumber,
		ReceivedDate:    f.ReceivedDate,
		GeneratedAt:     generatedAt,
	}
	for _, line := range f.Lines {
		doc.Lines = append(doc.Lines, documents.ReceiptLine{
			PartCode: line.PartCode,
			PartName: line.PartName,
			Quantity: line.Quantity,
			UnitCost: unitCost,
		})
	}
	return doc, nil
}

func (f *Form) locationName(id int) string {
	for _, loc := range f.locations {
		if loc.ID == id {
			return loc.Name
		}
	}
	return ""
}

// HistoryReceiptNote rebuilds the document from a persisted receipt record.
func HistoryReceiptNote(r inventory.ReceiptHistory, generatedAt time.Time) documents.ReceiptNote {
	doc := documents.ReceiptNote{
		ID:              r.ID,
		ReceivedFrom:    r.ReceivedFrom,
		ReceivedTo:      r.ReceivedToName,
		ReceivedBy:      r.ReceivedBy,
		Supplier:        r.Supplier,
		ReferenceNumber: r.ReferenceNumber,
		GeneratedAt:     generatedAt,
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, r.ReceivedDate); err == nil {
			doc.ReceivedDate = parsed
			break
		}
	}
	for _, item := range r.Items {
		doc.Lines = append(doc.Lines, documents.ReceiptLine{
			PartCode: item.PartCode,
			PartName: item.PartName,
			Quantity: item.Quantity,
			UnitCost: decimal.NewFromFloat(item.UnitCost),
		})
	}
	return doc
}
