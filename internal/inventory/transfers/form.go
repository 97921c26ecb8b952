// Package transfers implements the inter-location transfer workflow: line
// editing, stock-aware validation against the source location, submission,
// and the printable transmittal.
package transfers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/srm221B/cmms/internal/documents"
	"github.com/srm221B/cmms/internal/inventory"
)

// Gateway is the slice of the inventory service the transfer form needs.
type Gateway interface {
	Locations(ctx context.Context) ([]inventory.Location, error)
	ListWithBalances(ctx context.Context) ([]inventory.Item, error)
	SubmitTransfer(ctx context.Context, req inventory.TransferRequest) (int, error)
}

type Line struct {
	SparePartID int
	PartCode    string
	PartName    string
	Quantity    int
}

// Resolved reports whether the line is bound to a known item. Unresolved
// lines are never serialized into the submission payload.
func (l Line) Resolved() bool {
	return l.SparePartID != 0
}

type ValidationError struct {
	Message  string `json:"message"`
	Property string `json:"property"`
}

// ValidationErrors is the aggregate submit-time failure; when returned, no
// network call was made.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Message
	}
	return "transfer validation failed: " + strings.Join(msgs, "; ")
}

// Form holds the transfer wizard state for one dialog session. The loaded
// location and item lists are read-only after Open.
type Form struct {
	gateway Gateway
	log     *zap.Logger

	FromLocationID int
	ToLocationID   int
	TransferredBy  int
	TransferDate   time.Time
	Notes          string
	Lines          []Line

	locations []inventory.Location
	items     []inventory.Item
}

func NewForm(gateway Gateway, log *zap.Logger) *Form {
	return &Form{gateway: gateway, log: log}
}

// Open loads the location reference list and the stock-annotated item list,
// then resets the form.
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
	f.FromLocationID = 0
	f.ToLocationID = 0
	f.TransferredBy = 0
	f.TransferDate = time.Now()
	f.Notes = ""
	f.Lines = nil
}

func (f *Form) Locations() []inventory.Location {
	return f.locations
}

func (f *Form) AddLine() {
	f.Lines = append(f.Lines, Line{})
}

// RemoveLine drops the line at index; remaining lines keep their bindings and
// renumber by position.
func (f *Form) RemoveLine(index int) error {
	if index < 0 || index >= len(f.Lines) {
		return fmt.Errorf("line index %d out of range", index)
	}
	f.Lines = append(f.Lines[:index], f.Lines[index+1:]...)
	return nil
}

// SearchItems resolves a typed query against the loaded item list, matching
// on code or name, case-insensitive substring.
func (f *Form) SearchItems(q string) []inventory.Item {
	return inventory.SearchItems(f.items, q)
}

// SetLineItem binds the line at index to the item the query resolves to. An
// exact code or name match wins outright; otherwise the query must match
// exactly one item, else the line stays unresolved.
func (f *Form) SetLineItem(index int, q string) error {
	if index < 0 || index >= len(f.Lines) {
		return fmt.Errorf("line index %d out of range", index)
	}

	item, err := resolveItem(f.items, q)
	if err != nil {
		return err
	}

	f.Lines[index].SparePartID = item.ID
	f.Lines[index].PartCode = item.PartCode
	f.Lines[index].PartName = item.PartName
	return nil
}

func (f *Form) SetLineQuantity(index, quantity int) error {
	if index < 0 || index >= len(f.Lines) {
		return fmt.Errorf("line index %d out of range", index)
	}
	f.Lines[index].Quantity = quantity
	return nil
}

// AvailableStock is the live readout of the line item's on-hand quantity at
// the currently selected source location.
func (f *Form) AvailableStock(index int) int {
	if index < 0 || index >= len(f.Lines) || !f.Lines[index].Resolved() {
		return 0
	}
	return f.stockAt(f.Lines[index].SparePartID, f.FromLocationID)
}

func (f *Form) stockAt(sparePartID, locationID int) int {
	for _, item := range f.items {
		if item.ID == sparePartID {
			return item.StockAt(locationID)
		}
	}
	return 0
}

func (f *Form) validate() ValidationErrors {
	var errs ValidationErrors

	if f.FromLocationID == 0 || f.ToLocationID == 0 {
		errs = append(errs, ValidationError{
			Message:  "Source and destination locations are required",
			Property: "locations",
		})
	} else if f.FromLocationID == f.ToLocationID {
		errs = append(errs, ValidationError{
			Message:  "Transfer from and to location cannot be the same",
			Property: "locations",
		})
	}

	resolved := 0
	for i, line := range f.Lines {
		if !line.Resolved() {
			continue
		}
		resolved++

		if line.Quantity <= 0 {
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("Line %d (%s): quantity must be positive", i+1, line.PartCode),
				Property: "quantity",
			})
			continue
		}

		available := f.stockAt(line.SparePartID, f.FromLocationID)
		if line.Quantity > available {
			errs = append(errs, ValidationError{
				Message: fmt.Sprintf("Line %d (%s): quantity %d exceeds available stock %d at source location",
					i+1, line.PartCode, line.Quantity, available),
				Property: "quantity",
			})
		}
	}

	if resolved == 0 {
		errs = append(errs, ValidationError{
			Message:  "Cannot create empty transfer",
			Property: "items",
		})
	}

	return errs
}

// Submit validates every resolved line against the source location's stock
// and posts the transfer. Any validation failure aborts with the aggregate
// error before any network call. On success the form resets; on a server
// failure the form state is kept so the user can correct and retry.
func (f *Form) Submit(ctx context.Context) (int, error) {
	if errs := f.validate(); len(errs) > 0 {
		return 0, errs
	}

	req := inventory.TransferRequest{
		FromLocationID: f.FromLocationID,
		ToLocationID:   f.ToLocationID,
		TransferredBy:  f.TransferredBy,
		TransferDate:   f.TransferDate.UTC(),
		Notes:          f.Notes,
	}
	for _, line := range f.Lines {
		if !line.Resolved() {
			continue
		}
		req.Items = append(req.Items, inventory.TransferItem{
			SparePartID: line.SparePartID,
			Quantity:    line.Quantity,
		})
	}

	transferID, err := f.gateway.SubmitTransfer(ctx, req)
	if err != nil {
		f.log.Warn("transfer submission failed", zap.Error(err))
		return 0, err
	}

	f.log.Info("transfer created",
		zap.Int("transfer_id", transferID),
		zap.Int("lines", len(req.Items)))
	f.Reset()
	return transferID, nil
}

// Transmittal builds the printable document from the open form. It is usable
// whenever at least one line exists, before or after submission, regardless
// of validation state.
func (f *Form) Transmittal(generatedAt time.Time) (documents.Transmittal, error) {
	if len(f.Lines) == 0 {
		return documents.Transmittal{}, fmt.Errorf("transfer has no line items")
	}

	doc := documents.Transmittal{
		FromLocation: f.locationName(f.FromLocationID),
		ToLocation:   f.locationName(f.ToLocationID),
		TransferDate: f.TransferDate,
		Notes:        f.Notes,
		GeneratedAt:  generatedAt,
	}
	for _, line := range f.Lines {
		doc.Lines = append(doc.Lines, documents.TransmittalLine{
			PartCode:       line.PartCode,
			PartName:       line.PartName,
			Quantity:       line.Quantity,
			AvailableStock: f.stockAt(line.SparePartID, f.FromLocationID),
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

func resolveItem(items []inventory.Item, q string) (inventory.Item, error) {
	matches := inventory.SearchItems(items, q)
	if len(matches) == 0 {
		return inventory.Item{}, fmt.Errorf("no inventory item matches %q", q)
	}

	if len(matches) > 1 {
		lower := strings.ToLower(strings.TrimSpace(q))
		for _, m := range matches {
			if strings.ToLower(m.PartCode) == lower || strings.ToLower(m.PartName) == lower {
				return m, nil
			}
		}
		return inventory.Item{}, fmt.Errorf("%q matches %d inventory items", q, len(matches))
	}

	return matches[0], nil
}

// HistoryTransmittal rebuilds the document from a persisted transfer record.
func HistoryTransmittal(t inventory.TransferHistory, generatedAt time.Time) documents.Transmittal {
	doc := documents.Transmittal{
		ID:            t.ID,
		FromLocation:  t.FromLocationName,
		ToLocation:    t.ToLocationName,
		TransferredBy: t.TransferredBy,
		Status:        t.Status,
		Notes:         t.Notes,
		GeneratedAt:   generatedAt,
	}
	doc.TransferDate = parseHistoryDate(t.TransferDate)
	for _, item := range t.Items {
		doc.Lines = append(doc.Lines, documents.TransmittalLine{
			PartCode: item.PartCode,
			PartName: item.PartName,
			Quantity: item.Quantity,
		})
	}
	return doc
}

// parseHistoryDate accepts both zoned and naive server timestamps.
func parseHistoryDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
