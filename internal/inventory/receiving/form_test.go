package receiving

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/srm221B/cmms/internal/inventory"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Locations(ctx context.Context) ([]inventory.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Location), args.Error(1)
}

func (m *MockGateway) ListWithBalances(ctx context.Context) ([]inventory.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Item), args.Error(1)
}

func (m *MockGateway) ReceiveParts(ctx context.Context, req inventory.ReceiveRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func testItems() []inventory.Item {
	return []inventory.Item{
		{ID: 1, PartCode: "FLT-001", PartName: "Fuel filter element"},
		{ID: 2, PartCode: "GSK-014", PartName: "Cylinder head gasket"},
		{ID: 3, PartCode: "BRG-220", PartName: "Main bearing shell"},
	}
}

func openTestForm(t *testing.T) (*Form, *MockGateway) {
	t.Helper()
	gateway := new(MockGateway)
	gateway.On("Locations", mock.Anything).Return([]inventory.Location{
		{ID: 1, Name: "Main Warehouse"},
		{ID: 2, Name: "Unit 1 Store"},
	}, nil)
	gateway.On("ListWithBalances", mock.Anything).Return(testItems(), nil)

	form := NewForm(gateway, zap.NewNop())
	assert.NoError(t, form.Open(context.Background()))
	return form, gateway
}

func addLine(t *testing.T, form *Form, index int, code string, qty int) {
	t.Helper()
	form.AddLine()
	assert.NoError(t, form.SetLineItem(index, code))
	assert.NoError(t, form.SetLineQuantity(index, qty))
}

func TestSubmitPostsOneRequestPerLineInOrder(t *testing.T) {
	form, gateway := openTestForm(t)
	form.ReceivedTo = 1
	form.ReceivedBy = 2
	form.Supplier = "Wartsila Services"
	form.ReferenceNumber = "PO-9921"

	addLine(t, form, 0, "FLT-001", 20)
	addLine(t, form, 1, "GSK-014", 5)

	var order []int
	gateway.On("ReceiveParts", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			req := args.Get(1).(inventory.ReceiveRequest)
			order = append(order, req.SparePartID)
			assert.Equal(t, 1, req.LocationID)
			assert.Equal(t, "Wartsila Services", req.Supplier)
			assert.Equal(t, "PO-9921", req.ReferenceNumber)
		}).
		Return(1, nil)

	assert.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, []int{1, 2}, order)
	gateway.AssertNumberOfCalls(t, "ReceiveParts", 2)
}

func TestSubmitHaltsAtFirstFailure(t *testing.T) {
	form, gateway := openTestForm(t)
	form.ReceivedTo = 1

	// Three lines; the second fails. Exactly one line is applied, the third
	// is never attempted.
	addLine(t, form, 0, "FLT-001", 10)
	addLine(t, form, 1, "GSK-014", 5)
	addLine(t, form, 2, "BRG-220", 1)

	gateway.On("ReceiveParts", mock.Anything, mock.MatchedBy(func(req inventory.ReceiveRequest) bool {
		return req.SparePartID == 1
	})).Return(1, nil).Once()
	gateway.On("ReceiveParts", mock.Anything, mock.MatchedBy(func(req inventory.ReceiveRequest) bool {
		return req.SparePartID == 2
	})).Return(0, assert.AnError).Once()

	err := form.Submit(context.Background())

	var partial *PartialError
	assert.ErrorAs(t, err, &partial)
	assert.Equal(t, 1, partial.Applied)
	assert.Equal(t, 3, partial.Attempted)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "NOT rolled back")
	gateway.AssertNumberOfCalls(t, "ReceiveParts", 2)
}

func TestSubmitFirstLineFailureAppliesNothing(t *testing.T) {
	form, gateway := openTestForm(t)
	form.ReceivedTo = 1

	addLine(t, form, 0, "FLT-001", 10)
	addLine(t, form, 1, "GSK-014", 5)

	gateway.On("ReceiveParts", mock.Anything, mock.Anything).
		Return(0, assert.AnError).Once()

	err := form.Submit(context.Background())

	var partial *PartialError
	assert.ErrorAs(t, err, &partial)
	assert.Equal(t, 0, partial.Applied)
	assert.Contains(t, err.Error(), "no lines applied")
	gateway.AssertNumberOfCalls(t, "ReceiveParts", 1)
}

func TestSubmitSkipsUnresolvedLines(t *testing.T) {
	form, gateway := openTestForm(t)
	form.ReceivedTo = 1

	addLine(t, form, 0, "FLT-001", 10)
	form.AddLine() // unresolved

	gateway.On("ReceiveParts", mock.Anything, mock.Anything).Return(1, nil).Once()

	assert.NoError(t, form.Submit(context.Background()))
	gateway.AssertNumberOfCalls(t, "ReceiveParts", 1)
}

func TestSubmitRequiresResolvedLinesAndLocation(t *testing.T) {
	form, gateway := openTestForm(t)

	err := form.Submit(context.Background())
	assert.ErrorContains(t, err, "no resolved line items")

	addLine(t, form, 0, "FLT-001", 10)
	err = form.Submit(context.Background())
	assert.ErrorContains(t, err, "destination location is required")

	gateway.AssertNotCalled(t, "ReceiveParts", mock.Anything, mock.Anything)
}

func TestSubmitPropagatesUnitCost(t *testing.T) {
	form, gateway := openTestForm(t)
	form.ReceivedTo = 2
	cost := decimal.RequireFromString("145.50")
	form.UnitCost = &cost

	addLine(t, form, 0, "FLT-001", 4)

	gateway.On("ReceiveParts", mock.Anything, mock.MatchedBy(func(req inventory.ReceiveRequest) bool {
		return req.UnitCost != nil && req.UnitCost.Equal(cost)
	})).Return(1, nil).Once()

	assert.NoError(t, form.Submit(context.Background()))
	gateway.AssertExpectations(t)
}

func TestSubmitResetsFormOnSuccess(t *testing.T) {
	form, gateway := openTestForm(t)
	form.ReceivedTo = 1
	form.ReceivedBy = 2
	form.Supplier = "Wartsila Services"

	addLine(t, form, 0, "FLT-001", 4)
	gateway.On("ReceiveParts", mock.Anything, mock.Anything).Return(1, nil).Once()

	assert.NoError(t, form.Submit(context.Background()))
	assert.Zero(t, form.ReceivedTo)
	assert.Zero(t, form.ReceivedBy)
	assert.Empty(t, form.Supplier)
	assert.Empty(t, form.Lines)
}

func TestReceiptNoteFromOpenForm(t *testing.T) {
	form, _ := openTestForm(t)
	form.ReceivedTo = 1
	form.ReceivedFrom = "Wartsila Services"
	form.Supplier = "Wartsila Services"
	form.ReferenceNumber = "PO-9921"
	form.ReceivedDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	cost := decimal.RequireFromString("145.50")
	form.UnitCost = &cost

	addLine(t, form, 0, "FLT-001", 4)

	generatedAt := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	doc, err := form.ReceiptNote(generatedAt)

	assert.NoError(t, err)
	assert.Equal(t, "Main Warehouse", doc.ReceivedTo)
	assert.Equal(t, "receipt-note-2025-06-02.pdf", doc.FileName())
	assert.Len(t, doc.Lines, 1)
	assert.True(t, doc.Lines[0].Total().Equal(decimal.RequireFromString("582.00")))
	assert.True(t, doc.GrandTotal().Equal(decimal.RequireFromString("582.00")))
}

func TestReceiptNoteRequiresLines(t *testing.T) {
	form, _ := openTestForm(t)
	_, err := form.ReceiptNote(time.Now())
	assert.Error(t, err)
}

func TestHistoryReceiptNote(t *testing.T) {
	record := inventory.ReceiptHistory{
		ID:              9,
		ReceivedDate:    "2025-05-30T11:00:00",
		ReceivedFrom:    "Wartsila Services",
		ReceivedToName:  "Main Warehouse",
		ReceivedBy:      "asif.khan",
		Supplier:        "Wartsila Services",
		ReferenceNumber: "PO-9921",
		Items: []inventory.ReceiptHistoryItem{
			{PartCode: "FLT-001", PartName: "Fuel filter element", Quantity: 4, UnitCost: 145.5},
		},
	}

	doc := HistoryReceiptNote(record, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, 9, doc.ID)
	assert.Equal(t, "receipt_note_9.pdf", doc.FileName())
	assert.Equal(t, time.Date(2025, 5, 30, 11, 0, 0, 0, time.UTC), doc.ReceivedDate)
	assert.True(t, doc.GrandTotal().Equal(decimal.RequireFromString("582")))
}
