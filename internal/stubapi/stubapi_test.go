package stubapi

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/srm221B/cmms/internal/api"
	"github.com/srm221B/cmms/internal/assets"
	"github.com/srm221B/cmms/internal/directory"
	"github.com/srm221B/cmms/internal/inventory"
	"github.com/srm221B/cmms/internal/inventory/receiving"
	"github.com/srm221B/cmms/internal/inventory/transfers"
	"github.com/srm221B/cmms/internal/workorders"
	"github.com/srm221B/cmms/pkg/apierror"
)

type fixture struct {
	stub      *Server
	inventory *inventory.Service
	assets    *assets.Service
	orders    *workorders.Service
	directory *directory.Service
	close     func()
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	stub := New()
	server := httptest.NewServer(stub.Router())

	client := api.NewClient(5*time.Second, zap.NewNop())
	endpoints := api.NewEndpoints(server.URL)

	return &fixture{
		stub:      stub,
		inventory: inventory.NewService(client, endpoints, zap.NewNop()),
		assets:    assets.NewService(client, endpoints),
		orders:    workorders.NewService(client, endpoints),
		directory: directory.NewService(client, endpoints),
		close:     server.Close,
	}
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	health, err := f.directory.Health(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
}

func TestInventoryListOmitsBalances(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	items, err := f.inventory.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	for _, item := range items {
		assert.Empty(t, item.Balances)
	}
}

func TestListWithBalancesAttachesDetails(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	items, err := f.inventory.ListWithBalances(context.Background())
	assert.NoError(t, err)

	byID := map[int]inventory.Item{}
	for _, item := range items {
		byID[item.ID] = item
	}
	assert.Equal(t, 14, byID[1].TotalStock())
	assert.Equal(t, 10, byID[1].StockAt(1))
	assert.Equal(t, 4, byID[1].StockAt(2))
}

func TestInventoryFilterOptions(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	options, err := f.inventory.FilterOptions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Main Warehouse", "Unit 1 Store", "Unit 2 Store"}, options.Locations)
	assert.Equal(t, []string{"Bearings", "Filters", "Gaskets"}, options.Categories)
	assert.Equal(t, []string{"high", "medium"}, options.Criticalities)
}

func TestAssetListFiltering(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	all, err := f.assets.List(context.Background(), assets.Filters{}, "")
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	operational, err := f.assets.List(context.Background(), assets.Filters{Status: "operational"}, "")
	assert.NoError(t, err)
	assert.Len(t, operational, 2)

	min := 40000.0
	highHours, err := f.assets.List(context.Background(), assets.Filters{RunningHoursMin: &min}, "")
	assert.NoError(t, err)
	assert.Len(t, highHours, 2)

	searched, err := f.assets.List(context.Background(), assets.Filters{}, "abb")
	assert.NoError(t, err)
	assert.Len(t, searched, 1)
	assert.Equal(t, "Generator 1", searched[0].Name)

	shortcut, err := f.assets.Filtered(context.Background(), "Unit 1 Store", "Engine")
	assert.NoError(t, err)
	assert.Len(t, shortcut, 1)
	assert.Equal(t, "Engine 1", shortcut[0].Name)
}

func TestInventoryItemsReferenceList(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	items, err := f.inventory.Items(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestWorkOrderListAndCreate(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	open, err := f.orders.List(context.Background(), workorders.Filters{Status: "open"}, "")
	assert.NoError(t, err)
	assert.Len(t, open, 1)

	plant := "Unit 1 Store"
	created, err := f.orders.Create(context.Background(), workorders.CreateRequest{
		Title: "Replace fuel filters",
		Plant: &plant,
	})
	assert.NoError(t, err)
	assert.Equal(t, "open", created.Status)
	assert.NotEmpty(t, created.WorkOrderNumber)

	got, err := f.orders.Get(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Replace fuel filters", got.Title)

	_, err = f.orders.Get(context.Background(), 999)
	var apiErr *apierror.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestTransferMovesStockAndRecordsHistory(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	id, err := f.inventory.SubmitTransfer(context.Background(), inventory.TransferRequest{
		FromLocationID: 1,
		ToLocationID:   2,
		TransferredBy:  1,
		TransferDate:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Items: []inventory.TransferItem{
			{SparePartID: 1, Quantity: 3},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, id)

	details, err := f.inventory.Details(context.Background(), 1)
	assert.NoError(t, err)

	stock := map[int]int{}
	for _, b := range details.Balances {
		stock[b.LocationID] = b.InStock
	}
	assert.Equal(t, 7, stock[1])
	assert.Equal(t, 7, stock[2])

	history, err := f.inventory.Transfers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, "Main Warehouse", history[0].FromLocationName)
	assert.Equal(t, "Unit 1 Store", history[0].ToLocationName)
	assert.Equal(t, "asif.khan", history[0].TransferredBy)
	assert.Len(t, history[0].Items, 1)
	assert.Equal(t, "FLT-001", history[0].Items[0].PartCode)
}

func TestTransferHistoryIsNewestFirst(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	for i := 0; i < 2; i++ {
		_, err := f.inventory.SubmitTransfer(context.Background(), inventory.TransferRequest{
			FromLocationID: 1,
			ToLocationID:   2,
			TransferDate:   time.Now(),
			Items:          []inventory.TransferItem{{SparePartID: 1, Quantity: 1}},
		})
		assert.NoError(t, err)
	}

	history, err := f.inventory.Transfers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, 2, history[0].ID)
	assert.Equal(t, 1, history[1].ID)
}

func TestTransferRejectsInsufficientStock(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	_, err := f.inventory.SubmitTransfer(context.Background(), inventory.TransferRequest{
		FromLocationID: 1,
		ToLocationID:   2,
		TransferDate:   time.Now(),
		Items:          []inventory.TransferItem{{SparePartID: 1, Quantity: 50}},
	})

	var apiErr *apierror.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "Insufficient stock for part 1", apiErr.Detail)

	// Nothing moved.
	details, err := f.inventory.Details(context.Background(), 1)
	assert.NoError(t, err)
	total := 0
	for _, b := range details.Balances {
		total += b.InStock
	}
	assert.Equal(t, 14, total)
}

func TestTransferFormValidatesBeforeAnyRequest(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	form := transfers.NewForm(f.inventory, zap.NewNop())
	assert.NoError(t, form.Open(context.Background()))

	form.FromLocationID = 1
	form.ToLocationID = 2
	form.AddLine()
	assert.NoError(t, form.SetLineItem(0, "FLT-001"))
	assert.NoError(t, form.SetLineQuantity(0, 50))

	_, err := form.Submit(context.Background())

	var errs transfers.ValidationErrors
	assert.ErrorAs(t, err, &errs)
	assert.Zero(t, f.stub.TransferCalls)
}

func TestTransferFormEndToEnd(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	form := transfers.NewForm(f.inventory, zap.NewNop())
	assert.NoError(t, form.Open(context.Background()))

	form.FromLocationID = 1
	form.ToLocationID = 3
	form.TransferredBy = 2
	form.AddLine()
	assert.NoError(t, form.SetLineItem(0, "GSK-014"))
	assert.NoError(t, form.SetLineQuantity(0, 2))

	id, err := form.Submit(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, 1, f.stub.TransferCalls)

	details, err := f.inventory.Details(context.Background(), 2)
	assert.NoError(t, err)
	stock := map[int]int{}
	for _, b := range details.Balances {
		stock[b.LocationID] = b.InStock
	}
	assert.Equal(t, 4, stock[1])
	assert.Equal(t, 2, stock[3])
}

func TestReceiveUpsertsBalanceAndRecordsInflow(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	id, err := f.inventory.ReceiveParts(context.Background(), inventory.ReceiveRequest{
		SparePartID:     3,
		LocationID:      1, // no existing balance for part 3 here
		Quantity:        5,
		ReceivedBy:      1,
		ReceivedDate:    time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Supplier:        "Wartsila Services",
		ReferenceNumber: "PO-9921",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, id)

	details, err := f.inventory.Details(context.Background(), 3)
	assert.NoError(t, err)
	stock := map[int]int{}
	for _, b := range details.Balances {
		stock[b.LocationID] = b.InStock
	}
	assert.Equal(t, 5, stock[1])
	assert.Equal(t, 2, stock[2])

	assert.Len(t, details.Inflows, 1)
	assert.Equal(t, "Wartsila Services", details.Inflows[0].Supplier)
	assert.Equal(t, 5, details.Inflows[0].Quantity)

	receipts, err := f.inventory.Receipts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, receipts, 1)
	assert.Equal(t, "BRG-220", receipts[0].Items[0].PartCode)
}

func TestReceiveFailureInjection(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	f.stub.FailReceiveLocationID = 2

	_, err := f.inventory.ReceiveParts(context.Background(), inventory.ReceiveRequest{
		SparePartID:  1,
		LocationID:   2,
		Quantity:     5,
		ReceivedDate: time.Now(),
	})

	var apiErr *apierror.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid location", apiErr.Detail)
}

func TestReceiveFormHaltsOnRejectedDestination(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	f.stub.FailReceiveLocationID = 3

	form := receiving.NewForm(f.inventory, zap.NewNop())
	assert.NoError(t, form.Open(context.Background()))

	form.ReceivedTo = 3
	form.AddLine()
	assert.NoError(t, form.SetLineItem(0, "FLT-001"))
	assert.NoError(t, form.SetLineQuantity(0, 5))
	form.AddLine()
	assert.NoError(t, form.SetLineItem(1, "GSK-014"))
	assert.NoError(t, form.SetLineQuantity(1, 2))

	err := form.Submit(context.Background())

	var partial *receiving.PartialError
	assert.ErrorAs(t, err, &partial)
	assert.Equal(t, 0, partial.Applied)
	assert.Equal(t, 2, partial.Attempted)
	// The second line is never sent.
	assert.Equal(t, 1, f.stub.ReceiveCalls)
}

func TestDeleteInventoryItem(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	assert.NoError(t, f.inventory.Delete(context.Background(), 2))

	items, err := f.inventory.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = f.inventory.Details(context.Background(), 2)
	var apiErr *apierror.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestUsersAndLocations(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	users, err := f.directory.Users(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)

	locations, err := f.directory.Locations(context.Background())
	assert.NoError(t, err)
	assert.Len(t, locations, 3)

	addresses, err := f.directory.UniqueAddresses(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Plot 14, Industrial Area", "Power Plant Site A"}, addresses)
}
