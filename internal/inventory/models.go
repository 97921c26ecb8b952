package inventory

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID              int       `json:"id"`
	PartCode        string    `json:"part_code"`
	PartName        string    `json:"part_name"`
	Description     string    `json:"description"`
	UnitOfIssue     string    `json:"unit_of_issue"`
	UnitPrice       float64   `json:"unit_price"`
	MinimumQuantity int       `json:"minimum_quantity"`
	Category        string    `json:"category,omitempty"`
	Criticality     string    `json:"criticality,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Balances        []Balance `json:"balances,omitempty"`
}

// Balance is a location-scoped stock snapshot for one item.
type Balance struct {
	ID               int    `json:"id"`
	SparePartID      int    `json:"spare_part_id"`
	LocationID       int    `json:"location_id"`
	InStock          int    `json:"in_stock"`
	TotalReceived    int    `json:"total_received"`
	TotalConsumption int    `json:"total_consumption"`
	LocationName     string `json:"location_name"`
}

type Location struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type WorkOrderConsumption struct {
	ID                     int    `json:"id"`
	WorkOrderNumber        string `json:"work_order_number"`
	WorkOrderTitle         string `json:"work_order_title"`
	WorkOrderStatus        string `json:"work_order_status"`
	QuantityUsed           int    `json:"quantity_used"`
	LocationName           string `json:"location_name"`
	ConsumptionDate        string `json:"consumption_date"`
	WorkOrderScheduledDate string `json:"work_order_scheduled_date"`
}

type Inflow struct {
	ID              int     `json:"id"`
	Quantity        int     `json:"quantity"`
	LocationName    string  `json:"location_name"`
	ReceivedBy      string  `json:"received_by"`
	ReceivedDate    string  `json:"received_date"`
	Supplier        string  `json:"supplier"`
	ReferenceNumber string  `json:"reference_number"`
	UnitCost        float64 `json:"unit_cost"`
	TotalCost       float64 `json:"total_cost"`
}

type Details struct {
	InventoryItem Item                   `json:"inventory_item"`
	Balances      []Balance              `json:"balances"`
	WorkOrders    []WorkOrderConsumption `json:"work_orders"`
	Inflows       []Inflow               `json:"inflows"`
}

type FilterOptions struct {
	Locations       []string `json:"locations"`
	AssetCategories []string `json:"asset_categories"`
	Categories      []string `json:"categories"`
	Criticalities   []string `json:"criticalities"`
}

// TransferRequest is the POST /inventory/transfer payload.
type TransferRequest struct {
	FromLocationID int            `json:"from_location_id"`
	ToLocationID   int            `json:"to_location_id"`
	TransferredBy  int            `json:"transferred_by"`
	TransferDate   time.Time      `json:"transfer_date"`
	Notes          string         `json:"notes"`
	Items          []TransferItem `json:"items"`
}

type TransferItem struct {
	SparePartID int `json:"spare_part_id"`
	Quantity    int `json:"quantity"`
}

// ReceiveRequest is the POST /inventory/receive payload; the server accepts
// one line per call.
type ReceiveRequest struct {
	SparePartID     int              `json:"spare_part_id"`
	LocationID      int              `json:"location_id"`
	Quantity        int              `json:"quantity"`
	ReceivedBy      int              `json:"received_by"`
	ReceivedDate    time.Time        `json:"received_date"`
	Supplier        string           `json:"supplier"`
	ReferenceNumber string           `json:"reference_number"`
	UnitCost        *decimal.Decimal `json:"unit_cost"`
}

type TransferHistory struct {
	ID               int                   `json:"id"`
	TransferDate     string                `json:"transfer_date"`
	FromLocationName string                `json:"from_location_name"`
	ToLocationName   string                `json:"to_location_name"`
	TransferredBy    string                `json:"transferred_by"`
	Status           string                `json:"status"`
	Notes            string                `json:"notes"`
	Items            []TransferHistoryItem `json:"items"`
}

type TransferHistoryItem struct {
	PartCode string `json:"part_code"`
	PartName string `json:"part_name"`
	Quantity int    `json:"quantity"`
}

type ReceiptHistory struct {
	ID              int                  `json:"id"`
	ReceivedDate    string               `json:"received_date"`
	ReceivedFrom    string               `json:"received_from"`
	ReceivedToName  string               `json:"received_to_name"`
	ReceivedBy      string               `json:"received_by"`
	Supplier        string               `json:"supplier"`
	ReferenceNumber string               `json:"reference_number"`
	Items           []ReceiptHistoryItem `json:"items"`
}

type ReceiptHistoryItem struct {
	PartCode string  `json:"part_code"`
	PartName string  `json:"part_name"`
	Quantity int     `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
}

// TotalStock sums on-hand quantity across every location.
func (i Item) TotalStock() int {
	total := 0
	for _, b := range i.Balances {
		total += b.InStock
	}
	return total
}

// StockAt returns the on-hand quantity at one location, zero when the item
// has no balance record there.
func (i Item) StockAt(locationID int) int {
	for _, b := range i.Balances {
		if b.LocationID == locationID {
			return b.InStock
		}
	}
	return 0
}

// MatchesQuery reports whether the part code or name contains the query,
// case-insensitively.
func (i Item) MatchesQuery(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return false
	}
	return strings.Contains(strings.ToLower(i.PartCode), q) ||
		strings.Contains(strings.ToLower(i.PartName), q)
}

// SearchItems filters the loaded item list on a code/name substring query.
func SearchItems(items []Item, q string) []Item {
	var matched []Item
	for _, item := range items {
		if item.MatchesQuery(q) {
			matched = append(matched, item)
		}
	}
	return matched
}
