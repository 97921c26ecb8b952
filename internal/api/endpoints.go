package api

import "fmt"

// Endpoints maps logical operation names to URLs against one base origin.
type Endpoints struct {
	base string
}

func NewEndpoints(baseURL string) Endpoints {
	return Endpoints{base: baseURL}
}

func (e Endpoints) BaseURL() string { return e.base }

func (e Endpoints) Assets() string          { return e.base + "/assets" }
func (e Endpoints) AssetsFilters() string   { return e.base + "/assets/filters" }
func (e Endpoints) AssetsFiltered() string  { return e.base + "/assets/filtered" }
func (e Endpoints) AssetCategories() string { return e.base + "/assets/asset-categories" }

func (e Endpoints) WorkOrders() string        { return e.base + "/work-orders" }
func (e Endpoints) WorkOrdersFilters() string { return e.base + "/work-orders/filters" }
func (e Endpoints) WorkOrderTypes() string    { return e.base + "/work-orders/types" }
func (e Endpoints) WorkOrder(id int) string   { return fmt.Sprintf("%s/work-orders/%d", e.base, id) }

func (e Endpoints) Inventory() string          { return e.base + "/inventory" }
func (e Endpoints) InventoryFilters() string   { return e.base + "/inventory/filters" }
func (e Endpoints) InventoryLocations() string { return e.base + "/inventory/locations" }
func (e Endpoints) InventoryItems() string     { return e.base + "/inventory/items" }
func (e Endpoints) InventoryDetails(id int) string {
	return fmt.Sprintf("%s/inventory/%d/details", e.base, id)
}
func (e Endpoints) InventoryDelete(id int) string {
	return fmt.Sprintf("%s/inventory/%d", e.base, id)
}
func (e Endpoints) InventoryTransfer() string  { return e.base + "/inventory/transfer" }
func (e Endpoints) InventoryReceive() string   { return e.base + "/inventory/receive" }
func (e Endpoints) InventoryTransfers() string { return e.base + "/inventory/transfers" }
func (e Endpoints) InventoryReceipts() string  { return e.base + "/inventory/receipts" }

func (e Endpoints) Users() string                   { return e.base + "/users" }
func (e Endpoints) Locations() string               { return e.base + "/locations" }
func (e Endpoints) LocationUniqueAddresses() string { return e.base + "/locations/unique-addresses" }
func (e Endpoints) Health() string                  { return e.base + "/health" }
