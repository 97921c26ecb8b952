package workorders

import "time"

type WorkOrder struct {
	ID              int       `json:"id"`
	WorkOrderNumber string    `json:"work_order_number"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Plant           string    `json:"plant"`
	AssetCategory   string    `json:"asset_category"`
	AssetID         *int      `json:"asset_id"`
	AssetName       string    `json:"asset_name"`
	TypeID          *int      `json:"type_id"`
	TypeName        string    `json:"type_name"`
	Priority        string    `json:"priority"`
	Status          string    `json:"status"`
	ScheduledDate   string    `json:"scheduled_date"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	EstimatedHours  *float64  `json:"estimated_hours"`
	ActualHours     *float64  `json:"actual_hours"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type WorkOrderType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SparePartLine struct {
	PartID   int `json:"part_id"`
	Quantity int `json:"quantity"`
}

// CreateRequest is the POST /work-orders payload. Optional fields are
// pointers so unset values serialize as null rather than zero.
type CreateRequest struct {
	Title          string          `json:"title"`
	Description    *string         `json:"description"`
	Plant          *string         `json:"plant"`
	AssetCategory  *string         `json:"asset_category"`
	AssetID        *int            `json:"asset_id"`
	TypeID         *int            `json:"type_id"`
	Priority       string          `json:"priority"`
	ScheduledDate  *string         `json:"scheduled_date"`
	StartDate      *string         `json:"start_date"`
	EndDate        *string         `json:"end_date"`
	EstimatedHours *float64        `json:"estimated_hours"`
	SpareParts     []SparePartLine `json:"spare_parts"`
}

type FilterOptions struct {
	Plants          []string `json:"plants"`
	AssetCategories []string `json:"asset_categories"`
	WorkOrderTypes  []string `json:"work_order_types"`
	Statuses        []string `json:"statuses"`
}
