package assets

import "time"

type Asset struct {
	ID               int            `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	AssetCategoryID  int            `json:"asset_category_id"`
	LocationID       int            `json:"location_id"`
	Status           string         `json:"status"`
	Manufacturer     string         `json:"manufacturer"`
	Model            string         `json:"model"`
	SerialNumber     string         `json:"serial_number"`
	InstallationDate string         `json:"installation_date"`
	WarrantyExpiry   string         `json:"warranty_expiry"`
	Specifications   string         `json:"specifications"`
	RunningHours     float64        `json:"running_hours"`
	PowerGeneration  float64        `json:"power_generation"`
	LoadFactor       float64        `json:"load_factor"`
	Availability     float64        `json:"availability"`
	COD              string         `json:"cod"`
	BIM              float64        `json:"bim"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	AssetCategory    *AssetCategory `json:"asset_category,omitempty"`
	Location         *Location      `json:"location,omitempty"`
}

type AssetCategory struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Location struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type FilterOptions struct {
	Plants          []string `json:"plants"`
	AssetCategories []string `json:"asset_categories"`
	Statuses        []string `json:"statuses"`
}
