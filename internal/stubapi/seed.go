package stubapi

import (
	"time"

	"github.com/srm221B/cmms/internal/assets"
	"github.com/srm221B/cmms/internal/directory"
	"github.com/srm221B/cmms/internal/inventory"
	"github.com/srm221B/cmms/internal/workorders"
)

// Seed resets the store to a fixed sample dataset. Tests rely on these IDs
// and quantities.
func (s *Server) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	s.Locations = []directory.Location{
		{ID: 1, Name: "Main Warehouse", Address: "Plot 14, Industrial Area"},
		{ID: 2, Name: "Unit 1 Store", Address: "Power Plant Site A"},
		{ID: 3, Name: "Unit 2 Store", Address: "Power Plant Site A"},
	}

	s.Users = []directory.User{
		{ID: 1, Username: "asif.khan", FullName: "Asif Khan", Email: "asif.khan@example.com", Role: "storekeeper"},
		{ID: 2, Username: "maria.iqbal", FullName: "Maria Iqbal", Email: "maria.iqbal@example.com", Role: "engineer"},
	}

	s.AssetCategories = []assets.AssetCategory{
		{ID: 1, Name: "Engine", Description: "Reciprocating engines"},
		{ID: 2, Name: "Generator", Description: "Generators and alternators"},
		{ID: 3, Name: "Auxiliary", Description: "Balance of plant"},
	}

	engine := s.AssetCategories[0]
	generator := s.AssetCategories[1]
	plantA := assets.Location{ID: 2, Name: "Unit 1 Store", Address: "Power Plant Site A"}
	plantB := assets.Location{ID: 3, Name: "Unit 2 Store", Address: "Power Plant Site A"}

	s.Assets = []assets.Asset{
		{
			ID: 1, Name: "Engine 1", Description: "Wartsila 18V46 engine",
			AssetCategoryID: 1, LocationID: 2, Status: "operational",
			Manufacturer: "Wartsila", Model: "18V46", SerialNumber: "W18V46-001",
			RunningHours: 41250, PowerGeneration: 17.2, LoadFactor: 82.5,
			Availability: 96.1, COD: "2011-03-15", BIM: 1.8,
			CreatedAt: now, UpdatedAt: now,
			AssetCategory: &engine, Location: &plantA,
		},
		{
			ID: 2, Name: "Engine 2", Description: "Wartsila 18V46 engine",
			AssetCategoryID: 1, LocationID: 3, Status: "maintenance",
			Manufacturer: "Wartsila", Model: "18V46", SerialNumber: "W18V46-002",
			RunningHours: 39800, PowerGeneration: 16.8, LoadFactor: 79.3,
			Availability: 91.4, COD: "2011-03-15", BIM: 2.3,
			CreatedAt: now, UpdatedAt: now,
			AssetCategory: &engine, Location: &plantB,
		},
		{
			ID: 3, Name: "Generator 1", Description: "ABB AMG synchronous generator",
			AssetCategoryID: 2, LocationID: 2, Status: "operational",
			Manufacturer: "ABB", Model: "AMG 1120", SerialNumber: "ABB-1120-01",
			RunningHours: 40100, PowerGeneration: 17.0, LoadFactor: 81.0,
			Availability: 97.8, COD: "2011-05-01", BIM: 1.2,
			CreatedAt: now, UpdatedAt: now,
			AssetCategory: &generator, Location: &plantA,
		},
	}

	s.WorkOrderTypes = []workorders.WorkOrderType{
		{ID: 1, Name: "Preventive"},
		{ID: 2, Name: "Corrective"},
		{ID: 3, Name: "Overhaul"},
	}

	hours := func(v float64) *float64 { return &v }
	assetID := func(v int) *int { return &v }

	s.WorkOrders = []workorders.WorkOrder{
		{
			ID: 1, WorkOrderNumber: "WO-1001", Title: "500h service Engine 1",
			Description: "Routine 500 hour service", Plant: "Unit 1 Store",
			AssetCategory: "Engine", AssetID: assetID(1), AssetName: "Engine 1",
			TypeID: assetID(1), TypeName: "Preventive", Priority: "medium",
			Status: "open", ScheduledDate: "2025-06-10",
			EstimatedHours: hours(8), CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: 2, WorkOrderNumber: "WO-1002", Title: "Turbocharger inspection",
			Description: "Inspect turbocharger bearings", Plant: "Unit 2 Store",
			AssetCategory: "Engine", AssetID: assetID(2), AssetName: "Engine 2",
			TypeID: assetID(2), TypeName: "Corrective", Priority: "high",
			Status: "in_progress", ScheduledDate: "2025-05-28", StartDate: "2025-05-29",
			EstimatedHours: hours(24), ActualHours: hours(10),
			CreatedAt: now, UpdatedAt: now,
		},
	}
	s.nextWorkOrderID = 3

	s.Items = []inventory.Item{
		{
			ID: 1, PartCode: "FLT-001", PartName: "Fuel filter element",
			Description: "Primary fuel filter for 18V46", UnitOfIssue: "EA",
			UnitPrice: 145.50, MinimumQuantity: 10, Category: "Filters",
			Criticality: "high", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: 2, PartCode: "GSK-014", PartName: "Cylinder head gasket",
			Description: "Head gasket set", UnitOfIssue: "SET",
			UnitPrice: 820.00, MinimumQuantity: 4, Category: "Gaskets",
			Criticality: "medium", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: 3, PartCode: "BRG-220", PartName: "Main bearing shell",
			Description: "Main bearing shell, upper", UnitOfIssue: "EA",
			UnitPrice: 1940.00, MinimumQuantity: 2, Category: "Bearings",
			Criticality: "high", CreatedAt: now, UpdatedAt: now,
		},
	}

	s.Balances = []inventory.Balance{
		{ID: 1, SparePartID: 1, LocationID: 1, InStock: 10, TotalReceived: 40, TotalConsumption: 30, LocationName: "Main Warehouse"},
		{ID: 2, SparePartID: 1, LocationID: 2, InStock: 4, TotalReceived: 12, TotalConsumption: 8, LocationName: "Unit 1 Store"},
		{ID: 3, SparePartID: 2, LocationID: 1, InStock: 6, TotalReceived: 10, TotalConsumption: 4, LocationName: "Main Warehouse"},
		{ID: 4, SparePartID: 3, LocationID: 2, InStock: 2, TotalReceived: 4, TotalConsumption: 2, LocationName: "Unit 1 Store"},
	}

	s.Transfers = nil
	s.Receipts = nil
	s.nextTransferID = 1
	s.nextInflowID = 1
	s.FailReceiveLocationID = 0
	s.ReceiveCalls = 0
	s.TransferCalls = 0
}
