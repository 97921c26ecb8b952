// Package stubapi is an in-memory stand-in for the remote CMMS API, used by
// the test suite and the hidden stub-api development command. It reproduces
// the external API's observable behavior: endpoint paths, wire shapes, and
// the transfer/receive balance bookkeeping.
package stubapi

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/srm221B/cmms/internal/assets"
	"github.com/srm221B/cmms/internal/directory"
	"github.com/srm221B/cmms/internal/inventory"
	"github.com/srm221B/cmms/internal/workorders"
)

type Server struct {
	mu sync.Mutex

	Assets          []assets.Asset
	AssetCategories []assets.AssetCategory
	WorkOrders      []workorders.WorkOrder
	WorkOrderTypes  []workorders.WorkOrderType
	Items           []inventory.Item
	Balances        []inventory.Balance
	Locations       []directory.Location
	Users           []directory.User

	Transfers []inventory.TransferHistory
	Receipts  []inventory.ReceiptHistory

	nextTransferID  int
	nextInflowID    int
	nextWorkOrderID int

	// FailReceiveLocationID makes POST /inventory/receive reject that
	// destination with a 400, for exercising partial-failure handling.
	FailReceiveLocationID int

	// ReceiveCalls counts receive POSTs, including rejected ones.
	ReceiveCalls int

	// TransferCalls counts transfer POSTs, including rejected ones.
	TransferCalls int
}

func New() *Server {
	s := &Server{
		nextTransferID:  1,
		nextInflowID:    1,
		nextWorkOrderID: 1,
	}
	s.Seed()
	return s
}

func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())
	s.RegisterRoutes(router)
	return router
}

func (s *Server) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", s.health)

	router.GET("/assets", s.listAssets)
	router.GET("/assets/filters", s.assetFilters)
	router.GET("/assets/filtered", s.filteredAssets)
	router.GET("/assets/asset-categories", s.assetCategories)

	router.GET("/work-orders", s.listWorkOrders)
	router.GET("/work-orders/filters", s.workOrderFilters)
	router.GET("/work-orders/types", s.workOrderTypes)
	router.GET("/work-orders/:id", s.getWorkOrder)
	router.POST("/work-orders", s.createWorkOrder)

	router.GET("/inventory", s.listInventory)
	router.GET("/inventory/filters", s.inventoryFilters)
	router.GET("/inventory/locations", s.inventoryLocations)
	router.GET("/inventory/items", s.listInventory)
	router.GET("/inventory/transfers", s.transferHistory)
	router.GET("/inventory/receipts", s.receiptHistory)
	router.GET("/inventory/:id/details", s.inventoryDetails)
	router.DELETE("/inventory/:id", s.deleteInventoryItem)
	router.POST("/inventory/transfer", s.createTransfer)
	router.POST("/inventory/receive", s.receiveParts)

	router.GET("/users", s.listUsers)
	router.GET("/locations", s.listLocations)
	router.GET("/locations/unique-addresses", s.uniqueAddresses)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listAssets(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []assets.Asset
	for _, a := range s.Assets {
		if s.assetMatches(a, c) {
			result = append(result, a)
		}
	}
	if result == nil {
		result = []assets.Asset{}
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) assetMatches(a assets.Asset, c *gin.Context) bool {
	if v := c.Query("plant"); v != "" && (a.Location == nil || a.Location.Name != v) {
		return false
	}
	if v := c.Query("asset_category"); v != "" && (a.AssetCategory == nil || a.AssetCategory.Name != v) {
		return false
	}
	if v := c.Query("status"); v != "" && a.Status != v {
		return false
	}

	ranges := []struct {
		minKey, maxKey string
		value          float64
	}{
		{"running_hours_min", "running_hours_max", a.RunningHours},
		{"power_generation_min", "power_generation_max", a.PowerGeneration},
		{"load_factor_min", "load_factor_max", a.LoadFactor},
		{"availability_min", "availability_max", a.Availability},
		{"bim_min", "bim_max", a.BIM},
	}
	for _, r := range ranges {
		if v := c.Query(r.minKey); v != "" {
			if bound, err := strconv.ParseFloat(v, 64); err == nil && r.value < bound {
				return false
			}
		}
		if v := c.Query(r.maxKey); v != "" {
			if bound, err := strconv.ParseFloat(v, 64); err == nil && r.value > bound {
				return false
			}
		}
	}

	if v := c.Query("cod_start"); v != "" && a.COD != "" && a.COD < v {
		return false
	}
	if v := c.Query("cod_end"); v != "" && a.COD != "" && a.COD > v {
		return false
	}

	if v := c.Query("search"); v != "" {
		needle := strings.ToLower(v)
		if !strings.Contains(strings.ToLower(a.Name), needle) &&
			!strings.Contains(strings.ToLower(a.Description), needle) &&
			!strings.Contains(strings.ToLower(a.SerialNumber), needle) {
			return false
		}
	}

	return true
}

func (s *Server) assetFilters(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plants := uniqueSet()
	statuses := uniqueSet()
	for _, a := range s.Assets {
		if a.Location != nil {
			plants.add(a.Location.Name)
		}
		statuses.add(a.Status)
	}
	categories := uniqueSet()
	for _, cat := range s.AssetCategories {
		categories.add(cat.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"plants":           plants.sorted(),
		"asset_categories": categories.sorted(),
		"statuses":         statuses.sorted(),
	})
}

func (s *Server) filteredAssets(c *gin.Context) {
	s.listAssets(c)
}

func (s *Server) assetCategories(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.AssetCategories)
}

func (s *Server) listWorkOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []workorders.WorkOrder
	for _, wo := range s.WorkOrders {
		if s.workOrderMatches(wo, c) {
			result = append(result, wo)
		}
	}
	if result == nil {
		result = []workorders.WorkOrder{}
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) workOrderMatches(wo workorders.WorkOrder, c *gin.Context) bool {
	if v := c.Query("plant"); v != "" && wo.Plant != v {
		return false
	}
	if v := c.Query("asset"); v != "" && wo.AssetName != v {
		return false
	}
	if v := c.Query("type"); v != "" && wo.TypeName != v {
		return false
	}
	if v := c.Query("status"); v != "" && wo.Status != v {
		return false
	}

	dates := []struct {
		startKey, endKey string
		value            string
	}{
		{"scheduled_date_start", "scheduled_date_end", wo.ScheduledDate},
		{"start_date_start", "start_date_end", wo.StartDate},
		{"end_date_start", "end_date_end", wo.EndDate},
	}
	for _, d := range dates {
		if v := c.Query(d.startKey); v != "" && (d.value == "" || d.value < v) {
			return false
		}
		if v := c.Query(d.endKey); v != "" && (d.value == "" || d.value > v) {
			return false
		}
	}

	hours := []struct {
		minKey, maxKey string
		value          *float64
	}{
		{"estimated_hours_min", "estimated_hours_max", wo.EstimatedHours},
		{"actual_hours_min", "actual_hours_max", wo.ActualHours},
	}
	for _, h := range hours {
		if v := c.Query(h.minKey); v != "" {
			if bound, err := strconv.ParseFloat(v, 64); err == nil && (h.value == nil || *h.value < bound) {
				return false
			}
		}
		if v := c.Query(h.maxKey); v != "" {
			if bound, err := strconv.ParseFloat(v, 64); err == nil && (h.value == nil || *h.value > bound) {
				return false
			}
		}
	}

	if v := c.Query("search"); v != "" {
		needle := strings.ToLower(v)
		if !strings.Contains(strings.ToLower(wo.WorkOrderNumber), needle) &&
			!strings.Contains(strings.ToLower(wo.Title), needle) &&
			!strings.Contains(strings.ToLower(wo.Description), needle) {
			return false
		}
	}

	return true
}

func (s *Server) workOrderFilters(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plants := uniqueSet()
	statuses := uniqueSet()
	for _, wo := range s.WorkOrders {
		plants.add(wo.Plant)
		statuses.add(wo.Status)
	}
	types := uniqueSet()
	for _, t := range s.WorkOrderTypes {
		types.add(t.Name)
	}
	categories := uniqueSet()
	for _, cat := range s.AssetCategories {
		categories.add(cat.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"plants":           plants.sorted(),
		"asset_categories": categories.sorted(),
		"work_order_types": types.sorted(),
		"statuses":         statuses.sorted(),
	})
}

func (s *Server) workOrderTypes(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.WorkOrderTypes)
}

func (s *Server) getWorkOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Invalid work order ID"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, wo := range s.WorkOrders {
		if wo.ID == id {
			c.JSON(http.StatusOK, wo)
			return
		}
	}
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "Work order not found"})
}

func (s *Server) createWorkOrder(c *gin.Context) {
	var req workorders.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Invalid request payload"})
		return
	}
	if req.Title == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Title is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wo := workorders.WorkOrder{
		ID:              s.nextWorkOrderID,
		WorkOrderNumber: "WO-" + strconv.Itoa(1000+s.nextWorkOrderID),
		Title:           req.Title,
		Priority:        req.Priority,
		Status:          "open",
		AssetID:         req.AssetID,
		TypeID:          req.TypeID,
		EstimatedHours:  req.EstimatedHours,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	if req.Description != nil {
		wo.Description = *req.Description
	}
	if req.Plant != nil {
		wo.Plant = *req.Plant
	}
	if req.AssetCategory != nil {
		wo.AssetCategory = *req.AssetCategory
	}
	if req.ScheduledDate != nil {
		wo.ScheduledDate = *req.ScheduledDate
	}
	if req.StartDate != nil {
		wo.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		wo.EndDate = *req.EndDate
	}

	s.nextWorkOrderID++
	s.WorkOrders = append(s.WorkOrders, wo)
	c.JSON(http.StatusOK, wo)
}

func (s *Server) listInventory(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The list endpoint returns bare master records; balances come from the
	// per-item details endpoint.
	items := make([]inventory.Item, len(s.Items))
	for i, item := range s.Items {
		item.Balances = nil
		items[i] = item
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) inventoryFilters(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	locations := uniqueSet()
	for _, loc := range s.Locations {
		locations.add(loc.Name)
	}
	assetCategories := uniqueSet()
	for _, cat := range s.AssetCategories {
		assetCategories.add(cat.Name)
	}
	categories := uniqueSet()
	criticalities := uniqueSet()
	for _, item := range s.Items {
		categories.add(item.Category)
		criticalities.add(item.Criticality)
	}

	c.JSON(http.StatusOK, gin.H{
		"locations":        locations.sorted(),
		"asset_categories": assetCategories.sorted(),
		"categories":       categories.sorted(),
		"criticalities":    criticalities.sorted(),
	})
}

func (s *Server) inventoryLocations(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	locations := make([]inventory.Location, 0, len(s.Locations))
	for _, loc := range s.Locations {
		locations = append(locations, inventory.Location{ID: loc.ID, Name: loc.Name})
	}
	c.JSON(http.StatusOK, locations)
}

func (s *Server) inventoryDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Invalid inventory ID"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.findItem(id)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "Inventory item not found"})
		return
	}

	c.JSON(http.StatusOK, inventory.Details{
		InventoryItem: item,
		Balances:      s.balancesFor(id),
		WorkOrders:    []inventory.WorkOrderConsumption{},
		Inflows:       s.inflowsFor(item),
	})
}

func (s *Server) deleteInventoryItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Invalid inventory ID"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.Items {
		if item.ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			kept := s.Balances[:0]
			for _, b := range s.Balances {
				if b.SparePartID != id {
					kept = append(kept, b)
				}
			}
			s.Balances = kept
			c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
			return
		}
	}
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "Inventory item not found"})
}

func (s *Server) createTransfer(c *gin.Context) {
	var req inventory.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Invalid request payload"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.TransferCalls++

	for _, item := range req.Items {
		balance := s.findBalance(item.SparePartID, req.FromLocationID)
		if balance == nil {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				gin.H{"detail": "No stock found for part " + strconv.Itoa(item.SparePartID) + " at source location"})
			return
		}
		if balance.InStock < item.Quantity {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				gin.H{"detail": "Insufficient stock for part " + strconv.Itoa(item.SparePartID)})
			return
		}
	}

	record := inventory.TransferHistory{
		ID:               s.nextTransferID,
		TransferDate:     req.TransferDate.Format(time.RFC3339),
		FromLocationName: s.locationName(req.FromLocationID),
		ToLocationName:   s.locationName(req.ToLocationID),
		TransferredBy:    s.userName(req.TransferredBy),
		Status:           "completed",
		Notes:            req.Notes,
	}

	for _, item := range req.Items {
		source := s.findBalance(item.SparePartID, req.FromLocationID)
		source.InStock -= item.Quantity

		if dest := s.findBalance(item.SparePartID, req.ToLocationID); dest != nil {
			dest.InStock += item.Quantity
		} else {
			s.Balances = append(s.Balances, inventory.Balance{
				ID:            len(s.Balances) + 1,
				SparePartID:   item.SparePartID,
				LocationID:    req.ToLocationID,
				InStock:       item.Quantity,
				TotalReceived: item.Quantity,
				LocationName:  s.locationName(req.ToLocationID),
			})
		}

		if part, ok := s.findItem(item.SparePartID); ok {
			record.Items = append(record.Items, inventory.TransferHistoryItem{
				PartCode: part.PartCode,
				PartName: part.PartName,
				Quantity: item.Quantity,
			})
		}
	}

	// Newest first, matching the server's created_at desc ordering.
	s.Transfers = append([]inventory.TransferHistory{record}, s.Transfers...)
	s.nextTransferID++

	c.JSON(http.StatusOK, gin.H{"message": "Transfer created successfully", "transfer_id": record.ID})
}

func (s *Server) receiveParts(c *gin.Context) {
	var req inventory.ReceiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Invalid request payload"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ReceiveCalls++

	if s.FailReceiveLocationID != 0 && req.LocationID == s.FailReceiveLocationID {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Invalid location"})
		return
	}

	part, ok := s.findItem(req.SparePartID)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"detail": "Unknown part " + strconv.Itoa(req.SparePartID)})
		return
	}

	if balance := s.findBalance(req.SparePartID, req.LocationID); balance != nil {
		balance.InStock += req.Quantity
		balance.TotalReceived += req.Quantity
	} else {
		s.Balances = append(s.Balances, inventory.Balance{
			ID:            len(s.Balances) + 1,
			SparePartID:   req.SparePartID,
			LocationID:    req.LocationID,
			InStock:       req.Quantity,
			TotalReceived: req.Quantity,
			LocationName:  s.locationName(req.LocationID),
		})
	}

	unitCost := 0.0
	if req.UnitCost != nil {
		unitCost, _ = req.UnitCost.Float64()
	}

	record := inventory.ReceiptHistory{
		ID:              s.nextInflowID,
		ReceivedDate:    req.ReceivedDate.Format(time.RFC3339),
		ReceivedFrom:    req.Supplier,
		ReceivedToName:  s.locationName(req.LocationID),
		ReceivedBy:      s.userName(req.ReceivedBy),
		Supplier:        req.Supplier,
		ReferenceNumber: req.ReferenceNumber,
		Items: []inventory.ReceiptHistoryItem{{
			PartCode: part.PartCode,
			PartName: part.PartName,
			Quantity: req.Quantity,
			UnitCost: unitCost,
		}},
	}
	s.Receipts = append([]inventory.ReceiptHistory{record}, s.Receipts...)
	s.nextInflowID++

	c.JSON(http.StatusOK, gin.H{"message": "Parts received successfully", "inflow_id": record.ID})
}

func (s *Server) transferHistory(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Transfers == nil {
		c.JSON(http.StatusOK, []inventory.TransferHistory{})
		return
	}
	c.JSON(http.StatusOK, s.Transfers)
}

func (s *Server) receiptHistory(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Receipts == nil {
		c.JSON(http.StatusOK, []inventory.ReceiptHistory{})
		return
	}
	c.JSON(http.StatusOK, s.Receipts)
}

func (s *Server) listUsers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.Users)
}

func (s *Server) listLocations(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.Locations)
}

func (s *Server) uniqueAddresses(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	addresses := uniqueSet()
	for _, loc := range s.Locations {
		addresses.add(loc.Address)
	}
	c.JSON(http.StatusOK, addresses.sorted())
}

func (s *Server) findItem(id int) (inventory.Item, bool) {
	for _, item := range s.Items {
		if item.ID == id {
			return item, true
		}
	}
	return inventory.Item{}, false
}

func (s *Server) findBalance(sparePartID, locationID int) *inventory.Balance {
	for i := range s.Balances {
		if s.Balances[i].SparePartID == sparePartID && s.Balances[i].LocationID == locationID {
			return &s.Balances[i]
		}
	}
	return nil
}

func (s *Server) balancesFor(sparePartID int) []inventory.Balance {
	result := []inventory.Balance{}
	for _, b := range s.Balances {
		if b.SparePartID == sparePartID {
			result = append(result, b)
		}
	}
	return result
}

func (s *Server) inflowsFor(item inventory.Item) []inventory.Inflow {
	result := []inventory.Inflow{}
	for _, r := range s.Receipts {
		for _, line := range r.Items {
			if line.PartCode != item.PartCode {
				continue
			}
			result = append(result, inventory.Inflow{
				ID:              r.ID,
				Quantity:        line.Quantity,
				LocationName:    r.ReceivedToName,
				ReceivedBy:      r.ReceivedBy,
				ReceivedDate:    r.ReceivedDate,
				Supplier:        r.Supplier,
				ReferenceNumber: r.ReferenceNumber,
				UnitCost:        line.UnitCost,
				TotalCost:       line.UnitCost * float64(line.Quantity),
			})
		}
	}
	return result
}

func (s *Server) locationName(id int) string {
	for _, loc := range s.Locations {
		if loc.ID == id {
			return loc.Name
		}
	}
	return "Unknown"
}

func (s *Server) userName(id int) string {
	for _, u := range s.Users {
		if u.ID == id {
			return u.Username
		}
	}
	return "Unknown"
}

type stringSet map[string]struct{}

func uniqueSet() stringSet { return stringSet{} }

func (s stringSet) add(v string) {
	if v != "" {
		s[v] = struct{}{}
	}
}

func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
