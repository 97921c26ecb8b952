package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterTestItems() []Item {
	return []Item{
		{
			ID: 1, PartCode: "FLT-001", PartName: "Fuel filter element",
			Description: "Primary fuel filter", Category: "Filters",
			Criticality: "high", MinimumQuantity: 10,
			Balances: []Balance{
				{LocationID: 1, InStock: 10, LocationName: "Main Warehouse"},
				{LocationID: 2, InStock: 4, LocationName: "Unit 1 Store"},
			},
		},
		{
			ID: 2, PartCode: "GSK-014", PartName: "Cylinder head gasket",
			Category: "Gaskets", Criticality: "medium", MinimumQuantity: 4,
			Balances: []Balance{
				{LocationID: 1, InStock: 6, LocationName: "Main Warehouse"},
			},
		},
		{
			ID: 3, PartCode: "BRG-220", PartName: "Main bearing shell",
			Category: "Bearings", Criticality: "high", MinimumQuantity: 2,
		},
	}
}

func TestEmptyFiltersKeepEverything(t *testing.T) {
	items := filterTestItems()
	assert.Len(t, FilterItems(items, Filters{}, ""), len(items))
}

func TestFilterByLocationNeedsABalanceThere(t *testing.T) {
	matched := FilterItems(filterTestItems(), Filters{Location: "Unit 1 Store"}, "")
	assert.Len(t, matched, 1)
	assert.Equal(t, "FLT-001", matched[0].PartCode)
}

func TestFilterByCriticality(t *testing.T) {
	matched := FilterItems(filterTestItems(), Filters{Criticality: "high"}, "")
	assert.Len(t, matched, 2)
}

func TestFilterByMinimumQuantityRange(t *testing.T) {
	min, max := 3, 5
	matched := FilterItems(filterTestItems(), Filters{MinimumQuantityMin: &min, MinimumQuantityMax: &max}, "")
	assert.Len(t, matched, 1)
	assert.Equal(t, "GSK-014", matched[0].PartCode)
}

func TestSearchCoversCodeNameAndDescription(t *testing.T) {
	items := filterTestItems()

	assert.Len(t, FilterItems(items, Filters{}, "gsk"), 1)
	assert.Len(t, FilterItems(items, Filters{}, "bearing"), 1)
	assert.Len(t, FilterItems(items, Filters{}, "primary fuel"), 1)
	assert.Empty(t, FilterItems(items, Filters{}, "no such part"))
}

func TestFiltersAndSearchCombine(t *testing.T) {
	matched := FilterItems(filterTestItems(), Filters{Criticality: "high"}, "filter")
	assert.Len(t, matched, 1)
	assert.Equal(t, "FLT-001", matched[0].PartCode)
}

func TestTotalStockAndStockAt(t *testing.T) {
	item := filterTestItems()[0]

	assert.Equal(t, 14, item.TotalStock())
	assert.Equal(t, 10, item.StockAt(1))
	assert.Equal(t, 4, item.StockAt(2))
	assert.Equal(t, 0, item.StockAt(99))
}

func TestSearchItemsMatchesCodeOrName(t *testing.T) {
	items := filterTestItems()

	assert.Len(t, SearchItems(items, "flt"), 1)
	assert.Len(t, SearchItems(items, "Gasket"), 1)
	assert.Empty(t, SearchItems(items, ""))
	assert.Empty(t, SearchItems(items, "   "))
}
