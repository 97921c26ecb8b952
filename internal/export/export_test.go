package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/srm221B/cmms/internal/inventory"
)

func TestWriteInventoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.xlsx")

	items := []inventory.Item{
		{
			ID: 1, PartCode: "FLT-001", PartName: "Fuel filter element",
			UnitOfIssue: "EA", UnitPrice: 145.5, MinimumQuantity: 10,
			Category: "Filters", Criticality: "high",
			Balances: []inventory.Balance{
				{LocationID: 1, InStock: 10},
				{LocationID: 2, InStock: 4},
			},
		},
		{ID: 2, PartCode: "GSK-014", PartName: "Cylinder head gasket", UnitOfIssue: "SET"},
	}

	assert.NoError(t, WriteInventory(path, items))

	f, err := excelize.OpenFile(path)
	assert.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Inventory"}, f.GetSheetList())

	header, err := f.GetCellValue("Inventory", "B1")
	assert.NoError(t, err)
	assert.Equal(t, "Part Code", header)

	code, err := f.GetCellValue("Inventory", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "FLT-001", code)

	stock, err := f.GetCellValue("Inventory", "G2")
	assert.NoError(t, err)
	assert.Equal(t, "14", stock)

	rows, err := f.GetRows("Inventory")
	assert.NoError(t, err)
	assert.Len(t, rows, 3) // header + two records
}

func TestWorkbookKeepsRowOrder(t *testing.T) {
	f, err := Workbook("Parts", []string{"Code"}, [][]string{{"A"}, {"B"}, {"C"}})
	assert.NoError(t, err)
	defer f.Close()

	for i, want := range []string{"A", "B", "C"} {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		got, err := f.GetCellValue("Parts", cell)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
