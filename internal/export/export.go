// Package export writes list pages to XLSX workbooks.
package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/srm221B/cmms/internal/assets"
	"github.com/srm221B/cmms/internal/inventory"
	"github.com/srm221B/cmms/internal/workorders"
)

// Workbook builds a single-sheet workbook with a bold shaded header row and
// one row per record, in fetch order.
func Workbook(sheetName string, headers []string, rows [][]string) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet %s: %w", sheetName, err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	return f, nil
}

func WriteAssets(path string, list []assets.Asset) error {
	headers := []string{"ID", "Name", "Description", "Status", "Manufacturer", "Model", "Serial Number", "Running Hours", "Availability"}
	rows := make([][]string, 0, len(list))
	for _, a := range list {
		rows = append(rows, []string{
			strconv.Itoa(a.ID),
			a.Name,
			a.Description,
			a.Status,
			a.Manufacturer,
			a.Model,
			a.SerialNumber,
			strconv.FormatFloat(a.RunningHours, 'f', -1, 64),
			strconv.FormatFloat(a.Availability, 'f', -1, 64),
		})
	}
	return save(path, "Assets", headers, rows)
}

func WriteWorkOrders(path string, list []workorders.WorkOrder) error {
	headers := []string{"ID", "Number", "Title", "Type", "Priority", "Status", "Scheduled Date", "Asset"}
	rows := make([][]string, 0, len(list))
	for _, wo := range list {
		rows = append(rows, []string{
			strconv.Itoa(wo.ID),
			wo.WorkOrderNumber,
			wo.Title,
			wo.TypeName,
			wo.Priority,
			wo.Status,
			wo.ScheduledDate,
			wo.AssetName,
		})
	}
	return save(path, "WorkOrders", headers, rows)
}

func WriteInventory(path string, list []inventory.Item) error {
	headers := []string{"ID", "Part Code", "Part Name", "Description", "Unit", "Unit Price", "Total Stock", "Min Qty", "Category", "Criticality"}
	rows := make([][]string, 0, len(list))
	for _, item := range list {
		rows = append(rows, []string{
			strconv.Itoa(item.ID),
			item.PartCode,
			item.PartName,
			item.Description,
			item.UnitOfIssue,
			strconv.FormatFloat(item.UnitPrice, 'f', 2, 64),
			strconv.Itoa(item.TotalStock()),
			strconv.Itoa(item.MinimumQuantity),
			item.Category,
			item.Criticality,
		})
	}
	return save(path, "Inventory", headers, rows)
}

func save(path, sheetName string, headers []string, rows [][]string) error {
	f, err := Workbook(sheetName, headers, rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}
