package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/srm221B/cmms/internal/documents"
	"github.com/srm221B/cmms/internal/export"
	"github.com/srm221B/cmms/internal/inventory"
	"github.com/srm221B/cmms/internal/inventory/receiving"
	"github.com/srm221B/cmms/internal/inventory/transfers"
)

var InventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Spare part inventory, transfers and goods receipts",
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List spare parts, optionally filtered",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()

		filters := inventory.Filters{
			Location:           mustString(cmd, "location"),
			AssetCategory:      mustString(cmd, "asset-category"),
			Category:           mustString(cmd, "category"),
			Criticality:        mustString(cmd, "criticality"),
			MinimumQuantityMin: intFlag(cmd, "min-quantity-min"),
			MinimumQuantityMax: intFlag(cmd, "min-quantity-max"),
		}
		search := mustString(cmd, "search")

		// Location filtering and stock columns need per-location balances.
		withBalances, _ := cmd.Flags().GetBool("balances")
		if filters.Location != "" {
			withBalances = true
		}

		items, err := fetchRows(cmd.Context(), func(ctx context.Context) ([]inventory.Item, error) {
			if withBalances {
				return app.inventory.ListWithBalances(ctx)
			}
			return app.inventory.List(ctx)
		})
		if err != nil {
			return err
		}

		items = inventory.FilterItems(items, filters, search)

		if path := mustString(cmd, "xlsx"); path != "" {
			if err := export.WriteInventory(path, items); err != nil {
				return err
			}
			cmd.Printf("Exported %d parts to %s\n", len(items), path)
			return nil
		}

		rows := make([][]string, 0, len(items))
		for _, item := range items {
			stock := "-"
			if withBalances {
				stock = strconv.Itoa(item.TotalStock())
			}
			rows = append(rows, []string{
				strconv.Itoa(item.ID), item.PartCode, item.PartName, item.UnitOfIssue,
				orDash(item.Category), orDash(item.Criticality),
				strconv.Itoa(item.MinimumQuantity), stock,
			})
		}
		printTable([]string{"ID", "CODE", "NAME", "UOI", "CATEGORY", "CRITICALITY", "MIN QTY", "IN STOCK"}, rows)
		return nil
	},
}

var inventoryDetailsCmd = &cobra.Command{
	Use:   "details <id>",
	Short: "Show one spare part with balances, consumption and inflows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		app := newApp()
		details, err := app.inventory.Details(cmd.Context(), id)
		if err != nil {
			return err
		}

		item := details.InventoryItem
		cmd.Printf("%s  %s\n", item.PartCode, item.PartName)
		if item.Description != "" {
			cmd.Printf("%s\n", item.Description)
		}
		cmd.Printf("Unit: %s  Price: %.2f  Min qty: %d\n\n", item.UnitOfIssue, item.UnitPrice, item.MinimumQuantity)

		cmd.Println("Balances:")
		rows := make([][]string, 0, len(details.Balances))
		for _, b := range details.Balances {
			rows = append(rows, []string{
				b.LocationName, strconv.Itoa(b.InStock),
				strconv.Itoa(b.TotalReceived), strconv.Itoa(b.TotalConsumption),
			})
		}
		printTable([]string{"LOCATION", "IN STOCK", "RECEIVED", "CONSUMED"}, rows)

		if len(details.WorkOrders) > 0 {
			cmd.Println("\nWork order consumption:")
			rows = rows[:0]
			for _, wo := range details.WorkOrders {
				rows = append(rows, []string{
					wo.WorkOrderNumber, wo.WorkOrderTitle, wo.WorkOrderStatus,
					strconv.Itoa(wo.QuantityUsed), wo.LocationName, orDash(wo.ConsumptionDate),
				})
			}
			printTable([]string{"NUMBER", "TITLE", "STATUS", "QTY", "LOCATION", "DATE"}, rows)
		}

		if len(details.Inflows) > 0 {
			cmd.Println("\nInflows:")
			rows = rows[:0]
			for _, in := range details.Inflows {
				rows = append(rows, []string{
					orDash(in.ReceivedDate), strconv.Itoa(in.Quantity), in.LocationName,
					orDash(in.Supplier), orDash(in.ReferenceNumber), fmt.Sprintf("%.2f", in.UnitCost),
				})
			}
			printTable([]string{"DATE", "QTY", "LOCATION", "SUPPLIER", "REFERENCE", "UNIT COST"}, rows)
		}
		return nil
	},
}

var inventoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a spare part",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		app := newApp()
		if err := app.inventory.Delete(cmd.Context(), id); err != nil {
			return err
		}
		cmd.Printf("Deleted part %d\n", id)
		return nil
	},
}

var inventoryFiltersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show available filter values",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()
		options, err := app.inventory.FilterOptions(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("Locations:        %v\n", options.Locations)
		cmd.Printf("Asset categories: %v\n", options.AssetCategories)
		cmd.Printf("Categories:       %v\n", options.Categories)
		cmd.Printf("Criticalities:    %v\n", options.Criticalities)
		return nil
	},
}

var inventoryTransferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer spare parts between locations",
	Long: `Assembles a stock transfer and submits it after validating every line
against the source location's on-hand quantity. Each --line takes the form
CODE:QTY where CODE matches a part code or name.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()

		form := transfers.NewForm(app.inventory, app.log)
		if err := form.Open(cmd.Context()); err != nil {
			return err
		}

		form.FromLocationID, _ = cmd.Flags().GetInt("from")
		form.ToLocationID, _ = cmd.Flags().GetInt("to")
		form.TransferredBy, _ = cmd.Flags().GetInt("by")
		form.Notes = mustString(cmd, "notes")
		form.TransferDate = time.Now()
		if date, err := dateFlag(cmd, "date"); err != nil {
			return err
		} else if date != nil {
			form.TransferDate = *date
		}

		lines, _ := cmd.Flags().GetStringArray("line")
		for i, arg := range lines {
			code, qty, err := parseLine(arg)
			if err != nil {
				return err
			}
			form.AddLine()
			if err := form.SetLineItem(i, code); err != nil {
				return err
			}
			if err := form.SetLineQuantity(i, qty); err != nil {
				return err
			}
		}

		var transmittal documents.Transmittal
		wantPDF, _ := cmd.Flags().GetBool("pdf")
		if wantPDF {
			var err error
			if transmittal, err = form.Transmittal(time.Now()); err != nil {
				return err
			}
		}

		id, err := form.Submit(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("Transfer %d created\n", id)

		if wantPDF {
			path, err := documents.SaveTransmittal(transmittal, app.cfg.DocumentDir)
			if err != nil {
				return err
			}
			cmd.Printf("Transmittal written to %s\n", path)
		}
		return nil
	},
}

var inventoryReceiveCmd = &cobra.Command{
	Use:   "receive",
	Short: "Record received spare parts",
	Long: `Posts one goods-receipt line per part to the destination location.
Lines are applied in order; on failure the earlier lines stay applied and the
error reports how many went through.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()

		form := receiving.NewForm(app.inventory, app.log)
		if err := form.Open(cmd.Context()); err != nil {
			return err
		}

		form.ReceivedTo, _ = cmd.Flags().GetInt("location")
		form.ReceivedBy, _ = cmd.Flags().GetInt("by")
		form.ReceivedFrom = mustString(cmd, "from")
		form.Supplier = mustString(cmd, "supplier")
		form.ReferenceNumber = mustString(cmd, "reference")
		form.ReceivedDate = time.Now()
		if date, err := dateFlag(cmd, "date"); err != nil {
			return err
		} else if date != nil {
			form.ReceivedDate = *date
		}

		if v := mustString(cmd, "unit-cost"); v != "" {
			cost, err := decimal.NewFromString(v)
			if err != nil {
				return fmt.Errorf("flag --unit-cost: %w", err)
			}
			form.UnitCost = &cost
		}

		lines, _ := cmd.Flags().GetStringArray("line")
		for i, arg := range lines {
			code, qty, err := parseLine(arg)
			if err != nil {
				return err
			}
			form.AddLine()
			if err := form.SetLineItem(i, code); err != nil {
				return err
			}
			if err := form.SetLineQuantity(i, qty); err != nil {
				return err
			}
		}

		var note documents.ReceiptNote
		wantPDF, _ := cmd.Flags().GetBool("pdf")
		if wantPDF {
			var err error
			if note, err = form.ReceiptNote(time.Now()); err != nil {
				return err
			}
		}

		if err := form.Submit(cmd.Context()); err != nil {
			return err
		}
		cmd.Println("Parts received")

		if wantPDF {
			path, err := documents.SaveReceiptNote(note, app.cfg.DocumentDir)
			if err != nil {
				return err
			}
			cmd.Printf("Receipt note written to %s\n", path)
		}
		return nil
	},
}

var inventoryTransfersCmd = &cobra.Command{
	Use:   "transfers",
	Short: "Show transfer history, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()
		history, err := app.inventory.Transfers(cmd.Context())
		if err != nil {
			return err
		}

		if id, _ := cmd.Flags().GetInt("pdf"); id > 0 {
			for _, t := range history {
				if t.ID == id {
					doc := transfers.HistoryTransmittal(t, time.Now())
					path, err := documents.SaveTransmittal(doc, app.cfg.DocumentDir)
					if err != nil {
						return err
					}
					cmd.Printf("Transmittal written to %s\n", path)
					return nil
				}
			}
			return fmt.Errorf("transfer %d not found", id)
		}

		if len(history) == 0 {
			cmd.Println("No transfers found")
			return nil
		}

		rows := make([][]string, 0, len(history))
		for _, t := range history {
			rows = append(rows, []string{
				strconv.Itoa(t.ID), orDash(t.TransferDate), t.FromLocationName,
				t.ToLocationName, t.TransferredBy, t.Status,
				strconv.Itoa(len(t.Items)),
			})
		}
		printTable([]string{"ID", "DATE", "FROM", "TO", "BY", "STATUS", "LINES"}, rows)
		return nil
	},
}

var inventoryReceiptsCmd = &cobra.Command{
	Use:   "receipts",
	Short: "Show goods receipt history, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()
		history, err := app.inventory.Receipts(cmd.Context())
		if err != nil {
			return err
		}

		if id, _ := cmd.Flags().GetInt("pdf"); id > 0 {
			for _, r := range history {
				if r.ID == id {
					doc := receiving.HistoryReceiptNote(r, time.Now())
					path, err := documents.SaveReceiptNote(doc, app.cfg.DocumentDir)
					if err != nil {
						return err
					}
					cmd.Printf("Receipt note written to %s\n", path)
					return nil
				}
			}
			return fmt.Errorf("receipt %d not found", id)
		}

		if len(history) == 0 {
			cmd.Println("No receipts found")
			return nil
		}

		rows := make([][]string, 0, len(history))
		for _, r := range history {
			rows = append(rows, []string{
				strconv.Itoa(r.ID), orDash(r.ReceivedDate), orDash(r.Supplier),
				r.ReceivedToName, r.ReceivedBy, orDash(r.ReferenceNumber),
				strconv.Itoa(len(r.Items)),
			})
		}
		printTable([]string{"ID", "DATE", "SUPPLIER", "TO", "BY", "REFERENCE", "LINES"}, rows)
		return nil
	},
}

// parseLine splits a CODE:QTY argument. The quantity follows the last colon
// so part codes containing colons still work.
func parseLine(arg string) (string, int, error) {
	i := strings.LastIndex(arg, ":")
	if i <= 0 || i == len(arg)-1 {
		return "", 0, fmt.Errorf("invalid line %q, expected CODE:QTY", arg)
	}
	qty, err := strconv.Atoi(arg[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid quantity in line %q", arg)
	}
	return arg[:i], qty, nil
}

func init() {
	listFlags := inventoryListCmd.Flags()
	listFlags.String("location", "", "Filter by stocking location")
	listFlags.String("asset-category", "", "Filter by asset category")
	listFlags.String("category", "", "Filter by part category")
	listFlags.String("criticality", "", "Filter by criticality")
	listFlags.String("search", "", "Search part code, name and description")
	listFlags.Int("min-quantity-min", 0, "Minimum reorder level")
	listFlags.Int("min-quantity-max", 0, "Maximum reorder level")
	listFlags.Bool("balances", false, "Load per-location balances and show total stock")
	listFlags.String("xlsx", "", "Write the result to an XLSX file instead of printing")

	transferFlags := inventoryTransferCmd.Flags()
	transferFlags.Int("from", 0, "Source location ID (required)")
	transferFlags.Int("to", 0, "Destination location ID (required)")
	transferFlags.Int("by", 0, "Transferring user ID")
	transferFlags.String("date", "", "Transfer date (YYYY-MM-DD), defaults to today")
	transferFlags.String("notes", "", "Notes")
	transferFlags.StringArray("line", nil, "Transfer line as CODE:QTY, repeatable")
	transferFlags.Bool("pdf", false, "Write a transmittal PDF after submitting")
	_ = inventoryTransferCmd.MarkFlagRequired("from")
	_ = inventoryTransferCmd.MarkFlagRequired("to")
	_ = inventoryTransferCmd.MarkFlagRequired("line")

	receiveFlags := inventoryReceiveCmd.Flags()
	receiveFlags.Int("location", 0, "Destination location ID (required)")
	receiveFlags.Int("by", 0, "Receiving user ID")
	receiveFlags.String("from", "", "Received from")
	receiveFlags.String("supplier", "", "Supplier name")
	receiveFlags.String("reference", "", "Reference number (PO, delivery note)")
	receiveFlags.String("date", "", "Receipt date (YYYY-MM-DD), defaults to today")
	receiveFlags.String("unit-cost", "", "Unit cost applied to every line")
	receiveFlags.StringArray("line", nil, "Receipt line as CODE:QTY, repeatable")
	receiveFlags.Bool("pdf", false, "Write a receipt note PDF after submitting")
	_ = inventoryReceiveCmd.MarkFlagRequired("location")
	_ = inventoryReceiveCmd.MarkFlagRequired("line")

	inventoryTransfersCmd.Flags().Int("pdf", 0, "Regenerate the transmittal PDF for a transfer ID")
	inventoryReceiptsCmd.Flags().Int("pdf", 0, "Regenerate the receipt note PDF for a receipt ID")

	InventoryCmd.AddCommand(inventoryListCmd)
	InventoryCmd.AddCommand(inventoryDetailsCmd)
	InventoryCmd.AddCommand(inventoryDeleteCmd)
	InventoryCmd.AddCommand(inventoryFiltersCmd)
	InventoryCmd.AddCommand(inventoryTransferCmd)
	InventoryCmd.AddCommand(inventoryReceiveCmd)
	InventoryCmd.AddCommand(inventoryTransfersCmd)
	InventoryCmd.AddCommand(inventoryReceiptsCmd)
}
