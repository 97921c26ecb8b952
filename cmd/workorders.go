package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/srm221B/cmms/internal/export"
	"github.com/srm221B/cmms/internal/workorders"
)

var WorkOrdersCmd = &cobra.Command{
	Use:   "work-orders",
	Short: "Browse and create work orders",
}

var workOrdersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List work orders, optionally filtered",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()

		filters := workorders.Filters{
			Plant:             mustString(cmd, "plant"),
			Asset:             mustString(cmd, "asset"),
			Type:              mustString(cmd, "type"),
			Status:            mustString(cmd, "status"),
			EstimatedHoursMin: floatFlag(cmd, "estimated-hours-min"),
			EstimatedHoursMax: floatFlag(cmd, "estimated-hours-max"),
			ActualHoursMin:    floatFlag(cmd, "actual-hours-min"),
			ActualHoursMax:    floatFlag(cmd, "actual-hours-max"),
		}

		var err error
		if filters.ScheduledDateStart, err = dateFlag(cmd, "scheduled-start"); err != nil {
			return err
		}
		if filters.ScheduledDateEnd, err = dateFlag(cmd, "scheduled-end"); err != nil {
			return err
		}
		if filters.StartDateStart, err = dateFlag(cmd, "started-after"); err != nil {
			return err
		}
		if filters.StartDateEnd, err = dateFlag(cmd, "started-before"); err != nil {
			return err
		}
		if filters.EndDateStart, err = dateFlag(cmd, "ended-after"); err != nil {
			return err
		}
		if filters.EndDateEnd, err = dateFlag(cmd, "ended-before"); err != nil {
			return err
		}

		list, err := fetchRows(cmd.Context(), func(ctx context.Context) ([]workorders.WorkOrder, error) {
			return app.workOrders.List(ctx, filters, mustString(cmd, "search"))
		})
		if err != nil {
			return err
		}

		if path := mustString(cmd, "xlsx"); path != "" {
			if err := export.WriteWorkOrders(path, list); err != nil {
				return err
			}
			cmd.Printf("Exported %d work orders to %s\n", len(list), path)
			return nil
		}

		rows := make([][]string, 0, len(list))
		for _, wo := range list {
			rows = append(rows, []string{
				wo.WorkOrderNumber, wo.Title, orDash(wo.Plant), orDash(wo.AssetName),
				orDash(wo.TypeName), wo.Status, orDash(wo.ScheduledDate),
				formatFloatPtr(wo.EstimatedHours),
			})
		}
		printTable([]string{"NUMBER", "TITLE", "PLANT", "ASSET", "TYPE", "STATUS", "SCHEDULED", "EST HOURS"}, rows)
		return nil
	},
}

var workOrdersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one work order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		app := newApp()
		wo, err := app.workOrders.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		cmd.Printf("%s  %s\n", wo.WorkOrderNumber, wo.Title)
		cmd.Printf("Status:     %s (%s priority)\n", wo.Status, orDash(wo.Priority))
		cmd.Printf("Plant:      %s\n", orDash(wo.Plant))
		cmd.Printf("Asset:      %s\n", orDash(wo.AssetName))
		cmd.Printf("Type:       %s\n", orDash(wo.TypeName))
		cmd.Printf("Scheduled:  %s\n", orDash(wo.ScheduledDate))
		cmd.Printf("Started:    %s\n", orDash(wo.StartDate))
		cmd.Printf("Ended:      %s\n", orDash(wo.EndDate))
		cmd.Printf("Est. hours: %s\n", formatFloatPtr(wo.EstimatedHours))
		cmd.Printf("Act. hours: %s\n", formatFloatPtr(wo.ActualHours))
		if wo.Description != "" {
			cmd.Printf("\n%s\n", wo.Description)
		}
		return nil
	},
}

var workOrdersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a work order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()

		req := workorders.CreateRequest{
			Title:    mustString(cmd, "title"),
			Priority: mustString(cmd, "priority"),
		}
		if v := mustString(cmd, "description"); v != "" {
			req.Description = &v
		}
		if v := mustString(cmd, "plant"); v != "" {
			req.Plant = &v
		}
		if v := mustString(cmd, "category"); v != "" {
			req.AssetCategory = &v
		}
		req.AssetID = intFlag(cmd, "asset-id")
		req.TypeID = intFlag(cmd, "type-id")
		req.EstimatedHours = floatFlag(cmd, "estimated-hours")
		if v := mustString(cmd, "scheduled"); v != "" {
			req.ScheduledDate = &v
		}

		created, err := app.workOrders.Create(cmd.Context(), req)
		if err != nil {
			return err
		}
		cmd.Printf("Created %s (id %d)\n", created.WorkOrderNumber, created.ID)
		return nil
	},
}

var workOrdersTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List work order types",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()
		types, err := app.workOrders.Types(cmd.Context())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(types))
		for _, t := range types {
			rows = append(rows, []string{strconv.Itoa(t.ID), t.Name})
		}
		printTable([]string{"ID", "NAME"}, rows)
		return nil
	},
}

var workOrdersFiltersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show available filter values",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()
		options, err := app.workOrders.FilterOptions(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("Plants:     %v\n", options.Plants)
		cmd.Printf("Categories: %v\n", options.AssetCategories)
		cmd.Printf("Types:      %v\n", options.WorkOrderTypes)
		cmd.Printf("Statuses:   %v\n", options.Statuses)
		return nil
	},
}

func init() {
	flags := workOrdersListCmd.Flags()
	flags.String("plant", "", "Filter by plant")
	flags.String("asset", "", "Filter by asset name")
	flags.String("type", "", "Filter by work order type")
	flags.String("status", "", "Filter by status")
	flags.String("search", "", "Search number, title and description")
	flags.String("scheduled-start", "", "Scheduled from (YYYY-MM-DD)")
	flags.String("scheduled-end", "", "Scheduled to (YYYY-MM-DD)")
	flags.String("started-after", "", "Start date from (YYYY-MM-DD)")
	flags.String("started-before", "", "Start date to (YYYY-MM-DD)")
	flags.String("ended-after", "", "End date from (YYYY-MM-DD)")
	flags.String("ended-before", "", "End date to (YYYY-MM-DD)")
	flags.Float64("estimated-hours-min", 0, "Minimum estimated hours")
	flags.Float64("estimated-hours-max", 0, "Maximum estimated hours")
	flags.Float64("actual-hours-min", 0, "Minimum actual hours")
	flags.Float64("actual-hours-max", 0, "Maximum actual hours")
	flags.String("xlsx", "", "Write the result to an XLSX file instead of printing")

	createFlags := workOrdersCreateCmd.Flags()
	createFlags.String("title", "", "Work order title (required)")
	createFlags.String("description", "", "Description")
	createFlags.String("plant", "", "Plant")
	createFlags.String("category", "", "Asset category")
	createFlags.Int("asset-id", 0, "Asset ID")
	createFlags.Int("type-id", 0, "Work order type ID")
	createFlags.String("priority", "medium", "Priority")
	createFlags.String("scheduled", "", "Scheduled date (YYYY-MM-DD)")
	createFlags.Float64("estimated-hours", 0, "Estimated hours")
	_ = workOrdersCreateCmd.MarkFlagRequired("title")

	WorkOrdersCmd.AddCommand(workOrdersListCmd)
	WorkOrdersCmd.AddCommand(workOrdersGetCmd)
	WorkOrdersCmd.AddCommand(workOrdersCreateCmd)
	WorkOrdersCmd.AddCommand(workOrdersTypesCmd)
	WorkOrdersCmd.AddCommand(workOrdersFiltersCmd)
}
