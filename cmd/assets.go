package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/srm221B/cmms/internal/assets"
	"github.com/srm221B/cmms/internal/export"
)

var AssetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Browse plant assets",
}

var assetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assets, optionally filtered",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()

		filters := assets.Filters{
			Plant:              mustString(cmd, "plant"),
			AssetCategory:      mustString(cmd, "category"),
			Status:             mustString(cmd, "status"),
			RunningHoursMin:    floatFlag(cmd, "running-hours-min"),
			RunningHoursMax:    floatFlag(cmd, "running-hours-max"),
			PowerGenerationMin: floatFlag(cmd, "power-generation-min"),
			PowerGenerationMax: floatFlag(cmd, "power-generation-max"),
			LoadFactorMin:      floatFlag(cmd, "load-factor-min"),
			LoadFactorMax:      floatFlag(cmd, "load-factor-max"),
			AvailabilityMin:    floatFlag(cmd, "availability-min"),
			AvailabilityMax:    floatFlag(cmd, "availability-max"),
			BIMMin:             floatFlag(cmd, "bim-min"),
			BIMMax:             floatFlag(cmd, "bim-max"),
		}

		var err error
		if filters.CODStart, err = dateFlag(cmd, "cod-start"); err != nil {
			return err
		}
		if filters.CODEnd, err = dateFlag(cmd, "cod-end"); err != nil {
			return err
		}

		list, err := fetchRows(cmd.Context(), func(ctx context.Context) ([]assets.Asset, error) {
			return app.assets.List(ctx, filters, mustString(cmd, "search"))
		})
		if err != nil {
			return err
		}

		if path := mustString(cmd, "xlsx"); path != "" {
			if err := export.WriteAssets(path, list); err != nil {
				return err
			}
			cmd.Printf("Exported %d assets to %s\n", len(list), path)
			return nil
		}

		rows := make([][]string, 0, len(list))
		for _, a := range list {
			plant := "-"
			if a.Location != nil {
				plant = a.Location.Name
			}
			category := "-"
			if a.AssetCategory != nil {
				category = a.AssetCategory.Name
			}
			rows = append(rows, []string{
				strconv.Itoa(a.ID), a.Name, plant, category, a.Status,
				formatFloat(a.RunningHours), formatFloat(a.Availability), orDash(a.COD),
			})
		}
		printTable([]string{"ID", "NAME", "PLANT", "CATEGORY", "STATUS", "RUN HOURS", "AVAIL %", "COD"}, rows)
		return nil
	},
}

var assetsFiltersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show available filter values",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()
		options, err := app.assets.FilterOptions(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("Plants:     %v\n", options.Plants)
		cmd.Printf("Categories: %v\n", options.AssetCategories)
		cmd.Printf("Statuses:   %v\n", options.Statuses)
		return nil
	},
}

var assetsCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List asset categories",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()
		categories, err := app.assets.Categories(cmd.Context())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(categories))
		for _, c := range categories {
			rows = append(rows, []string{strconv.Itoa(c.ID), c.Name, orDash(c.Description)})
		}
		printTable([]string{"ID", "NAME", "DESCRIPTION"}, rows)
		return nil
	},
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func init() {
	flags := assetsListCmd.Flags()
	flags.String("plant", "", "Filter by plant")
	flags.String("category", "", "Filter by asset category")
	flags.String("status", "", "Filter by status")
	flags.String("search", "", "Search name, description and serial number")
	flags.Float64("running-hours-min", 0, "Minimum running hours")
	flags.Float64("running-hours-max", 0, "Maximum running hours")
	flags.Float64("power-generation-min", 0, "Minimum power generation")
	flags.Float64("power-generation-max", 0, "Maximum power generation")
	flags.Float64("load-factor-min", 0, "Minimum load factor")
	flags.Float64("load-factor-max", 0, "Maximum load factor")
	flags.Float64("availability-min", 0, "Minimum availability")
	flags.Float64("availability-max", 0, "Maximum availability")
	flags.Float64("bim-min", 0, "Minimum BIM")
	flags.Float64("bim-max", 0, "Maximum BIM")
	flags.String("cod-start", "", "Commercial operation date from (YYYY-MM-DD)")
	flags.String("cod-end", "", "Commercial operation date to (YYYY-MM-DD)")
	flags.String("xlsx", "", "Write the result to an XLSX file instead of printing")

	AssetsCmd.AddCommand(assetsListCmd)
	AssetsCmd.AddCommand(assetsFiltersCmd)
	AssetsCmd.AddCommand(assetsCategoriesCmd)
}
