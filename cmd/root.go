package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/srm221B/cmms/internal/api"
	"github.com/srm221B/cmms/internal/assets"
	"github.com/srm221B/cmms/internal/config"
	"github.com/srm221B/cmms/internal/directory"
	"github.com/srm221B/cmms/internal/inventory"
	"github.com/srm221B/cmms/internal/logger"
	"github.com/srm221B/cmms/internal/workorders"
)

// app wires the shared client stack once per invocation.
type app struct {
	cfg       config.Config
	log       *zap.Logger
	client    *api.Client
	endpoints api.Endpoints

	assets     *assets.Service
	workOrders *workorders.Service
	inventory  *inventory.Service
	directory  *directory.Service
}

func newApp() *app {
	cfg := config.Load()
	log := logger.NewLogger()
	client := api.NewClient(cfg.HTTPTimeout, log)
	endpoints := api.NewEndpoints(cfg.BaseURL)

	return &app{
		cfg:        cfg,
		log:        log,
		client:     client,
		endpoints:  endpoints,
		assets:     assets.NewService(client, endpoints),
		workOrders: workorders.NewService(client, endpoints),
		inventory:  inventory.NewService(client, endpoints, log),
		directory:  directory.NewService(client, endpoints),
	}
}

func Execute() {
	rootCmd := &cobra.Command{
		Use:   "cmms",
		Short: "CMMS command line client",
		Long:  `Client for the plant maintenance API: assets, work orders, spare part inventory, transfers and goods receipts.`,
	}

	rootCmd.AddCommand(AssetsCmd)
	rootCmd.AddCommand(WorkOrdersCmd)
	rootCmd.AddCommand(InventoryCmd)
	rootCmd.AddCommand(UsersCmd)
	rootCmd.AddCommand(LocationsCmd)
	rootCmd.AddCommand(HealthCmd)
	rootCmd.AddCommand(StubAPICmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
