package cmd

import (
	"github.com/spf13/cobra"

	"github.com/srm221B/cmms/internal/stubapi"
)

// StubAPICmd serves the in-memory fixture API for local development. Hidden
// because it is a tooling aid, not part of the client surface.
var StubAPICmd = &cobra.Command{
	Use:    "stub-api",
	Short:  "Serve a seeded in-memory CMMS API",
	Hidden: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		server := stubapi.New()
		cmd.Printf("Serving stub API on %s\n", addr)
		return server.Router().Run(addr)
	},
}

func init() {
	StubAPICmd.Flags().String("addr", ":8000", "Listen address")
}
