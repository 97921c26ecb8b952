package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

var UsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()
		users, err := app.directory.Users(cmd.Context())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(users))
		for _, u := range users {
			rows = append(rows, []string{
				strconv.Itoa(u.ID), u.Username, orDash(u.FullName), orDash(u.Email), orDash(u.Role),
			})
		}
		printTable([]string{"ID", "USERNAME", "NAME", "EMAIL", "ROLE"}, rows)
		return nil
	},
}

var LocationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List locations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()

		if addresses, _ := cmd.Flags().GetBool("addresses"); addresses {
			unique, err := app.directory.UniqueAddresses(cmd.Context())
			if err != nil {
				return err
			}
			for _, a := range unique {
				cmd.Println(a)
			}
			return nil
		}

		locations, err := app.directory.Locations(cmd.Context())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(locations))
		for _, l := range locations {
			rows = append(rows, []string{strconv.Itoa(l.ID), l.Name, orDash(l.Address)})
		}
		printTable([]string{"ID", "NAME", "ADDRESS"}, rows)
		return nil
	},
}

var HealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check API availability",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := newApp()
		health, err := app.directory.Health(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("API at %s: %s\n", app.cfg.BaseURL, health.Status)
		return nil
	},
}

func init() {
	LocationsCmd.Flags().Bool("addresses", false, "Print unique addresses only")
}
