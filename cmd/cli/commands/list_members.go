package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noelwild/Watchtower/pkg/core/model"
)

// ListMembersCmd creates the listMembers command
func ListMembersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listMembers",
		Short: "List active members for a station",
		RunE: func(cmd *cobra.Command, args []string) error {
			station, _ := cmd.Flags().GetString("station")
			if station == "" {
				station = app.Cfg.DefaultStation
			}

			members, err := app.Database.ListActiveMembers(app.Ctx, model.Station(station))
			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}

			fmt.Printf("\n%d active member(s) at %s\n\n", len(members), station)
			fmt.Printf("%-38s  %-24s  %-12s  %s\n", "ID", "Name", "Rank", "Rest Days")
			fmt.Println(strings.Repeat("-", 90))
			for _, m := range members {
				fmt.Printf("%-38s  %-24s  %-12s  %s\n",
					m.ID, m.Name, m.Rank, strings.Join(m.Preferences.PreferredRestDays, ", "))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("station", "", "Station to list (defaults to config)")

	return cmd
}
