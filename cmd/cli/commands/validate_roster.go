package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noelwild/Watchtower/pkg/core/services"
)

// ValidateRosterCmd creates the validateRoster command
func ValidateRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validateRoster <rosterPeriodID>",
		Short: "Audit a stored roster's assignments without publishing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rosterPeriodID := args[0]

			app.Logger.Debug("validateRoster command", zap.String("roster_period_id", rosterPeriodID))

			summary, err := services.ValidateRoster(app.Ctx, app.Database, app.Logger, rosterPeriodID)
			if err != nil {
				return fmt.Errorf("failed to validate roster: %w", err)
			}

			printComplianceSummary(*summary)
			return nil
		},
	}

	return cmd
}
