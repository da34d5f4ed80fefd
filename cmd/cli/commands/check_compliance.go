package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noelwild/Watchtower/pkg/core/model"
	"github.com/noelwild/Watchtower/pkg/core/services"
)

// CheckComplianceCmd creates the checkCompliance command
func CheckComplianceCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkCompliance <memberID>",
		Short: "Evaluate a member's recent shift history against the EBA rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID := args[0]

			app.Logger.Debug("checkCompliance command", zap.String("member_id", memberID))

			report, err := services.CheckCompliance(app.Ctx, app.Database, app.Logger, memberID, time.Now().UTC())
			if err != nil {
				return fmt.Errorf("failed to check compliance: %w", err)
			}

			statusIcon := "✅"
			switch report.Status {
			case model.StatusWarning:
				statusIcon = "⚠️ "
			case model.StatusViolation:
				statusIcon = "❌"
			}

			fmt.Printf("\n%s Compliance: %s\n\n", statusIcon, report.Status)
			fmt.Printf("Member:             %s\n", report.MemberID)
			fmt.Printf("Fortnight Hours:    %.1f\n", report.FortnightHours)
			fmt.Printf("Consecutive Nights: %d\n", report.ConsecutiveNights)

			if len(report.Violations) > 0 {
				fmt.Printf("\nViolations:\n")
				for _, v := range report.Violations {
					fmt.Printf("  - %s\n", v)
				}
			}
			if len(report.Warnings) > 0 {
				fmt.Printf("\nWarnings:\n")
				for _, w := range report.Warnings {
					fmt.Printf("  - %s\n", w)
				}
			}
			fmt.Println()

			return nil
		},
	}

	return cmd
}
