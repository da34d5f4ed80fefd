package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noelwild/Watchtower/pkg/core/services"
)

// PublishRosterCmd creates the publishRoster command
func PublishRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publishRoster <rosterPeriodID>",
		Short: "Publish a draft roster",
		Long:  "Publish a draft roster. Publication fails when the roster has compliance violations.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rosterPeriodID := args[0]
			notify, _ := cmd.Flags().GetBool("notify")

			app.Logger.Debug("publishRoster command", zap.String("roster_period_id", rosterPeriodID))

			result, err := services.PublishRoster(app.Ctx, app.Database, app.Logger, rosterPeriodID)
			if err != nil {
				if errors.Is(err, services.ErrComplianceViolations) {
					fmt.Printf("\n❌ Publication blocked: %v\n", err)
					return err
				}
				return fmt.Errorf("failed to publish roster: %w", err)
			}

			fmt.Printf("\n✅ Roster Published\n\n")
			fmt.Printf("Roster ID:       %s\n", result.RosterPeriodID)
			fmt.Printf("Published At:    %s\n", result.PublishedAt.Format("2006-01-02 15:04"))
			fmt.Printf("Days In Advance: %d\n", result.DaysInAdvance)

			if len(result.Compliance.Warnings) > 0 {
				fmt.Printf("\n⚠️  Published with %d warning(s)\n", len(result.Compliance.Warnings))
			}

			if notify {
				gmailClient, err := app.GmailClient()
				if err != nil {
					return err
				}

				notifyResult, err := services.NotifyRoster(app.Ctx, app.Database, gmailClient, app.Logger, rosterPeriodID)
				if err != nil {
					return fmt.Errorf("failed to notify members: %w", err)
				}
				fmt.Printf("\n📧 Sent %d notification email(s)", notifyResult.EmailsSent)
				if len(notifyResult.Skipped) > 0 {
					fmt.Printf(" (%d member(s) skipped)", len(notifyResult.Skipped))
				}
				fmt.Println()
			}

			fmt.Println()
			return nil
		},
	}

	cmd.Flags().Bool("notify", false, "Email each rostered member their shifts after publishing")

	return cmd
}
