package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noelwild/Watchtower/pkg/core/model"
	"github.com/noelwild/Watchtower/pkg/core/roster"
	"github.com/noelwild/Watchtower/pkg/core/services"
)

// GenerateRosterCmd creates the generateRoster command
func GenerateRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateRoster [start-date]",
		Short: "Generate a draft roster for a station",
		Long:  "Generate a draft roster starting on the given date (YYYY-MM-DD). Defaults to the next Monday.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			station, _ := cmd.Flags().GetString("station")
			weeks, _ := cmd.Flags().GetInt("weeks")
			vanCoverage, _ := cmd.Flags().GetInt("van-coverage")
			watchhouseCoverage, _ := cmd.Flags().GetInt("watchhouse-coverage")

			var periodStart time.Time
			if len(args) > 0 {
				var err error
				periodStart, err = time.Parse("2006-01-02", args[0])
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", args[0], err)
				}
			}

			if station == "" {
				station = app.Cfg.DefaultStation
			}

			cfg := roster.DefaultGenerationConfig(model.Station(station))
			if weeks > 0 {
				cfg.PeriodWeeks = weeks
			} else if app.Cfg.PeriodWeeks > 0 {
				cfg.PeriodWeeks = app.Cfg.PeriodWeeks
			}
			if cmd.Flags().Changed("van-coverage") {
				cfg.MinVanCoverage = vanCoverage
			} else if app.Cfg.MinVanCoverage > 0 {
				cfg.MinVanCoverage = app.Cfg.MinVanCoverage
			}
			if cmd.Flags().Changed("watchhouse-coverage") {
				cfg.MinWatchhouseCoverage = watchhouseCoverage
			} else if app.Cfg.MinWatchhouseCoverage > 0 {
				cfg.MinWatchhouseCoverage = app.Cfg.MinWatchhouseCoverage
			}

			app.Logger.Debug("generateRoster command",
				zap.String("station", station),
				zap.Int("weeks", cfg.PeriodWeeks))

			result, err := services.GenerateRoster(app.Ctx, app.Database, app.Logger, cfg, periodStart, "cli")
			if err != nil {
				return fmt.Errorf("failed to generate roster: %w", err)
			}

			fmt.Printf("\n✅ Roster Generated (draft)\n\n")
			fmt.Printf("Roster ID:   %s\n", result.RosterPeriodID)
			fmt.Printf("Period:      %s to %s\n",
				result.PeriodStart.Format("2006-01-02"), result.PeriodEnd.Format("2006-01-02"))
			fmt.Printf("Assignments: %d\n\n", len(result.Assignments))

			fmt.Printf("%-38s  %6s  %6s\n", "Member", "Shifts", "Hours")
			fmt.Println("--------------------------------------  ------  ------")
			for memberID, summary := range result.MemberSummary {
				fmt.Printf("%-38s  %6d  %6.1f\n", memberID, summary.TotalShifts, summary.TotalHours)
			}

			printComplianceSummary(result.Compliance)
			return nil
		},
	}

	cmd.Flags().String("station", "", "Station to roster (defaults to config)")
	cmd.Flags().Int("weeks", 0, "Period length in weeks (default 2)")
	cmd.Flags().Int("van-coverage", 2, "Minimum van coverage per day")
	cmd.Flags().Int("watchhouse-coverage", 1, "Minimum watchhouse coverage per day")

	return cmd
}

// printComplianceSummary renders a compliance summary to the terminal
func printComplianceSummary(summary roster.ComplianceSummary) {
	fmt.Printf("\nCompliance: %d member(s) checked\n", summary.MembersChecked)

	if summary.HasViolations {
		fmt.Printf("\n❌ Violations:\n")
		for _, v := range summary.Violations {
			fmt.Printf("  - %s\n", v)
		}
	}
	if summary.HasWarnings {
		fmt.Printf("\n⚠️  Warnings:\n")
		for _, w := range summary.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
	if !summary.HasViolations && !summary.HasWarnings {
		fmt.Println("No violations or warnings")
	}
	fmt.Println()
}
