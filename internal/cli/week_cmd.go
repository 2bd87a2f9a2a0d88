package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/cli/formatter"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/contract"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
)

func newWeekCmd(app *App) *cobra.Command {
	var week int
	var shift domain.Shift

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the generated rotation for one week and shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Schedule.GenerateWeek(context.Background(), contract.WeekScheduleRequest{
				Week:  week,
				Shift: shift,
			})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatWeekSchedule(resp))
			return nil
		},
	}

	cmd.Flags().IntVarP(&week, "week", "w", 1, "Planning week (1-52)")
	addShiftFlag(cmd, &shift)

	return cmd
}
