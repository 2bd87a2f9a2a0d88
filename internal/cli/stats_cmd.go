package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/cli/formatter"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/contract"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
)

func newStatsCmd(app *App) *cobra.Command {
	var (
		shift       domain.Shift
		team        string
		coordinator bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completion statistics for one shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.StatsRequest{Shift: shift, Scope: contract.ScopeGlobal}
			switch {
			case coordinator && team != "":
				return fmt.Errorf("--team and --coordinator are mutually exclusive: %w", domain.ErrInvalidArgument)
			case coordinator:
				req.Scope = contract.ScopeCoordinator
			case team != "":
				req.Scope = contract.ScopeTeam
				req.TeamID = team
			}

			report, err := app.Stats.GetStats(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStats(report))
			return nil
		},
	}

	addShiftFlag(cmd, &shift)
	cmd.Flags().StringVarP(&team, "team", "t", "", "Scope to a single team id")
	cmd.Flags().BoolVar(&coordinator, "coordinator", false, "Scope to the coordinator role")

	return cmd
}
