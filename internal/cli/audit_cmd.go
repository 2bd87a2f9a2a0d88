package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
)

func newAuditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Record or clear audit outcomes",
	}
	cmd.AddCommand(newAuditSetCmd(app), newAuditClearCmd(app))
	return cmd
}

func newAuditSetCmd(app *App) *cobra.Command {
	var (
		week        int
		shift       domain.Shift
		team        string
		coordinator bool
		day         int
		machineID   string
		statusRaw   string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Record the outcome of one audit slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			assignee := team
			if coordinator {
				if team != "" {
					return fmt.Errorf("--team and --coordinator are mutually exclusive: %w", domain.ErrInvalidArgument)
				}
				assignee = domain.CoordinatorAssignee
			}

			status, err := domain.ParseAuditStatus(statusRaw)
			if err != nil {
				return err
			}

			key := domain.AuditKey{
				Shift:     shift,
				Week:      week,
				Assignee:  assignee,
				Day:       day,
				MachineID: machineID,
			}
			if err := app.Audits.SetStatus(context.Background(), key, status); err != nil {
				return err
			}
			fmt.Printf("Recorded %s for %s on machine %s (week %d, shift %s, day %d)\n",
				status, assignee, machineID, week, shift, day)
			return nil
		},
	}

	cmd.Flags().IntVarP(&week, "week", "w", 1, "Planning week (1-52)")
	addShiftFlag(cmd, &shift)
	cmd.Flags().StringVarP(&team, "team", "t", "", "Team id the slot belongs to")
	cmd.Flags().BoolVar(&coordinator, "coordinator", false, "Record against the coordinator role")
	cmd.Flags().IntVarP(&day, "day", "d", 0, "Day index (0=Monday .. 5=Saturday)")
	cmd.Flags().StringVarP(&machineID, "machine", "m", "", "Machine id assigned to the slot")
	cmd.Flags().StringVar(&statusRaw, "status", "", "Outcome: pass/si, fail/no, absent/a or unset")
	_ = cmd.MarkFlagRequired("machine")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newAuditClearCmd(app *App) *cobra.Command {
	var shift domain.Shift

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded outcome for one shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Audits.ClearShift(context.Background(), shift); err != nil {
				return err
			}
			fmt.Printf("Cleared all recorded outcomes for shift %s\n", shift)
			return nil
		},
	}

	addShiftFlag(cmd, &shift)
	return cmd
}
