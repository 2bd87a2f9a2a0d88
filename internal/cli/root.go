package cli

import (
	"github.com/spf13/cobra"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Schedule service.ScheduleService
	Audits   service.AuditService
	Stats    service.StatsService
	Export   service.ExportService
	Roster   service.RosterService
}

// NewRootCmd creates the top-level "lpaplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lpaplan",
		Short:         "Deterministic LPA rotation planner",
		Long:          "Generates the weekly machine audit rotation per team and coordinator,\nrecords audit outcomes and exports them for the plant quality system.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newWeekCmd(app),
		newAuditCmd(app),
		newStatsCmd(app),
		newExportCmd(app),
		newRosterCmd(app),
	)

	return root
}
