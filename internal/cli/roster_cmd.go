package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/cli/formatter"
)

func newRosterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage the team and machine roster",
	}
	cmd.AddCommand(newRosterImportCmd(app), newRosterListCmd(app))
	return cmd
}

func newRosterImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Replace the roster from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Roster.Import(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d teams and %d machines\n", result.TeamCount, result.MachineCount)
			return nil
		},
	}
}

func newRosterListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the current roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, machines, err := app.Roster.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatRoster(teams, machines))
			return nil
		},
	}
}
