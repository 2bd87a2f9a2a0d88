package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/contract"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		shift    domain.Shift
		outPath  string
		skipOpen bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export recorded outcomes as semicolon-separated CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Export.BuildExport(context.Background(), shift)
			if err != nil {
				return err
			}

			var out io.Writer = os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				out = f
			}

			if err := writeCSV(out, rows, skipOpen); err != nil {
				return err
			}
			if outPath != "" {
				fmt.Printf("Wrote %d rows to %s\n", len(rows), outPath)
			}
			return nil
		},
	}

	addShiftFlag(cmd, &shift)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&skipOpen, "skip-unset", false, "Drop rows whose outcome is still unset")

	return cmd
}

// writeCSV serializes rows in the sink's fixed column order: event date,
// badge number, auditor surname, auditor first name, shift, machine,
// reparto, technology, outcome.
func writeCSV(out io.Writer, rows []contract.ExportRow, skipUnset bool) error {
	w := csv.NewWriter(out)
	w.Comma = ';'
	for _, row := range rows {
		if skipUnset && row.Outcome == "" {
			continue
		}
		record := []string{
			row.Date.Format(contract.ExportDateLayout),
			row.BadgeNumber,
			row.AuditorSurname,
			row.AuditorFirstName,
			string(row.Shift),
			row.MachineName,
			row.Reparto,
			string(row.Technology),
			row.Outcome,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing export row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing export: %w", err)
	}
	return nil
}
