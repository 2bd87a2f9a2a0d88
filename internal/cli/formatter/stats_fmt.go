package formatter

import (
	"fmt"
	"strings"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/contract"
)

// FormatStats renders a statistics report with a completion bar.
func FormatStats(report *contract.StatsReport) string {
	var b strings.Builder

	scope := string(report.Scope)
	if report.Scope == contract.ScopeTeam {
		scope = fmt.Sprintf("team %s", report.TeamID)
	}
	b.WriteString(StyleHeader.Render(fmt.Sprintf("Shift %s · %s", report.Shift, scope)))
	b.WriteString("\n\n")

	rows := [][]string{
		{"Recorded", fmt.Sprintf("%d", report.Total)},
		{"Pass", StyleGreen.Render(fmt.Sprintf("%d", report.Pass))},
		{"Fail", StyleRed.Render(fmt.Sprintf("%d", report.Fail))},
		{"Absent", StyleYellow.Render(fmt.Sprintf("%d", report.Absent))},
		{"Unset", StyleDim.Render(fmt.Sprintf("%d", report.Unset))},
	}
	b.WriteString(RenderTable([]string{"Metric", "Count"}, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Completion %s %d%%\n",
		RenderProgress(float64(report.CompletionPct)/100, 20), report.CompletionPct))

	return b.String()
}
