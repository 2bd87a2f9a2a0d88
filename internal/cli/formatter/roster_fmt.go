package formatter

import (
	"fmt"
	"strings"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/rotation"
)

// FormatRoster renders the team list and the machine list, machines grouped
// under their technology label.
func FormatRoster(teams []domain.Team, machines []domain.Machine) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("Teams"))
	b.WriteString("\n")
	if len(teams) == 0 {
		b.WriteString(StyleDim.Render("no teams imported\n"))
	} else {
		rows := make([][]string, 0, len(teams))
		for _, t := range teams {
			rows = append(rows, []string{t.ID, t.Label, t.Reparto, t.Leader})
		}
		b.WriteString(RenderTable([]string{"ID", "Label", "Reparto", "Leader"}, rows))
	}
	b.WriteString("\n")

	b.WriteString(StyleHeader.Render(fmt.Sprintf("Machines (%d)", len(machines))))
	b.WriteString("\n")
	if len(machines) == 0 {
		b.WriteString(StyleDim.Render("no machines imported\n"))
		return b.String()
	}
	rows := make([][]string, 0, len(machines))
	for _, m := range machines {
		rows = append(rows, []string{
			m.ID,
			m.DisplayName(),
			m.Reparto,
			string(rotation.Classify(m.ID)),
			fmt.Sprintf("%d", m.MinStaff),
		})
	}
	b.WriteString(RenderTable([]string{"ID", "Name", "Reparto", "Technology", "MinStaff"}, rows))

	return b.String()
}
