package formatter

import (
	"fmt"
	"strings"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/contract"
)

const dateLayout = "02/01/2006"

var dayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatWeekSchedule renders the generated week plan: one table per team in
// roster order, then the coordinator's table.
func FormatWeekSchedule(resp *contract.WeekScheduleResponse) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(fmt.Sprintf("Week %d · Shift %s", resp.Week, resp.Shift)))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s – %s",
		resp.Monday.Format(dateLayout), resp.Saturday.Format(dateLayout))))
	b.WriteString("\n\n")

	if len(resp.Teams) == 0 {
		b.WriteString(StyleDim.Render("No teams in roster — nothing scheduled.\n"))
		return b.String()
	}

	for _, ts := range resp.Teams {
		title := fmt.Sprintf("%s (%s, leader %s)", ts.Team.Label, ts.Team.Reparto, ts.Team.Leader)
		b.WriteString(StyleBold.Render(title))
		b.WriteString("\n")
		b.WriteString(formatSlots(ts.Slots))
		b.WriteString("\n")
	}

	coordTitle := "Coordinator"
	if resp.CoordinatorTeam != nil {
		coordTitle = fmt.Sprintf("Coordinator (%s, %s)", resp.CoordinatorTeam.Label, resp.CoordinatorTeam.Leader)
	}
	b.WriteString(StyleBlue.Render(coordTitle))
	b.WriteString("\n")
	b.WriteString(formatSlots(resp.CoordinatorSlots))

	return b.String()
}

func formatSlots(slots []contract.ScheduledSlot) string {
	if len(slots) == 0 {
		return StyleDim.Render("nothing scheduled (empty machine pool)") + "\n"
	}
	rows := make([][]string, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, []string{
			dayNames[slot.Day],
			slot.Date.Format(dateLayout),
			slot.Machine.DisplayName(),
			string(slot.Technology),
			StatusLabel(slot.Status),
		})
	}
	return RenderTable([]string{"Day", "Date", "Machine", "Technology", "Status"}, rows)
}
