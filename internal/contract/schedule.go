// Package contract holds the request/response types exchanged between the
// service layer and its consumers (CLI today, HTTP tomorrow).
package contract

import (
	"time"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
)

// WeekScheduleRequest asks for the generated plan of one (week, shift) pair.
type WeekScheduleRequest struct {
	Week  int
	Shift domain.Shift
}

// ScheduledSlot is one generated day assignment merged with its recorded
// status from the overlay.
type ScheduledSlot struct {
	Day        int // 0 = Monday .. 5 = Saturday
	Date       time.Time
	Machine    domain.Machine
	Technology domain.Technology
	Status     domain.AuditStatus
}

// TeamSchedule is the six-day plan of one team. Slots is empty when the
// team's machine pool is empty; that is a valid state, not an error.
type TeamSchedule struct {
	Team  domain.Team
	Slots []ScheduledSlot
}

// WeekScheduleResponse is the full generated plan for one (week, shift):
// one schedule per team in roster order, plus the coordinator's plan drawn
// from the whole plant pool.
type WeekScheduleResponse struct {
	Week             int
	Shift            domain.Shift
	Monday           time.Time
	Saturday         time.Time
	Teams            []TeamSchedule
	CoordinatorTeam  *domain.Team // nil when the roster has no teams
	CoordinatorSlots []ScheduledSlot
}
