package rotation

import (
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
)

const (
	// weekSeedFactor spreads consecutive weeks far apart in seed space so
	// that week N and week N+1 never share a swap seed.
	weekSeedFactor = 99999

	// GlobalSeedOffset seeds the full-plant shuffle used for the
	// coordinator, independent of any team offset.
	GlobalSeedOffset = 1337
)

// Slot is one generated day assignment.
type Slot struct {
	Day        int // 0 = Monday .. 5 = Saturday
	Machine    domain.Machine
	Technology domain.Technology
}

// WeekSchedule is the generated assignment for one (week, shift) pair.
// Teams with an empty machine pool are absent from the map; an empty global
// pool leaves Coordinator nil. Absence is a valid, renderable state.
type WeekSchedule struct {
	Week        int
	Shift       domain.Shift
	Teams       map[string][]Slot
	Coordinator []Slot
}

// TeamSeedOffset derives the stable per-team seed offset from the team id.
func TeamSeedOffset(teamID string) int {
	if teamID == "" {
		return 0
	}
	return int(teamID[0])
}

// Shuffle returns a deterministically shuffled copy of pool. The swap at
// step i draws from Rand(week*weekSeedFactor + seedOffset + i), so the
// shuffle is replayable step by step. The input slice is not modified.
func Shuffle(pool []domain.Machine, week, seedOffset int) []domain.Machine {
	out := make([]domain.Machine, len(pool))
	copy(out, pool)
	swaps := 0
	for i := len(out) - 1; i > 0; i-- {
		r := Rand(week*weekSeedFactor + seedOffset + swaps)
		j := int(r * float64(i+1))
		out[i], out[j] = out[j], out[i]
		swaps++
	}
	return out
}

// GenerateWeek computes the per-day machine assignment for every team and
// for the coordinator. It is a pure function of its inputs: identical
// (week, shift, pools) always reproduce an identical schedule, which is what
// allows plans to be recomputed on demand instead of persisted.
//
// Each of the four shifts reads a different window of the same shuffled
// ordering (offset shiftIndex*6). When a pool holds fewer than 24 machines
// the windows wrap via modulo and two shifts may see the same machine; that
// overlap is documented behavior, kept to preserve reproducibility.
func GenerateWeek(week int, shift domain.Shift, teamPools map[string][]domain.Machine, globalPool []domain.Machine) WeekSchedule {
	shiftIdx := shift.Index()
	if shiftIdx < 0 {
		shiftIdx = 0
	}

	ws := WeekSchedule{
		Week:  week,
		Shift: shift,
		Teams: make(map[string][]Slot, len(teamPools)),
	}
	for teamID, pool := range teamPools {
		slots := assignDays(Shuffle(pool, week, TeamSeedOffset(teamID)), shiftIdx)
		if len(slots) > 0 {
			ws.Teams[teamID] = slots
		}
	}
	ws.Coordinator = assignDays(Shuffle(globalPool, week, GlobalSeedOffset), shiftIdx)
	return ws
}

// CoordinatorTeam returns the team coordinating the given week. The role
// rotates through the team list on a cycle of len(teams) weeks, purely as a
// function of the week number (never of the shift).
func CoordinatorTeam(week int, teams []domain.Team) (domain.Team, bool) {
	if len(teams) == 0 {
		return domain.Team{}, false
	}
	idx := (week - 1) % len(teams)
	if idx < 0 {
		idx += len(teams)
	}
	return teams[idx], true
}

func assignDays(shuffled []domain.Machine, shiftIdx int) []Slot {
	if len(shuffled) == 0 {
		return nil
	}
	slots := make([]Slot, 0, domain.DaysPerWeek)
	for d := 0; d < domain.DaysPerWeek; d++ {
		m := shuffled[(shiftIdx*domain.DaysPerWeek+d)%len(shuffled)]
		slots = append(slots, Slot{Day: d, Machine: m, Technology: Classify(m.ID)})
	}
	return slots
}
