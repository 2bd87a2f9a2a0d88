package domain

import (
	"fmt"
	"strings"
)

// Shift identifies one of the four independent work shifts. All scheduling
// state is partitioned by shift; there is no cross-shift interaction.
type Shift string

const (
	ShiftA Shift = "A"
	ShiftB Shift = "B"
	ShiftC Shift = "C"
	ShiftD Shift = "D"
)

// AllShifts lists the shifts in their canonical order. The position of a
// shift in this list is its offset into a team's shuffled machine pool.
var AllShifts = []Shift{ShiftA, ShiftB, ShiftC, ShiftD}

// Index returns the zero-based position of the shift (A=0 .. D=3),
// or -1 for an unknown shift.
func (s Shift) Index() int {
	for i, sh := range AllShifts {
		if sh == s {
			return i
		}
	}
	return -1
}

func (s Shift) Valid() bool {
	return s.Index() >= 0
}

// ParseShift parses a shift identifier, case-insensitively.
func ParseShift(raw string) (Shift, error) {
	s := Shift(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("shift %q: %w", raw, ErrInvalidArgument)
	}
	return s, nil
}

// AuditStatus is the recorded outcome of one audit slot.
type AuditStatus string

const (
	StatusUnset  AuditStatus = "unset"
	StatusPass   AuditStatus = "pass"
	StatusFail   AuditStatus = "fail"
	StatusAbsent AuditStatus = "absent"
)

func (s AuditStatus) Valid() bool {
	switch s {
	case StatusUnset, StatusPass, StatusFail, StatusAbsent:
		return true
	}
	return false
}

// ParseAuditStatus accepts the canonical status names plus the export
// literals used on the shop floor ("si", "no", "a").
func ParseAuditStatus(raw string) (AuditStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pass", "si", "sì", "ok":
		return StatusPass, nil
	case "fail", "no", "ko":
		return StatusFail, nil
	case "absent", "a":
		return StatusAbsent, nil
	case "unset", "":
		return StatusUnset, nil
	}
	return "", fmt.Errorf("status %q: %w", raw, ErrInvalidArgument)
}

// Technology is the display grouping derived from a machine identifier
// prefix. It carries no scheduling weight.
type Technology string

const (
	TechTurning  Technology = "turning"
	TechGearing  Technology = "gearing"
	TechGrinding Technology = "grinding"
	TechWelding  Technology = "welding"
	TechOther    Technology = "other"
)

// CoordinatorAssignee is the assignee marker for the rotating cross-team
// coordinator role.
const CoordinatorAssignee = "COORDINATOR"

// Week bounds of the planning horizon.
const (
	MinWeek = 1
	MaxWeek = 52
)

// Working days per week, Monday (0) through Saturday (5).
const DaysPerWeek = 6

// ValidateWeek rejects week numbers outside the 52-week horizon.
func ValidateWeek(week int) error {
	if week < MinWeek || week > MaxWeek {
		return fmt.Errorf("week %d outside [%d, %d]: %w", week, MinWeek, MaxWeek, ErrInvalidArgument)
	}
	return nil
}

// ValidateDay rejects day indexes outside Monday..Saturday.
func ValidateDay(day int) error {
	if day < 0 || day >= DaysPerWeek {
		return fmt.Errorf("day index %d outside [0, %d]: %w", day, DaysPerWeek-1, ErrInvalidArgument)
	}
	return nil
}
