// Package calendar maps planning week numbers to concrete date ranges.
package calendar

import (
	"fmt"
	"time"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
)

// EpochMonday is the Monday of planning week 1. Every week number resolves
// relative to this fixed date, so the mapping never drifts.
var EpochMonday = time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC)

// WeekRange resolves a week number to its Monday and Saturday. Weeks below 1
// are rejected; weeks beyond the 52-week horizon still resolve, horizon
// enforcement belongs to the service layer.
func WeekRange(week int) (monday, saturday time.Time, err error) {
	if week < domain.MinWeek {
		return time.Time{}, time.Time{}, fmt.Errorf("week %d before week %d: %w", week, domain.MinWeek, domain.ErrInvalidArgument)
	}
	monday = EpochMonday.AddDate(0, 0, (week-1)*7)
	saturday = monday.AddDate(0, 0, domain.DaysPerWeek-1)
	return monday, saturday, nil
}

// DayDate resolves (week, day index) to a concrete date.
func DayDate(week, day int) (time.Time, error) {
	if err := domain.ValidateDay(day); err != nil {
		return time.Time{}, err
	}
	monday, _, err := WeekRange(week)
	if err != nil {
		return time.Time{}, err
	}
	return monday.AddDate(0, 0, day), nil
}
