package domain

import "time"

// AuditKey is the coordinate of one audit slot. The machine id is part of
// the key so that a recorded status stays attached to the machine it was
// recorded for, independent of the generator.
type AuditKey struct {
	Shift     Shift
	Week      int
	Assignee  string // team id or CoordinatorAssignee
	Day       int    // 0 = Monday .. 5 = Saturday
	MachineID string
}

// AuditEntry is one recorded status in the overlay store. Entries are
// created lazily: a missing key reads as StatusUnset.
type AuditEntry struct {
	ID        string
	AuditKey
	Status    AuditStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
