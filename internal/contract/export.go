package contract

import (
	"time"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
)

// ExportRow is one flattened overlay entry ready for serialization. The
// badge number and first name columns are part of the external sink's
// format but unused by this plant, so they stay empty.
type ExportRow struct {
	Date             time.Time
	BadgeNumber      string
	AuditorSurname   string
	AuditorFirstName string
	Shift            domain.Shift
	MachineName      string
	Reparto          string
	Technology       domain.Technology
	Outcome          string
}

// OutcomeLiteral maps a recorded status to the literal the export sink
// expects. Unset maps to the empty string.
func OutcomeLiteral(s domain.AuditStatus) string {
	switch s {
	case domain.StatusPass:
		return "Sì"
	case domain.StatusFail:
		return "No"
	case domain.StatusAbsent:
		return "A"
	}
	return ""
}

// ExportDateLayout is the locale day/month/year format of the sink.
const ExportDateLayout = "02/01/2006"
