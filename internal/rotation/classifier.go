package rotation

import (
	"strings"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
)

// technologyPrefixes maps machine id prefixes to technology groups, checked
// in order. Prefixes are mutually exclusive by construction.
var technologyPrefixes = []struct {
	prefix string
	tech   domain.Technology
}{
	{"DRA", domain.TechTurning},
	{"FRW", domain.TechGearing},
	{"FRD", domain.TechGearing},
	{"SLA", domain.TechGrinding},
	{"SLW", domain.TechGrinding},
	{"SCA", domain.TechWelding},
}

// Classify derives the technology group for a machine id. It is total:
// unrecognized prefixes fall back to TechOther. The group is used only for
// display and reporting, never for scheduling.
func Classify(machineID string) domain.Technology {
	id := strings.ToUpper(strings.TrimSpace(machineID))
	for _, p := range technologyPrefixes {
		if strings.HasPrefix(id, p.prefix) {
			return p.tech
		}
	}
	return domain.TechOther
}
