package rotation

import (
	"testing"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify_KnownPrefixes(t *testing.T) {
	cases := map[string]domain.Technology{
		"DRA01":  domain.TechTurning,
		"FRW12":  domain.TechGearing,
		"FRD03":  domain.TechGearing,
		"SLA07":  domain.TechGrinding,
		"SLW02":  domain.TechGrinding,
		"SCA01":  domain.TechWelding,
		"dra99":  domain.TechTurning, // case-insensitive
		"XYZ123": domain.TechOther,
		"":       domain.TechOther,
	}
	for id, want := range cases {
		assert.Equal(t, want, Classify(id), "machine %q", id)
	}
}

func TestClassify_Total(t *testing.T) {
	known := map[domain.Technology]bool{
		domain.TechTurning:  true,
		domain.TechGearing:  true,
		domain.TechGrinding: true,
		domain.TechWelding:  true,
		domain.TechOther:    true,
	}
	for _, id := range []string{"DRA1", "FR", "SL", "SC", "MONT-4", "  SLA9 ", "123"} {
		assert.True(t, known[Classify(id)], "machine %q must map to a fixed category", id)
	}
}
