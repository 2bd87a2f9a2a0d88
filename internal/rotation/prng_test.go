package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRand_SameSeedSameValue(t *testing.T) {
	for _, seed := range []int{0, 1, 42, 99999, 5*99999 + 84 + 3, -7} {
		assert.Equal(t, Rand(seed), Rand(seed), "seed %d must be stable", seed)
	}
}

func TestRand_ValueInUnitInterval(t *testing.T) {
	for seed := -1000; seed <= 1000; seed++ {
		v := Rand(seed)
		assert.GreaterOrEqual(t, v, 0.0, "seed %d", seed)
		assert.Less(t, v, 1.0, "seed %d", seed)
	}
}

func TestRand_DistinctSeedsSpread(t *testing.T) {
	seen := make(map[float64]bool)
	for seed := 1; seed <= 200; seed++ {
		seen[Rand(seed)] = true
	}
	// The sine transform is not injective but collisions over a small
	// consecutive range would make the shuffle degenerate.
	assert.Greater(t, len(seen), 190)
}
