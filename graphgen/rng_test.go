package graphgen

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPermRange_Determinism checks permutations are complete and seed-stable.
func TestPermRange_Determinism(t *testing.T) {
	a := permRange(64, rngFromSeed(0))
	b := permRange(64, rngFromSeed(defaultRNGSeed))
	assert.Equal(t, a, b) // seed 0 ⇒ default seed

	sorted := slices.Clone(a)
	slices.Sort(sorted)
	for i, v := range sorted {
		assert.Equal(t, i, v)
	}

	assert.Empty(t, permRange(0, rngFromSeed(3)))
}

func TestWeight_Range(t *testing.T) {
	r := rngFromSeed(5)
	for i := 0; i < 1000; i++ {
		w := weight(r, 3)
		assert.GreaterOrEqual(t, w, int64(1))
		assert.LessOrEqual(t, w, int64(3))
	}
}
