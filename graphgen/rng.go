package graphgen

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// math/rand.Rand is NOT goroutine-safe; every Generate call owns its own.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// permRange returns a permutation of 0..n-1 generated deterministically from r
// with an in-place Fisher–Yates shuffle.
//
// Complexity: O(n) time, O(n) space.
func permRange(n int, r *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}

// weight draws uniformly from [1, maxWeight].
func weight(r *rand.Rand, maxWeight int64) int64 {
	return 1 + r.Int63n(maxWeight)
}
