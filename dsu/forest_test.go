package dsu_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/parmst/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestForest_Singletons verifies the initial state: every vertex is its own root.
func TestForest_Singletons(t *testing.T) {
	f := dsu.New(5)
	assert.Equal(t, 5, f.Len())
	assert.Equal(t, 5, f.Sets())
	for v := 0; v < 5; v++ {
		assert.Equal(t, v, f.Find(v))
		assert.Equal(t, 1, f.Size(v))
	}
}

// TestForest_UnionConnected replays the classic quick-union scenario.
func TestForest_UnionConnected(t *testing.T) {
	f := dsu.New(10)
	f.Union(4, 3)
	f.Union(3, 8)
	f.Union(6, 5)
	f.Union(9, 4)
	f.Union(2, 1)

	testCases := []struct {
		p, q     int
		expected bool
	}{
		{0, 0, true},
		{4, 3, true},
		{3, 4, true},
		{8, 9, true},
		{0, 7, false},
		{3, 1, false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, f.Connected(tc.p, tc.q), "connected(%d, %d)", tc.p, tc.q)
	}
	assert.Equal(t, 5, f.Sets()) // {0} {1,2} {3,4,8,9} {5,6} {7}
	assert.Equal(t, 4, f.Size(8))
}

// TestForest_UnionSameComponent verifies the no-op path leaves structure intact.
func TestForest_UnionSameComponent(t *testing.T) {
	f := dsu.New(3)
	require.True(t, f.Union(0, 1))
	root := f.Find(0)

	assert.False(t, f.Union(1, 0)) // already joined
	assert.False(t, f.Union(2, 2)) // self
	assert.Equal(t, root, f.Find(1))
	assert.Equal(t, 2, f.Sets())
	assert.Equal(t, 2, f.Size(0))
}

// TestForest_UnionBySize verifies the smaller tree is attached under the larger
// one and that ties keep the first argument's root.
func TestForest_UnionBySize(t *testing.T) {
	f := dsu.New(4)

	require.True(t, f.Union(0, 1)) // tie: 0 stays root
	assert.Equal(t, 0, f.Find(1))

	require.True(t, f.Union(2, 0)) // size(2)=1 < size(0)=2: 0 stays root
	assert.Equal(t, 0, f.Find(2))

	require.True(t, f.Union(3, 2))
	assert.Equal(t, 0, f.Find(3))
	assert.Equal(t, 4, f.Size(3))
	assert.Equal(t, 1, f.Sets())
}

// TestForest_FindCompressAgrees verifies compression never changes answers.
func TestForest_FindCompressAgrees(t *testing.T) {
	f := dsu.New(64)
	for v := 1; v < 64; v++ {
		f.Union(v-1, v)
	}
	for v := 0; v < 64; v++ {
		want := f.Find(v)
		assert.Equal(t, want, f.FindCompress(v))
		assert.Equal(t, want, f.Find(v))
	}
}

// TestForest_ConcurrentFind exercises read-only Find from many goroutines.
// Run with -race: Find must not write.
func TestForest_ConcurrentFind(t *testing.T) {
	const n = 1024
	f := dsu.New(n)
	for v := 0; v+1 < n; v += 2 {
		f.Union(v, v+1)
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := 0; v < n; v++ {
				if f.Find(v) != f.Find(v^1) {
					t.Errorf("pair %d/%d split", v, v^1)
				}
			}
		}()
	}
	wg.Wait()
}
