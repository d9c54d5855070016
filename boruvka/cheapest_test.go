package boruvka

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/parmst/edgelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMutexTable_StrictlyLess verifies that only strictly lighter offers replace
// the slot, so the first of two equal-weight offers stays.
func TestMutexTable_StrictlyLess(t *testing.T) {
	tbl := newMutexTable(3)

	_, ok := tbl.candidate(0)
	assert.False(t, ok) // fresh slot is empty

	tbl.offer(0, 5, 10)
	tbl.offer(0, 6, 10) // tie: ignored
	tbl.offer(0, 7, 12) // heavier: ignored
	id, ok := tbl.candidate(0)
	require.True(t, ok)
	assert.Equal(t, 5, id)

	tbl.offer(0, 8, 9) // lighter: replaces
	id, _ = tbl.candidate(0)
	assert.Equal(t, 8, id)

	tbl.reset()
	_, ok = tbl.candidate(0)
	assert.False(t, ok)
}

// TestAtomicTable_TieBreaksOnLowerID verifies the packed ordering.
func TestAtomicTable_TieBreaksOnLowerID(t *testing.T) {
	tbl := newAtomicTable(2)

	tbl.offer(1, 9, -3)
	tbl.offer(1, 4, -3) // same weight, lower id wins
	tbl.offer(1, 2, 7)
	id, ok := tbl.candidate(1)
	require.True(t, ok)
	assert.Equal(t, 4, id)

	tbl.offer(1, 11, math.MinInt32)
	id, _ = tbl.candidate(1)
	assert.Equal(t, 11, id)

	_, ok = tbl.candidate(0)
	assert.False(t, ok)
}

// TestPack_Ordering verifies packed words order by weight first, then id.
func TestPack_Ordering(t *testing.T) {
	assert.Less(t, pack(math.MinInt32, 100), pack(-1, 0))
	assert.Less(t, pack(-1, 0), pack(0, 0))
	assert.Less(t, pack(0, 0), pack(0, 1))
	assert.Less(t, pack(0, 1<<20), pack(1, 0))
	assert.Less(t, pack(math.MaxInt32, math.MaxUint32-2), uint64(emptySlot))
}

// TestTables_ConcurrentOffers hammers one slot from many goroutines and checks
// that the lightest edge survives in both implementations.
func TestTables_ConcurrentOffers(t *testing.T) {
	tables := map[string]cheapestTable{
		"mutex":  newMutexTable(1),
		"atomic": newAtomicTable(1),
	}
	for name, tbl := range tables {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for w := 0; w < 8; w++ {
				wg.Add(1)
				go func(w int) {
					defer wg.Done()
					for i := 0; i < 1000; i++ {
						id := w*1000 + i
						tbl.offer(0, id, int64(1+(id*7919)%5000))
					}
				}(w)
			}
			wg.Wait()

			id, ok := tbl.candidate(0)
			require.True(t, ok)
			assert.Equal(t, int64(1), int64(1+(id*7919)%5000)) // a weight-1 edge won
		})
	}
}

// TestFitsAtomic covers the weight range check.
func TestFitsAtomic(t *testing.T) {
	s, err := edgelist.NewStore(2, []edgelist.Edge{{From: 0, To: 1, Weight: math.MaxInt32}})
	require.NoError(t, err)
	assert.True(t, fitsAtomic(s))

	s, err = edgelist.NewStore(2, []edgelist.Edge{{From: 0, To: 1, Weight: math.MaxInt32 + 1}})
	require.NoError(t, err)
	assert.False(t, fitsAtomic(s))

	s, err = edgelist.NewStore(2, []edgelist.Edge{{From: 0, To: 1, Weight: math.MinInt32 - 1}})
	require.NoError(t, err)
	assert.False(t, fitsAtomic(s))
}
