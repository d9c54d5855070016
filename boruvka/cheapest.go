package boruvka

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/parmst/edgelist"
)

// noEdge marks an empty slot in mutexTable.
const noEdge = -1

// cheapestTable records, per component representative, the lightest edge seen
// leaving that component during one discovery phase.
//
// offer may be called concurrently for any slots. reset and candidate are only
// called from the serial phases, after the discovery barrier.
type cheapestTable interface {
	reset()
	offer(slot int, id edgelist.EdgeID, w int64)
	candidate(slot int) (edgelist.EdgeID, bool)
}

// mutexTable guards every slot with its own mutex. The locks are allocated
// once and reused across rounds; reset only clears the entries.
type mutexTable struct {
	locks []sync.Mutex
	best  []edgelist.EdgeID
	bestW []int64
}

func newMutexTable(n int) *mutexTable {
	t := &mutexTable{
		locks: make([]sync.Mutex, n),
		best:  make([]edgelist.EdgeID, n),
		bestW: make([]int64, n),
	}
	t.reset()

	return t
}

func (t *mutexTable) reset() {
	for i := range t.best {
		t.best[i] = noEdge
	}
}

// offer replaces the slot only when w is strictly lighter than the recorded edge.
func (t *mutexTable) offer(slot int, id edgelist.EdgeID, w int64) {
	t.locks[slot].Lock()
	defer t.locks[slot].Unlock()

	if t.best[slot] == noEdge || w < t.bestW[slot] {
		t.best[slot] = id
		t.bestW[slot] = w
	}
}

func (t *mutexTable) candidate(slot int) (edgelist.EdgeID, bool) {
	id := t.best[slot]

	return id, id != noEdge
}

// emptySlot is larger than any packed (weight, id) word.
const emptySlot = math.MaxUint64

// atomicTable keeps one packed word per slot: the order-preserving encoding
// of an int32 weight in the high half and the edge id in the low half.
// Unsigned comparison of packed words orders by weight, then by id.
type atomicTable struct {
	slots []atomic.Uint64
}

func newAtomicTable(n int) *atomicTable {
	t := &atomicTable{slots: make([]atomic.Uint64, n)}
	t.reset()

	return t
}

// fitsAtomic reports whether every weight and edge id of store can be packed.
// The id must stay below MaxUint32 so a packed word never equals emptySlot.
func fitsAtomic(store *edgelist.Store) bool {
	minW, maxW := store.WeightRange()

	return minW >= math.MinInt32 && maxW <= math.MaxInt32 && uint64(store.Len()) < math.MaxUint32
}

func pack(w int64, id edgelist.EdgeID) uint64 {
	hi := uint32(int32(w)) ^ (1 << 31) // flip sign bit: MinInt32 -> 0
	return uint64(hi)<<32 | uint64(uint32(id))
}

func (t *atomicTable) reset() {
	for i := range t.slots {
		t.slots[i].Store(emptySlot)
	}
}

func (t *atomicTable) offer(slot int, id edgelist.EdgeID, w int64) {
	word := pack(w, id)
	s := &t.slots[slot]
	for {
		cur := s.Load()
		if word >= cur {
			return
		}
		if s.CompareAndSwap(cur, word) {
			return
		}
	}
}

func (t *atomicTable) candidate(slot int) (edgelist.EdgeID, bool) {
	word := t.slots[slot].Load()
	if word == emptySlot {
		return noEdge, false
	}

	return edgelist.EdgeID(uint32(word)), true
}
