package boruvka

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/parmst/dsu"
	"github.com/katalvlaran/parmst/edgelist"
)

// edgeKey identifies an undirected edge independent of endpoint order.
type edgeKey struct {
	lo, hi int
	w      int64
}

func keyOf(e edgelist.Edge) edgeKey {
	if e.From > e.To {
		return edgeKey{lo: e.To, hi: e.From, w: e.Weight}
	}

	return edgeKey{lo: e.From, hi: e.To, w: e.Weight}
}

// Verify checks that edges form a spanning tree of store with weight total.
//
// The edges are replayed in order through a fresh forest:
//   - ErrForeignEdge    : an edge (as an unordered triple) is not in store, or is
//     used more often than store holds it.
//   - ErrCycle          : an edge joins vertices already connected.
//   - ErrNotSpanning    : the count is not n-1, or not every vertex is touched.
//   - ErrWeightMismatch : the weights do not sum to total.
//
// Complexity: O(m + n log n).
func Verify(store *edgelist.Store, edges []edgelist.Edge, total int64) error {
	if store == nil {
		return ErrNilStore
	}
	n := store.Vertices()
	if want := max(n-1, 0); len(edges) != want {
		return fmt.Errorf("%d edges, want %d: %w", len(edges), want, ErrNotSpanning)
	}
	if uint64(n) > math.MaxUint32 {
		return fmt.Errorf("%d vertices: %w", n, ErrInvalidOptions)
	}

	available := make(map[edgeKey]int, store.Len())
	for id := 0; id < store.Len(); id++ {
		available[keyOf(store.Edge(id))]++
	}

	var (
		forest  = dsu.New(n)
		covered = roaring.New()
		sum     int64
	)
	for i, e := range edges {
		k := keyOf(e)
		if available[k] == 0 {
			return fmt.Errorf("edge %d (%d,%d,%d): %w", i, e.From, e.To, e.Weight, ErrForeignEdge)
		}
		available[k]--

		if !forest.Union(e.From, e.To) {
			return fmt.Errorf("edge %d (%d,%d): %w", i, e.From, e.To, ErrCycle)
		}
		covered.Add(uint32(e.From))
		covered.Add(uint32(e.To))
		sum += e.Weight
	}

	if n >= 2 && covered.GetCardinality() != uint64(n) {
		return fmt.Errorf("%d of %d vertices covered: %w", covered.GetCardinality(), n, ErrNotSpanning)
	}
	if sum != total {
		return fmt.Errorf("edges sum to %d, reported %d: %w", sum, total, ErrWeightMismatch)
	}

	return nil
}

// VerifyMinimal compares total against the Kruskal reference weight of store.
// It returns the reference error unchanged (e.g. ErrDisconnected) when the
// reference itself fails.
func VerifyMinimal(store *edgelist.Store, total int64) error {
	_, want, err := Kruskal(store)
	if err != nil {
		return err
	}
	if total != want {
		return fmt.Errorf("weight %d, reference %d: %w", total, want, ErrNotMinimal)
	}

	return nil
}
