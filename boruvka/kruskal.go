package boruvka

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/parmst/dsu"
	"github.com/katalvlaran/parmst/edgelist"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses the union-by-size disjoint-set forest with path compression.
//
// Error Conditions:
//   - ErrNilStore     : if store is nil.
//   - ErrDisconnected : if |V| > 1 but the graph is not fully connected.
//
// Steps:
//  1. Validate: store != nil.
//  2. If |V| ≤ 1 → trivial MST (empty, weight=0).
//  3. Collect all edge ids, skipping self-loops (From == To).
//  4. Sort ids by ascending Weight (stable, so equal weights keep EdgeID order).
//  5. Loop over sorted ids: if find(u) != find(v), union and include the edge.
//  6. Once MST has |V|-1 edges, break. Fewer than |V|-1 → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(store *edgelist.Store) ([]edgelist.Edge, int64, error) {
	// 1. Validate input.
	if store == nil {
		return nil, 0, ErrNilStore
	}

	// 2. Zero or one vertex: nothing to connect.
	numVerts := store.Vertices()
	if numVerts <= 1 {
		return []edgelist.Edge{}, 0, nil
	}

	// 3. Collect edge ids, skipping self-loops entirely.
	order := make([]edgelist.EdgeID, 0, store.Len())
	for id := 0; id < store.Len(); id++ {
		if e := store.Edge(id); e.From != e.To {
			order = append(order, id)
		}
	}

	// 4. Stable sort by weight for deterministic tie-breaking on EdgeID.
	slices.SortStableFunc(order, func(a, b edgelist.EdgeID) int {
		return cmp.Compare(store.Weight(a), store.Weight(b))
	})

	// 5. Build MST by iterating over sorted ids.
	var (
		forest      = dsu.New(numVerts)
		mst         = make([]edgelist.Edge, 0, numVerts-1)
		totalWeight int64
	)
	for _, id := range order {
		e := store.Edge(id)
		if forest.FindCompress(e.From) == forest.FindCompress(e.To) {
			continue // would close a cycle
		}
		forest.Union(e.From, e.To)
		mst = append(mst, e)
		totalWeight += e.Weight
		// 6. |V|-1 edges: MST is complete.
		if len(mst) == numVerts-1 {
			break
		}
	}

	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
