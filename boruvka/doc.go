// Package boruvka computes the Minimum Spanning Tree (MST) of an undirected,
// weighted graph stored as a flat *edgelist.Store, using Borůvka's algorithm
// parallelised across worker goroutines inside every round.
//
// What & Why
//
//   - What is an MST?
//     Given a connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices with |V|-1 edges and minimal total weight.
//
//   - Why Borůvka?
//     Each round every component picks its cheapest outgoing edge independently,
//     which makes the expensive part (scanning all m edges) embarrassingly
//     parallel. The component count at least halves per round, so there are
//     O(log V) rounds.
//
// Round structure
//
//   - Discovery (parallel). The edge sequence is split across T goroutines
//     (PartitionStride: worker t owns t, t+T, t+2T…; PartitionBlocks: workers
//     claim contiguous blocks from a shared cursor). For each edge (u, v, w) the
//     worker resolves pu = Find(u), pv = Find(v); internal edges (pu == pv) are
//     skipped, otherwise the edge is offered to the slots of both pu and pv.
//     The forest is read-only here, so Find needs no locking.
//
//   - Cheapest-edge table. One slot per vertex, addressed by component
//     representative so that all vertices of a component compete for a single
//     slot. SlotsMutex holds a per-slot mutex only around compare-and-replace
//     ("strictly lighter wins", ties go to the first arrival). SlotsAtomic packs
//     (weight, edge id) into one uint64 and uses compare-and-swap (ties go to the
//     lower edge id).
//
//   - Contraction (serial). After the barrier, slots 0..n-1 are walked in order.
//     Each candidate's endpoints are re-resolved because earlier unions in the
//     same pass move representatives; the edge is accepted only if they still
//     differ. That re-check is the only thing preventing cycles.
//
//   - Termination. One component left → done. A round that accepts nothing
//     means the graph is disconnected and Run returns ErrDisconnected instead of
//     looping forever.
//
// Determinism
//
//	With distinct weights the tree is unique. Under ties the accepted edge set may
//	differ between runs and worker counts, but the total weight never does.
//
// Error Conditions
//
//	- ErrNilStore         - store is nil.
//	- ErrInvalidOptions   - Workers < 1, BlockSize < 1, unknown Partition/Slots/Method.
//	- ErrAtomicSlotsRange - SlotsAtomic with weights outside int32.
//	- ErrDisconnected     - |V| ≥ 2 and the graph is not connected.
//
// GoDoc Summary
//
//   - Boruvka(store, opts...) ([]edgelist.Edge, int64, error)
//     Parallel Borůvka with functional options.
//
//   - NewEngine(store, opts...) + (*Engine).Run() (*Result, error)
//     Same, keeping round count and allowing repeated runs.
//
//   - Kruskal(store) ([]edgelist.Edge, int64, error)
//     Serial sort + union-find reference.
//
//   - Verify / VerifyMinimal
//     Check that an edge list is a spanning tree of the store and that its weight
//     matches the reference.
//
// For examples of usage, see the example_test.go file in this package.
package boruvka
