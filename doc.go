// Package parmst computes minimum spanning trees of large undirected weighted
// graphs with a parallel Borůvka engine.
//
// 🚀 What is parmst?
//
//	A small solver stack built around one idea: every Borůvka round scans all
//	edges in parallel, then contracts serially.
//		• Edge store: immutable, indexable (u, v, w) triples
//		• Disjoint-set forest: union by size, lock-free reads between rounds
//		• Cheapest-edge table: per-slot mutex or packed compare-and-swap
//		• Engine: rounds, termination, disconnected-graph detection
//		• Reference: serial Kruskal + tree verification
//
// ✨ Why parmst?
//
//   - Deterministic total weight for any worker count
//   - Never hangs on disconnected input: a round with no progress is an error
//   - Independent engines per solve, no process-wide state
//
// Packages:
//
//	edgelist/   — immutable edge store
//	dsu/        — disjoint-set forest
//	boruvka/    — parallel engine, Kruskal reference, Verify
//	graphio/    — text edge-list files (plain, gzip, zstd, lz4), DOT export
//	graphgen/   — random simple graphs for benchmarks and tests
//	logging/    — slog construction
//	cmd/parmst/ — solve / generate / verify CLI
//
// Quick ASCII example:
//
//	    0───1        weights: 0–1 = 1, 1–2 = 2, 2–3 = 1, 0–3 = 5
//	    │   │
//	    3───2        MST = {0–1, 2–3, 1–2}, total 4
//
//	go install github.com/katalvlaran/parmst/cmd/parmst@latest
package parmst
