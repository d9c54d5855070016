// Package dsu provides the disjoint-set forest (union-find) that tracks
// component membership for the MST solvers in parmst.
//
// What & Why
//
//   - Every vertex starts as its own component (representative = itself, size 1).
//   - Union merges two components by size: the smaller root is attached under
//     the larger one, so tree height stays logarithmic in the number of merges.
//   - Find walks parent links without writing anything. This is the property the
//     parallel Borůvka discovery phase relies on: while no Union runs, any number
//     of goroutines may call Find concurrently without locks.
//
// Concurrency contract
//
//   - Find, Connected, Size, Sets and Len are read-only.
//   - Union and FindCompress mutate the forest and must only run while no other
//     goroutine touches it (the serial contraction phase).
//
// Complexity:
//
//   - Find: O(depth) ≤ O(log n) under union-by-size.
//   - Union: two Finds plus O(1) relinking.
//   - Memory: two int slices of length n.
package dsu
