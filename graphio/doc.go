// Package graphio reads and writes the plain-text edge-list format consumed
// and produced by the MST solver.
//
// Input:
//
//	n m maxWeight
//	v1 v2 w        (exactly m lines, 0 ≤ v1, v2 < n)
//
// Result:
//
//	n m totalWeight
//	v1 v2 w        (tree edges in acceptance order)
//
// Files ending in .gz, .zst or .lz4 are compressed transparently by OpenFile
// and CreateFile. Plain input files are memory-mapped read-only by ReadFile.
// WriteDOT renders a tree for Graphviz.
package graphio
