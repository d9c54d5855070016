// Package edgelist defines the flat, immutable edge sequence every solver in
// parmst reads from, together with its sentinel errors.
//
// Errors:
//
//	ErrNegativeVertices - vertex count below zero.
//	ErrVertexOutOfRange - an edge endpoint lies outside [0, n).
package edgelist

import "errors"

// Sentinel errors for edge store construction.
var (
	// ErrNegativeVertices indicates a negative vertex count.
	ErrNegativeVertices = errors.New("edgelist: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("edgelist: vertex out of range")
)

// EdgeID is the stable position of an edge inside a Store.
// It is the token solvers pass around instead of copying Edge values.
type EdgeID = int

// Edge is one undirected weighted connection between two vertices.
//
// Vertices are plain integers in [0, n); there is no vertex object.
type Edge struct {
	// From is the first endpoint as it appeared in the input.
	From int

	// To is the second endpoint as it appeared in the input.
	To int

	// Weight is the cost of the edge. Negative weights are allowed.
	Weight int64
}
