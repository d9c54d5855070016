package edgelist

import "fmt"

// Store is an immutable, indexable collection of edges over n vertices.
//
// A Store is built once and never mutated afterwards, so it may be shared by
// any number of goroutines without locking.
type Store struct {
	n      int
	edges  []Edge
	minW   int64
	maxW   int64
	loaded bool // at least one edge seen; guards minW/maxW
}

// NewStore validates edges against n and returns a Store holding a private
// copy of them. The caller is free to reuse the edges slice afterwards.
//
// Returns ErrNegativeVertices when n < 0 and ErrVertexOutOfRange (wrapped
// with the offending position) when an endpoint is outside [0, n).
// Self-loops are kept: they never cross components and are skipped by solvers.
// Complexity: O(m).
func NewStore(n int, edges []Edge) (*Store, error) {
	if n < 0 {
		return nil, ErrNegativeVertices
	}

	s := &Store{n: n, edges: make([]Edge, len(edges))}
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("edge %d (%d,%d): %w", i, e.From, e.To, ErrVertexOutOfRange)
		}
		s.edges[i] = e
		if !s.loaded || e.Weight < s.minW {
			s.minW = e.Weight
		}
		if !s.loaded || e.Weight > s.maxW {
			s.maxW = e.Weight
		}
		s.loaded = true
	}

	return s, nil
}

// Vertices returns n, the number of vertices.
func (s *Store) Vertices() int { return s.n }

// Len returns m, the number of edges.
func (s *Store) Len() int { return len(s.edges) }

// Edge returns the edge stored at position id.
// It panics like a slice index when id is out of range.
func (s *Store) Edge(id EdgeID) Edge { return s.edges[id] }

// Weight returns the weight of the edge stored at position id.
func (s *Store) Weight(id EdgeID) int64 { return s.edges[id].Weight }

// Edges returns a copy of the full edge sequence in EdgeID order.
// Complexity: O(m).
func (s *Store) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)

	return out
}

// WeightRange reports the smallest and largest weight in the store.
// Both are zero for a store without edges.
func (s *Store) WeightRange() (minW, maxW int64) {
	return s.minW, s.maxW
}
