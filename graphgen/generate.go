// Package graphgen produces random undirected weighted graphs for benchmarking
// and testing the MST solvers.
//
// Every graph is simple: no self-loops and no two edges between the same pair.
// Weights are uniform in [1, maxWeight]. The same seed always yields the same
// edge sequence.
package graphgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/katalvlaran/parmst/edgelist"
)

var (
	// ErrInvalidArgs indicates negative counts or a maximum weight below 1.
	ErrInvalidArgs = errors.New("graphgen: invalid arguments")

	// ErrTooManyEdges indicates m exceeds the n(n-1)/2 distinct pairs available.
	ErrTooManyEdges = errors.New("graphgen: too many edges for vertex count")

	// ErrTooFewEdges indicates WithConnected was requested with m < n-1.
	ErrTooFewEdges = errors.New("graphgen: too few edges to connect graph")
)

// Options configures Generate.
type Options struct {
	// Seed for the generator; 0 selects a fixed default.
	Seed int64

	// Connected lays a random spanning tree before adding other edges.
	Connected bool
}

// Option configures Options.
type Option func(*Options)

// WithSeed fixes the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithConnected guarantees the result is a connected graph.
func WithConnected() Option {
	return func(o *Options) { o.Connected = true }
}

// denseRatio selects enumeration over rejection sampling once more than half of
// all pairs are wanted.
const denseRatio = 2

// Generate returns a store with n vertices and m distinct undirected edges.
//
// Error Conditions:
//   - ErrInvalidArgs  : n < 0, m < 0 or maxWeight < 1.
//   - ErrTooManyEdges : m > n(n-1)/2.
//   - ErrTooFewEdges  : WithConnected and m < n-1.
//
// Steps:
//  1. With WithConnected, shuffle the vertices and attach each vertex of the
//     permutation to a random earlier one (a random spanning tree).
//  2. Sparse: draw random pairs, rejecting loops and pairs already in the bitmap.
//     Dense: enumerate all missing pairs, shuffle, take as many as needed.
//  3. Shuffle the edge order so tree edges are not clustered at the front.
func Generate(n, m int, maxWeight int64, opts ...Option) (*edgelist.Store, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if n < 0 || m < 0 || maxWeight < 1 {
		return nil, fmt.Errorf("n=%d m=%d maxWeight=%d: %w", n, m, maxWeight, ErrInvalidArgs)
	}
	var pairs uint64
	if n > 1 {
		pairs = uint64(n) * uint64(n-1) / 2
	}
	if uint64(m) > pairs {
		return nil, fmt.Errorf("%d edges among %d vertices: %w", m, n, ErrTooManyEdges)
	}
	if o.Connected && n > 0 && m < n-1 {
		return nil, fmt.Errorf("%d edges among %d vertices: %w", m, n, ErrTooFewEdges)
	}

	g := &generator{
		r:     rngFromSeed(o.Seed),
		n:     n,
		maxW:  maxWeight,
		seen:  roaring64.New(),
		edges: make([]edgelist.Edge, 0, m),
	}

	// 1. Random spanning tree.
	if o.Connected && n > 1 {
		perm := permRange(n, g.r)
		for i := 1; i < n; i++ {
			g.add(perm[i], perm[g.r.Intn(i)])
		}
	}

	// 2. Remaining edges.
	if uint64(m)*denseRatio > pairs {
		g.fillDense(m)
	} else {
		g.fillSparse(m)
	}

	// 3. Mix.
	g.r.Shuffle(len(g.edges), func(i, j int) { g.edges[i], g.edges[j] = g.edges[j], g.edges[i] })

	return edgelist.NewStore(n, g.edges)
}

// generator carries the state of one Generate call.
type generator struct {
	r     *rand.Rand
	n     int
	maxW  int64
	seen  *roaring64.Bitmap
	edges []edgelist.Edge
}

// key packs an unordered pair into one bitmap key.
func (g *generator) key(u, v int) uint64 {
	if u > v {
		u, v = v, u
	}

	return uint64(u)*uint64(g.n) + uint64(v)
}

// add records (u, v) unless it is a loop or a duplicate; it reports whether it did.
func (g *generator) add(u, v int) bool {
	if u == v || !g.seen.CheckedAdd(g.key(u, v)) {
		return false
	}
	g.edges = append(g.edges, edgelist.Edge{From: u, To: v, Weight: weight(g.r, g.maxW)})

	return true
}

func (g *generator) fillSparse(m int) {
	for len(g.edges) < m {
		g.add(g.r.Intn(g.n), g.r.Intn(g.n))
	}
}

func (g *generator) fillDense(m int) {
	free := make([][2]int, 0, m)
	for u := 0; u < g.n; u++ {
		for v := u + 1; v < g.n; v++ {
			if !g.seen.Contains(g.key(u, v)) {
				free = append(free, [2]int{u, v})
			}
		}
	}
	g.r.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	for _, p := range free {
		if len(g.edges) == m {
			return
		}
		g.add(p[0], p[1])
	}
}
