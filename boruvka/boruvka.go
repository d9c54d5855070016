package boruvka

import (
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/parmst/dsu"
	"github.com/katalvlaran/parmst/edgelist"
	"github.com/katalvlaran/parmst/logging"
)

// Engine owns every piece of mutable state of one MST solve: the disjoint-set
// forest, the cheapest-edge table and the growing tree. The edge store is
// shared read-only. Independent engines may run concurrently.
type Engine struct {
	store   *edgelist.Store
	opts    Options
	workers int

	forest *dsu.Forest
	table  cheapestTable
	find   func(int) int // serial lookup used by contraction

	mst    []edgelist.Edge
	total  int64
	rounds int
}

// NewEngine validates opts against store and prepares an engine.
//
// Error Conditions:
//   - ErrNilStore         : store is nil.
//   - ErrInvalidOptions   : Workers < 1, BlockSize < 1, unknown Partition or Slots.
//   - ErrAtomicSlotsRange : SlotsAtomic with weights outside int32 or m ≥ 2^32-1.
//
// The cheapest-edge table (and its per-slot locks) is allocated here once and
// reused by every round of every Run.
func NewEngine(store *edgelist.Store, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 || o.BlockSize < 1 {
		return nil, ErrInvalidOptions
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}

	e := &Engine{store: store, opts: o}

	switch o.Partition {
	case PartitionStride, PartitionBlocks:
	default:
		return nil, ErrInvalidOptions
	}

	n := store.Vertices()
	switch o.Slots {
	case SlotsMutex:
		e.table = newMutexTable(n)
	case SlotsAtomic:
		if !fitsAtomic(store) {
			return nil, ErrAtomicSlotsRange
		}
		e.table = newAtomicTable(n)
	default:
		return nil, ErrInvalidOptions
	}

	// Never start more goroutines than there are edges to scan.
	e.workers = o.Workers
	if m := store.Len(); e.workers > m {
		e.workers = max(m, 1)
	}

	return e, nil
}

// Workers returns the effective number of discovery goroutines.
func (e *Engine) Workers() int { return e.workers }

// Run computes the MST from scratch. It may be called repeatedly; every call
// starts from a fresh forest.
//
// Steps:
//  1. n ≤ 1 → trivial empty tree, no round is run.
//  2. n ≥ 2 and m == 0 → ErrDisconnected.
//  3. Repeat until one component remains:
//     a. reset the cheapest-edge table;
//     b. discovery: workers scan their edges, resolve both endpoints with the
//     read-only Find and offer cross-component edges to both representatives;
//     c. barrier: wait for all workers;
//     d. contraction: walk slots 0..n-1, re-resolve each candidate's endpoints
//     and accept it only if they still differ;
//     e. a round that accepts nothing means the graph is disconnected.
//
// Complexity: O(log n) rounds of O(m/T) parallel + O(n) serial work.
func (e *Engine) Run() (*Result, error) {
	n := e.store.Vertices()
	e.forest = dsu.New(n)
	e.find = e.forest.Find
	if e.opts.PathCompression {
		e.find = e.forest.FindCompress
	}
	e.mst = make([]edgelist.Edge, 0, max(n-1, 0))
	e.total = 0
	e.rounds = 0

	if n <= 1 {
		return &Result{Edges: e.mst}, nil
	}
	if e.store.Len() == 0 {
		return nil, fmt.Errorf("%d vertices, no edges: %w", n, ErrDisconnected)
	}

	log := e.opts.Logger
	start := time.Now()
	for e.forest.Sets() > 1 {
		roundStart := time.Now()
		stats := RoundStats{Round: e.rounds + 1, Components: e.forest.Sets()}

		e.table.reset()
		if err := e.discover(); err != nil {
			return nil, err
		}
		stats.Candidates, stats.Accepted = e.contract()
		stats.Elapsed = time.Since(roundStart)
		e.rounds++

		log.Debug("boruvka round",
			"round", stats.Round,
			"components", stats.Components,
			"candidates", stats.Candidates,
			"accepted", stats.Accepted,
			"elapsed", stats.Elapsed,
		)
		if e.opts.OnRound != nil {
			e.opts.OnRound(stats)
		}

		if stats.Accepted == 0 {
			log.Warn("boruvka stalled",
				"round", stats.Round,
				"components", stats.Components,
			)
			return nil, fmt.Errorf("%d components remain after round %d: %w",
				stats.Components, stats.Round, ErrDisconnected)
		}
	}

	log.Info("boruvka finished",
		"vertices", n,
		"edges", e.store.Len(),
		"workers", e.workers,
		"rounds", e.rounds,
		"total", e.total,
		"elapsed", time.Since(start),
	)

	return &Result{Edges: e.mst, Total: e.total, Rounds: e.rounds}, nil
}

// discover fans the edge sequence out over e.workers goroutines and blocks
// until all of them are done. The forest is not written during this phase.
func (e *Engine) discover() error {
	var (
		g errgroup.Group
		m = e.store.Len()
		T = e.workers
	)

	switch e.opts.Partition {
	case PartitionBlocks:
		var cursor atomic.Int64
		bs := e.opts.BlockSize
		for t := 0; t < T; t++ {
			g.Go(func() error {
				for {
					lo := int(cursor.Add(int64(bs))) - bs
					if lo >= m {
						return nil
					}
					hi := min(lo+bs, m)
					for id := lo; id < hi; id++ {
						e.scan(id)
					}
				}
			})
		}
	default:
		for t := 0; t < T; t++ {
			g.Go(func() error {
				for id := t; id < m; id += T {
					e.scan(id)
				}
				return nil
			})
		}
	}

	return g.Wait()
}

// scan offers edge id to both endpoint components unless it is internal.
func (e *Engine) scan(id edgelist.EdgeID) {
	edge := e.store.Edge(id)
	pv1 := e.forest.Find(edge.From)
	pv2 := e.forest.Find(edge.To)
	if pv1 == pv2 {
		return
	}
	e.table.offer(pv1, id, edge.Weight)
	e.table.offer(pv2, id, edge.Weight)
}

// contract walks every slot in index order and accepts candidates whose
// endpoints are still in different components. Representatives shift while
// this loop runs, so the re-check is what keeps the tree acyclic.
func (e *Engine) contract() (candidates, accepted int) {
	n := e.store.Vertices()
	for j := 0; j < n; j++ {
		id, ok := e.table.candidate(j)
		if !ok {
			continue
		}
		candidates++

		edge := e.store.Edge(id)
		pv1, pv2 := e.find(edge.From), e.find(edge.To)
		if pv1 == pv2 {
			continue
		}
		e.forest.Union(pv1, pv2)
		e.mst = append(e.mst, edge)
		e.total += edge.Weight
		accepted++

		if e.forest.Sets() == 1 {
			break
		}
	}

	return candidates, accepted
}

// Boruvka computes the Minimum Spanning Tree of store with a fresh Engine.
//
// Error Conditions:
//   - ErrNilStore, ErrInvalidOptions, ErrAtomicSlotsRange : see NewEngine.
//   - ErrDisconnected : n ≥ 2 and the graph is not connected.
//
// Returns the accepted edges in acceptance order and their total weight.
// A graph with zero or one vertex yields an empty tree of weight 0.
func Boruvka(store *edgelist.Store, opts ...Option) ([]edgelist.Edge, int64, error) {
	e, err := NewEngine(store, opts...)
	if err != nil {
		return nil, 0, err
	}
	res, err := e.Run()
	if err != nil {
		return nil, 0, err
	}

	return res.Edges, res.Total, nil
}
