package boruvka

import (
	"errors"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/katalvlaran/parmst/edgelist"
)

// ErrNilStore indicates a nil *edgelist.Store was passed to a solver.
var ErrNilStore = errors.New("boruvka: edge store is nil")

// ErrInvalidOptions indicates an unusable option combination
// (non-positive worker count or block size, unknown partition or slot kind).
var ErrInvalidOptions = errors.New("boruvka: invalid options")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. The engine reports it as soon as
// a full round accepts no edge.
var ErrDisconnected = errors.New("boruvka: graph is disconnected")

// ErrAtomicSlotsRange indicates SlotsAtomic was requested for a store whose
// weights do not fit in int32 or whose edge count does not fit in 32 bits.
var ErrAtomicSlotsRange = errors.New("boruvka: weights or edge count exceed atomic slot range")

// Verification errors returned by Verify and VerifyMinimal.
var (
	// ErrNotSpanning indicates the edge set does not have n-1 edges covering all vertices.
	ErrNotSpanning = errors.New("boruvka: edges do not span the graph")

	// ErrCycle indicates an edge joins two vertices already connected by earlier edges.
	ErrCycle = errors.New("boruvka: edges contain a cycle")

	// ErrForeignEdge indicates an edge that is not present in the store.
	ErrForeignEdge = errors.New("boruvka: edge not present in graph")

	// ErrWeightMismatch indicates the reported total differs from the edge weight sum.
	ErrWeightMismatch = errors.New("boruvka: total weight does not match edges")

	// ErrNotMinimal indicates the total weight exceeds the reference MST weight.
	ErrNotMinimal = errors.New("boruvka: spanning tree is not minimal")
)

// MethodBoruvka selects the parallel Borůvka engine.
const MethodBoruvka = "boruvka"

// MethodKruskal selects the serial Kruskal reference (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Partition selects how the discovery phase splits the edge sequence across workers.
type Partition int

const (
	// PartitionStride gives worker t the edges t, t+T, t+2T, ... (static).
	PartitionStride Partition = iota

	// PartitionBlocks lets workers claim contiguous blocks of BlockSize edges
	// from a shared cursor until the sequence is exhausted (dynamic).
	PartitionBlocks
)

// String returns the flag spelling of p.
func (p Partition) String() string {
	switch p {
	case PartitionStride:
		return "stride"
	case PartitionBlocks:
		return "blocks"
	default:
		return "unknown"
	}
}

// ParsePartition maps "stride" and "blocks" to a Partition.
func ParsePartition(s string) (Partition, error) {
	switch strings.ToLower(s) {
	case "stride":
		return PartitionStride, nil
	case "blocks":
		return PartitionBlocks, nil
	default:
		return 0, ErrInvalidOptions
	}
}

// Slots selects the synchronisation used by the cheapest-edge table.
type Slots int

const (
	// SlotsMutex guards each vertex slot with its own mutex. Weight ties go to
	// whichever offer reaches the slot first.
	SlotsMutex Slots = iota

	// SlotsAtomic packs (weight, edge id) into one word per slot and updates it
	// with compare-and-swap. Weight ties resolve to the lower edge id.
	SlotsAtomic
)

// String returns the flag spelling of s.
func (s Slots) String() string {
	switch s {
	case SlotsMutex:
		return "mutex"
	case SlotsAtomic:
		return "atomic"
	default:
		return "unknown"
	}
}

// ParseSlots maps "mutex" and "atomic" to a Slots kind.
func ParseSlots(s string) (Slots, error) {
	switch strings.ToLower(s) {
	case "mutex":
		return SlotsMutex, nil
	case "atomic":
		return SlotsAtomic, nil
	default:
		return 0, ErrInvalidOptions
	}
}

// DefaultBlockSize is the number of edges a worker claims at once under PartitionBlocks.
const DefaultBlockSize = 4096

// Options configures the Borůvka engine.
// Use DefaultOptions() to get a default setup.
type Options struct {
	// Workers is the number of discovery goroutines. Clamped to [1, m] at run time.
	Workers int

	// Partition selects static striding or dynamic blocks.
	Partition Partition

	// BlockSize is the claim size for PartitionBlocks. Ignored otherwise.
	BlockSize int

	// Slots selects mutex or atomic cheapest-edge slots.
	Slots Slots

	// PathCompression lets the serial contraction phase compress forest paths.
	// Discovery always uses the read-only Find.
	PathCompression bool

	// Logger receives per-round debug records and a solve summary.
	Logger *slog.Logger

	// OnRound, if non-nil, is invoked after every completed round.
	OnRound func(RoundStats)
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// DefaultOptions returns Options initialised with:
//
//	– Workers   = runtime.GOMAXPROCS(0)
//	– Partition = PartitionStride
//	– BlockSize = DefaultBlockSize
//	– Slots     = SlotsMutex
//	– no path compression, no logger, no hook.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.GOMAXPROCS(0),
		Partition: PartitionStride,
		BlockSize: DefaultBlockSize,
		Slots:     SlotsMutex,
	}
}

// WithWorkers sets the number of discovery goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithPartition sets the edge partitioning strategy.
func WithPartition(p Partition) Option {
	return func(o *Options) { o.Partition = p }
}

// WithBlockSize sets the claim size used by PartitionBlocks.
func WithBlockSize(n int) Option {
	return func(o *Options) { o.BlockSize = n }
}

// WithSlots sets the cheapest-edge table synchronisation.
func WithSlots(s Slots) Option {
	return func(o *Options) { o.Slots = s }
}

// WithPathCompression enables path halving during contraction.
func WithPathCompression() Option {
	return func(o *Options) { o.PathCompression = true }
}

// WithLogger installs a structured logger. A nil logger keeps logging disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnRound installs a hook called after each round with its statistics.
func WithOnRound(fn func(RoundStats)) Option {
	return func(o *Options) { o.OnRound = fn }
}

// RoundStats describes one completed discovery + contraction round.
type RoundStats struct {
	// Round is 1-based.
	Round int

	// Components is the component count at the start of the round.
	Components int

	// Candidates is the number of table slots holding a candidate edge.
	Candidates int

	// Accepted is the number of edges added to the tree in this round.
	Accepted int

	// Elapsed covers reset, discovery and contraction.
	Elapsed time.Duration
}

// Result is the outcome of one solve.
type Result struct {
	// Edges holds the accepted edges in acceptance order (not weight order).
	Edges []edgelist.Edge

	// Total is the sum of accepted edge weights.
	Total int64

	// Rounds is the number of Borůvka rounds executed.
	Rounds int
}

// MSTOptions selects which MST algorithm Compute runs.
type MSTOptions struct {
	// Method to use: MethodBoruvka or MethodKruskal.
	Method string
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodBoruvka: calls Boruvka(store, engine...).
//	– MethodKruskal: calls Kruskal(store); engine options are ignored.
//	– Otherwise:     returns ErrInvalidOptions.
func Compute(store *edgelist.Store, opts MSTOptions, engine ...Option) ([]edgelist.Edge, int64, error) {
	switch opts.Method {
	case MethodBoruvka:
		return Boruvka(store, engine...)
	case MethodKruskal:
		return Kruskal(store)
	default:
		return nil, 0, ErrInvalidOptions
	}
}
