package dsu

// Forest maps each vertex to (parent, size).
//
// parent[v] == v marks a representative. size[r] is only meaningful when r is
// a representative; entries of non-representatives are stale and never read.
type Forest struct {
	parent []int
	size   []int
	sets   int // current number of components
}

// New returns a forest of n singleton components.
// Complexity: O(n).
func New(n int) *Forest {
	f := &Forest{
		parent: make([]int, n),
		size:   make([]int, n),
		sets:   n,
	}
	for v := 0; v < n; v++ {
		f.parent[v] = v
		f.size[v] = 1
	}

	return f
}

// Find returns the representative of v's component.
//
// The walk never writes, so Find is safe to call from many goroutines at once
// as long as no Union or FindCompress runs at the same time.
func (f *Forest) Find(v int) int {
	for f.parent[v] != v {
		v = f.parent[v]
	}

	return v
}

// FindCompress returns the same representative as Find and halves the path
// on the way up (each visited vertex is pointed at its grandparent).
// Serial use only.
func (f *Forest) FindCompress(v int) int {
	for f.parent[v] != v {
		f.parent[v] = f.parent[f.parent[v]]
		v = f.parent[v]
	}

	return v
}

// Union merges the components of a and b and reports whether a merge happened.
//
// Calling it with a and b already in the same component is safe and changes
// nothing. Otherwise the root with the smaller size becomes a child of the
// other; on equal sizes a's root stays the representative. Only the two roots
// are touched.
func (f *Forest) Union(a, b int) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}
	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	f.sets--

	return true
}

// Connected reports whether a and b share a representative.
func (f *Forest) Connected(a, b int) bool {
	return f.Find(a) == f.Find(b)
}

// Size returns the number of vertices in v's component.
func (f *Forest) Size(v int) int {
	return f.size[f.Find(v)]
}

// Sets returns the current number of components.
func (f *Forest) Sets() int { return f.sets }

// Len returns the number of vertices the forest was built for.
func (f *Forest) Len() int { return len(f.parent) }
