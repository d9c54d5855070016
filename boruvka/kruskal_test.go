package boruvka_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/parmst/boruvka"  // package under test
	"github.com/katalvlaran/parmst/edgelist" // edge store
	"github.com/stretchr/testify/assert"     // assertion library
)

// buildTriangle constructs a simple triangle store:
//
//	0—1 (weight 1), 1—2 (weight 2), 0—2 (weight 3).
//
// Its MST consists of edges 0—1 and 1—2 with total weight 3.
func buildTriangle(t *testing.T) *edgelist.Store {
	return mustStore(t, 3, e(0, 1, 1), e(1, 2, 2), e(0, 2, 3))
}

// pairNames normalises MST edges into "u-v" keys with u < v.
func pairNames(mst []edgelist.Edge) map[string]bool {
	names := make(map[string]bool, len(mst))
	for _, ed := range mst {
		u, v := ed.From, ed.To
		if u > v {
			u, v = v, u
		}
		names[fmt.Sprintf("%d-%d", u, v)] = true
	}

	return names
}

// TestKruskal_NilStore verifies nil input is rejected.
func TestKruskal_NilStore(t *testing.T) {
	_, _, err := boruvka.Kruskal(nil)
	assert.ErrorIs(t, err, boruvka.ErrNilStore)
}

// TestKruskal_Triangle ensures that Kruskal on the triangle picks the correct MST edges and weight.
func TestKruskal_Triangle(t *testing.T) {
	mst, total, err := boruvka.Kruskal(buildTriangle(t))
	assert.NoError(t, err)           // no error expected
	assert.Equal(t, int64(3), total) // MST weight should be 1 + 2 = 3
	assert.Len(t, mst, 2)            // MST must contain exactly 2 edges

	names := pairNames(mst)
	assert.True(t, names["0-1"], "edge 0-1 must be in MST")
	assert.True(t, names["1-2"], "edge 1-2 must be in MST")
}

// TestKruskal_TrivialAndDisconnected covers the empty, single-vertex and isolated cases.
// Unlike a graph library that treats an empty graph as disconnected, zero vertices
// yield an empty tree.
func TestKruskal_TrivialAndDisconnected(t *testing.T) {
	for _, n := range []int{0, 1} {
		mst, total, err := boruvka.Kruskal(mustStore(t, n))
		assert.NoError(t, err)
		assert.Empty(t, mst)
		assert.Zero(t, total)
	}

	mst, total, err := boruvka.Kruskal(mustStore(t, 2))
	assert.ErrorIs(t, err, boruvka.ErrDisconnected)
	assert.Empty(t, mst)
	assert.Zero(t, total)
}

// TestKruskal_SelfLoopsSkipped verifies loops never enter the tree even when lightest.
func TestKruskal_SelfLoopsSkipped(t *testing.T) {
	mst, total, err := boruvka.Kruskal(mustStore(t, 2, e(0, 0, -100), e(0, 1, 7), e(1, 1, -1)))
	assert.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Equal(t, []edgelist.Edge{e(0, 1, 7)}, mst)
}

// TestKruskal_StableTies verifies equal weights are taken in EdgeID order.
func TestKruskal_StableTies(t *testing.T) {
	// Every edge weighs 1; the first two non-cycle edges by id win.
	s := mustStore(t, 3, e(2, 0, 1), e(0, 1, 1), e(1, 2, 1))
	mst, total, err := boruvka.Kruskal(s)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []edgelist.Edge{e(2, 0, 1), e(0, 1, 1)}, mst)
}

// TestKruskal_MediumGraph checks the letter-envelope graph:
//
//	0—1 (4), 0—2 (1), 2—1 (2), 1—3 (3), 2—3 (5), 3—0 (4).
//
// The MST is {0–2, 2–1, 1–3} with total weight 6.
func TestKruskal_MediumGraph(t *testing.T) {
	s := mustStore(t, 4, e(0, 1, 4), e(0, 2, 1), e(2, 1, 2), e(1, 3, 3), e(2, 3, 5), e(3, 0, 4))
	mst, total, err := boruvka.Kruskal(s)
	assert.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assert.Equal(t, []edgelist.Edge{e(0, 2, 1), e(2, 1, 2), e(1, 3, 3)}, mst)
}
