package graphio

import (
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/parmst/edgelist"
)

// dotGraphName is the graph identifier used by WriteDOT.
const dotGraphName = "mst"

// BuildDOT returns an undirected Graphviz graph with vertices 0..n-1 and one
// edge per tree edge, labelled with its weight.
func BuildDOT(n int, edges []edgelist.Edge) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(dotGraphName); err != nil {
		return nil, err
	}
	if err := g.SetDir(false); err != nil {
		return nil, err
	}
	for v := 0; v < n; v++ {
		if err := g.AddNode(dotGraphName, strconv.Itoa(v), nil); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		attrs := map[string]string{"label": strconv.FormatInt(e.Weight, 10)}
		if err := g.AddEdge(strconv.Itoa(e.From), strconv.Itoa(e.To), false, attrs); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// WriteDOT renders the tree as DOT text.
func WriteDOT(w io.Writer, n int, edges []edgelist.Edge) error {
	g, err := BuildDOT(n, edges)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, g.String())

	return err
}
