package graphio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/parmst/edgelist"
)

const (
	// maxPrealloc caps the edge slice capacity taken from an untrusted header.
	maxPrealloc = 1 << 20

	// Counts and vertex ids must fit a 32-bit int.
	maxCount  = math.MaxInt32
	minVertex = math.MinInt32
)

// lineScanner yields non-blank lines split into fields, tracking line numbers.
type lineScanner struct {
	sc   *bufio.Scanner
	line int
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	return &lineScanner{sc: sc}
}

// next returns the fields of the next non-blank line, or io.EOF.
func (ls *lineScanner) next() ([]string, error) {
	for ls.sc.Scan() {
		ls.line++
		if f := strings.Fields(ls.sc.Text()); len(f) > 0 {
			return f, nil
		}
	}
	if err := ls.sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", ls.line+1, err)
	}

	return nil, io.EOF
}

// triple parses exactly three integer fields.
func (ls *lineScanner) triple(f []string) (a, b, c int64, err error) {
	if len(f) != 3 {
		return 0, 0, 0, malformed(ls.line, "want 3 fields, got %d", len(f))
	}
	var v [3]int64
	for i, s := range f {
		if v[i], err = strconv.ParseInt(s, 10, 64); err != nil {
			return 0, 0, 0, malformed(ls.line, "field %d %q", i+1, s)
		}
	}

	return v[0], v[1], v[2], nil
}

// header parses the first non-blank line as "count count value".
func (ls *lineScanner) header() (n, m int, w int64, err error) {
	f, err := ls.next()
	if err == io.EOF {
		return 0, 0, 0, malformed(ls.line+1, "missing header")
	}
	if err != nil {
		return 0, 0, 0, err
	}
	a, b, w, err := ls.triple(f)
	if err != nil {
		return 0, 0, 0, err
	}
	if a < 0 || b < 0 || a > maxCount || b > maxCount {
		return 0, 0, 0, malformed(ls.line, "counts %d %d out of range", a, b)
	}

	return int(a), int(b), w, nil
}

// edge parses one "v1 v2 w" line. Vertex range is left to edgelist.NewStore.
func (ls *lineScanner) edge(f []string) (edgelist.Edge, error) {
	u, v, w, err := ls.triple(f)
	if err != nil {
		return edgelist.Edge{}, err
	}
	if u < minVertex || u > maxCount || v < minVertex || v > maxCount {
		return edgelist.Edge{}, malformed(ls.line, "vertex %d %d out of range", u, v)
	}

	return edgelist.Edge{From: int(u), To: int(v), Weight: w}, nil
}

// Read parses an input stream: a header "n m maxWeight" followed by exactly m
// edge lines "v1 v2 w". Blank lines are ignored.
//
// Error Conditions:
//   - ErrMalformed                 : missing header, wrong field count, bad integer,
//     negative counts, fewer or more than m edge lines.
//   - edgelist.ErrVertexOutOfRange : an endpoint outside [0, n).
//
// No partial store is returned on error.
func Read(r io.Reader) (Header, *edgelist.Store, error) {
	ls := newLineScanner(r)
	n, m, maxW, err := ls.header()
	if err != nil {
		return Header{}, nil, err
	}
	hdr := Header{Vertices: n, Edges: m, MaxWeight: maxW}

	edges := make([]edgelist.Edge, 0, min(m, maxPrealloc))
	for len(edges) < m {
		f, err := ls.next()
		if err == io.EOF {
			return Header{}, nil, malformed(ls.line, "got %d of %d edges", len(edges), m)
		}
		if err != nil {
			return Header{}, nil, err
		}
		e, err := ls.edge(f)
		if err != nil {
			return Header{}, nil, err
		}
		edges = append(edges, e)
	}
	if _, err := ls.next(); err != io.EOF {
		if err != nil {
			return Header{}, nil, err
		}
		return Header{}, nil, malformed(ls.line, "more than %d edges", m)
	}

	store, err := edgelist.NewStore(n, edges)
	if err != nil {
		return Header{}, nil, err
	}

	return hdr, store, nil
}

// ReadResult parses a result stream: a header "n m totalWeight" followed by the
// tree edges. The edge count is not checked here; Verify does that.
func ReadResult(r io.Reader) (ResultHeader, []edgelist.Edge, error) {
	ls := newLineScanner(r)
	n, m, total, err := ls.header()
	if err != nil {
		return ResultHeader{}, nil, err
	}

	edges := make([]edgelist.Edge, 0, min(max(n-1, 0), maxPrealloc))
	for {
		f, err := ls.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ResultHeader{}, nil, err
		}
		e, err := ls.edge(f)
		if err != nil {
			return ResultHeader{}, nil, err
		}
		edges = append(edges, e)
	}

	return ResultHeader{Vertices: n, Edges: m, Total: total}, edges, nil
}
