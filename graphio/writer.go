package graphio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/parmst/edgelist"
)

// tripleWriter appends "a b c\n" lines to a buffered writer without
// allocating per line.
type tripleWriter struct {
	bw  *bufio.Writer
	buf []byte
}

func newTripleWriter(w io.Writer) *tripleWriter {
	return &tripleWriter{bw: bufio.NewWriterSize(w, 256*1024), buf: make([]byte, 0, 64)}
}

func (tw *tripleWriter) line(a, b, c int64) error {
	tw.buf = strconv.AppendInt(tw.buf[:0], a, 10)
	tw.buf = append(tw.buf, ' ')
	tw.buf = strconv.AppendInt(tw.buf, b, 10)
	tw.buf = append(tw.buf, ' ')
	tw.buf = strconv.AppendInt(tw.buf, c, 10)
	tw.buf = append(tw.buf, '\n')
	_, err := tw.bw.Write(tw.buf)

	return err
}

func (tw *tripleWriter) edges(edges []edgelist.Edge) error {
	for _, e := range edges {
		if err := tw.line(int64(e.From), int64(e.To), e.Weight); err != nil {
			return err
		}
	}

	return nil
}

// Write serialises store as an input stream. hdr.Vertices and hdr.Edges are
// taken from the store; only hdr.MaxWeight is written as given.
func Write(w io.Writer, hdr Header, store *edgelist.Store) error {
	tw := newTripleWriter(w)
	if err := tw.line(int64(store.Vertices()), int64(store.Len()), hdr.MaxWeight); err != nil {
		return err
	}
	for id := 0; id < store.Len(); id++ {
		e := store.Edge(id)
		if err := tw.line(int64(e.From), int64(e.To), e.Weight); err != nil {
			return err
		}
	}

	return tw.bw.Flush()
}

// WriteResult writes "n m totalWeight" followed by edges in the given order,
// which for a solver result is acceptance order.
func WriteResult(w io.Writer, n, m int, edges []edgelist.Edge, total int64) error {
	tw := newTripleWriter(w)
	if err := tw.line(int64(n), int64(m), total); err != nil {
		return err
	}
	if err := tw.edges(edges); err != nil {
		return err
	}

	return tw.bw.Flush()
}
