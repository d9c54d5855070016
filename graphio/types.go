package graphio

import (
	"errors"
	"fmt"
)

// ErrMalformed indicates a text stream that does not follow the edge-list
// format. It is always wrapped with the offending line number.
var ErrMalformed = errors.New("graphio: malformed input")

// Header is the first line of an input file: "n m maxWeight".
// MaxWeight is informational; the solver never checks edge weights against it.
type Header struct {
	Vertices  int
	Edges     int
	MaxWeight int64
}

// ResultHeader is the first line of a result file: "n m totalWeight".
// Edges repeats the input edge count, not the tree size.
type ResultHeader struct {
	Vertices int
	Edges    int
	Total    int64
}

// InputName returns the generator's file name for a graph: input_n_m_w.txt.
func InputName(n, m int, maxWeight int64) string {
	return fmt.Sprintf("input_%d_%d_%d.txt", n, m, maxWeight)
}

// OutputName returns the solver's default result file name: output_n_m_w.txt.
// The numbers are taken from the input header.
func OutputName(n, m int, maxWeight int64) string {
	return fmt.Sprintf("output_%d_%d_%d.txt", n, m, maxWeight)
}

// malformed wraps ErrMalformed with a 1-based line number.
func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrMalformed)
}
