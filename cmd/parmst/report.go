package main

import (
	"os"
	"time"

	"github.com/tidwall/sjson"

	"github.com/katalvlaran/parmst/boruvka"
)

// runReport collects what the solve command measured.
type runReport struct {
	Input     string
	Method    string
	Vertices  int
	Edges     int
	Workers   int
	Partition string
	Slots     string
	Total     int64
	TreeEdges int
	Rounds    []boruvka.RoundStats
	Read      time.Duration
	Solve     time.Duration
	Write     time.Duration
	Verified  bool
}

// roundJSON is the per-round entry of the report.
type roundJSON struct {
	Round      int     `json:"round"`
	Components int     `json:"components"`
	Candidates int     `json:"candidates"`
	Accepted   int     `json:"accepted"`
	ElapsedMS  float64 `json:"elapsed_ms"`
}

func millis(d time.Duration) float64 { return float64(d.Microseconds()) / 1000 }

// JSON renders the report as a single JSON object.
func (r *runReport) JSON() (string, error) {
	doc := "{}"
	set := func(path string, v any) error {
		var err error
		doc, err = sjson.Set(doc, path, v)
		return err
	}

	fields := []struct {
		path string
		v    any
	}{
		{"input", r.Input},
		{"method", r.Method},
		{"graph.vertices", r.Vertices},
		{"graph.edges", r.Edges},
		{"engine.workers", r.Workers},
		{"engine.partition", r.Partition},
		{"engine.slots", r.Slots},
		{"mst.total", r.Total},
		{"mst.edges", r.TreeEdges},
		{"mst.verified", r.Verified},
		{"timing.read_ms", millis(r.Read)},
		{"timing.solve_ms", millis(r.Solve)},
		{"timing.write_ms", millis(r.Write)},
		{"rounds", []roundJSON{}},
	}
	for _, f := range fields {
		if err := set(f.path, f.v); err != nil {
			return "", err
		}
	}
	for _, rs := range r.Rounds {
		err := set("rounds.-1", roundJSON{
			Round:      rs.Round,
			Components: rs.Components,
			Candidates: rs.Candidates,
			Accepted:   rs.Accepted,
			ElapsedMS:  millis(rs.Elapsed),
		})
		if err != nil {
			return "", err
		}
	}

	return doc, nil
}

// writeReport writes the JSON report to path.
func writeReport(path string, r *runReport) error {
	doc, err := r.JSON()
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(doc+"\n"), 0o644)
}
