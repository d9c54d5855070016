package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/parmst/boruvka"
	"github.com/katalvlaran/parmst/edgelist"
	"github.com/katalvlaran/parmst/graphio"
)

// ErrNoInput is returned when solve or verify run without -f.
var ErrNoInput = errors.New("input file is required (-f)")

type solveFlags struct {
	input     string
	output    string
	workers   int
	method    string
	partition string
	slots     string
	blockSize int
	compress  bool
	dot       string
	report    string
	verify    bool
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the MST of an input file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, a, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.input, "file", "f", "", "input edge-list file (.gz/.zst/.lz4 accepted)")
	fl.StringVarP(&f.output, "output", "o", "", "result file (default output_n_m_w.txt)")
	fl.IntVarP(&f.workers, "threads", "t", a.cfg.Workers, "discovery workers")
	fl.StringVar(&f.method, "method", boruvka.MethodBoruvka, "boruvka or kruskal")
	fl.StringVar(&f.partition, "partition", a.cfg.Partition, "edge partitioning: stride or blocks")
	fl.StringVar(&f.slots, "slots", a.cfg.Slots, "cheapest-edge slots: mutex or atomic")
	fl.IntVar(&f.blockSize, "block-size", boruvka.DefaultBlockSize, "edges per claim with --partition blocks")
	fl.BoolVar(&f.compress, "compress-paths", false, "path compression during contraction")
	fl.StringVar(&f.dot, "dot", "", "also write the tree as Graphviz DOT")
	fl.StringVar(&f.report, "report", "", "write a JSON run report")
	fl.BoolVar(&f.verify, "verify", false, "check the tree against the Kruskal reference")

	return cmd
}

func runSolve(cmd *cobra.Command, a *app, f *solveFlags) error {
	if f.input == "" {
		return ErrNoInput
	}
	part, err := boruvka.ParsePartition(f.partition)
	if err != nil {
		return fmt.Errorf("--partition %q: %w", f.partition, err)
	}
	slots, err := boruvka.ParseSlots(f.slots)
	if err != nil {
		return fmt.Errorf("--slots %q: %w", f.slots, err)
	}

	rep := &runReport{Input: f.input, Method: f.method, Partition: part.String(), Slots: slots.String()}

	// 1. Load. Malformed input aborts before any solving.
	start := time.Now()
	hdr, store, err := graphio.ReadFile(f.input)
	if err != nil {
		return err
	}
	rep.Read = time.Since(start)
	rep.Vertices, rep.Edges = store.Vertices(), store.Len()
	a.log.Info("input loaded",
		"file", f.input,
		"vertices", store.Vertices(),
		"edges", store.Len(),
		"elapsed", rep.Read,
	)

	// 2. Solve.
	start = time.Now()
	var (
		edges []edgelist.Edge
		total int64
	)
	switch f.method {
	case boruvka.MethodBoruvka:
		eng, err := boruvka.NewEngine(store,
			boruvka.WithWorkers(f.workers),
			boruvka.WithPartition(part),
			boruvka.WithBlockSize(f.blockSize),
			boruvka.WithSlots(slots),
			boruvka.WithLogger(a.log),
			boruvka.WithOnRound(func(rs boruvka.RoundStats) { rep.Rounds = append(rep.Rounds, rs) }),
			withCompression(f.compress),
		)
		if err != nil {
			return err
		}
		rep.Workers = eng.Workers()
		res, err := eng.Run()
		if err != nil {
			return err
		}
		edges, total = res.Edges, res.Total
	default:
		edges, total, err = boruvka.Compute(store, boruvka.MSTOptions{Method: f.method})
		if err != nil {
			return err
		}
		rep.Workers = 1
	}
	rep.Solve = time.Since(start)
	rep.Total, rep.TreeEdges = total, len(edges)

	if f.verify {
		if err := boruvka.Verify(store, edges, total); err != nil {
			return err
		}
		if err := boruvka.VerifyMinimal(store, total); err != nil {
			return err
		}
		rep.Verified = true
	}

	// 3. Write.
	out := f.output
	if out == "" {
		out = graphio.OutputName(hdr.Vertices, hdr.Edges, hdr.MaxWeight)
	}
	start = time.Now()
	if err := graphio.WriteResultFile(out, store.Vertices(), store.Len(), edges, total); err != nil {
		return err
	}
	rep.Write = time.Since(start)

	if f.dot != "" {
		if err := writeDOTFile(f.dot, store.Vertices(), edges); err != nil {
			return err
		}
	}
	if f.report != "" {
		if err := writeReport(f.report, rep); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s vertices, %s edges, weight %s, %d rounds, solved in %s\n",
		out,
		humanize.Comma(int64(store.Vertices())),
		humanize.Comma(int64(store.Len())),
		humanize.Comma(total),
		len(rep.Rounds),
		rep.Solve.Round(time.Microsecond),
	)

	return nil
}

// withCompression maps the flag onto the engine option.
func withCompression(on bool) boruvka.Option {
	if on {
		return boruvka.WithPathCompression()
	}

	return func(*boruvka.Options) {}
}

func writeDOTFile(path string, n int, edges []edgelist.Edge) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graphio.WriteDOT(fh, n, edges); err != nil {
		_ = fh.Close()
		return err
	}

	return fh.Close()
}
