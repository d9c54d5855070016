package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/parmst/graphgen"
	"github.com/katalvlaran/parmst/graphio"
)

type generateFlags struct {
	vertices  int
	edges     int
	maxWeight int64
	seed      int64
	connected bool
	output    string
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random simple graph as an input file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, a, f)
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.vertices, "vertices", "n", 0, "number of vertices")
	fl.IntVarP(&f.edges, "edges", "m", 0, "number of edges")
	fl.Int64VarP(&f.maxWeight, "max-weight", "w", 0, "maximum edge weight")
	fl.Int64Var(&f.seed, "seed", 0, "random seed (0 selects a fixed default)")
	fl.BoolVar(&f.connected, "connected", false, "lay a spanning tree first so the graph is connected")
	fl.StringVarP(&f.output, "output", "o", "", "output file (default input_n_m_w.txt)")
	_ = cmd.MarkFlagRequired("vertices")
	_ = cmd.MarkFlagRequired("edges")
	_ = cmd.MarkFlagRequired("max-weight")

	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, f *generateFlags) error {
	opts := []graphgen.Option{graphgen.WithSeed(f.seed)}
	if f.connected {
		opts = append(opts, graphgen.WithConnected())
	}

	start := time.Now()
	store, err := graphgen.Generate(f.vertices, f.edges, f.maxWeight, opts...)
	if err != nil {
		return err
	}

	out := f.output
	if out == "" {
		out = graphio.InputName(f.vertices, f.edges, f.maxWeight)
	}
	if err := graphio.WriteFile(out, graphio.Header{MaxWeight: f.maxWeight}, store); err != nil {
		return err
	}
	a.log.Info("graph generated", "file", out, "elapsed", time.Since(start))

	size := "?"
	if fi, err := os.Stat(out); err == nil {
		size = humanize.Bytes(uint64(fi.Size()))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s vertices, %s edges (%s)\n",
		out, humanize.Comma(int64(f.vertices)), humanize.Comma(int64(f.edges)), size)

	return nil
}
