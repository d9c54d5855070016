package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/parmst/boruvka"
	"github.com/katalvlaran/parmst/graphio"
)

// ErrHeaderMismatch indicates a result file written for a different input.
var ErrHeaderMismatch = errors.New("result header does not match input")

type verifyFlags struct {
	input  string
	result string
}

func newVerifyCmd(a *app) *cobra.Command {
	f := &verifyFlags{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that a result file is a minimum spanning tree of an input file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd, a, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.input, "file", "f", "", "input edge-list file")
	fl.StringVarP(&f.result, "result", "r", "", "result file written by solve")
	_ = cmd.MarkFlagRequired("result")

	return cmd
}

func runVerify(cmd *cobra.Command, a *app, f *verifyFlags) error {
	if f.input == "" {
		return ErrNoInput
	}
	_, store, err := graphio.ReadFile(f.input)
	if err != nil {
		return err
	}
	rh, edges, err := graphio.ReadResultFile(f.result)
	if err != nil {
		return err
	}
	if rh.Vertices != store.Vertices() || rh.Edges != store.Len() {
		return fmt.Errorf("result %d %d, input %d %d: %w",
			rh.Vertices, rh.Edges, store.Vertices(), store.Len(), ErrHeaderMismatch)
	}

	if err := boruvka.Verify(store, edges, rh.Total); err != nil {
		return err
	}
	if err := boruvka.VerifyMinimal(store, rh.Total); err != nil {
		return err
	}
	a.log.Debug("result verified", "file", f.result, "edges", len(edges))

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %s edges, weight %s\n",
		f.result, humanize.Comma(int64(len(edges))), humanize.Comma(rh.Total))

	return nil
}
