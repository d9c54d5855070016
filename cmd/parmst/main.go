// Command parmst computes minimum spanning trees of edge-list files with the
// parallel Borůvka engine, generates random input graphs and verifies results.
//
//	parmst generate -n 100000 -m 1000000 -w 1000 --connected
//	parmst solve -f input_100000_1000000_1000.txt -t 8 --verify
//	parmst verify -f input_100000_1000000_1000.txt -r output_100000_1000000_1000.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := loadDotEnv(dotEnvFiles...); err != nil {
		fmt.Fprintln(os.Stderr, "parmst:", err)
		os.Exit(1)
	}
	cfg, err := configFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "parmst:", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "parmst:", err)
		os.Exit(1)
	}
}
