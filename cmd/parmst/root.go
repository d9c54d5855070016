package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/parmst/logging"
)

// app carries state shared by all subcommands once flags are parsed.
type app struct {
	cfg       config
	logLevel  string
	logFormat string
	log       *slog.Logger
}

func newRootCmd(cfg config) *cobra.Command {
	a := &app{cfg: cfg, log: logging.Discard()}

	root := &cobra.Command{
		Use:           "parmst",
		Short:         "Parallel Borůvka minimum spanning tree solver",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			l, err := logging.New(cmd.ErrOrStderr(), level, a.logFormat)
			if err != nil {
				return err
			}
			a.log = l

			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", cfg.LogLevel, "log level (debug/info/warn/error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", cfg.LogFormat, "log format (text/json)")

	root.AddCommand(newSolveCmd(a), newGenerateCmd(a), newVerifyCmd(a))

	return root
}
