package main

import (
	"github.com/aretw0/vardeps/internal/cli"
	"github.com/aretw0/vardeps/pkg/domain"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-validate the file every time it changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := inputPath(cmd, args)
			if err != nil {
				return err
			}

			shutdown := cli.OnShutdown(cmd.Context())
			defer shutdown.Stop()

			out := a.printer(cmd.OutOrStdout())
			err = cli.Watch(shutdown, cli.WatchOptions{
				Path:   path,
				Logger: a.logger,
				OnResult: func(g *domain.Graph, err error) {
					if err != nil {
						out.Failure("%v", err)
						return
					}
					out.Success("%s is valid: %d variables, %d dependencies", path, g.Len(), g.EdgeCount())
				},
			})
			if sig := shutdown.Caught(); sig != nil {
				a.logger.Info("Watcher stopped", "signal", sig.String())
			}
			return err
		},
	}
}
