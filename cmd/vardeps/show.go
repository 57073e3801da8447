package main

import (
	"fmt"
	"path/filepath"

	"github.com/aretw0/vardeps/internal/inspect"
	"github.com/aretw0/vardeps/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Render a readable summary of the dependency file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, g, err := a.parse(cmd, args)
			if err != nil {
				return err
			}

			md := tui.Summary(filepath.Base(path), g, inspect.Inspect(g))
			render := tui.NewRenderer(tui.IsTerminal(cmd.OutOrStdout()))
			out, err := render(md)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
