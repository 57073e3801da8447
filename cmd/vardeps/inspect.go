package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/vardeps/internal/inspect"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Report roots, unreachable sections, dangling references and cycles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := a.parse(cmd, args)
			if err != nil {
				return err
			}
			r := inspect.Inspect(g)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "roots:       %s\n", list(r.Roots))
			fmt.Fprintf(w, "unreachable: %s\n", list(r.Unreachable))
			fmt.Fprintf(w, "leaves:      %s\n", list(r.Leaves))
			fmt.Fprintf(w, "dangling:    %d\n", len(r.Dangling))
			for _, e := range r.Dangling {
				fmt.Fprintf(w, "  %s -> %s %s (line %d)\n", e.Source, e.Destination, e.Origin.Token(), e.Line)
			}
			fmt.Fprintf(w, "cycles:      %d\n", len(r.Cycles))
			for _, c := range r.Cycles {
				fmt.Fprintf(w, "  %s\n", strings.Join(c, " <-> "))
			}
			return nil
		},
	}
}

func list(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
