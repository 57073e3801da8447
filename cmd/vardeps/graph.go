package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/vardeps/internal/presentation/graph"
	"github.com/spf13/cobra"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Export the dependency graph",
		Long:  `Parses the file and writes the graph as Mermaid (graph TD), Graphviz DOT, JSON or YAML.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := graph.ParseFormat(a.cfg.Format)
			if err != nil {
				return err
			}

			_, g, err := a.parse(cmd, args)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outfile, _ := cmd.Flags().GetString("output"); outfile != "" {
				f, err := os.Create(outfile)
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer f.Close()
				w = f
				a.logger.Info("Writing graph", "path", outfile, "format", format)
			}

			if err := graph.Export(w, g, format); err != nil {
				return fmt.Errorf("failed to export graph: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "", "Export format: mermaid, dot, json, yaml (default from config: mermaid)")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	return cmd
}
