package main

import (
	"fmt"
	"os"

	"github.com/aretw0/vardeps/pkg/dsl"
	"github.com/spf13/cobra"
)

func newFmtCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Rewrite a dependency file in canonical layout",
		Long: `Parses the file and prints it back with fixed-width underlines, single blank lines
between sections and the default array kind left implicit. Use --write to update the file in place.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, g, err := a.parse(cmd, args)
			if err != nil {
				return err
			}
			doc := dsl.FromGraph(g).Document()

			if write, _ := cmd.Flags().GetBool("write"); write {
				if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				a.logger.Info("Formatted", "path", path)
				return nil
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
			return err
		},
	}
	cmd.Flags().BoolP("write", "w", false, "Write the result back to the source file")
	return cmd
}
