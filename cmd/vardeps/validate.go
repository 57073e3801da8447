package main

import (
	"fmt"

	"github.com/aretw0/vardeps/internal/inspect"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a dependency file for consistency",
		Long: `Parses the file and reports the first malformed line, invalid dependency kind or
origin, or duplicated section. With --strict, sections unreachable from every root and
[above]/[below] references to undeclared variables also fail validation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, g, err := a.parse(cmd, args)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			out := a.printer(cmd.OutOrStdout())
			report := inspect.Inspect(g)
			if report.HasFindings() {
				if a.cfg.Strict {
					return fmt.Errorf("validation failed (strict): %w", report.Err())
				}
				out.Warn("%s", report.Err())
			}

			out.Success("%s is valid: %d variables, %d dependencies", path, g.Len(), g.EdgeCount())
			return nil
		},
	}
	cmd.Flags().Bool("strict", false, "Treat inspection findings as errors")
	return cmd
}
