package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/vardeps/internal/inspect"
	"github.com/aretw0/vardeps/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// Summary builds a markdown description of g and its inspection report.
func Summary(title string, g *domain.Graph, r inspect.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "%d variables, %d dependencies, %d root(s).\n\n", g.Len(), g.EdgeCount(), len(r.Roots))

	for _, s := range g.Sections() {
		fmt.Fprintf(&sb, "## %s (%s)\n\n", s.Target, s.Kind)
		if len(s.Declarations) == 0 {
			sb.WriteString("_No dependencies._\n\n")
			continue
		}
		sb.WriteString("| Dependency | Kind | Origin | Line |\n")
		sb.WriteString("|---|---|---|---|\n")
		for _, d := range s.Declarations {
			name := d.Name
			if g.HasVariable(d.Name) {
				name = "**" + d.Name + "**"
			}
			fmt.Fprintf(&sb, "| %s | %s | `%s` | %d |\n", name, d.Kind, d.Origin.Token(), d.Line)
		}
		sb.WriteString("\n")
	}

	if len(r.Unreachable)+len(r.Dangling)+len(r.Cycles) > 0 {
		sb.WriteString("## Findings\n\n")
		for _, name := range r.Unreachable {
			fmt.Fprintf(&sb, "- unreachable from any root: `%s`\n", name)
		}
		for _, e := range r.Dangling {
			fmt.Fprintf(&sb, "- `%s` references undeclared `%s` %s (line %d)\n", e.Source, e.Destination, e.Origin.Token(), e.Line)
		}
		for _, c := range r.Cycles {
			fmt.Fprintf(&sb, "- cycle: `%s`\n", strings.Join(c, "` ↔ `"))
		}
	}
	return sb.String()
}

// NewRenderer returns a function that renders markdown using glamour.
// Without a terminal the markdown is returned unchanged.
func NewRenderer(interactive bool) func(string) (string, error) {
	if !interactive {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return "", fmt.Errorf("failed to create markdown renderer: %w", err)
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
