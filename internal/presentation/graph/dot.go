package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/vardeps/pkg/domain"
)

// GenerateDOT produces a Graphviz digraph. Root sections are double circles,
// regular sections boxes, undeclared names plain ellipses; layer references
// are dashed edges labelled with their origin.
func GenerateDOT(g *domain.Graph) string {
	var sb strings.Builder
	sb.WriteString("digraph dependencies {\n")
	sb.WriteString("    rankdir=TB;\n")

	for _, s := range g.Sections() {
		shape := "box"
		if s.IsRoot() {
			shape = "doublecircle"
		}
		sb.WriteString(fmt.Sprintf("    %q [shape=%s];\n", s.Target, shape))
	}

	seen := make(map[string]bool)
	for _, e := range g.Edges() {
		if g.HasVariable(e.Destination) || seen[e.Destination] {
			continue
		}
		seen[e.Destination] = true
		sb.WriteString(fmt.Sprintf("    %q [shape=ellipse, style=dashed];\n", e.Destination))
	}

	for _, e := range g.Edges() {
		attrs := []string{fmt.Sprintf("label=%q", dotLabel(e))}
		if e.Origin.IsLayerReference() {
			attrs = append(attrs, "style=dashed")
		}
		sb.WriteString(fmt.Sprintf("    %q -> %q [%s];\n", e.Source, e.Destination, strings.Join(attrs, ", ")))
	}

	sb.WriteString("}\n")
	return sb.String()
}

func dotLabel(e domain.Edge) string {
	return string(e.Kind) + " " + e.Origin.Token()
}
