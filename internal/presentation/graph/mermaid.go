package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/vardeps/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart syntax string from a graph.
// Edges point from a target to what it depends on. It applies semantic styling:
// - Root section: ((Circle))
// - Regular section: [Rectangle]
// - Undeclared constant: {{Hexagon}}
// - Undeclared external input: [/Parallelogram/]
// - Any other undeclared name: ([Stadium])
// Layer references are drawn dotted and labelled with their origin;
// scalar dependencies carry a "scalar" label.
func GenerateMermaid(g *domain.Graph) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	id := mermaidIDs(g)

	for _, s := range g.Sections() {
		opener, closer := "[", "]"
		if s.IsRoot() {
			opener, closer = "((", "))" // Circle
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id[s.Target], opener, s.Target, closer))
	}

	// Leaves get one node each, shaped by the first origin that reached them.
	drawn := make(map[string]bool)
	for _, e := range g.Edges() {
		if g.HasVariable(e.Destination) || drawn[e.Destination] {
			continue
		}
		drawn[e.Destination] = true

		opener, closer := "([", "])"
		switch e.Origin {
		case domain.OriginConstant:
			opener, closer = "{{", "}}"
		case domain.OriginExternal:
			opener, closer = "[/", "/]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id[e.Destination], opener, e.Destination, closer))
	}

	for _, e := range g.Edges() {
		var labels []string
		if e.Kind == domain.KindScalar {
			labels = append(labels, string(e.Kind))
		}
		if e.Origin.IsLayerReference() {
			labels = append(labels, e.Origin.Token())
		}

		arrow := "-->"
		if len(labels) > 0 {
			arrow = fmt.Sprintf("-- \"%s\" -->", strings.Join(labels, " "))
		}
		if e.Origin.IsLayerReference() {
			arrow = "-.->"
			if len(labels) > 0 {
				arrow = fmt.Sprintf("-. \"%s\" .->", strings.Join(labels, " "))
			}
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", id[e.Source], arrow, id[e.Destination]))
	}

	return sb.String()
}

// Mermaid reserves a handful of words as node IDs.
var mermaidReserved = map[string]bool{
	"end":      true,
	"graph":    true,
	"subgraph": true,
	"style":    true,
	"class":    true,
	"classDef": true,
	"click":    true,
}

// mermaidIDs assigns a node ID to every name in g. Reserved words get
// trailing underscores until they no longer clash with any other name.
func mermaidIDs(g *domain.Graph) map[string]string {
	var names []string
	seen := make(map[string]bool)
	add := func(n string) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	for _, v := range g.Variables() {
		add(v)
	}
	for _, e := range g.Edges() {
		add(e.Destination)
	}

	ids := make(map[string]string, len(names))
	for _, n := range names {
		if !mermaidReserved[n] {
			ids[n] = n
		}
	}
	for _, n := range names {
		if !mermaidReserved[n] {
			continue
		}
		candidate := n + "_"
		for seen[candidate] {
			candidate += "_"
		}
		seen[candidate] = true
		ids[n] = candidate
	}
	return ids
}
