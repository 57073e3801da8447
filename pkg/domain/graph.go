package domain

// Edge is one declaration attached to the section that declared it.
// Source is always a declared target; Destination need not be.
type Edge struct {
	Source      string         `json:"source" yaml:"source"`
	Destination string         `json:"destination" yaml:"destination"`
	Kind        DependencyKind `json:"kind" yaml:"kind"`
	Origin      Origin         `json:"origin" yaml:"origin"`
	Line        int            `json:"line" yaml:"line"`
}

// Graph is the assembled dependency graph.
// A Graph returned by Assembler.Finalize is never mutated again and may be
// shared freely between goroutines; every accessor returns a copy.
type Graph struct {
	sections []Section
	index    map[string]int
	edges    []Edge
}

func newGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}

// Variables returns the declared targets in document order.
func (g *Graph) Variables() []string {
	out := make([]string, len(g.sections))
	for i, s := range g.sections {
		out[i] = s.Target
	}
	return out
}

// HasVariable reports whether name is a declared target.
func (g *Graph) HasVariable(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Section returns the section declaring name.
func (g *Graph) Section(name string) (Section, bool) {
	i, ok := g.index[name]
	if !ok {
		return Section{}, false
	}
	return g.sections[i].clone(), true
}

// Sections returns every section in document order.
func (g *Graph) Sections() []Section {
	out := make([]Section, len(g.sections))
	for i, s := range g.sections {
		out[i] = s.clone()
	}
	return out
}

// Roots returns the targets of Root sections in document order.
func (g *Graph) Roots() []string {
	var out []string
	for _, s := range g.sections {
		if s.IsRoot() {
			out = append(out, s.Target)
		}
	}
	return out
}

// Edges returns the edge multiset in document order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// EdgesFrom returns the edges whose source is name, in declaration order.
func (g *Graph) EdgesFrom(name string) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.Source == name {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of declared targets.
func (g *Graph) Len() int { return len(g.sections) }

// EdgeCount returns the number of edges, duplicates included.
func (g *Graph) EdgeCount() int { return len(g.edges) }
