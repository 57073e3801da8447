package domain

// Assembler merges finalized sections into a single Graph.
// It performs no cycle detection and no reachability analysis: layer
// references may legitimately form cycles between sections.
type Assembler struct {
	graph     *Graph
	finalized bool
}

// NewAssembler returns an assembler holding an empty graph.
func NewAssembler() *Assembler {
	return &Assembler{graph: newGraph()}
}

// Commit registers the section's target and appends one edge per declaration.
// Nothing is recorded when the target is already declared or when any name
// is not an identifier.
func (a *Assembler) Commit(s Section) error {
	if a.finalized {
		return ErrAssemblerFinalized
	}
	if !IsIdentifier(s.Target) {
		return &InvalidIdentifierError{Name: s.Target, Target: s.Target, Line: s.Line}
	}
	for _, d := range s.Declarations {
		if !IsIdentifier(d.Name) {
			return &InvalidIdentifierError{Name: d.Name, Target: s.Target, Line: d.Line}
		}
	}
	g := a.graph
	if i, ok := g.index[s.Target]; ok {
		return &DuplicateTargetError{
			Target:    s.Target,
			Line:      s.Line,
			FirstLine: g.sections[i].Line,
		}
	}

	g.index[s.Target] = len(g.sections)
	g.sections = append(g.sections, s.clone())
	for _, d := range s.Declarations {
		g.edges = append(g.edges, Edge{
			Source:      s.Target,
			Destination: d.Name,
			Kind:        d.Kind,
			Origin:      d.Origin,
			Line:        d.Line,
		})
	}
	return nil
}

// Finalize returns the completed graph. Later commits fail with ErrAssemblerFinalized.
func (a *Assembler) Finalize() *Graph {
	a.finalized = true
	return a.graph
}
