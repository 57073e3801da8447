package domain

import "encoding/json"

// graphDocument is the exported shape of a Graph.
type graphDocument struct {
	Variables []string  `json:"variables" yaml:"variables"`
	Sections  []Section `json:"sections" yaml:"sections"`
	Edges     []Edge    `json:"edges" yaml:"edges"`
}

func (g *Graph) document() graphDocument {
	doc := graphDocument{
		Variables: g.Variables(),
		Sections:  g.Sections(),
		Edges:     g.Edges(),
	}
	for i := range doc.Sections {
		if doc.Sections[i].Declarations == nil {
			doc.Sections[i].Declarations = []Declaration{}
		}
	}
	if doc.Edges == nil {
		doc.Edges = []Edge{}
	}
	return doc
}

// MarshalJSON serializes the graph as its variables, sections and edges.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.document())
}

// MarshalYAML implements yaml.Marshaler with the same shape as MarshalJSON.
func (g *Graph) MarshalYAML() (any, error) {
	return g.document(), nil
}
