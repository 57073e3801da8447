package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/vardeps/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Format names a textual export of a graph.
type Format string

const (
	FormatMermaid Format = "mermaid"
	FormatDOT     Format = "dot"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

// Formats lists every supported export format.
var Formats = []Format{FormatMermaid, FormatDOT, FormatJSON, FormatYAML}

// ParseFormat resolves a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "yml" {
		return FormatYAML, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of mermaid, dot, json, yaml)", s)
}

// Export writes g to w in the given format.
func Export(w io.Writer, g *domain.Graph, format Format) error {
	switch format {
	case FormatMermaid:
		_, err := io.WriteString(w, GenerateMermaid(g))
		return err
	case FormatDOT:
		_, err := io.WriteString(w, GenerateDOT(g))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}
