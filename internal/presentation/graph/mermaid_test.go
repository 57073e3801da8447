package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/vardeps"
	"github.com/aretw0/vardeps/internal/presentation/graph"
	"github.com/stretchr/testify/require"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		contains []string
	}{
		{
			name: "Section Shapes",
			doc:  "alpha:\n===\n\nbeta:\n---\n",
			contains: []string{
				"alpha((\"alpha\"))",
				"beta[\"beta\"]",
			},
		},
		{
			name: "Leaf Shapes",
			doc:  "alpha:\n===\ngamma constant\nforcing external\nghost [above]\n",
			contains: []string{
				"gamma{{\"gamma\"}}",
				"forcing[/\"forcing\"/]",
				"ghost([\"ghost\"])",
			},
		},
		{
			name: "Edge Styles",
			doc:  "alpha:\n===\nbeta array [above]\ngamma scalar constant\ndelta scalar [below]\neps external\n",
			contains: []string{
				`alpha -. "[above]" .-> beta`,
				`alpha -- "scalar" --> gamma`,
				`alpha -. "scalar [below]" .-> delta`,
				"alpha --> eps",
			},
		},
		{
			name: "Reserved ID",
			doc:  "end:\n===\ngraph constant\n",
			contains: []string{
				"end_((\"end\"))",
				"end_ --> graph_",
			},
		},
		{
			name: "Reserved ID Next To Its Escape",
			doc:  "end:\n===\nend_ [below]\n\nend_:\n---\nk constant\n",
			contains: []string{
				"end__((\"end\"))",
				"end_[\"end_\"]",
				"end__ -. \"[below]\" .-> end_",
				"end_ --> k",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := vardeps.ParseString(tt.doc)
			require.NoError(t, err)

			got := graph.GenerateMermaid(g)
			require.True(t, strings.HasPrefix(got, "graph TD\n"))
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
		})
	}
}

func TestGenerateMermaid_LeafDrawnOnce(t *testing.T) {
	g, err := vardeps.ParseString("a:\n===\nk constant\n\nb:\n---\nk constant\n")
	require.NoError(t, err)

	got := graph.GenerateMermaid(g)
	if n := strings.Count(got, `k{{"k"}}`); n != 1 {
		t.Errorf("expected leaf node once, got %d times:\n%s", n, got)
	}
}
