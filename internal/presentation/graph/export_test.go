package graph_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/vardeps"
	"github.com/aretw0/vardeps/internal/presentation/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const scenario = `alpha:
===
beta array [above]
gamma constant

beta:
---
external_input external
`

type exported struct {
	Variables []string `json:"variables" yaml:"variables"`
	Sections  []struct {
		Target string `json:"target" yaml:"target"`
		Kind   string `json:"kind" yaml:"kind"`
	} `json:"sections" yaml:"sections"`
	Edges []struct {
		Source      string `json:"source" yaml:"source"`
		Destination string `json:"destination" yaml:"destination"`
		Kind        string `json:"kind" yaml:"kind"`
		Origin      string `json:"origin" yaml:"origin"`
	} `json:"edges" yaml:"edges"`
}

func checkExported(t *testing.T, doc exported) {
	t.Helper()
	assert.Equal(t, []string{"alpha", "beta"}, doc.Variables)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "root", doc.Sections[0].Kind)
	assert.Equal(t, "regular", doc.Sections[1].Kind)
	require.Len(t, doc.Edges, 3)
	assert.Equal(t, "above", doc.Edges[0].Origin)
	assert.Equal(t, "external_input", doc.Edges[2].Destination)
}

func TestExport_JSON(t *testing.T) {
	g, err := vardeps.ParseString(scenario)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graph.Export(&buf, g, graph.FormatJSON))

	var doc exported
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	checkExported(t, doc)
}

func TestExport_YAML(t *testing.T) {
	g, err := vardeps.ParseString(scenario)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graph.Export(&buf, g, graph.FormatYAML))

	var doc exported
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	checkExported(t, doc)
}

func TestExport_EmptyGraphJSON(t *testing.T) {
	g, err := vardeps.ParseString("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graph.Export(&buf, g, graph.FormatJSON))
	assert.JSONEq(t, `{"variables":[],"sections":[],"edges":[]}`, buf.String())
}

func TestExport_DOT(t *testing.T) {
	g, err := vardeps.ParseString(scenario)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graph.Export(&buf, g, graph.FormatDOT))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph dependencies {"))
	assert.Contains(t, out, `"alpha" [shape=doublecircle];`)
	assert.Contains(t, out, `"beta" [shape=box];`)
	assert.Contains(t, out, `"alpha" -> "beta" [label="array [above]", style=dashed];`)
	assert.Contains(t, out, `"alpha" -> "gamma" [label="array constant"];`)
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"mermaid", "DOT", " json ", "yaml", "yml"} {
		_, err := graph.ParseFormat(name)
		assert.NoError(t, err, name)
	}
	_, err := graph.ParseFormat("png")
	assert.Error(t, err)

	assert.Error(t, graph.Export(&bytes.Buffer{}, nil, graph.Format("png")))
}
