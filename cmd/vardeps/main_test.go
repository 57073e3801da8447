package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/vardeps/internal/testutils"
	"github.com/aretw0/vardeps/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--color", "never"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestValidate_Valid(t *testing.T) {
	out, _, err := run(t, "validate", "-i", "testdata/soil.deps")
	require.NoError(t, err)
	assert.Equal(t, "✔ testdata/soil.deps is valid: 3 variables, 10 dependencies\n", out)
}

func TestValidate_PositionalArgument(t *testing.T) {
	out, _, err := run(t, "validate", "testdata/soil.deps")
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestValidate_Invalid(t *testing.T) {
	_, _, err := run(t, "validate", "testdata/bad_origin.deps")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDependencyOrigin)
	assert.Contains(t, err.Error(), "line 3")
}

func TestValidate_MissingFile(t *testing.T) {
	_, _, err := run(t, "validate", "testdata/absent.deps")
	assert.ErrorIs(t, err, domain.ErrUnreadableInput)
}

func TestValidate_NoInput(t *testing.T) {
	_, _, err := run(t, "validate")
	assert.ErrorContains(t, err, "no input file")
}

func TestValidate_FindingsWarnUnlessStrict(t *testing.T) {
	out, _, err := run(t, "validate", "testdata/orphan.deps")
	require.NoError(t, err)
	assert.Contains(t, out, "! found 2 problems")
	assert.Contains(t, out, "✔ testdata/orphan.deps is valid")

	_, _, err = run(t, "validate", "--strict", "testdata/orphan.deps")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unreachable section: 'orphan'")
}

func TestGraph_Formats(t *testing.T) {
	out, _, err := run(t, "graph", "testdata/soil.deps")
	require.NoError(t, err)
	assert.Contains(t, out, "graph TD")

	out, _, err = run(t, "graph", "--format", "dot", "testdata/soil.deps")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph dependencies")

	out, _, err = run(t, "graph", "-f", "json", "testdata/soil.deps")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc["variables"], 3)

	_, _, err = run(t, "graph", "-f", "png", "testdata/soil.deps")
	assert.Error(t, err)
}

func TestGraph_OutputFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "soil.yaml")
	out, _, err := run(t, "graph", "-f", "yaml", "-o", dest, "testdata/soil.deps")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "variables:")
}

func TestInspect(t *testing.T) {
	out, _, err := run(t, "inspect", "testdata/orphan.deps")
	require.NoError(t, err)
	assert.Contains(t, out, "roots:       alpha\n")
	assert.Contains(t, out, "unreachable: orphan\n")
	assert.Contains(t, out, "  alpha -> ghost [below] (line 3)\n")
	assert.Contains(t, out, "cycles:      0\n")
}

func TestShow_PlainWhenNotTerminal(t *testing.T) {
	out, _, err := run(t, "show", "testdata/soil.deps")
	require.NoError(t, err)
	assert.Contains(t, out, "# soil.deps")
	assert.Contains(t, out, "## t_so (root)")
}

func TestFmt_Stdout(t *testing.T) {
	out, _, err := run(t, "fmt", "testdata/soil.deps")
	require.NoError(t, err)
	assert.Contains(t, out, "t_so:\n====================\nt_so [above]\n")
	assert.Contains(t, out, "w_so [above]\nheat_cap scalar constant\n")
	assert.NotContains(t, out, "array")
}

func TestFmt_Write(t *testing.T) {
	path := testutils.WriteDocument(t, "messy.deps", "alpha:\n=\n  beta   array   constant  \n\n\n")
	out, _, err := run(t, "fmt", "-w", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "alpha:\n====================\nbeta constant\n", string(data))
}

func TestVerbosityLogsToStderr(t *testing.T) {
	_, stderr, err := run(t, "-vv", "validate", "testdata/soil.deps")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Section committed")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "vardeps version dev\n", out)
}
