package inspect_test

import (
	"testing"

	"github.com/aretw0/vardeps"
	"github.com/aretw0/vardeps/internal/inspect"
	"github.com/aretw0/vardeps/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, doc string) *domain.Graph {
	t.Helper()
	g, err := vardeps.ParseString(doc)
	require.NoError(t, err)
	return g
}

func TestInspect_CleanGraph(t *testing.T) {
	g := mustParse(t, `alpha:
===
beta array [above]
gamma constant

beta:
---
external_input external
`)

	r := inspect.Inspect(g)
	assert.Equal(t, []string{"alpha"}, r.Roots)
	assert.Empty(t, r.Unreachable)
	assert.Empty(t, r.Dangling)
	assert.Empty(t, r.Cycles)
	assert.Equal(t, []string{"external_input", "gamma"}, r.Leaves)
	assert.False(t, r.HasFindings())
	assert.NoError(t, r.Err())
}

func TestInspect_UnreachableAndDangling(t *testing.T) {
	g := mustParse(t, `alpha:
===
ghost [below]

orphan:
---
alpha scalar constant
`)

	r := inspect.Inspect(g)
	assert.Equal(t, []string{"orphan"}, r.Unreachable)
	require.Len(t, r.Dangling, 1)
	assert.Equal(t, "ghost", r.Dangling[0].Destination)
	assert.True(t, r.HasFindings())

	err := r.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unreachable section: 'orphan'")
	assert.Contains(t, err.Error(), "Dangling reference: 'alpha' -> 'ghost' [below] (line 3)")
}

func TestInspect_Cycles(t *testing.T) {
	g := mustParse(t, `t_so:
===
t_so [above]
w_so [below]

w_so:
---
t_so [above]

w_so_ice:
---
w_so constant
`)

	r := inspect.Inspect(g)
	assert.Equal(t, [][]string{{"t_so", "w_so"}}, r.Cycles)
	assert.Equal(t, []string{"w_so_ice"}, r.Unreachable)
	assert.NoError(t, inspect.Report{Cycles: r.Cycles}.Err(), "cycles alone are not problems")
}

func TestInspect_SelfReference(t *testing.T) {
	g := mustParse(t, "t_so:\n===\nt_so [above]\nt_so [below]\n")
	r := inspect.Inspect(g)
	assert.Equal(t, [][]string{{"t_so"}}, r.Cycles)
}

func TestInspect_NoRoots(t *testing.T) {
	g := mustParse(t, "a:\n---\nb constant\n\nb:\n---\n")
	r := inspect.Inspect(g)
	assert.Empty(t, r.Roots)
	assert.Equal(t, []string{"a", "b"}, r.Unreachable)
}
