// Package inspect reports structural facts about a parsed dependency graph
// that the parser deliberately leaves to downstream consumers: which sections
// cannot be reached from a root, which layer references name a variable that
// has no section, and which declared variables depend on each other in a cycle.
//
// None of these findings make a document invalid.
package inspect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/vardeps/pkg/domain"
)

// Report is the result of Inspect.
type Report struct {
	Roots []string `json:"roots" yaml:"roots"`

	// Unreachable lists sections no root reaches through declared edges.
	Unreachable []string `json:"unreachable" yaml:"unreachable"`

	// Dangling lists [above]/[below] edges whose destination has no section.
	// constant and external dependencies are expected to have none.
	Dangling []domain.Edge `json:"dangling" yaml:"dangling"`

	// Cycles lists strongly connected groups of declared variables, including
	// variables that reference themselves across layers.
	Cycles [][]string `json:"cycles" yaml:"cycles"`

	// Leaves lists undeclared destination names, sorted and de-duplicated.
	Leaves []string `json:"leaves" yaml:"leaves"`
}

// HasFindings reports whether anything beyond roots and leaves was found.
func (r Report) HasFindings() bool {
	return len(r.Unreachable) > 0 || len(r.Dangling) > 0
}

// Err returns the findings as a single error, or nil.
// Cycles are not findings: layered models routinely contain them.
func (r Report) Err() error {
	if !r.HasFindings() {
		return nil
	}
	var problems []string
	for _, name := range r.Unreachable {
		problems = append(problems, fmt.Sprintf("Unreachable section: '%s'", name))
	}
	for _, e := range r.Dangling {
		problems = append(problems, fmt.Sprintf("Dangling reference: '%s' -> '%s' %s (line %d)",
			e.Source, e.Destination, e.Origin.Token(), e.Line))
	}
	return fmt.Errorf("found %d problems:\n- %s", len(problems), strings.Join(problems, "\n- "))
}

// Inspect crawls g from its root sections.
func Inspect(g *domain.Graph) Report {
	r := Report{
		Roots:       g.Roots(),
		Unreachable: []string{},
		Dangling:    []domain.Edge{},
		Cycles:      [][]string{},
		Leaves:      []string{},
	}
	if r.Roots == nil {
		r.Roots = []string{}
	}

	// Crawler
	visited := make(map[string]bool)
	queue := append([]string(nil), r.Roots...)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, e := range g.EdgesFrom(current) {
			if g.HasVariable(e.Destination) && !visited[e.Destination] {
				queue = append(queue, e.Destination)
			}
		}
	}

	for _, name := range g.Variables() {
		if !visited[name] {
			r.Unreachable = append(r.Unreachable, name)
		}
	}

	leaves := make(map[string]bool)
	for _, e := range g.Edges() {
		if g.HasVariable(e.Destination) {
			continue
		}
		leaves[e.Destination] = true
		if e.Origin.IsLayerReference() {
			r.Dangling = append(r.Dangling, e)
		}
	}
	for name := range leaves {
		r.Leaves = append(r.Leaves, name)
	}
	sort.Strings(r.Leaves)

	r.Cycles = cycles(g)
	return r
}

// cycles runs Tarjan's algorithm over the declared variables in document
// order, so the output is deterministic.
func cycles(g *domain.Graph) [][]string {
	var (
		index   = make(map[string]int)
		low     = make(map[string]int)
		onStack = make(map[string]bool)
		stack   []string
		next    int
		out     = [][]string{}
	)

	var strongConnect func(v string)
	strongConnect = func(v string) {
		index[v] = next
		low[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true

		selfLoop := false
		for _, e := range g.EdgesFrom(v) {
			w := e.Destination
			if !g.HasVariable(w) {
				continue
			}
			if w == v {
				selfLoop = true
			}
			if _, seen := index[w]; !seen {
				strongConnect(w)
				low[v] = min(low[v], low[w])
			} else if onStack[w] {
				low[v] = min(low[v], index[w])
			}
		}

		if low[v] != index[v] {
			return
		}
		var component []string
		for {
			w := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			onStack[w] = false
			component = append(component, w)
			if w == v {
				break
			}
		}
		if len(component) > 1 || selfLoop {
			sort.Strings(component)
			out = append(out, component)
		}
	}

	for _, v := range g.Variables() {
		if _, seen := index[v]; !seen {
			strongConnect(v)
		}
	}
	return out
}
