/*
Package vardeps parses dependency files describing the state variables of a layered
numerical simulation model (soil or atmosphere levels, for instance) into a validated,
read-only dependency graph.

# Format

A document is a sequence of sections separated by blank lines. Each section names a
target variable, is underlined with '=' (root quantity) or '-' (intermediate quantity),
and lists one dependency per line:

	t_so:
	====================
	t_so [above]
	heat_cap scalar constant
	surface_flux external

	w_so:
	--------------------
	w_so_ice array [below]

A dependency line is "<name> [array|scalar] <origin>", where the kind defaults to array
and the origin is one of [above], [below], constant or external.

# Usage

	g, err := vardeps.ParseFile("model.deps")
	if err != nil {
		var lineErr *domain.LineError
		if errors.As(err, &lineErr) {
			log.Fatalf("line %d: %v", lineErr.Line, err)
		}
		log.Fatal(err)
	}
	for _, e := range g.Edges() {
		fmt.Println(e.Source, "->", e.Destination, e.Kind, e.Origin)
	}

Parsing is all-or-nothing: the first malformed line, invalid kind or origin token, or
duplicated target aborts the parse. Dependencies on names that never get a section of
their own are valid; the graph does not resolve them. A returned Graph is never mutated
and may be shared between goroutines.
*/
package vardeps
