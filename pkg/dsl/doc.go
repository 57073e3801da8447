/*
Package dsl provides a Go DSL for programmatically constructing vardeps dependency documents.

It lets callers describe sections and their dependencies with a fluent builder instead of
writing the text format by hand, and either assemble the graph directly or render the
equivalent document text. This is particularly useful for generating model descriptions
and for tests.

Example usage:

	b := dsl.New()

	b.Root("t_so").
		Above("t_so").
		Below("t_so").
		Constant("heat_cap").Scalar().
		External("surface_flux")

	b.Regular("w_so").
		Below("w_so_ice")

	g, err := b.Build()       // *domain.Graph
	text := b.Document()      // the same document in the plain-text format
*/
package dsl
