// Package render emits a *store.Store as canonical puzzleset XML: a
// fixed element and attribute order, two-space indentation, and one
// deterministic textual form per cell so that rendering a document twice
// in a row produces byte-identical output.
package render
