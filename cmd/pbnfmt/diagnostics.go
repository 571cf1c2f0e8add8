package main

import (
	"fmt"
	"os"

	"github.com/inkgrid/pbn/diagnostics"
)

// printDiagnostics writes one line per recorded diagnostic to stderr in
// "kind at line:col" form.
func printDiagnostics(diags *diagnostics.List) {
	for _, d := range diags.All() {
		fmt.Fprintf(os.Stderr, "%s at %d:%d\n", d.Kind, d.Location.Line, d.Location.Column)
	}
}
