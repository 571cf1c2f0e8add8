package pbn

import (
	"io"

	"github.com/inkgrid/pbn/internal/render"
)

// Render writes ps as canonical puzzleset XML.
func Render(ps *PuzzleSet, w io.Writer) error {
	return render.Render(ps.st, w)
}
