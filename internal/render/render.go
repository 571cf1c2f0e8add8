package render

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math/bits"
	"strings"

	"github.com/inkgrid/pbn/internal/store"
)

// Render writes st as canonical puzzleset XML, preceded by an XML
// declaration. defaultcolor and backgroundcolor are only written when
// they differ from the implicit black/white defaults, per spec.md §4.5;
// a count element carries a color attribute only when its clue color is
// not the default color (index 1).
func Render(st *store.Store, w io.Writer) error {
	bw := bufio.NewWriter(w)
	e := &encoder{st: st, w: bw}
	e.writeRoot()
	if e.err != nil {
		return e.err
	}
	return bw.Flush()
}

type encoder struct {
	st  *store.Store
	w   *bufio.Writer
	err error
}

func escapeString(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func (e *encoder) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *encoder) indent(depth int) {
	if e.err != nil {
		return
	}
	for i := 0; i < depth; i++ {
		if _, e.err = e.w.WriteString("  "); e.err != nil {
			return
		}
	}
}

// leaf emits a simple <name>escaped-value</name> element, or nothing at
// all when value is empty — puzzleset and puzzle metadata fields are all
// optional and their absence round-trips as an empty string.
func (e *encoder) leaf(depth int, name, value string) {
	if value == "" {
		return
	}
	e.indent(depth)
	e.printf("<%s>%s</%s>\n", name, escapeString(value), name)
}

func (e *encoder) writeRoot() {
	root := &e.st.Puzzles[0]
	e.printf("<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n")
	e.printf("<puzzleset>\n")
	e.leaf(1, "source", e.st.ResolveString(root.Source))
	e.leaf(1, "title", e.st.ResolveString(root.Title))
	e.leaf(1, "author", e.st.ResolveString(root.Author))
	e.leaf(1, "authorid", e.st.ResolveString(root.AuthorID))
	e.leaf(1, "copyright", e.st.ResolveString(root.Copyright))
	for i := 1; i < len(e.st.Puzzles); i++ {
		e.writePuzzle(i)
	}
	for i := 0; i < e.st.SliceLen(root.Notes); i++ {
		idx := store.StringIndex(e.st.SliceWord(root.Notes, i))
		e.leaf(1, "note", e.st.ResolveString(idx))
	}
	e.printf("</puzzleset>\n")
}

func (e *encoder) paletteName(rec *store.PuzzleRecord, i int) string {
	c := e.st.Colors[int(rec.ColorsStart)+i]
	return e.st.ResolveString(c.Name)
}

func (e *encoder) glyph(rec *store.PuzzleRecord, i int) byte {
	return e.st.Colors[int(rec.ColorsStart)+i].Char
}

func (e *encoder) writePuzzle(i int) {
	rec := &e.st.Puzzles[i]
	e.indent(1)
	e.printf("<puzzle type=\"grid\"")
	if def := e.paletteName(rec, 1); def != "black" {
		e.printf(" defaultcolor=\"%s\"", escapeString(def))
	}
	if bg := e.paletteName(rec, 0); bg != "white" {
		e.printf(" backgroundcolor=\"%s\"", escapeString(bg))
	}
	e.printf(">\n")

	e.leaf(2, "source", e.st.ResolveString(rec.Source))
	e.leaf(2, "id", e.st.ResolveString(rec.ID))
	e.leaf(2, "title", e.st.ResolveString(rec.Title))
	e.leaf(2, "author", e.st.ResolveString(rec.Author))
	e.leaf(2, "authorid", e.st.ResolveString(rec.AuthorID))
	e.leaf(2, "copyright", e.st.ResolveString(rec.Copyright))
	e.leaf(2, "description", e.st.ResolveString(rec.Description))

	for k := 0; k < int(rec.ColorsLen); k++ {
		e.writeColor(rec, k)
	}
	e.writeClues(rec, "rows", rec.RowCluesStart, rec.RowCluesLen)
	e.writeClues(rec, "columns", rec.ColCluesStart, rec.ColCluesLen)

	for k := 0; k < int(rec.GoalsLen); k++ {
		e.writeSolution(rec, "goal", rec.GoalsStart, k)
	}
	for k := 0; k < int(rec.SolvedLen); k++ {
		e.writeSolution(rec, "solution", rec.SolvedStart, k)
	}
	for k := 0; k < int(rec.SavedLen); k++ {
		e.writeSolution(rec, "saved", rec.SavedStart, k)
	}

	for k := 0; k < e.st.SliceLen(rec.Notes); k++ {
		idx := store.StringIndex(e.st.SliceWord(rec.Notes, k))
		e.leaf(2, "note", e.st.ResolveString(idx))
	}

	e.indent(1)
	e.printf("</puzzle>\n")
}

func (e *encoder) writeColor(rec *store.PuzzleRecord, k int) {
	c := e.st.Colors[int(rec.ColorsStart)+k]
	e.indent(2)
	e.printf("<color name=\"%s\" char=\"%s\">%02X%02X%02X</color>\n",
		escapeString(e.st.ResolveString(c.Name)), escapeString(string(rune(c.Char))), c.R, c.G, c.B)
}

func (e *encoder) writeClues(rec *store.PuzzleRecord, kind string, start, length int32) {
	e.indent(2)
	e.printf("<clues type=\"%s\">\n", kind)
	for i := 0; i < int(length); i++ {
		line := e.st.ClueLines[int(start)+i]
		e.indent(3)
		e.printf("<line>\n")
		for k := 0; k < e.st.SliceLen(line.Clues); k++ {
			c := store.DecodeClue(e.st.SliceWord(line.Clues, k))
			e.indent(4)
			e.printf("<count")
			if c.Color != 1 {
				e.printf(" color=\"%s\"", escapeString(e.paletteName(rec, int(c.Color))))
			}
			e.printf(">%d</count>\n", c.Count)
		}
		e.indent(3)
		e.printf("</line>\n")
	}
	e.indent(2)
	e.printf("</clues>\n")
}

func (e *encoder) writeSolution(rec *store.PuzzleRecord, kind string, start int32, k int) {
	sol := e.st.Solutions[int(start)+k]
	e.indent(2)
	e.printf("<solution")
	if kind != "goal" {
		e.printf(" type=\"%s\"", kind)
	}
	if id := e.st.ResolveString(sol.ID); id != "" {
		e.printf(" id=\"%s\"", escapeString(id))
	}
	e.printf(">\n")
	e.writeImage(rec, sol, kind == "saved")
	for i := 0; i < e.st.SliceLen(sol.Notes); i++ {
		idx := store.StringIndex(e.st.SliceWord(sol.Notes, i))
		e.leaf(3, "note", e.st.ResolveString(idx))
	}
	e.indent(2)
	e.printf("</solution>\n")
}

func (e *encoder) writeImage(rec *store.PuzzleRecord, sol store.SolutionRecord, saved bool) {
	rows, cols := int(rec.Rows), int(rec.Columns)
	nColors := int(rec.ColorsLen)
	e.indent(3)
	e.printf("<image>")
	for r := 0; r < rows; r++ {
		e.printf("\n|")
		for c := 0; c < cols; c++ {
			mask := e.st.SliceWord(sol.Image, r*cols+c)
			e.printf("%s", e.cellText(rec, mask, nColors, saved))
		}
		e.printf("|")
	}
	e.printf("\n</image>\n")
}

func (e *encoder) cellText(rec *store.PuzzleRecord, mask uint32, nColors int, saved bool) string {
	if n := bits.OnesCount32(mask); n == 1 {
		return string(e.glyph(rec, bits.TrailingZeros32(mask)))
	} else if saved && (n == 0 || n == nColors) {
		return "?"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for idx := 0; idx < nColors; idx++ {
		if mask&(1<<uint(idx)) != 0 {
			sb.WriteByte(e.glyph(rec, idx))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
