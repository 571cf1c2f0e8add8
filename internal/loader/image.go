package loader

import (
	"encoding/xml"

	"github.com/inkgrid/pbn/diagnostics"
	"github.com/inkgrid/pbn/internal/parsed"
)

// parseImage consumes an <image>...</image> element's text and scans it
// against the row/cell grammar: rows are '|'-delimited, cells are a
// single glyph, a bracketed group of glyphs, or (saved solutions only)
// the wildcard '?'. Structural violations produce image_invalid and an
// Image with Valid false. A well-formed image that still uses '?' or a
// multi-glyph group outside a saved solution produces
// solution_indeterminate_image but is kept.
func (p *parser) parseImage(se xml.StartElement, kind parsed.SolutionKind) (parsed.ImageSpec, error) {
	p.checkAttrs(se, nil)
	text, err := p.collectText()
	if err != nil {
		return parsed.ImageSpec{}, err
	}

	spec, ok := scanImage(text)
	if !ok {
		p.addDiag(diagnostics.ImageInvalid)
		return parsed.ImageSpec{Valid: false}, nil
	}

	if kind != parsed.Saved {
		for _, c := range spec.Cells {
			if c.Wild || len(c.Glyphs) != 1 {
				p.addDiag(diagnostics.SolutionIndeterminateImage)
				break
			}
		}
	}
	return spec, nil
}

func isRowSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// scanImage parses the full row/cell grammar. It reports ok=false for any
// structural violation: an unterminated row, a ragged row width, or no
// rows at all.
func scanImage(text string) (parsed.ImageSpec, bool) {
	i, n := 0, len(text)
	skipSpace := func() {
		for i < n && isRowSpace(text[i]) {
			i++
		}
	}

	var rows [][]parsed.CellSpec
	skipSpace()
	for i < n {
		if text[i] != '|' {
			return parsed.ImageSpec{}, false
		}
		i++
		var row []parsed.CellSpec
		for {
			skipSpace()
			if i >= n {
				return parsed.ImageSpec{}, false
			}
			if text[i] == '|' {
				i++
				break
			}
			cell, next, ok := scanCell(text, i)
			if !ok {
				return parsed.ImageSpec{}, false
			}
			row = append(row, cell)
			i = next
		}
		if len(row) == 0 {
			return parsed.ImageSpec{}, false
		}
		rows = append(rows, row)
		skipSpace()
	}
	if len(rows) == 0 {
		return parsed.ImageSpec{}, false
	}

	cols := len(rows[0])
	cells := make([]parsed.CellSpec, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return parsed.ImageSpec{}, false
		}
		cells = append(cells, row...)
	}
	return parsed.ImageSpec{Rows: len(rows), Cols: cols, Cells: cells, Valid: true}, true
}

func scanCell(text string, i int) (parsed.CellSpec, int, bool) {
	c := text[i]
	switch c {
	case '[':
		j := i + 1
		start := j
		for j < len(text) && text[j] != ']' {
			ch := text[j]
			if isRowSpace(ch) || ch == '?' || ch == '\\' || ch == '/' {
				return parsed.CellSpec{}, 0, false
			}
			j++
		}
		if j >= len(text) || j == start {
			return parsed.CellSpec{}, 0, false
		}
		return parsed.CellSpec{Glyphs: []byte(text[start:j])}, j + 1, true
	case '?':
		return parsed.CellSpec{Wild: true}, i + 1, true
	case '|', ']', '/':
		return parsed.CellSpec{}, 0, false
	default:
		return parsed.CellSpec{Glyphs: []byte{c}}, i + 1, true
	}
}
