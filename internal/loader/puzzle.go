package loader

import (
	"encoding/xml"

	"github.com/inkgrid/pbn/diagnostics"
	"github.com/inkgrid/pbn/internal/normalize"
	"github.com/inkgrid/pbn/internal/parsed"
)

var puzzleAttrs = map[string]bool{"type": true, "defaultcolor": true, "backgroundcolor": true}

// parsePuzzle consumes a <puzzle> element in full — regardless of whether
// its type attribute is supported — so that diagnostics anywhere in its
// subtree are still surfaced, then hands the assembled parsed.Puzzle to
// the normalizer. A puzzle whose type is not "grid", or that the
// normalizer otherwise rejects, is dropped without affecting its
// siblings.
func (p *parser) parsePuzzle(se xml.StartElement) error {
	p.checkAttrs(se, puzzleAttrs)

	pz := &parsed.Puzzle{}
	pz.TypeAttrValue, pz.TypeAttrPresent = attrValue(se, "type")
	pz.DefaultColorName, _ = attrValue(se, "defaultcolor")
	pz.BackgroundColorName, _ = attrValue(se, "backgroundcolor")

	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			return p.commitPuzzle(pz)
		case xml.StartElement:
			if err := p.dispatchPuzzleChild(t, pz); err != nil {
				return err
			}
		case xml.CharData:
			if !isBlank(t) {
				p.addDiag(diagnostics.IllegalContent)
			}
		case xml.Comment, xml.ProcInst, xml.Directive:
			p.addDiag(diagnostics.IllegalContent)
		}
	}
}

func (p *parser) dispatchPuzzleChild(t xml.StartElement, pz *parsed.Puzzle) error {
	switch t.Name.Local {
	case "source":
		text, err := p.leafText(t)
		if err != nil {
			return err
		}
		pz.Source = text
	case "id":
		text, err := p.leafText(t)
		if err != nil {
			return err
		}
		pz.ID = text
	case "title":
		text, err := p.leafText(t)
		if err != nil {
			return err
		}
		pz.Title = text
	case "author":
		text, err := p.leafText(t)
		if err != nil {
			return err
		}
		pz.Author = text
	case "authorid":
		text, err := p.leafText(t)
		if err != nil {
			return err
		}
		pz.AuthorID = text
	case "copyright":
		text, err := p.leafText(t)
		if err != nil {
			return err
		}
		pz.Copyright = text
	case "description":
		text, err := p.leafText(t)
		if err != nil {
			return err
		}
		pz.Description = text
	case "note":
		text, err := p.leafText(t)
		if err != nil {
			return err
		}
		pz.Notes = append(pz.Notes, text)
	case "color":
		c, err := p.parseColor(t)
		if err != nil {
			return err
		}
		pz.Colors = append(pz.Colors, c)
	case "clues":
		block, typeVal, err := p.parseClues(t)
		if err != nil {
			return err
		}
		switch typeVal {
		case "rows":
			if pz.RowClues.Present {
				p.addDiag(diagnostics.CluesDuplicate)
			} else {
				pz.RowClues = block
			}
		case "columns":
			if pz.ColumnClues.Present {
				p.addDiag(diagnostics.CluesDuplicate)
			} else {
				pz.ColumnClues = block
			}
		default:
			// clues_missing_type or clues_invalid_type already recorded;
			// the block can't be attributed to either axis.
		}
	case "solution":
		sol, err := p.parseSolution(t)
		if err != nil {
			return err
		}
		pz.Solutions = append(pz.Solutions, sol)
	default:
		p.addDiag(diagnostics.UnrecognizedElement)
		return p.skipSubtree()
	}
	return nil
}

// commitPuzzle hands the fully-parsed puzzle to the normalizer and
// appends the result unless the puzzle's type is unsupported or the
// normalizer dropped it.
func (p *parser) commitPuzzle(pz *parsed.Puzzle) error {
	if pz.TypeAttrPresent && pz.TypeAttrValue != "grid" {
		p.addDiag(diagnostics.PuzzleTypeUnsupported)
		return nil
	}
	rec, ok := normalize.NormalizePuzzle(p.st, p.diags, p.loc(), pz)
	if ok {
		p.st.AppendPuzzle(rec)
	}
	return nil
}
