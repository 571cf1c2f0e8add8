package loader

import (
	"encoding/xml"

	"github.com/inkgrid/pbn/diagnostics"
	"github.com/inkgrid/pbn/internal/store"
)

// parseDocument scans the prolog for the document element and hands off
// to parseRoot once it is found.
func (p *parser) parseDocument() (*store.Store, error) {
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "puzzleset" {
				p.addDiag(diagnostics.UnrecognizedElement)
				return nil, diagnostics.NewInvalidPBN(p.diags)
			}
			return p.parseRoot(t)
		case xml.CharData:
			if !isBlank(t) {
				p.addDiag(diagnostics.IllegalContent)
			}
		}
	}
}

// parseRoot consumes the <puzzleset> element: set-wide metadata, zero or
// more <puzzle> children, and zero or more <note> children. It reserves
// index 0 in the store's puzzle arena for the synthetic root record.
func (p *parser) parseRoot(se xml.StartElement) (*store.Store, error) {
	p.checkAttrs(se, nil)
	rootIdx := p.st.AppendPuzzle(store.PuzzleRecord{})

	var noteWords []uint32
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			p.st.Puzzles[rootIdx].Notes = p.st.PushWords(noteWords)
			return p.st, nil
		case xml.StartElement:
			switch t.Name.Local {
			case "source":
				text, err := p.leafText(t)
				if err != nil {
					return nil, err
				}
				p.st.Puzzles[rootIdx].Source = p.st.InternText(text)
			case "title":
				text, err := p.leafText(t)
				if err != nil {
					return nil, err
				}
				p.st.Puzzles[rootIdx].Title = p.st.InternText(text)
			case "author":
				text, err := p.leafText(t)
				if err != nil {
					return nil, err
				}
				p.st.Puzzles[rootIdx].Author = p.st.InternText(text)
			case "authorid":
				text, err := p.leafText(t)
				if err != nil {
					return nil, err
				}
				p.st.Puzzles[rootIdx].AuthorID = p.st.InternText(text)
			case "copyright":
				text, err := p.leafText(t)
				if err != nil {
					return nil, err
				}
				p.st.Puzzles[rootIdx].Copyright = p.st.InternText(text)
			case "note":
				text, err := p.leafText(t)
				if err != nil {
					return nil, err
				}
				noteWords = append(noteWords, uint32(p.st.InternText(text)))
			case "puzzle":
				if err := p.parsePuzzle(t); err != nil {
					return nil, err
				}
			default:
				p.addDiag(diagnostics.UnrecognizedElement)
				if err := p.skipSubtree(); err != nil {
					return nil, err
				}
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
