package loader

import (
	"encoding/xml"

	"github.com/inkgrid/pbn/diagnostics"
	"github.com/inkgrid/pbn/internal/parsed"
)

var solutionAttrs = map[string]bool{"type": true, "id": true}

// parseSolution consumes a <solution type="goal"|"solution"|"saved"
// id="...">...</solution> element: exactly one <image> and any number of
// <note> children. A missing type attribute defaults to "goal"; an
// unrecognized value also defaults to "goal", after recording
// solution_invalid_type.
func (p *parser) parseSolution(se xml.StartElement) (parsed.Solution, error) {
	p.checkAttrs(se, solutionAttrs)

	kind := parsed.Goal
	if raw, ok := attrValue(se, "type"); ok {
		switch raw {
		case "goal":
			kind = parsed.Goal
		case "solution":
			kind = parsed.Solved
		case "saved":
			kind = parsed.Saved
		default:
			p.addDiag(diagnostics.SolutionInvalidType)
		}
	}
	id, _ := attrValue(se, "id")

	sol := parsed.Solution{Kind: kind, ID: id}
	imageCount := 0
	for {
		tok, err := p.next()
		if err != nil {
			return parsed.Solution{}, err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			if imageCount == 0 {
				p.addDiag(diagnostics.SolutionMissingImage)
			}
			return sol, nil
		case xml.StartElement:
			switch t.Name.Local {
			case "image":
				imageCount++
				img, err := p.parseImage(t, kind)
				if err != nil {
					return parsed.Solution{}, err
				}
				if imageCount == 1 {
					sol.HasImage = true
					sol.Image = img
				} else {
					p.addDiag(diagnostics.SolutionDuplicateImage)
				}
			case "note":
				text, err := p.leafText(t)
				if err != nil {
					return parsed.Solution{}, err
				}
				sol.Notes = append(sol.Notes, text)
			default:
				p.addDiag(diagnostics.UnrecognizedElement)
				if err := p.skipSubtree(); err != nil {
					return parsed.Solution{}, err
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
