package loader

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/inkgrid/pbn/diagnostics"
	"github.com/inkgrid/pbn/internal/parsed"
)

var cluesAttrs = map[string]bool{"type": true}
var countAttrs = map[string]bool{"color": true}

// parseClues consumes a <clues type="rows"|"columns">...</clues> element
// and returns the parsed block along with the raw type attribute value
// (possibly empty) so the caller can decide which axis, if any, it
// belongs to.
func (p *parser) parseClues(se xml.StartElement) (parsed.ClueBlock, string, error) {
	p.checkAttrs(se, cluesAttrs)
	typeVal, hasType := attrValue(se, "type")
	if !hasType {
		p.addDiag(diagnostics.CluesMissingType)
	} else if typeVal != "rows" && typeVal != "columns" {
		p.addDiag(diagnostics.CluesInvalidType)
	}

	block := parsed.ClueBlock{Present: true}
	for {
		tok, err := p.next()
		if err != nil {
			return parsed.ClueBlock{}, "", err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			return block, typeVal, nil
		case xml.StartElement:
			if t.Name.Local != "line" {
				p.addDiag(diagnostics.UnrecognizedElement)
				if err := p.skipSubtree(); err != nil {
					return parsed.ClueBlock{}, "", err
				}
				continue
			}
			p.checkAttrs(t, nil)
			line, err := p.parseClueLine()
			if err != nil {
				return parsed.ClueBlock{}, "", err
			}
			block.Lines = append(block.Lines, line)
		case xml.CharData:
			if !isBlank(t) {
				p.addDiag(diagnostics.IllegalContent)
			}
		case xml.Comment, xml.ProcInst, xml.Directive:
			p.addDiag(diagnostics.IllegalContent)
		}
	}
}

func (p *parser) parseClueLine() (parsed.ClueLine, error) {
	var line parsed.ClueLine
	for {
		tok, err := p.next()
		if err != nil {
			return parsed.ClueLine{}, err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			return line, nil
		case xml.StartElement:
			if t.Name.Local != "count" {
				p.addDiag(diagnostics.UnrecognizedElement)
				if err := p.skipSubtree(); err != nil {
					return parsed.ClueLine{}, err
				}
				continue
			}
			entry, err := p.parseCount(t)
			if err != nil {
				return parsed.ClueLine{}, err
			}
			line.Entries = append(line.Entries, entry)
		case xml.CharData:
			if !isBlank(t) {
				p.addDiag(diagnostics.IllegalContent)
			}
		case xml.Comment, xml.ProcInst, xml.Directive:
			p.addDiag(diagnostics.IllegalContent)
		}
	}
}

func (p *parser) parseCount(se xml.StartElement) (parsed.ClueEntry, error) {
	p.checkAttrs(se, countAttrs)
	colorName, hasColor := attrValue(se, "color")
	text, err := p.collectText()
	if err != nil {
		return parsed.ClueEntry{}, err
	}
	n, ok := parseClueCount(text)
	if !ok {
		p.addDiag(diagnostics.ClueInvalidCount)
		return parsed.ClueEntry{ColorName: colorName, HasColor: hasColor, Count: 0, Valid: false}, nil
	}
	return parsed.ClueEntry{ColorName: colorName, HasColor: hasColor, Count: n, Valid: true}, nil
}

const maxClueCount = 1<<27 - 1

// parseClueCount requires a positive base-10 integer fitting 27 bits.
func parseClueCount(s string) (uint32, bool) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 || n > maxClueCount {
		return 0, false
	}
	return uint32(n), true
}
