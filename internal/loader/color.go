package loader

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/inkgrid/pbn/diagnostics"
	"github.com/inkgrid/pbn/internal/parsed"
)

var colorAttrs = map[string]bool{"name": true, "char": true}

// parseColor consumes a <color name="..." char="...">RRGGBB</color>
// element. A missing name, a char attribute that is not exactly one
// character, or unparseable hex text are each recorded as their own
// diagnostic without aborting the element.
func (p *parser) parseColor(se xml.StartElement) (parsed.Color, error) {
	p.checkAttrs(se, colorAttrs)

	name, hasName := attrValue(se, "name")
	if !hasName {
		p.addDiag(diagnostics.ColorMissingName)
	}

	var char byte
	hasChar := false
	if raw, ok := attrValue(se, "char"); ok {
		if len(raw) == 1 {
			char = raw[0]
			hasChar = true
		} else {
			p.addDiag(diagnostics.ColorInvalidChar)
		}
	}

	text, err := p.collectText()
	if err != nil {
		return parsed.Color{}, err
	}
	r, g, b, ok := parseHexRGB(text)
	if !ok {
		p.addDiag(diagnostics.ColorInvalidRGB)
	}

	return parsed.Color{
		Name: name, HasName: hasName,
		Char: char, HasChar: hasChar,
		R: r, G: g, B: b,
	}, nil
}

// parseHexRGB accepts the 3- or 6-hex-digit forms; anything else fails.
func parseHexRGB(s string) (r, g, b byte, ok bool) {
	s = strings.TrimSpace(s)
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return byte(v >> 16), byte(v >> 8), byte(v), true
}
