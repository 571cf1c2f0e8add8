package loader

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/inkgrid/pbn/diagnostics"
	"github.com/inkgrid/pbn/internal/store"
)

// parser carries the state threaded through every grammar-production
// method: the token source, source-position tracking, the diagnostic
// sink, and the store being built.
type parser struct {
	dec   *xml.Decoder
	li    *diagnostics.LineIndex
	diags *diagnostics.List
	st    *store.Store
}

// Parse decodes an entire puzzleset document from data, recording
// diagnostics onto diags and returning the resulting Store. A non-nil
// error is fatal: it wraps diagnostics.ErrMalformedXML for malformed XML,
// or is a diagnostics.ErrInvalidPBN error when the document element is
// not <puzzleset>.
func Parse(data []byte, diags *diagnostics.List) (*store.Store, error) {
	p := &parser{
		dec:   xml.NewDecoder(bytes.NewReader(data)),
		li:    diagnostics.NewLineIndex(data),
		diags: diags,
		st:    store.New(),
	}
	return p.parseDocument()
}

// next reads the next token, copying it out of the decoder's internal
// buffer (which it may reuse on the following call) and converting any
// decode failure, including end of input, into a wrapped
// diagnostics.ErrMalformedXML — a well-formed document is always fully
// consumed by the grammar before the decoder runs out of tokens.
func (p *parser) next() (xml.Token, error) {
	tok, err := p.dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", diagnostics.ErrMalformedXML, err)
	}
	return xml.CopyToken(tok), nil
}

func (p *parser) loc() diagnostics.Location {
	return p.li.Locate(p.dec.InputOffset())
}

func (p *parser) addDiag(kind diagnostics.Kind) {
	p.diags.Add(kind, p.loc())
}

// checkAttrs records unrecognized_attribute for every attribute of se
// whose local name is not in allowed. A nil allowed means no attribute is
// recognized.
func (p *parser) checkAttrs(se xml.StartElement, allowed map[string]bool) {
	for _, a := range se.Attr {
		if !allowed[a.Name.Local] {
			p.addDiag(diagnostics.UnrecognizedAttribute)
		}
	}
}

func attrValue(se xml.StartElement, name string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// skipSubtree consumes tokens up to and including the EndElement that
// closes the StartElement just read, discarding everything in between.
func (p *parser) skipSubtree() error {
	depth := 1
	for depth > 0 {
		tok, err := p.next()
		if err != nil {
			return err
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return nil
}

// collectText gathers character data up to the EndElement closing the
// current element, treating any nested element, comment, or processing
// instruction as illegal_content while still consuming it in full.
func (p *parser) collectText() (string, error) {
	var sb strings.Builder
	for {
		tok, err := p.next()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.Comment, xml.ProcInst, xml.Directive:
			p.addDiag(diagnostics.IllegalContent)
		case xml.StartElement:
			p.addDiag(diagnostics.IllegalContent)
			if err := p.skipSubtree(); err != nil {
				return "", err
			}
		case xml.EndElement:
			return sb.String(), nil
		}
	}
}

// leafText reads a no-attribute, text-only element's body.
func (p *parser) leafText(se xml.StartElement) (string, error) {
	p.checkAttrs(se, nil)
	return p.collectText()
}

func isBlank(t xml.CharData) bool {
	return len(strings.TrimSpace(string(t))) == 0
}
