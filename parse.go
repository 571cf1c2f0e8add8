package pbn

import (
	"io"

	"github.com/inkgrid/pbn/diagnostics"
	"github.com/inkgrid/pbn/internal/loader"
)

// Parse reads a complete puzzleset document from data. On success it
// returns a usable PuzzleSet with a nil error. If the XML itself was
// malformed (wrapping diagnostics.ErrMalformedXML) or any diagnostic was
// recorded (wrapping diagnostics.ErrInvalidPBN), the partially-built
// PuzzleSet is discarded and Parse returns a nil *PuzzleSet alongside the
// full list of diagnostics found and the error.
func Parse(data []byte) (*PuzzleSet, *diagnostics.List, error) {
	diags := &diagnostics.List{}
	st, err := loader.Parse(data, diags)
	if err != nil {
		return nil, diags, err
	}
	if diags.Any() {
		return nil, diags, diagnostics.NewInvalidPBN(diags)
	}
	return &PuzzleSet{st: st}, diags, nil
}

// ParseStream reads a complete puzzleset document from r. The document is
// buffered into memory before parsing so that diagnostic locations can be
// computed precisely; io failures are reported wrapping
// diagnostics.ErrIO.
func ParseStream(r io.Reader) (*PuzzleSet, *diagnostics.List, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &diagnostics.List{}, wrapIOError(err)
	}
	return Parse(data)
}

func wrapIOError(err error) error {
	return &ioError{cause: err}
}

type ioError struct {
	cause error
}

func (e *ioError) Error() string {
	return "pbn: " + e.cause.Error()
}

func (e *ioError) Unwrap() []error {
	return []error{diagnostics.ErrIO, e.cause}
}
