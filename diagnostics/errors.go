package diagnostics

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two fatal-error surfaces of spec §7. As with the
// teacher's error policy, these are never wrapped with a formatted string
// at the definition site — callers branch with errors.Is, and context is
// attached with %w at the call site.
var (
	// ErrMalformedXML indicates the underlying tokenizer could not make
	// sense of the input; parsing stops immediately.
	ErrMalformedXML = errors.New("diagnostics: malformed xml")

	// ErrIO indicates a read failure from the source reader, distinct
	// from a tokenizer-level malformed-XML error.
	ErrIO = errors.New("diagnostics: i/o error")

	// ErrInvalidPBN indicates parsing reached end of document but one or
	// more diagnostics were recorded along the way. The library's
	// contract is all-or-nothing validity: any diagnostic fails the
	// whole call, even though the partially-built result may otherwise
	// look usable.
	ErrInvalidPBN = errors.New("diagnostics: invalid pbn document")
)

// InvalidPBNError pairs ErrInvalidPBN with the diagnostics collected
// during the failed parse, so callers can report every problem at once
// instead of only the first.
type InvalidPBNError struct {
	List *List
}

func (e *InvalidPBNError) Error() string {
	return fmt.Sprintf("diagnostics: invalid pbn document (%d diagnostic(s))", e.List.Len())
}

func (e *InvalidPBNError) Unwrap() error {
	return ErrInvalidPBN
}

// NewInvalidPBN builds an InvalidPBNError over the given list. Callers
// check membership with errors.Is(err, diagnostics.ErrInvalidPBN) and
// extract the list with errors.As(err, &target).
func NewInvalidPBN(l *List) error {
	return &InvalidPBNError{List: l}
}
