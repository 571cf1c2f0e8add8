package pbn

import "github.com/inkgrid/pbn/diagnostics"

// Re-exported so callers that only import the root package can still
// match on these with errors.Is without a second import.
var (
	ErrInvalidPBN   = diagnostics.ErrInvalidPBN
	ErrMalformedXML = diagnostics.ErrMalformedXML
	ErrIO           = diagnostics.ErrIO
)
