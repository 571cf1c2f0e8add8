package diagnostics

// Diagnostic is a single recoverable parse problem: what went wrong, and
// where. It never carries a formatted string — see doc.go.
type Diagnostic struct {
	Kind     Kind
	Location Location

	// Detail carries free-form context, set only through AddDetail. The
	// loader never calls AddDetail: malformed XML is returned as an error
	// wrapping ErrMalformedXML rather than recorded as an XMLMalformed
	// diagnostic, so every diagnostic it records has an empty Detail.
	Detail string
}

// List is an append-only collection of Diagnostics, built up over the
// course of a single Parse/ParseStream call.
type List struct {
	items []Diagnostic
}

// Add appends a diagnostic at the given kind and location.
func (l *List) Add(kind Kind, loc Location) {
	l.items = append(l.items, Diagnostic{Kind: kind, Location: loc})
}

// AddDetail appends a diagnostic with free-form detail text.
func (l *List) AddDetail(kind Kind, loc Location, detail string) {
	l.items = append(l.items, Diagnostic{Kind: kind, Location: loc, Detail: detail})
}

// Any reports whether at least one diagnostic has been recorded.
func (l *List) Any() bool {
	return len(l.items) > 0
}

// Len reports the number of recorded diagnostics.
func (l *List) Len() int {
	return len(l.items)
}

// All returns the recorded diagnostics in the order they were added. The
// returned slice must not be mutated by the caller.
func (l *List) All() []Diagnostic {
	return l.items
}
