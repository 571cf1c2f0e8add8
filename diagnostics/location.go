package diagnostics

// Location pinpoints a byte offset in the source document, resolved to a
// 1-based line and column for human-readable reporting.
type Location struct {
	Offset int64
	Line   int
	Column int
}

// LineIndex resolves byte offsets from a single monotonically-increasing
// stream of xml.Decoder.InputOffset() calls into Locations. It is stateful
// and forward-only by design: the loader only ever asks about offsets it
// has just read, in increasing order, so a full random-access line table
// would be wasted work for a single sequential parse.
type LineIndex struct {
	data      []byte
	scanned   int64 // offset up to which line/col have been counted
	line      int   // line at `scanned` (1-based)
	lineStart int64 // offset of the start of `line`
}

// NewLineIndex builds a tracker over the full source buffer. ParseStream
// reads its whole reader into memory up front for exactly this reason:
// precise line/column reporting needs random access to the bytes already
// consumed by the decoder, not just a running newline count.
func NewLineIndex(data []byte) *LineIndex {
	return &LineIndex{data: data, scanned: 0, line: 1, lineStart: 0}
}

// Locate resolves offset to a Location. offset must be >= any offset
// previously passed to Locate on this index.
func (li *LineIndex) Locate(offset int64) Location {
	if offset < li.scanned {
		offset = li.scanned
	}
	end := offset
	if end > int64(len(li.data)) {
		end = int64(len(li.data))
	}
	for i := li.scanned; i < end; i++ {
		if li.data[i] == '\n' {
			li.line++
			li.lineStart = i + 1
		}
	}
	li.scanned = end
	return Location{
		Offset: offset,
		Line:   li.line,
		Column: int(offset-li.lineStart) + 1,
	}
}
