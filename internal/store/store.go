package store

// StringIndex addresses a NUL-terminated string in the byte arena.
// Index 0 always resolves to the empty string.
type StringIndex uint32

// DataIndex addresses a length-prefixed run in the word arena.
// DataIndex 0 is the shared empty-slice sentinel: its word is 0.
type DataIndex uint32

// NoData is the shared empty-slice sentinel.
const NoData DataIndex = 0

// Store holds every arena backing a parsed PuzzleSet. The zero value is
// not usable; construct with New.
type Store struct {
	bytes []byte
	words []uint32

	Colors    []ColorRecord
	ClueLines []ClueLineRecord
	Solutions []SolutionRecord
	Puzzles   []PuzzleRecord
}

// New returns an empty Store with its arenas primed so that index/offset
// 0 means "empty" everywhere (empty string, empty slice, synthetic root
// puzzle appended by the caller).
func New() *Store {
	return &Store{
		bytes: []byte{0},
		words: []uint32{0},
	}
}

// InternString appends b plus a terminating NUL to the byte arena and
// returns its start offset. It never deduplicates: two calls with equal
// content get distinct indices. An empty b always returns StringIndex 0.
func (s *Store) InternString(b []byte) StringIndex {
	if len(b) == 0 {
		return 0
	}
	idx := StringIndex(len(s.bytes))
	s.bytes = append(s.bytes, b...)
	s.bytes = append(s.bytes, 0)
	return idx
}

// InternText is a convenience wrapper for InternString(string(text)).
func (s *Store) InternText(text string) StringIndex {
	if text == "" {
		return 0
	}
	return s.InternString([]byte(text))
}

// ResolveString reads the NUL-terminated string starting at idx.
func (s *Store) ResolveString(idx StringIndex) string {
	i := int(idx)
	if i <= 0 || i >= len(s.bytes) {
		return ""
	}
	j := i
	for j < len(s.bytes) && s.bytes[j] != 0 {
		j++
	}
	return string(s.bytes[i:j])
}

// PushWords writes values as a length-prefixed run in the word arena and
// returns its DataIndex. An empty values returns NoData.
func (s *Store) PushWords(values []uint32) DataIndex {
	if len(values) == 0 {
		return NoData
	}
	idx := DataIndex(len(s.words))
	s.words = append(s.words, uint32(len(values)))
	s.words = append(s.words, values...)
	return idx
}

// SliceLen reports the element count of the run at idx.
func (s *Store) SliceLen(idx DataIndex) int {
	if idx == NoData {
		return 0
	}
	return int(s.words[idx])
}

// SliceWord reads the i-th element of the run at idx.
func (s *Store) SliceWord(idx DataIndex, i int) uint32 {
	return s.words[int(idx)+1+i]
}

// SliceWords returns the run at idx as a slice. The returned slice aliases
// the arena and must not be retained across further Push calls, which may
// reallocate the backing array.
func (s *Store) SliceWords(idx DataIndex) []uint32 {
	n := s.SliceLen(idx)
	if n == 0 {
		return nil
	}
	start := int(idx) + 1
	return s.words[start : start+n]
}

// SetSliceWord overwrites the i-th element of the run at idx in place.
// Used for saved-solution cell mutation, which never changes a run's
// length, only its contents.
func (s *Store) SetSliceWord(idx DataIndex, i int, v uint32) {
	s.words[int(idx)+1+i] = v
}

func appendRun[T any](arena *[]T, items []T) (start, length int32) {
	start = int32(len(*arena))
	*arena = append(*arena, items...)
	return start, int32(len(items))
}

// AppendColors appends items to the shared color arena and returns the
// (start, length) run a puzzle record uses to reference them.
func (s *Store) AppendColors(items []ColorRecord) (start, length int32) {
	return appendRun(&s.Colors, items)
}

// AppendClueLines appends items to the shared clue-line arena.
func (s *Store) AppendClueLines(items []ClueLineRecord) (start, length int32) {
	return appendRun(&s.ClueLines, items)
}

// AppendSolutions appends items to the shared solution arena.
func (s *Store) AppendSolutions(items []SolutionRecord) (start, length int32) {
	return appendRun(&s.Solutions, items)
}

// AppendPuzzle appends a single puzzle record and returns its index.
func (s *Store) AppendPuzzle(p PuzzleRecord) int32 {
	idx := int32(len(s.Puzzles))
	s.Puzzles = append(s.Puzzles, p)
	return idx
}
