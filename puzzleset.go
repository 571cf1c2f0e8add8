package pbn

import "github.com/inkgrid/pbn/internal/store"

// PuzzleSet is a parsed puzzleset document: set-wide metadata plus zero
// or more Puzzles. The zero value is not usable; obtain one from Parse or
// ParseStream.
type PuzzleSet struct {
	st *store.Store
}

func (ps *PuzzleSet) root() *store.PuzzleRecord {
	return &ps.st.Puzzles[0]
}

// Source is the document's source note, e.g. an original publisher.
func (ps *PuzzleSet) Source() string { return ps.st.ResolveString(ps.root().Source) }

// Title is the document's collection title.
func (ps *PuzzleSet) Title() string { return ps.st.ResolveString(ps.root().Title) }

// Author is the document's author name.
func (ps *PuzzleSet) Author() string { return ps.st.ResolveString(ps.root().Author) }

// AuthorID is the document author's identifier on whatever service
// published it.
func (ps *PuzzleSet) AuthorID() string { return ps.st.ResolveString(ps.root().AuthorID) }

// Copyright is the document's copyright notice.
func (ps *PuzzleSet) Copyright() string { return ps.st.ResolveString(ps.root().Copyright) }

// NoteCount reports the number of document-level notes.
func (ps *PuzzleSet) NoteCount() int { return ps.st.SliceLen(ps.root().Notes) }

// Note returns the i-th document-level note.
func (ps *PuzzleSet) Note(i int) string {
	return ps.st.ResolveString(store.StringIndex(ps.st.SliceWord(ps.root().Notes, i)))
}

// PuzzleCount reports the number of puzzles in the set.
func (ps *PuzzleSet) PuzzleCount() int {
	return len(ps.st.Puzzles) - 1
}

// Puzzle returns the i-th puzzle, 0 <= i < PuzzleCount().
func (ps *PuzzleSet) Puzzle(i int) *Puzzle {
	return &Puzzle{ps: ps, idx: int32(i + 1)}
}
