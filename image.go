package pbn

import "github.com/inkgrid/pbn/internal/store"

// Image is one goal, solved-solution, or saved-solution grid: rows *
// columns cells, each a candidate-color bitset (bit k set means palette
// index k is a candidate). A fully-known cell has exactly one bit set.
type Image struct {
	st        *store.Store
	puzzleIdx int32
	data      store.DataIndex
	rows      int32
	cols      int32
}

func (img Image) Rows() int    { return int(img.rows) }
func (img Image) Columns() int { return int(img.cols) }

func (img Image) offset(r, c int) int { return r*int(img.cols) + c }

// Get returns the candidate-color bitset for cell (r, c).
func (img Image) Get(r, c int) uint32 {
	return img.st.SliceWord(img.data, img.offset(r, c))
}

// Set overwrites cell (r, c) with mask, clamping away any bit at or above
// the puzzle's color count.
func (img Image) Set(r, c int, mask uint32) {
	n := img.st.Puzzles[img.puzzleIdx].ColorsLen
	img.st.SetSliceWord(img.data, img.offset(r, c), mask&fullCellMask(int(n)))
}

// Clear resets every cell to the full-candidate "unknown" mask.
func (img Image) Clear() {
	n := int(img.st.Puzzles[img.puzzleIdx].ColorsLen)
	mask := fullCellMask(n)
	total := int(img.rows) * int(img.cols)
	for i := 0; i < total; i++ {
		img.st.SetSliceWord(img.data, i, mask)
	}
}
