package store

import "testing"

func TestInternStringEmptyIsZero(t *testing.T) {
	s := New()
	if idx := s.InternText(""); idx != 0 {
		t.Fatalf("InternText(\"\") = %d, want 0", idx)
	}
	if got := s.ResolveString(0); got != "" {
		t.Fatalf("ResolveString(0) = %q, want empty", got)
	}
}

func TestInternStringNoDedup(t *testing.T) {
	s := New()
	a := s.InternText("black")
	b := s.InternText("black")
	if a == b {
		t.Fatalf("InternText should not deduplicate, got equal indices %d == %d", a, b)
	}
	if s.ResolveString(a) != "black" || s.ResolveString(b) != "black" {
		t.Fatalf("resolved strings mismatch")
	}
}

func TestPushWordsEmptyIsNoData(t *testing.T) {
	s := New()
	if idx := s.PushWords(nil); idx != NoData {
		t.Fatalf("PushWords(nil) = %d, want NoData", idx)
	}
	if s.SliceLen(NoData) != 0 {
		t.Fatalf("SliceLen(NoData) != 0")
	}
}

func TestPushWordsRoundTrip(t *testing.T) {
	s := New()
	idx := s.PushWords([]uint32{10, 20, 30})
	if got := s.SliceLen(idx); got != 3 {
		t.Fatalf("SliceLen = %d, want 3", got)
	}
	for i, want := range []uint32{10, 20, 30} {
		if got := s.SliceWord(idx, i); got != want {
			t.Fatalf("SliceWord(%d) = %d, want %d", i, got, want)
		}
	}
	if got := s.SliceWords(idx); len(got) != 3 || got[1] != 20 {
		t.Fatalf("SliceWords = %v", got)
	}
}

func TestSetSliceWordMutatesInPlace(t *testing.T) {
	s := New()
	idx := s.PushWords([]uint32{1, 1, 1, 1})
	s.SetSliceWord(idx, 2, 0xFF)
	if got := s.SliceWord(idx, 2); got != 0xFF {
		t.Fatalf("SliceWord(2) after mutate = %#x, want 0xff", got)
	}
	if got := s.SliceWord(idx, 1); got != 1 {
		t.Fatalf("SliceWord(1) should be untouched, got %d", got)
	}
}

func TestClueEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Clue{
		{Color: 0, Count: 1},
		{Color: 31, Count: clueCountMax},
		{Color: 5, Count: 42},
	}
	for _, c := range cases {
		w := EncodeClue(c)
		got := DecodeClue(w)
		if got != c {
			t.Fatalf("EncodeClue/DecodeClue round trip: got %+v, want %+v", got, c)
		}
	}
}

func TestClueEncodeClampsOverflowCount(t *testing.T) {
	w := EncodeClue(Clue{Color: 1, Count: clueCountMax + 1000})
	got := DecodeClue(w)
	if got.Count != clueCountMax {
		t.Fatalf("Count = %d, want clamped %d", got.Count, clueCountMax)
	}
}

func TestAppendRunsAreContiguous(t *testing.T) {
	s := New()
	start1, len1 := s.AppendColors([]ColorRecord{{Char: 'X'}, {Char: '.'}})
	start2, len2 := s.AppendColors([]ColorRecord{{Char: 'A'}})
	if start1 != 0 || len1 != 2 {
		t.Fatalf("first run = (%d,%d), want (0,2)", start1, len1)
	}
	if start2 != 2 || len2 != 1 {
		t.Fatalf("second run = (%d,%d), want (2,1)", start2, len2)
	}
	if len(s.Colors) != 3 {
		t.Fatalf("len(Colors) = %d, want 3", len(s.Colors))
	}
}

func TestAppendPuzzleIndicesAreSequential(t *testing.T) {
	s := New()
	root := s.AppendPuzzle(PuzzleRecord{})
	p1 := s.AppendPuzzle(PuzzleRecord{Rows: 3, Columns: 4})
	if root != 0 || p1 != 1 {
		t.Fatalf("puzzle indices = (%d,%d), want (0,1)", root, p1)
	}
	if s.Puzzles[p1].Rows != 3 {
		t.Fatalf("stored puzzle rows = %d, want 3", s.Puzzles[p1].Rows)
	}
}
