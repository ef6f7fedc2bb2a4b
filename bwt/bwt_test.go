package bwt

import "testing"

func TestBackwardStepMatchesCPlusRank(t *testing.T) {
	symbols := []uint64{3, 1, 2, 1, 0, 3, 2, 0}
	b := NewStatic(symbols, 4)

	for i := 0; i < b.Len(); i++ {
		symbol, rank := b.InverseSelect(i)
		if symbol != symbols[i] {
			t.Fatalf("InverseSelect(%d): expected symbol %d, got %d", i, symbols[i], symbol)
		}
		if rank != b.Rank(symbol, i) {
			t.Fatalf("InverseSelect(%d): rank %d does not match Rank: %d", i, rank, b.Rank(symbol, i))
		}
		want := int(b.c.get(symbol)) + rank
		if got := b.BackwardStep(i); got != want {
			t.Fatalf("BackwardStep(%d): expected %d, got %d", i, want, got)
		}
	}
}

func TestBsearchCAgreesWithCArray(t *testing.T) {
	symbols := []uint64{3, 1, 2, 1, 0, 3, 2, 0}
	b := NewStatic(symbols, 4)

	for rank := uint64(0); rank < uint64(b.Len()); rank++ {
		symbol := b.BsearchC(rank)
		if rank < b.c.get(symbol) || rank >= b.c.get(symbol+1) {
			t.Fatalf("BsearchC(%d) = %d is inconsistent with C array", rank, symbol)
		}
	}
}

func TestSelectNextScansForward(t *testing.T) {
	symbols := []uint64{0, 1, 0, 1, 0, 1}
	b := NewStatic(symbols, 2)

	pos, ok := b.SelectNext(1, 0)
	if !ok || pos != 1 {
		t.Fatalf("expected SelectNext(1, 0) = 1, got %d, %v", pos, ok)
	}
	pos, ok = b.SelectNext(1, 2)
	if !ok || pos != 3 {
		t.Fatalf("expected SelectNext(1, 2) = 3, got %d, %v", pos, ok)
	}
	// Row 6 is past every occurrence of 1; SelectNext lands on the
	// "one past the last occurrence" sentinel (Len()) rather than
	// reporting ok=false, so callers can compare the returned row
	// against their search bound directly instead of special-casing
	// absence.
	pos, ok = b.SelectNext(1, 6)
	if !ok || pos != b.Len() {
		t.Fatalf("expected SelectNext(1, 6) to land on the Len() sentinel, got %d, %v", pos, ok)
	}
}

func TestBackwardSearchIntervalNarrows(t *testing.T) {
	symbols := []uint64{0, 1, 2, 0, 1, 2, 0, 1, 2}
	b := NewStatic(symbols, 3)

	l, r := b.BackwardSearch1Interval(0, b.Len(), 1)
	if r-l != 3 {
		t.Fatalf("expected 3 rows prefixed by symbol 1, got %d", r-l)
	}

	l2, r2 := b.BackwardSearch2Interval(0, b.Len(), 1, 2)
	wantL, wantR := b.BackwardSearch1Interval(l, r, 2)
	if l2 != wantL || r2 != wantR {
		t.Fatalf("BackwardSearch2Interval mismatch: got [%d,%d), want [%d,%d)", l2, r2, wantL, wantR)
	}
}

func TestDynamicInsertRemoveWT(t *testing.T) {
	symbols := []uint64{0, 1, 2}
	b := NewDynamic(symbols, 3)

	if err := b.InsertWT(1, 2); err != nil {
		t.Fatalf("InsertWT: %v", err)
	}
	if got := b.Access(1); got != 2 {
		t.Fatalf("expected inserted symbol 2 at row 1, got %d", got)
	}
	if b.NElems(2) != 2 {
		t.Fatalf("expected two occurrences of symbol 2, got %d", b.NElems(2))
	}

	removed, err := b.RemoveWT(0)
	if err != nil {
		t.Fatalf("RemoveWT: %v", err)
	}
	if removed != 0 {
		t.Fatalf("expected to remove symbol 0, got %d", removed)
	}
	if b.Len() != 3 {
		t.Fatalf("expected length 3 after insert+remove, got %d", b.Len())
	}
}

func TestStaticBWTRejectsMutation(t *testing.T) {
	b := NewStatic([]uint64{0, 1, 2}, 3)
	if err := b.InsertWT(0, 1); err != ErrNotDynamic {
		t.Fatalf("expected ErrNotDynamic, got %v", err)
	}
}

func TestRemoveNodeAndReturn(t *testing.T) {
	symbols := []uint64{0, 1, 0, 2, 0}
	b := NewDynamic(symbols, 3)

	rows, err := b.RemoveNodeAndReturn(0)
	if err != nil {
		t.Fatalf("RemoveNodeAndReturn: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows removed, got %d", len(rows))
	}
	if b.Len() != 2 {
		t.Fatalf("expected length 2 after removing all 0s, got %d", b.Len())
	}
	if b.NElems(0) != 0 {
		t.Fatalf("expected no occurrences of 0 left, got %d", b.NElems(0))
	}
}
