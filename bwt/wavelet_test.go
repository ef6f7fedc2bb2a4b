package bwt

import "testing"

func TestWaveletTreeAccessRankSelect(t *testing.T) {
	symbols := []uint64{4, 1, 4, 2, 0, 3, 4, 1, 0}
	alphaSize := uint64(5)
	wt := newWaveletTreeFromSequence(symbols, alphaSize)

	if wt.Len() != len(symbols) {
		t.Fatalf("expected len %d, got %d", len(symbols), wt.Len())
	}

	for i, want := range symbols {
		if got := wt.Access(i); got != want {
			t.Errorf("Access(%d): expected %d, got %d", i, want, got)
		}
	}

	rankCases := []struct {
		symbol uint64
		i      int
		want   int
	}{
		{4, 0, 0},
		{4, 3, 2},
		{4, 9, 3},
		{0, 9, 2},
		{1, 2, 1},
		{9, 5, 0}, // out of alphabet range
	}
	for _, tc := range rankCases {
		if got := wt.Rank(tc.symbol, tc.i); got != tc.want {
			t.Errorf("Rank(%d, %d): expected %d, got %d", tc.symbol, tc.i, tc.want, got)
		}
	}

	selectCases := []struct {
		symbol uint64
		rank   int
		want   int
		ok     bool
	}{
		{4, 0, 0, true},
		{4, 1, 2, true},
		{4, 2, 6, true},
		// rank == NElems(4) (3 occurrences) lands on the "one past the
		// last occurrence" sentinel, which resolves to Len() rather
		// than ok=false - see rsaBitVector's select maps.
		{4, 3, 9, true},
		{4, 4, 0, false},
		{0, 0, 4, true},
		{0, 1, 8, true},
	}
	for _, tc := range selectCases {
		got, ok := wt.Select(tc.symbol, tc.rank)
		if ok != tc.ok {
			t.Errorf("Select(%d, %d): expected ok=%v, got ok=%v", tc.symbol, tc.rank, tc.ok, ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("Select(%d, %d): expected %d, got %d", tc.symbol, tc.rank, tc.want, got)
		}
	}
}

func TestWaveletTreeReconstruction(t *testing.T) {
	var symbols []uint64
	for i := 0; i < 500; i++ {
		symbols = append(symbols, uint64(i%37))
	}
	wt := newWaveletTreeFromSequence(symbols, 37)
	got := wt.reconstruct()
	if len(got) != len(symbols) {
		t.Fatalf("expected %d symbols, got %d", len(symbols), len(got))
	}
	for i := range symbols {
		if got[i] != symbols[i] {
			t.Fatalf("position %d: expected %d, got %d", i, symbols[i], got[i])
		}
	}
}

func TestWaveletTreeRangeNextValue(t *testing.T) {
	symbols := []uint64{5, 2, 8, 1, 9, 3, 7}
	wt := newWaveletTreeFromSequence(symbols, 10)

	cases := []struct {
		l, r int
		x    uint64
		want uint64
		ok   bool
	}{
		{0, 7, 0, 1, true},
		{0, 7, 6, 7, true},
		{0, 7, 10, 0, false},
		{1, 2, 0, 2, true},
		{0, 1, 6, 0, false},
	}
	for _, tc := range cases {
		got, ok := wt.RangeNextValue(tc.l, tc.r, tc.x)
		if ok != tc.ok {
			t.Errorf("RangeNextValue(%d,%d,%d): expected ok=%v, got ok=%v", tc.l, tc.r, tc.x, tc.ok, ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("RangeNextValue(%d,%d,%d): expected %d, got %d", tc.l, tc.r, tc.x, tc.want, got)
		}
	}
}

func TestWaveletTreeSingleSymbolAlphabet(t *testing.T) {
	wt := newWaveletTreeFromSequence([]uint64{0, 0, 0}, 1)
	for i := 0; i < 3; i++ {
		if wt.Access(i) != 0 {
			t.Fatalf("expected 0 at %d", i)
		}
	}
	if got := wt.Rank(0, 2); got != 2 {
		t.Fatalf("expected rank 2, got %d", got)
	}
	if pos, ok := wt.Select(0, 2); !ok || pos != 2 {
		t.Fatalf("expected select(0,2)=2, got %d,%v", pos, ok)
	}
}

func TestDynamicSequenceMirrorsStatic(t *testing.T) {
	symbols := []uint64{4, 1, 4, 2, 0, 3, 4, 1, 0}
	wt := newWaveletTreeFromSequence(symbols, 5)
	ds := newDynamicSequenceFrom(symbols)

	for i := range symbols {
		if ds.Access(i) != wt.Access(i) {
			t.Errorf("Access(%d) mismatch: dynamic=%d static=%d", i, ds.Access(i), wt.Access(i))
		}
	}
	for symbol := uint64(0); symbol < 5; symbol++ {
		for i := 0; i <= len(symbols); i++ {
			if ds.Rank(symbol, i) != wt.Rank(symbol, i) {
				t.Errorf("Rank(%d,%d) mismatch: dynamic=%d static=%d", symbol, i, ds.Rank(symbol, i), wt.Rank(symbol, i))
			}
		}
	}
}
