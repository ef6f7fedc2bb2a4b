package bwt

import "testing"

func buildRSAFromBits(bits []bool) rsaBitVector {
	bv := newBitVector(len(bits))
	for i, b := range bits {
		bv.setBit(i, b)
	}
	return newRSABitVectorFromBitVector(bv)
}

func TestRSABitVectorRankSelectAccess(t *testing.T) {
	bits := []bool{false, false, true, false, false, false, true, false, false, false, false, true}
	rsa := buildRSAFromBits(bits)

	for i, want := range bits {
		if got := rsa.Access(i); got != want {
			t.Errorf("Access(%d): expected %v, got %v", i, want, got)
		}
	}

	if got := rsa.Rank(true, 3); got != 1 {
		t.Errorf("Rank(true, 3): expected 1, got %d", got)
	}
	if got := rsa.Rank(true, 8); got != 2 {
		t.Errorf("Rank(true, 8): expected 2, got %d", got)
	}
	if got := rsa.Rank(false, 8); got != 6 {
		t.Errorf("Rank(false, 8): expected 6, got %d", got)
	}
	if got := rsa.Rank(true, len(bits)); got != 3 {
		t.Errorf("Rank(true, len): expected 3, got %d", got)
	}

	if pos, ok := rsa.Select(true, 0); !ok || pos != 2 {
		t.Errorf("Select(true, 0): expected 2, got %d, %v", pos, ok)
	}
	if pos, ok := rsa.Select(true, 2); !ok || pos != 11 {
		t.Errorf("Select(true, 2): expected 11, got %d, %v", pos, ok)
	}
	// The select maps carry a sentinel entry at the total count so that
	// callers asking for "one past the last occurrence" land cleanly at
	// the bitvector's length, rather than getting an ok=false they'd
	// have to special-case.
	if pos, ok := rsa.Select(true, 3); !ok || pos != len(bits) {
		t.Errorf("Select(true, 3): expected sentinel %d, got %d, %v", len(bits), pos, ok)
	}
	if _, ok := rsa.Select(true, 4); ok {
		t.Errorf("Select(true, 4): expected no result past the sentinel")
	}
}

func TestRSABitVectorAcrossMultipleWords(t *testing.T) {
	n := 300
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = i%7 == 0
	}
	rsa := buildRSAFromBits(bits)

	onesSoFar := 0
	for i := 0; i <= n; i++ {
		if got := rsa.Rank(true, i); got != onesSoFar {
			t.Fatalf("Rank(true, %d): expected %d, got %d", i, onesSoFar, got)
		}
		if i < n && bits[i] {
			onesSoFar++
		}
	}
}
