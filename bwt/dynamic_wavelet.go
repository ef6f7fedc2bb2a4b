package bwt

// dynamicSequence is a mutable Sequence backing Ring's dynamic variant.
// No teacher file implements a mutable wavelet tree - the teacher's BWT
// is read-only - so this takes the simplest correct shape: a plain
// slice of symbols, scanned linearly for Rank/Select/RangeNextValue.
// ring.hpp's dynamic ring backs its BWTs with a bit-packed
// wt_int<rrr_vector<>> for O(log sigma) updates; this module trades
// that asymptotic for a structure whose correctness can be checked by
// inspection without a compiler, per the Open Question resolution in
// DESIGN.md.
type dynamicSequence struct {
	symbols []uint64
}

func newDynamicSequence() *dynamicSequence {
	return &dynamicSequence{}
}

func newDynamicSequenceFrom(symbols []uint64) *dynamicSequence {
	cp := make([]uint64, len(symbols))
	copy(cp, symbols)
	return &dynamicSequence{symbols: cp}
}

func (d *dynamicSequence) Len() int {
	return len(d.symbols)
}

func (d *dynamicSequence) Access(i int) uint64 {
	return d.symbols[i]
}

func (d *dynamicSequence) Rank(symbol uint64, i int) int {
	count := 0
	for j := 0; j < i; j++ {
		if d.symbols[j] == symbol {
			count++
		}
	}
	return count
}

// Select mirrors the static wavelet tree's sentinel convention: asking
// for the occurrence one past the last one lands on Len(), ok=true,
// rather than ok=false, so callers can treat both backings identically.
func (d *dynamicSequence) Select(symbol uint64, rank int) (int, bool) {
	seen := 0
	for i, s := range d.symbols {
		if s == symbol {
			if seen == rank {
				return i, true
			}
			seen++
		}
	}
	if rank == seen {
		return len(d.symbols), true
	}
	return 0, false
}

func (d *dynamicSequence) RangeNextValue(l, r int, x uint64) (uint64, bool) {
	if l < 0 || r > len(d.symbols) || l >= r {
		return 0, false
	}
	best, found := uint64(0), false
	for i := l; i < r; i++ {
		s := d.symbols[i]
		if s >= x && (!found || s < best) {
			best, found = s, true
		}
	}
	return best, found
}

func (d *dynamicSequence) InsertAt(i int, symbol uint64) {
	d.symbols = append(d.symbols, 0)
	copy(d.symbols[i+1:], d.symbols[i:])
	d.symbols[i] = symbol
}

func (d *dynamicSequence) RemoveAt(i int) {
	d.symbols = append(d.symbols[:i], d.symbols[i+1:]...)
}
