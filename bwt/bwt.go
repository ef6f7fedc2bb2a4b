package bwt

import "fmt"

/*

BWT wraps a Sequence (the last column of a Burrows-Wheeler rotation
over an integer alphabet) together with its C-array, and exposes the
FM-index primitives Ring's navigation layer is built on.

Unlike _examples/bebop-poly/bwt/bwt.go and
_examples/bebop-poly/search/bwt/bwt.go, which transform an actual text
string into its own BWT (building a suffix array and a first-column
skip list from scratch), this package never performs the rotation
itself: Ring's three-BWT construction (see ring/construct.go) already
produces each column's final symbol sequence directly from the sorted
triples, so BWT here is a thin, general-purpose wrapper around whatever
sequence it is handed - static or dynamic - plus the C-array needed for
LF-mapping.

*/

// BWT is one of Ring's three columns (BWT_S, BWT_P, BWT_O). seq holds
// the actual symbol-per-row data; c holds the cumulative counts needed
// to turn a (symbol, rank) pair into a row number.
type BWT struct {
	seq Sequence
	c   cArray
}

// NewStatic builds an immutable BWT over symbols, whose values must lie
// in [0, alphabetSize).
func NewStatic(symbols []uint64, alphabetSize uint64) BWT {
	return BWT{
		seq: newWaveletTreeFromSequence(symbols, alphabetSize),
		c:   newCArrayFromSymbols(symbols, alphabetSize),
	}
}

// NewDynamic builds a mutable BWT over symbols, whose values must lie
// in [0, alphabetSize).
func NewDynamic(symbols []uint64, alphabetSize uint64) BWT {
	return BWT{
		seq: newDynamicSequenceFrom(symbols),
		c:   newCArrayFromSymbols(symbols, alphabetSize),
	}
}

// NewStaticWithExternalC builds an immutable BWT whose sequence and
// C-array are drawn from two different alphabets - Ring's actual
// shape, where e.g. BWT_O's sequence holds O values row-for-row but
// its C-array is cumulative counts over the S values occupying those
// same rows. cSymbols must be in row-for-row correspondence with
// seqSymbols (cSymbols[i] is the C-domain value of row i).
func NewStaticWithExternalC(seqSymbols []uint64, seqAlphabetSize uint64, cSymbols []uint64, cAlphabetSize uint64) BWT {
	return BWT{
		seq: newWaveletTreeFromSequence(seqSymbols, seqAlphabetSize),
		c:   newCArrayFromSymbols(cSymbols, cAlphabetSize),
	}
}

// NewDynamicWithExternalC is NewStaticWithExternalC's mutable
// counterpart.
func NewDynamicWithExternalC(seqSymbols []uint64, cSymbols []uint64, cAlphabetSize uint64) BWT {
	return BWT{
		seq: newDynamicSequenceFrom(seqSymbols),
		c:   newCArrayFromSymbols(cSymbols, cAlphabetSize),
	}
}

// NewStaticFromImage rebuilds an immutable BWT from its own persisted
// sequence and C-array counts, bypassing the histogram pass
// NewStaticWithExternalC performs - the shape Load needs, since a
// serialized Ring stores each BWT's C-array as counts, not as the
// per-row C-domain symbols that produced them.
func NewStaticFromImage(seqSymbols []uint64, seqAlphabetSize uint64, cCounts []uint64) BWT {
	return BWT{
		seq: newWaveletTreeFromSequence(seqSymbols, seqAlphabetSize),
		c:   newCArrayFromCounts(cCounts),
	}
}

// NewDynamicFromImage is NewStaticFromImage's mutable counterpart.
func NewDynamicFromImage(seqSymbols []uint64, cCounts []uint64) BWT {
	return BWT{
		seq: newDynamicSequenceFrom(seqSymbols),
		c:   newCArrayFromCounts(cCounts),
	}
}

// SeqSymbols returns every row of the BWT's own sequence, in order -
// the form Save persists a BWT image in.
func (b BWT) SeqSymbols() []uint64 {
	out := make([]uint64, b.Len())
	for i := range out {
		out[i] = b.seq.Access(i)
	}
	return out
}

// CCounts returns the BWT's C-array as its raw cumulative counts table
// (length AlphabetSize()+1) - the form Save persists a BWT image's
// C-array in.
func (b BWT) CCounts() []uint64 {
	out := make([]uint64, b.c.alphabetSize()+1)
	for i := range out {
		out[i] = b.c.get(uint64(i))
	}
	return out
}

// Len returns the number of rows in the BWT.
func (b BWT) Len() int {
	return b.seq.Len()
}

// NElems returns how many times symbol occurs across the whole BWT.
func (b BWT) NElems(symbol uint64) int {
	return b.seq.Rank(symbol, b.seq.Len())
}

// Access returns the symbol at row i.
func (b BWT) Access(i int) uint64 {
	return b.seq.Access(i)
}

// Rank returns how many times symbol occurs in rows [0, i).
func (b BWT) Rank(symbol uint64, i int) int {
	return b.seq.Rank(symbol, i)
}

// Ranky returns the rank of the symbol found at row i among the rows
// before it - Rank(Access(i), i). This is the quantity LF-mapping needs
// to step a single row back to its predecessor.
func (b BWT) Ranky(i int) int {
	return b.seq.Rank(b.seq.Access(i), i)
}

// Select returns the row of the rank-th (0-indexed) occurrence of
// symbol.
func (b BWT) Select(symbol uint64, rank int) (int, bool) {
	return b.seq.Select(symbol, rank)
}

// SelectNext returns the row of the first occurrence of symbol at row
// >= fromRow, amortizing repeated forward scans the way Ring's
// next_*-style navigation needs: rather than rescanning from the start
// of the column on every call, callers pass the row they last stopped
// at and get the next occurrence from there directly.
func (b BWT) SelectNext(symbol uint64, fromRow int) (int, bool) {
	rank := b.seq.Rank(symbol, fromRow)
	return b.seq.Select(symbol, rank)
}

// BsearchC returns the symbol occupying cumulative rank r of the
// BWT's conceptual first column - the largest symbol c with C[c] <= r.
func (b BWT) BsearchC(r uint64) uint64 {
	return b.c.bsearch(r)
}

// C returns C[symbol]: the count of rows whose C-indexed binding value
// is strictly less than symbol. C(AlphabetSize()) is the row count.
func (b BWT) C(symbol uint64) uint64 {
	return b.c.get(symbol)
}

// InverseSelect returns both the symbol at row i and its rank among
// the rows before i, in one call - the fused access+rank sdsl wavelet
// trees expose under the same name.
func (b BWT) InverseSelect(i int) (symbol uint64, rank int) {
	symbol = b.seq.Access(i)
	rank = b.seq.Rank(symbol, i)
	return symbol, rank
}

// BackwardStep performs one LF-mapping step: given row i, returns the
// row that the symbol at i maps back to in the rotation that precedes
// it.
func (b BWT) BackwardStep(i int) int {
	symbol, rank := b.InverseSelect(i)
	return int(b.c.get(symbol)) + rank
}

// BackwardSearch1Interval narrows [l, r) by prefixing one symbol: the
// classic single-step FM-index backward search update.
func (b BWT) BackwardSearch1Interval(l, r int, symbol uint64) (newL, newR int) {
	base := int(b.c.get(symbol))
	return base + b.seq.Rank(symbol, l), base + b.seq.Rank(symbol, r)
}

// BackwardSearch1Rank narrows a single bound by prefixing one symbol -
// used when only one side of an interval needs updating.
func (b BWT) BackwardSearch1Rank(r int, symbol uint64) int {
	return int(b.c.get(symbol)) + b.seq.Rank(symbol, r)
}

// BackwardSearch2Interval composes two backward-search steps in one
// call, prefixing c1 then c2 - Ring's cross-column navigation
// frequently needs to narrow an interval by two symbols at once rather
// than build an intermediate interval it immediately discards.
func (b BWT) BackwardSearch2Interval(l, r int, c1, c2 uint64) (newL, newR int) {
	l1, r1 := b.BackwardSearch1Interval(l, r, c1)
	return b.BackwardSearch1Interval(l1, r1, c2)
}

// BackwardSearch2Rank is BackwardSearch2Interval's single-bound
// counterpart.
func (b BWT) BackwardSearch2Rank(r int, c1, c2 uint64) int {
	r1 := b.BackwardSearch1Rank(r, c1)
	return b.BackwardSearch1Rank(r1, c2)
}

// AlphabetSize returns the number of symbol slots the BWT's C-array
// covers.
func (b BWT) AlphabetSize() uint64 {
	return b.c.alphabetSize()
}

func (b BWT) mutable() (MutableSequence, error) {
	mut, ok := b.seq.(MutableSequence)
	if !ok {
		return nil, ErrNotDynamic
	}
	return mut, nil
}

// InsertWT inserts symbol at row i, growing the alphabet if symbol has
// never been seen before.
func (b *BWT) InsertWT(i int, symbol uint64) error {
	mut, err := b.mutable()
	if err != nil {
		return err
	}
	if i < 0 || i > mut.Len() {
		return fmt.Errorf("bwt: insert row %d: %w", i, ErrOutOfRange)
	}
	if symbol >= b.c.alphabetSize() {
		b.c.growAlphabet(symbol + 1)
	}
	mut.InsertAt(i, symbol)
	b.c.incrementFrom(symbol)
	return nil
}

// RemoveWT removes row i and returns the symbol that was there.
func (b *BWT) RemoveWT(i int) (uint64, error) {
	mut, err := b.mutable()
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= mut.Len() {
		return 0, fmt.Errorf("bwt: remove row %d: %w", i, ErrOutOfRange)
	}
	symbol := mut.Access(i)
	mut.RemoveAt(i)
	b.c.decrementFrom(symbol)
	return symbol, nil
}

// RemoveNodeAndReturn removes every row holding symbol and returns the
// row numbers that were removed, in descending order (the order they
// were actually deleted in, so sibling BWTs can be walked in the same
// order when a Ring cascades a node-wide deletion across all three
// columns).
func (b *BWT) RemoveNodeAndReturn(symbol uint64) ([]int, error) {
	mut, err := b.mutable()
	if err != nil {
		return nil, err
	}

	var rows []int
	for i := 0; i < mut.Len(); i++ {
		if mut.Access(i) == symbol {
			rows = append(rows, i)
		}
	}

	removed := make([]int, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		mut.RemoveAt(rows[i])
		b.c.decrementFrom(symbol)
		removed = append(removed, rows[i])
	}

	return removed, nil
}

// InsertSeqOnly inserts symbol into the sequence at row i without
// touching the C-array - for BWTs whose C-array is indexed by a
// different alphabet than their own sequence, where the matching
// C-array update belongs to a different BWT's column and must be made
// through InsertC there instead.
func (b *BWT) InsertSeqOnly(i int, symbol uint64) error {
	mut, err := b.mutable()
	if err != nil {
		return err
	}
	if i < 0 || i > mut.Len() {
		return fmt.Errorf("bwt: insert row %d: %w", i, ErrOutOfRange)
	}
	mut.InsertAt(i, symbol)
	return nil
}

// RemoveSeqOnly removes row i from the sequence without touching the
// C-array, returning the symbol that was there. Pairs with RemoveC on
// whichever BWT's C-array counts that symbol's dimension.
func (b *BWT) RemoveSeqOnly(i int) (uint64, error) {
	mut, err := b.mutable()
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= mut.Len() {
		return 0, fmt.Errorf("bwt: remove row %d: %w", i, ErrOutOfRange)
	}
	symbol := mut.Access(i)
	mut.RemoveAt(i)
	return symbol, nil
}

// InsertC records the insertion of one occurrence of symbol into the
// C-array without touching the sequence - used when the sequence-level
// insert has already happened through another path.
func (b *BWT) InsertC(symbol uint64) {
	b.c.incrementFrom(symbol)
}

// RemoveC is InsertC's inverse.
func (b *BWT) RemoveC(symbol uint64) {
	b.c.decrementFrom(symbol)
}

// PushBackC grows the C-array by exactly one alphabet slot.
func (b *BWT) PushBackC() {
	b.c.growAlphabet(b.c.alphabetSize() + 1)
}

// IncrementAlphabet grows the C-array to cover [0, newSize).
func (b *BWT) IncrementAlphabet(newSize uint64) {
	b.c.growAlphabet(newSize)
}

// RangeNextValue returns the smallest symbol >= x occurring in rows
// [l, r).
func (b BWT) RangeNextValue(l, r int, x uint64) (uint64, bool) {
	return b.seq.RangeNextValue(l, r, x)
}
