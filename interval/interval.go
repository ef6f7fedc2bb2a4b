// Package interval implements the half-open row range Ring's
// navigation primitives pass around as they descend through the
// collection of triples, together with a small cache of the last
// value located within it.
//
// Grounded on ring.hpp's interval struct: a pair of row bounds plus
// "stored values" used to amortize the cost of repeated down_S_P /
// down_P_O / down_O_S traversals across a run of next_* calls from the
// same position.
package interval

// columnReader is the sliver of bwt.BWT's read surface enumeration
// needs. Kept as a local interface, rather than importing
// github.com/bebop/ring/bwt directly, so this package stays a leaf.
type columnReader interface {
	RangeNextValue(l, r int, x uint64) (uint64, bool)
}

// End is the sentinel GetCurValue returns once an interval's cursor
// has run past its last value - 0, the value no real triple component
// may hold either.
func End() uint64 { return 0 }

// Interval is a half-open row range [Left, Right) into one of Ring's
// BWT columns.
type Interval struct {
	Left, Right uint64

	haveStored   bool
	storedTarget uint64
	storedCursor uint64

	curSet bool
	cur    uint64
}

// New returns the interval [left, right).
func New(left, right uint64) Interval {
	return Interval{Left: left, Right: right}
}

// Empty reports whether the interval contains no rows.
func (iv Interval) Empty() bool {
	return iv.Left >= iv.Right
}

// Len returns the number of rows the interval spans.
func (iv Interval) Len() uint64 {
	if iv.Empty() {
		return 0
	}
	return iv.Right - iv.Left
}

// StoredValues returns the target value and cursor cached by the last
// call to SetStoredValues, and whether anything has been cached yet.
func (iv Interval) StoredValues() (target, cursor uint64, ok bool) {
	return iv.storedTarget, iv.storedCursor, iv.haveStored
}

// SetStoredValues caches a target value and a cursor (the caller decides
// what the cursor counts; NextThirdForSecond stores a select rank), letting the
// next down_*/next_* call resume from here instead of rescanning the
// interval from its start.
func (iv *Interval) SetStoredValues(target, cursor uint64) {
	iv.haveStored = true
	iv.storedTarget = target
	iv.storedCursor = cursor
}

// ClearStoredValues drops the cache, forcing the next lookup to start
// from the beginning of the interval again.
func (iv *Interval) ClearStoredValues() {
	iv.haveStored = false
	iv.storedTarget = 0
	iv.storedCursor = 0
}

// Begin positions the cursor at the interval's smallest value in col
// and returns it, or End() if the interval holds none.
func (iv *Interval) Begin(col columnReader) uint64 {
	return iv.advance(col, 0)
}

// NextValue advances the cursor to the smallest value in col strictly
// greater than v and returns it, or End() if none remains.
func (iv *Interval) NextValue(v uint64, col columnReader) uint64 {
	return iv.advance(col, v+1)
}

// GetCurValue returns the value the cursor last stopped on - whatever
// Begin or NextValue most recently returned - or End() if the cursor
// was never positioned or has run past the interval's last value.
func (iv Interval) GetCurValue() uint64 {
	if !iv.curSet {
		return End()
	}
	return iv.cur
}

func (iv *Interval) advance(col columnReader, from uint64) uint64 {
	v, ok := col.RangeNextValue(int(iv.Left), int(iv.Right), from)
	if !ok {
		iv.curSet = false
		iv.cur = 0
		return End()
	}
	iv.curSet = true
	iv.cur = v
	return v
}
