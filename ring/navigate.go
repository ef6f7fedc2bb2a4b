package ring

import (
	"github.com/bebop/ring/bwt"
	"github.com/bebop/ring/interval"
)

// Ordering names one of the six lexicographic triple orderings a
// leapfrog-style join can drive the Ring through.
type Ordering int

const (
	OrderSPO Ordering = iota
	OrderSOP
	OrderPOS
	OrderPSO
	OrderOSP
	OrderOPS
)

// native reports whether this ordering's second fixed dimension is
// reached by a contiguous narrow of the ordering's own column
// (DownSecond) rather than a scatter read across it (MinSecond/
// NextSecond/AllThirdForSecond).
//
// Each of the three BWTs built in construct.go supports exactly two
// orderings - the one matching its own sort order (native) and its
// mirror image with the last two dimensions swapped (reversed) - which
// is how three BWTs cover all six orderings without a fourth or fifth
// column.
func (o Ordering) native() bool {
	switch o {
	case OrderSPO, OrderPOS, OrderOSP:
		return true
	default:
		return false
	}
}

// primary is the BWT order.DownFirst fixes its first dimension against.
func (o Ordering) primary(r *Ring) bwt.BWT {
	switch o {
	case OrderSPO, OrderSOP:
		return r.colO
	case OrderPOS, OrderPSO:
		return r.colS
	case OrderOSP, OrderOPS:
		return r.colP
	default:
		panic("ring: invalid ordering")
	}
}

// secondCross is the BWT whose own sequence holds order's first fixed
// dimension and whose C-array is over order's second - the BWT
// DownSecond uses to turn a known second-dimension value into an
// offset within the interval DownFirst already narrowed, without
// leaving order's primary BWT's row space. Valid only for native
// orderings.
func (o Ordering) secondCross(r *Ring) bwt.BWT {
	switch o {
	case OrderSPO:
		return r.colS
	case OrderPOS:
		return r.colP
	case OrderOSP:
		return r.colO
	default:
		panic("ring: secondCross called on a reversed ordering")
	}
}

// thirdCross is the BWT whose C-array is over order's primary BWT's
// own sequence alphabet - the BWT AllThirdForSecond chases matching
// rows into to read the ordering's third dimension. Valid only for
// reversed orderings.
func (o Ordering) thirdCross(r *Ring) bwt.BWT {
	switch o {
	case OrderSOP:
		return r.colP
	case OrderPSO:
		return r.colO
	case OrderOPS:
		return r.colS
	default:
		panic("ring: thirdCross called on a native ordering")
	}
}

// blockFor returns the contiguous row range of prim with C-array value
// exactly v - a pure C-array lookup, the "whole range" degenerate case
// of backward search that needs no rank call at all. A v beyond prim's
// C-array alphabet gets the empty range at the end of prim.
func blockFor(prim bwt.BWT, v uint64) (lo, hi int) {
	if v >= prim.AlphabetSize() {
		end := int(prim.C(prim.AlphabetSize()))
		return end, end
	}
	return int(prim.C(v)), int(prim.C(v + 1))
}

// projectSecond narrows base - already bound to firstValue inside some
// BWT's row space - to rows additionally bound to secondValue, using
// cross, the BWT whose own sequence holds firstValue's dimension and
// whose C-array is over secondValue's dimension. The result stays
// within base's BWT's row space; no jump to a different BWT is needed,
// because this is ring.hpp's down_S_P (and its mirrors down_P_O,
// down_O_S): binding the ordering's second dimension while already
// inside its primary column.
func projectSecond(cross bwt.BWT, base interval.Interval, firstValue, secondValue uint64) interval.Interval {
	lo, hi := blockFor(cross, secondValue)
	start := uint64(cross.Rank(firstValue, lo))
	end := uint64(cross.Rank(firstValue, hi))
	return interval.New(base.Left+start, base.Left+end)
}

// insertPosByValue returns the row within [lo, hi) at which v should be
// inserted into b to keep it sorted - valid because every sub-range
// this is called on is itself sorted by the dimension b stores.
func insertPosByValue(b bwt.BWT, lo, hi int, v uint64) int {
	for lo < hi {
		mid := (lo + hi) / 2
		if b.Access(mid) < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// exactRow returns the row in [lo, hi) whose value equals v, or false
// if no such row exists.
func exactRow(b bwt.BWT, lo, hi int, v uint64) (int, bool) {
	i := insertPosByValue(b, lo, hi, v)
	if i < hi && b.Access(i) == v {
		return i, true
	}
	return 0, false
}

// Open returns the full row range for order's primary BWT - nothing
// fixed yet. This is ring.hpp's open_SPO/open_SOP/... family.
func (r *Ring) Open(order Ordering) interval.Interval {
	return interval.New(0, uint64(order.primary(r).Len()))
}

// DownFirst narrows iv - which must come from Open(order) - to rows
// whose first fixed dimension equals v. This is ring.hpp's
// down_S/down_P/down_O: every ordering enters its column by fixing dim1 first,
// via a pure C-array block lookup, regardless of whether the second
// step that follows is native or reversed.
func (r *Ring) DownFirst(order Ordering, iv interval.Interval, v uint64) interval.Interval {
	lo, hi := blockFor(order.primary(r), v)
	return interval.New(uint64(lo), uint64(hi))
}

// DownSecond narrows iv - which must come from DownFirst on a native
// ordering (SPO, POS or OSP) - to rows whose second fixed dimension
// equals v. Calling this on a reversed ordering is a programming error;
// use MinSecond/NextSecond instead.
func (r *Ring) DownSecond(order Ordering, iv interval.Interval, v uint64) interval.Interval {
	if !order.native() {
		panic("ring: DownSecond called on a reversed ordering")
	}
	prim := order.primary(r)
	firstValue := prim.BsearchC(iv.Left)
	return projectSecond(order.secondCross(r), iv, firstValue, v)
}

// MinThird returns the smallest third-dimension value present in iv -
// which must come from DownSecond on a native ordering.
func (r *Ring) MinThird(order Ordering, iv interval.Interval) (uint64, bool) {
	v := iv.Begin(order.primary(r))
	return v, v != interval.End()
}

// NextThird returns the smallest third-dimension value present in iv
// that is strictly greater than after.
func (r *Ring) NextThird(order Ordering, iv interval.Interval, after uint64) (uint64, bool) {
	v := iv.NextValue(after, order.primary(r))
	return v, v != interval.End()
}

// ThereIsThird reports whether v occurs as a third-dimension value
// anywhere in iv.
func (r *Ring) ThereIsThird(order Ordering, iv interval.Interval, v uint64) bool {
	prim := order.primary(r)
	return prim.Rank(v, int(iv.Right))-prim.Rank(v, int(iv.Left)) > 0
}

// AllThirdInRange returns every third-dimension value in iv, ascending,
// without duplicates - ring.hpp's all_*_in_range.
func (r *Ring) AllThirdInRange(order Ordering, iv interval.Interval) []uint64 {
	var out []uint64
	v, ok := r.MinThird(order, iv)
	for ok {
		out = append(out, v)
		v, ok = r.NextThird(order, iv, v)
	}
	return out
}

// MinSecond returns the smallest second-dimension value present in iv -
// which must come from DownFirst on a reversed ordering (SOP, PSO or
// OPS). This reads order's own primary BWT directly, the same as
// MinThird does on the native orderings; it's named separately because
// here it plays the role of the ordering's second fixed dimension
// rather than its third.
func (r *Ring) MinSecond(order Ordering, iv interval.Interval) (uint64, bool) {
	if order.native() {
		panic("ring: MinSecond called on a native ordering")
	}
	v := iv.Begin(order.primary(r))
	return v, v != interval.End()
}

// NextSecond is MinSecond's successor-value counterpart.
func (r *Ring) NextSecond(order Ordering, iv interval.Interval, after uint64) (uint64, bool) {
	if order.native() {
		panic("ring: NextSecond called on a native ordering")
	}
	v := iv.NextValue(after, order.primary(r))
	return v, v != interval.End()
}

// ThereIsSecond reports whether v occurs as a second-dimension value
// anywhere in iv, for a reversed ordering.
func (r *Ring) ThereIsSecond(order Ordering, iv interval.Interval, v uint64) bool {
	prim := order.primary(r)
	return prim.Rank(v, int(iv.Right))-prim.Rank(v, int(iv.Left)) > 0
}

// NextThirdForSecond returns the next third-dimension value, in
// ascending row order, for rows in iv whose second dimension equals
// second - ring.hpp's next_P_in_S/next_S_in_O. The first call for a
// given second dimension pays for a Rank into prim; every later call
// against the same iv and the same second resumes from the select rank
// iv.SetStoredValues cached on the previous call rather than
// recomputing it, the amortisation ring.hpp's stored_values field
// exists for. Passing a fresh second (or a fresh iv) simply recomputes
// the starting rank, since the cached target no longer matches.
func (r *Ring) NextThirdForSecond(order Ordering, iv *interval.Interval, second uint64) (uint64, bool) {
	if order.native() {
		panic("ring: NextThirdForSecond called on a native ordering")
	}
	prim := order.primary(r)
	cross := order.thirdCross(r)

	var rank uint64
	if target, cursor, ok := iv.StoredValues(); ok && target == second {
		rank = cursor
	} else {
		rank = uint64(prim.Rank(second, int(iv.Left)))
	}

	endRank := uint64(prim.Rank(second, int(iv.Right)))
	if rank >= endRank {
		iv.SetStoredValues(second, rank)
		return 0, false
	}
	row, ok := prim.Select(second, int(rank))
	if !ok || row >= int(iv.Right) {
		iv.SetStoredValues(second, rank)
		return 0, false
	}
	_, toRow := chaseRow(prim, cross, row)
	iv.SetStoredValues(second, rank+1)
	return cross.Access(toRow), true
}

// AllThirdForSecond returns every third-dimension value - in ascending
// row order, not numeric order - paired with the fixed (first, second)
// dimensions of a reversed ordering. Rows sharing a second-dimension
// value are scattered across iv rather than contiguous, since iv is
// only narrowed by the first dimension, so this drives
// NextThirdForSecond over a private copy of iv until it runs dry.
func (r *Ring) AllThirdForSecond(order Ordering, iv interval.Interval, second uint64) []uint64 {
	iv.ClearStoredValues()
	var out []uint64
	for {
		v, ok := r.NextThirdForSecond(order, &iv, second)
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// ThereIsThirdForSecond reports whether value occurs as the ordering's
// third dimension among rows in iv whose second dimension equals
// second.
func (r *Ring) ThereIsThirdForSecond(order Ordering, iv interval.Interval, second, value uint64) bool {
	for _, v := range r.AllThirdForSecond(order, iv, second) {
		if v == value {
			return true
		}
	}
	return false
}
