package ring

import "github.com/bebop/ring/interval"

// Insert adds t to the Ring. It returns ErrNotDynamic if the Ring was
// built with New rather than NewDynamic, ErrReservedSentinel if t
// contains the reserved 0 value, and ErrRingInvariantViolated if the
// three columns disagree about whether t is already present.
//
// Grounded on ring.hpp's insert: the same edge is spliced into all
// three BWTs so that every ordering keeps seeing it. Each BWT's own
// sequence gets the new row (InsertSeqOnly); the C-array that counts
// that new value belongs to a *different* BWT, whose C-array alone is
// bumped (InsertC) - the two always travel together but never on the
// same BWT, since every column's sequence and C-array here are drawn
// from different alphabets.
func (r *Ring) Insert(t Triple) error {
	if !r.dynamic {
		return ErrNotDynamic
	}
	if err := validateTriple(t); err != nil {
		return err
	}

	_, okO := r.locateO(t)
	_, okS := r.locateS(t)
	_, okP := r.locateP(t)
	if okO && okS && okP {
		return nil // already present; insert is idempotent, matching a set's semantics.
	}
	if okO || okS || okP {
		return ErrRingInvariantViolated
	}

	if t.S > r.maxS {
		r.colO.IncrementAlphabet(t.S + 1)
		r.maxS = t.S
	}
	if t.P > r.maxP {
		r.colS.IncrementAlphabet(t.P + 1)
		r.maxP = t.P
	}
	if t.O > r.maxO {
		r.colP.IncrementAlphabet(t.O + 1)
		r.maxO = t.O
	}

	oLo, oHi := blockFor(r.colO, t.S)
	oSub := projectSecond(r.colS, interval.New(uint64(oLo), uint64(oHi)), t.S, t.P)
	rowO := insertPosByValue(r.colO, int(oSub.Left), int(oSub.Right), t.O)

	sLo, sHi := blockFor(r.colS, t.P)
	sSub := projectSecond(r.colP, interval.New(uint64(sLo), uint64(sHi)), t.P, t.O)
	rowS := insertPosByValue(r.colS, int(sSub.Left), int(sSub.Right), t.S)

	pLo, pHi := blockFor(r.colP, t.O)
	pSub := projectSecond(r.colO, interval.New(uint64(pLo), uint64(pHi)), t.O, t.S)
	rowP := insertPosByValue(r.colP, int(pSub.Left), int(pSub.Right), t.P)

	if err := r.colO.InsertSeqOnly(rowO, t.O); err != nil {
		return err
	}
	r.colP.InsertC(t.O)

	if err := r.colS.InsertSeqOnly(rowS, t.S); err != nil {
		return err
	}
	r.colO.InsertC(t.S)

	if err := r.colP.InsertSeqOnly(rowP, t.P); err != nil {
		return err
	}
	r.colS.InsertC(t.P)

	r.nTriples++
	return nil
}

// locateO, locateS and locateP find t's row within colO, colS and colP
// respectively, each via the same block-then-project narrowing
// DownFirst/DownSecond use, cycled one step around S -> P -> O -> S.
func (r *Ring) locateO(t Triple) (int, bool) {
	lo, hi := blockFor(r.colO, t.S)
	sub := projectSecond(r.colS, interval.New(uint64(lo), uint64(hi)), t.S, t.P)
	return exactRow(r.colO, int(sub.Left), int(sub.Right), t.O)
}

func (r *Ring) locateS(t Triple) (int, bool) {
	lo, hi := blockFor(r.colS, t.P)
	sub := projectSecond(r.colP, interval.New(uint64(lo), uint64(hi)), t.P, t.O)
	return exactRow(r.colS, int(sub.Left), int(sub.Right), t.S)
}

func (r *Ring) locateP(t Triple) (int, bool) {
	lo, hi := blockFor(r.colP, t.O)
	sub := projectSecond(r.colO, interval.New(uint64(lo), uint64(hi)), t.O, t.S)
	return exactRow(r.colP, int(sub.Left), int(sub.Right), t.P)
}

// locateAll finds t's row in all three BWTs. Per the ring invariant,
// either all three agree that t is present or all three agree it is
// absent.
func (r *Ring) locateAll(t Triple) (rowO, rowS, rowP int, ok bool) {
	rowO, okO := r.locateO(t)
	rowS, okS := r.locateS(t)
	rowP, okP := r.locateP(t)
	if okO != okS || okS != okP {
		return 0, 0, 0, false
	}
	return rowO, rowS, rowP, okO
}

// RemoveEdge deletes t from the Ring. It returns ErrNotFound if t is
// not present, and ErrRingInvariantViolated if the three columns
// disagree about whether it is.
func (r *Ring) RemoveEdge(t Triple) error {
	_, _, _, err := r.RemoveEdgeAndCheck(t)
	return err
}

// RemoveEdgeAndCheck deletes t and reports whether s, p and o still
// occur anywhere in the Ring afterwards - in their own role (s and o as
// a subject or object, p as a predicate) - letting a caller free an
// identifier the moment nothing references it any more.
//
// Grounded on ring.hpp's remove_edge_and_check: whether a value is
// "still used" is answered directly off the BWTs whose own sequences
// store those roles (colS and colO for s and o, colP for p), via
// NElems, rather than rescanning Triples().
func (r *Ring) RemoveEdgeAndCheck(t Triple) (sStillUsed, pStillUsed, oStillUsed bool, err error) {
	if !r.dynamic {
		return false, false, false, ErrNotDynamic
	}
	if err := validateTriple(t); err != nil {
		return false, false, false, err
	}

	rowO, okO := r.locateO(t)
	rowS, okS := r.locateS(t)
	rowP, okP := r.locateP(t)
	if !okO && !okS && !okP {
		return false, false, false, ErrNotFound
	}
	if !okO || !okS || !okP {
		return false, false, false, ErrRingInvariantViolated
	}

	if _, err := r.colO.RemoveSeqOnly(rowO); err != nil {
		return false, false, false, err
	}
	r.colP.RemoveC(t.O)

	if _, err := r.colS.RemoveSeqOnly(rowS); err != nil {
		return false, false, false, err
	}
	r.colO.RemoveC(t.S)

	if _, err := r.colP.RemoveSeqOnly(rowP); err != nil {
		return false, false, false, err
	}
	r.colS.RemoveC(t.P)

	r.nTriples--

	sStillUsed = r.colS.NElems(t.S) > 0 || r.colO.NElems(t.S) > 0
	oStillUsed = r.colS.NElems(t.O) > 0 || r.colO.NElems(t.O) > 0
	return sStillUsed, r.colP.NElems(t.P) > 0, oStillUsed, nil
}

// RemoveNode deletes every triple in which value appears as a subject
// or an object, cascading the removal across all three BWTs. value is
// drawn from the shared SO alphabet (§3); it is never matched against
// a triple's predicate, since the P alphabet is disjoint from SO and a
// value cannot simultaneously be a valid subject/object id and a valid
// predicate id.
//
// Grounded on ring.hpp's remove_node: a single value can be bound to
// more than one role (used as a subject in one triple and an object in
// another), so both the subject and the object role are swept.
func (r *Ring) RemoveNode(value uint64) error {
	_, _, err := r.RemoveNodeWithCheck(value)
	return err
}

// RemoveNodeWithCheck removes every triple in which value appears as a
// subject or an object, and reports every other subject/object value
// and every predicate value that no longer occurs anywhere once the
// sweep finishes.
//
// Grounded on ring.hpp's remove_node_with_check. Each role is swept by
// findTripleWhere, which scans colO's rows and rebuilds each row's
// triple the way Triples() does (S via colO's C-array, P via one
// get_C+ranky hop into colP); every match is removed through
// RemoveEdgeAndCheck, one triple at a time, so a value bound to value
// in both roles is only ever removed once per occurrence.
func (r *Ring) RemoveNodeWithCheck(value uint64) (soRemoved, pRemoved []uint64, err error) {
	if !r.dynamic {
		return nil, nil, ErrNotDynamic
	}
	if value == 0 {
		return nil, nil, ErrReservedSentinel
	}

	touchedSO := map[uint64]bool{}
	touchedP := map[uint64]bool{}
	removed := 0

	removeWhere := func(roleHolds func(Triple) bool) error {
		for {
			t, found := r.findTripleWhere(roleHolds)
			if !found {
				return nil
			}
			if _, _, _, err := r.RemoveEdgeAndCheck(t); err != nil {
				return err
			}
			touchedSO[t.S] = true
			touchedP[t.P] = true
			touchedSO[t.O] = true
			removed++
		}
	}

	if err := removeWhere(func(t Triple) bool { return t.S == value }); err != nil {
		return nil, nil, err
	}
	if err := removeWhere(func(t Triple) bool { return t.O == value }); err != nil {
		return nil, nil, err
	}

	if removed == 0 {
		return nil, nil, ErrNotFound
	}

	for v := range touchedSO {
		if v != value && r.colS.NElems(v) == 0 && r.colO.NElems(v) == 0 {
			soRemoved = append(soRemoved, v)
		}
	}
	for v := range touchedP {
		if r.colP.NElems(v) == 0 {
			pRemoved = append(pRemoved, v)
		}
	}
	return soRemoved, pRemoved, nil
}

// findTripleWhere scans colO's current rows for the first triple
// matching pred, reconstructing each candidate the same way Triples()
// does. It re-reads live state on every call, so repeated calls inside
// a removal loop naturally skip rows already deleted by an earlier
// iteration.
func (r *Ring) findTripleWhere(pred func(Triple) bool) (Triple, bool) {
	n := r.colO.Len()
	for row := 0; row < n; row++ {
		o := r.colO.Access(row)
		s := r.colO.BsearchC(uint64(row))
		_, pRow := chaseRow(r.colO, r.colP, row)
		p := r.colP.Access(pRow)
		t := Triple{S: s, P: p, O: o}
		if pred(t) {
			return t, true
		}
	}
	return Triple{}, false
}
