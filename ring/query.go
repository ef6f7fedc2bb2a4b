package ring

import "github.com/bebop/ring/interval"

// Pattern is a triple query: a zero field is unbound (0 is the
// reserved sentinel, so it doubles safely as "match anything here").
type Pattern struct {
	S, P, O uint64
}

// Match returns every stored triple satisfying p, chosen via whichever
// of the six orderings lets the bound components narrow the search as
// early as possible.
func (r *Ring) Match(p Pattern) []Triple {
	switch {
	case p.S != 0 && p.P != 0 && p.O != 0:
		return r.matchSPO(p)
	case p.S != 0 && p.P != 0:
		return r.matchSP(p)
	case p.S != 0 && p.O != 0:
		return r.matchSO(p)
	case p.P != 0 && p.O != 0:
		return r.matchPO(p)
	case p.S != 0:
		return r.matchS(p)
	case p.P != 0:
		return r.matchP(p)
	case p.O != 0:
		return r.matchO(p)
	default:
		return r.Triples()
	}
}

func (r *Ring) matchSPO(p Pattern) []Triple {
	iv := r.InitSP(p.S, p.P)
	if r.ThereIsThird(OrderSPO, iv, p.O) {
		return []Triple{{S: p.S, P: p.P, O: p.O}}
	}
	return nil
}

func (r *Ring) matchSP(p Pattern) []Triple {
	iv := r.InitSP(p.S, p.P)
	out := make([]Triple, 0, iv.Len())
	for _, o := range r.AllThirdInRange(OrderSPO, iv) {
		out = append(out, Triple{S: p.S, P: p.P, O: o})
	}
	return out
}

// matchPO fixes predicate and object without the subject. colP (keyed
// by O, then S, then P) has S, not P, as its native second dimension in
// the OSP ordering, so this takes the reversed OPS path instead:
// narrow by O, enumerate P directly off the bwt, then chase the S
// values paired with this P.
func (r *Ring) matchPO(p Pattern) []Triple {
	iv := r.DownO(p.O)
	out := make([]Triple, 0)
	for _, s := range r.AllThirdForSecond(OrderOPS, iv, p.P) {
		out = append(out, Triple{S: s, P: p.P, O: p.O})
	}
	return out
}

// matchSO fixes subject and object without the predicate. colO (keyed
// by S, then P, then O) is the only column that fixes S first, so this
// takes the reversed SOP path: narrow by S, enumerate O directly off
// the bwt, then chase the P values paired with this O.
func (r *Ring) matchSO(p Pattern) []Triple {
	iv := r.DownS(p.S)
	out := make([]Triple, 0)
	for _, pv := range r.AllThirdForSecond(OrderSOP, iv, p.O) {
		out = append(out, Triple{S: p.S, P: pv, O: p.O})
	}
	return out
}

func (r *Ring) matchS(p Pattern) []Triple {
	iv := r.DownS(p.S)
	out := make([]Triple, 0, iv.Len())
	for row := int(iv.Left); row < int(iv.Right); row++ {
		o := r.colO.Access(row)
		_, pRow := chaseRow(r.colO, r.colP, row)
		out = append(out, Triple{S: p.S, P: r.colP.Access(pRow), O: o})
	}
	return out
}

func (r *Ring) matchP(p Pattern) []Triple {
	iv := r.DownP(p.P)
	out := make([]Triple, 0, iv.Len())
	for row := int(iv.Left); row < int(iv.Right); row++ {
		s := r.colS.Access(row)
		_, oRow := chaseRow(r.colS, r.colO, row)
		out = append(out, Triple{S: s, P: p.P, O: r.colO.Access(oRow)})
	}
	return out
}

func (r *Ring) matchO(p Pattern) []Triple {
	iv := r.DownO(p.O)
	out := make([]Triple, 0, iv.Len())
	for row := int(iv.Left); row < int(iv.Right); row++ {
		pv := r.colP.Access(row)
		_, sRow := chaseRow(r.colP, r.colS, row)
		out = append(out, Triple{S: r.colS.Access(sRow), P: pv, O: p.O})
	}
	return out
}

// DownS, DownP and DownO bind a single component from the full
// collection, returning the Interval a leapfrog-style join would
// resume from to enumerate the other two. They are ring.hpp's
// down_S/down_P/down_O as seen from outside this package; within it
// they're simply InitS/InitP/InitO.
func (r *Ring) DownS(s uint64) interval.Interval { return r.InitS(s) }
func (r *Ring) DownP(p uint64) interval.Interval { return r.InitP(p) }
func (r *Ring) DownO(o uint64) interval.Interval { return r.InitO(o) }

// InitS returns the row range, in colO, of every triple with subject s.
// Enumerate its objects with MinThird/NextThird(OrderSPO, ...).
func (r *Ring) InitS(s uint64) interval.Interval {
	return r.DownFirst(OrderSPO, r.Open(OrderSPO), s)
}

// InitP returns the row range, in colS, of every triple with predicate
// p. Enumerate its subjects with MinThird/NextThird(OrderPOS, ...).
func (r *Ring) InitP(p uint64) interval.Interval {
	return r.DownFirst(OrderPOS, r.Open(OrderPOS), p)
}

// InitO returns the row range, in colP, of every triple with object o.
// Enumerate its predicates with MinThird/NextThird(OrderOSP, ...).
func (r *Ring) InitO(o uint64) interval.Interval {
	return r.DownFirst(OrderOSP, r.Open(OrderOSP), o)
}

// InitSP returns the row range, in colO, of every triple with subject s
// and predicate p. Enumerate its objects with MinThird/NextThird
// (OrderSPO, ...).
func (r *Ring) InitSP(s, p uint64) interval.Interval {
	iv := r.DownFirst(OrderSPO, r.Open(OrderSPO), s)
	return r.DownSecond(OrderSPO, iv, p)
}

// InitSO returns the row range, in colP, of every triple with subject s
// and object o. Enumerate its predicates with MinThird/NextThird
// (OrderOSP, ...).
func (r *Ring) InitSO(s, o uint64) interval.Interval {
	iv := r.DownFirst(OrderOSP, r.Open(OrderOSP), o)
	return r.DownSecond(OrderOSP, iv, s)
}

// InitPO returns the row range, in colS, of every triple with predicate
// p and object o. Enumerate its subjects with MinThird/NextThird
// (OrderPOS, ...).
func (r *Ring) InitPO(p, o uint64) interval.Interval {
	iv := r.DownFirst(OrderPOS, r.Open(OrderPOS), p)
	return r.DownSecond(OrderPOS, iv, o)
}

// InitSPO returns a single-row interval, in colO, if (s, p, o) is
// present, or an empty interval otherwise.
func (r *Ring) InitSPO(s, p, o uint64) interval.Interval {
	iv := r.InitSP(s, p)
	lo := r.colO.Rank(o, int(iv.Left))
	hi := r.colO.Rank(o, int(iv.Right))
	if hi <= lo {
		return interval.New(iv.Left, iv.Left)
	}
	row, ok := r.colO.Select(o, lo)
	if !ok || row < int(iv.Left) || row >= int(iv.Right) {
		return interval.New(iv.Left, iv.Left)
	}
	return interval.New(uint64(row), uint64(row+1))
}
