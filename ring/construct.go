package ring

import (
	"golang.org/x/exp/slices"

	"github.com/bebop/ring/bwt"
)

// New builds a static Ring from a batch of triples, grounded on
// ring.hpp's three-pass construction: sort the triples into each of
// the three cyclic rotations, then hand each rotation's innermost
// column - together with the preceding column's values, row for row -
// to a BWT whose sequence and C-array are built over the two different
// alphabets the comments on Ring's fields in ring.go describe.
func New(triples []Triple) (*Ring, error) {
	return build(triples, false)
}

// NewDynamic builds a Ring whose three BWTs support Insert/RemoveEdge/
// RemoveNode, at the cost of the static variant's more compact
// representation.
func NewDynamic(triples []Triple) (*Ring, error) {
	return build(triples, true)
}

func build(triples []Triple, dynamic bool) (*Ring, error) {
	cp := make([]Triple, len(triples))
	copy(cp, triples)

	var maxS, maxP, maxO uint64
	for _, t := range cp {
		if err := validateTriple(t); err != nil {
			return nil, err
		}
		if t.S > maxS {
			maxS = t.S
		}
		if t.P > maxP {
			maxP = t.P
		}
		if t.O > maxO {
			maxO = t.O
		}
	}

	r := &Ring{maxS: maxS, maxP: maxP, maxO: maxO, nTriples: uint64(len(cp)), dynamic: dynamic}

	spo := make([]Triple, len(cp))
	copy(spo, cp)
	slices.SortStableFunc(spo, byLess(lessSPO))

	osp := make([]Triple, len(cp))
	copy(osp, cp)
	slices.SortStableFunc(osp, byLess(lessOSP))

	pos := make([]Triple, len(cp))
	copy(pos, cp)
	slices.SortStableFunc(pos, byLess(lessPOS))

	r.colO = buildBWT(spo, func(t Triple) uint64 { return t.O }, maxO+1, func(t Triple) uint64 { return t.S }, maxS+1, dynamic)
	r.colP = buildBWT(osp, func(t Triple) uint64 { return t.P }, maxP+1, func(t Triple) uint64 { return t.O }, maxO+1, dynamic)
	r.colS = buildBWT(pos, func(t Triple) uint64 { return t.S }, maxS+1, func(t Triple) uint64 { return t.P }, maxP+1, dynamic)

	return r, nil
}

// byLess turns a strict less-than into the three-way comparison
// slices.SortStableFunc takes.
func byLess(less func(a, b Triple) bool) func(a, b Triple) int {
	return func(a, b Triple) int {
		if less(a, b) {
			return -1
		}
		if less(b, a) {
			return 1
		}
		return 0
	}
}

func lessSPO(a, b Triple) bool {
	if a.S != b.S {
		return a.S < b.S
	}
	if a.P != b.P {
		return a.P < b.P
	}
	return a.O < b.O
}

func lessOSP(a, b Triple) bool {
	if a.O != b.O {
		return a.O < b.O
	}
	if a.S != b.S {
		return a.S < b.S
	}
	return a.P < b.P
}

func lessPOS(a, b Triple) bool {
	if a.P != b.P {
		return a.P < b.P
	}
	if a.O != b.O {
		return a.O < b.O
	}
	return a.S < b.S
}

// buildBWT extracts seqOf(t) and cOf(t) from sorted, row for row, and
// builds the BWT whose own sequence is the former and whose C-array is
// cumulative counts over the latter.
func buildBWT(sorted []Triple, seqOf func(Triple) uint64, seqAlphabet uint64, cOf func(Triple) uint64, cAlphabet uint64, dynamic bool) bwt.BWT {
	seq := make([]uint64, len(sorted))
	c := make([]uint64, len(sorted))
	for i, t := range sorted {
		seq[i] = seqOf(t)
		c[i] = cOf(t)
	}
	if dynamic {
		return bwt.NewDynamicWithExternalC(seq, c, cAlphabet)
	}
	return bwt.NewStaticWithExternalC(seq, seqAlphabet, c, cAlphabet)
}

// chaseRow follows the ring cycle one step: given a row in from (whose
// sequence holds some column's values) it finds the row in to that
// describes the very same triple, by exploiting the stable-sort
// relationship construction gives every pair of adjacent columns - the
// same relationship that makes the ring cycle close (see
// TestRingCycleInvariant).
//
// to's C-array must be indexed by from's sequence alphabet (e.g.
// from=colO, to=colP: colP's C-array is over O, colO's sequence is O).
func chaseRow(from, to bwt.BWT, row int) (value uint64, toRow int) {
	value = from.Access(row)
	toRow = int(to.C(value)) + from.Ranky(row)
	return value, toRow
}

// Triples returns every stored triple, in SPO row order. Intended for
// serialization and tests, not as a query primitive.
func (r *Ring) Triples() []Triple {
	n := r.colO.Len()
	out := make([]Triple, 0, n)
	for row := 0; row < n; row++ {
		o := r.colO.Access(row)
		s := r.colO.BsearchC(uint64(row))
		_, pRow := chaseRow(r.colO, r.colP, row)
		p := r.colP.Access(pRow)
		out = append(out, Triple{S: s, P: p, O: o})
	}
	return out
}
