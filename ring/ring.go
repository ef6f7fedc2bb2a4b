// Package ring implements a self-indexed store for integer-valued
// RDF-like triples. A Ring keeps three sorted projections of the same
// triple set - one per cyclic rotation of (S, P, O) - each backed by a
// github.com/bebop/ring/bwt BWT, so that fixing any one component gives
// O(log n) access to a contiguous row range, and the remaining two
// components can be enumerated - in either order - using rank/select/
// range-next-value plus cross-column LF-mapping, without ever
// materializing a fourth, fifth or sixth sorted copy of the triples.
//
// Grounded on _examples/original_source/include/ring.hpp's ring<...>
// class: three cooperating BWTs whose fixed-point rotation (S, P, O) ->
// (P, O, S) -> (O, S, P) lets every one of the six lexicographic triple
// orderings be answered without materializing all six. Unlike
// ring.hpp, each BWT here stores only its own column's sequence and a
// C-array over the PRECEDING column's alphabet - see construct.go -
// rather than a fully packed wavelet-tree-of-three-sequences; the rows
// of any one BWT are themselves never duplicated into a second,
// redundant sorted slice.
package ring

import (
	"errors"

	"github.com/bebop/ring/bwt"
)

// Triple is one (subject, predicate, object) edge. 0 is reserved as a
// sentinel and never a valid component value.
type Triple struct {
	S, P, O uint64
}

// Sentinel errors surfaced by Ring's mutation and load paths.
var (
	ErrReservedSentinel      = errors.New("ring: 0 is a reserved value and cannot appear in a triple")
	ErrNotFound              = errors.New("ring: triple not found")
	ErrCorrupt               = errors.New("ring: serialized ring is malformed")
	ErrRingInvariantViolated = errors.New("ring: the three columns disagree about this triple")
	ErrNotDynamic            = errors.New("ring: this ring was not built for mutation")
)

// Ring is a self-indexed, order-agnostic store of Triples.
//
// Read-only navigation methods perform no writes to the Ring; callers
// may use them concurrently from multiple goroutines.
// Mutating methods (Insert, RemoveEdge, RemoveNode, ...) are not
// internally synchronized - per the single-writer/multi-reader
// contract, callers must serialize their own writes and must not read
// through a Ring while a write to it is in flight.
type Ring struct {
	// colO's sequence is O, sorted in (S, P, O) order; its C-array is
	// cumulative counts over S. Fixing S is a pure C-array lookup on
	// colO - the "S leads to O" edge of the ring cycle.
	colO bwt.BWT
	// colP's sequence is P, sorted in (O, S, P) order; its C-array is
	// cumulative counts over O. Fixing O is a pure C-array lookup on
	// colP - the "O leads to P" edge of the ring cycle.
	colP bwt.BWT
	// colS's sequence is S, sorted in (P, O, S) order; its C-array is
	// cumulative counts over P. Fixing P is a pure C-array lookup on
	// colS - the "P leads to S" edge, closing the cycle S -> O -> P -> S.
	colS bwt.BWT

	maxS, maxP, maxO uint64
	nTriples         uint64
	dynamic          bool
}

// NTriples returns the number of triples currently stored.
func (r *Ring) NTriples() uint64 {
	return r.nTriples
}

// MaxS, MaxP and MaxO return the largest subject, predicate and object
// value respectively ever stored (even if since removed), matching
// ring.hpp's max_s/max_p/max_o fields used to size the C-arrays.
func (r *Ring) MaxS() uint64 { return r.maxS }
func (r *Ring) MaxP() uint64 { return r.maxP }
func (r *Ring) MaxO() uint64 { return r.maxO }

func validateTriple(t Triple) error {
	if t.S == 0 || t.P == 0 || t.O == 0 {
		return ErrReservedSentinel
	}
	return nil
}
