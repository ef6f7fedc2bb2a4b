package ring

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bebop/ring/bwt"
)

// magic identifies a serialized Ring; version lets the format evolve.
const (
	magic   uint32 = 0x52494e47 // "RING"
	version uint32 = 1
)

// Save writes r's three BWT images - BWT_S, BWT_P, BWT_O, in that
// order, each as its sequence followed by its C-array's cumulative
// counts - followed by a small trailer (max_s, max_p, max_o,
// n_triples). Unlike a flat triple dump, this is exactly the state
// build() would otherwise have to re-derive by re-sorting, so Load
// reconstructs a Ring in time linear in its row count rather than
// n log n.
func (r *Ring) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, uint64(magic)); err != nil {
		return fmt.Errorf("ring: write magic: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint64(version)); err != nil {
		return fmt.Errorf("ring: write version: %w", err)
	}

	for _, col := range []bwt.BWT{r.colS, r.colP, r.colO} {
		if err := writeImage(bw, col); err != nil {
			return err
		}
	}

	for _, v := range []uint64{r.maxS, r.maxP, r.maxO, r.nTriples} {
		if err := binary.Write(bw, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("ring: write trailer: %w", err)
		}
	}

	return bw.Flush()
}

func writeImage(w io.Writer, col bwt.BWT) error {
	seq := col.SeqSymbols()
	if err := binary.Write(w, binary.LittleEndian, uint64(len(seq))); err != nil {
		return fmt.Errorf("ring: write sequence length: %w", err)
	}
	for _, v := range seq {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("ring: write sequence symbol: %w", err)
		}
	}

	counts := col.CCounts()
	if err := binary.Write(w, binary.LittleEndian, uint64(len(counts))); err != nil {
		return fmt.Errorf("ring: write C-array length: %w", err)
	}
	for _, v := range counts {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("ring: write C-array count: %w", err)
		}
	}
	return nil
}

func readImage(r io.Reader) ([]uint64, []uint64, error) {
	var seqLen uint64
	if err := binary.Read(r, binary.LittleEndian, &seqLen); err != nil {
		return nil, nil, fmt.Errorf("%w: sequence length: %v", ErrCorrupt, err)
	}
	seq := make([]uint64, seqLen)
	for i := range seq {
		if err := binary.Read(r, binary.LittleEndian, &seq[i]); err != nil {
			return nil, nil, fmt.Errorf("%w: sequence symbol %d: %v", ErrCorrupt, i, err)
		}
	}

	var countsLen uint64
	if err := binary.Read(r, binary.LittleEndian, &countsLen); err != nil {
		return nil, nil, fmt.Errorf("%w: C-array length: %v", ErrCorrupt, err)
	}
	counts := make([]uint64, countsLen)
	for i := range counts {
		if err := binary.Read(r, binary.LittleEndian, &counts[i]); err != nil {
			return nil, nil, fmt.Errorf("%w: C-array count %d: %v", ErrCorrupt, i, err)
		}
	}

	return seq, counts, nil
}

// Load reads a Ring previously written by Save, rebuilding it as a
// static (non-mutable) Ring. Use LoadDynamic for a mutable one.
func Load(r io.Reader) (*Ring, error) {
	return load(r, false)
}

// LoadDynamic is Load's mutable counterpart.
func LoadDynamic(r io.Reader) (*Ring, error) {
	return load(r, true)
}

func load(r io.Reader, dynamic bool) (*Ring, error) {
	br := bufio.NewReader(r)

	var gotMagic, gotVersion uint64
	if err := binary.Read(br, binary.LittleEndian, &gotMagic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if err := binary.Read(br, binary.LittleEndian, &gotVersion); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if uint32(gotMagic) != magic {
		return nil, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}
	if uint32(gotVersion) != version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, gotVersion)
	}

	sSeq, sCounts, err := readImage(br)
	if err != nil {
		return nil, err
	}
	pSeq, pCounts, err := readImage(br)
	if err != nil {
		return nil, err
	}
	oSeq, oCounts, err := readImage(br)
	if err != nil {
		return nil, err
	}

	var maxS, maxP, maxO, nTriples uint64
	for _, v := range []*uint64{&maxS, &maxP, &maxO, &nTriples} {
		if err := binary.Read(br, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("%w: trailer: %v", ErrCorrupt, err)
		}
	}

	r := &Ring{maxS: maxS, maxP: maxP, maxO: maxO, nTriples: nTriples, dynamic: dynamic}
	if dynamic {
		r.colS = bwt.NewDynamicFromImage(sSeq, sCounts)
		r.colP = bwt.NewDynamicFromImage(pSeq, pCounts)
		r.colO = bwt.NewDynamicFromImage(oSeq, oCounts)
	} else {
		r.colS = bwt.NewStaticFromImage(sSeq, maxS+1, sCounts)
		r.colP = bwt.NewStaticFromImage(pSeq, maxP+1, pCounts)
		r.colO = bwt.NewStaticFromImage(oSeq, maxO+1, oCounts)
	}

	return r, nil
}
