package bwt

import "testing"

func TestBitVectorSetGet(t *testing.T) {
	bv := newBitVector(130)
	if bv.len() != 130 {
		t.Fatalf("expected len 130, got %d", bv.len())
	}

	set := map[int]bool{0: true, 1: false, 63: true, 64: true, 65: false, 129: true}
	for i, v := range set {
		bv.setBit(i, v)
	}
	for i, v := range set {
		if got := bv.getBit(i); got != v {
			t.Errorf("bit %d: expected %v, got %v", i, v, got)
		}
	}
	for i := 0; i < bv.len(); i++ {
		if _, ok := set[i]; ok {
			continue
		}
		if bv.getBit(i) {
			t.Errorf("bit %d: expected false by default, got true", i)
		}
	}
}

func TestBitVectorOutOfRangePanics(t *testing.T) {
	bv := newBitVector(8)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range access")
		}
	}()
	bv.getBit(8)
}

func TestDynamicBitVectorPushInsertRemove(t *testing.T) {
	d := newDynamicBitvector()
	for _, v := range []bool{true, false, true, true, false} {
		d.push(v)
	}
	want := []bool{true, false, true, true, false}
	for i, w := range want {
		if got := d.getBit(i); got != w {
			t.Fatalf("bit %d: expected %v, got %v", i, w, got)
		}
	}

	d.insertAt(2, false)
	want = []bool{true, false, false, true, true, false}
	for i, w := range want {
		if got := d.getBit(i); got != w {
			t.Fatalf("after insert, bit %d: expected %v, got %v", i, w, got)
		}
	}

	d.removeAt(0)
	want = []bool{false, false, true, true, false}
	if d.len() != len(want) {
		t.Fatalf("expected len %d, got %d", len(want), d.len())
	}
	for i, w := range want {
		if got := d.getBit(i); got != w {
			t.Fatalf("after remove, bit %d: expected %v, got %v", i, w, got)
		}
	}
}

func TestDynamicBitVectorGrows(t *testing.T) {
	d := newDynamicBitvector()
	for i := 0; i < 200; i++ {
		d.push(i%3 == 0)
	}
	if d.len() != 200 {
		t.Fatalf("expected len 200, got %d", d.len())
	}
	for i := 0; i < 200; i++ {
		want := i%3 == 0
		if got := d.getBit(i); got != want {
			t.Fatalf("bit %d: expected %v, got %v", i, want, got)
		}
	}
}
