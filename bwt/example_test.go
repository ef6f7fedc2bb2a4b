package bwt_test

import (
	"fmt"

	"github.com/bebop/ring/bwt"
)

func ExampleBWT_Access() {
	symbols := []uint64{3, 1, 2, 1, 0, 3, 2, 0}
	b := bwt.NewStatic(symbols, 4)

	fmt.Println(b.Access(0), b.Access(4), b.Access(7))
	// Output: 3 0 0
}

func ExampleBWT_NElems() {
	symbols := []uint64{3, 1, 2, 1, 0, 3, 2, 0}
	b := bwt.NewStatic(symbols, 4)

	fmt.Println(b.NElems(1), b.NElems(3))
	// Output: 2 2
}

func ExampleBWT_BackwardStep() {
	symbols := []uint64{2, 0, 1, 0, 2, 1}
	b := bwt.NewStatic(symbols, 3)

	fmt.Println(b.BackwardStep(0))
	// Output: 4
}
