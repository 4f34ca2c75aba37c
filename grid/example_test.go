// Package grid_test provides examples for the strided view and the
// index iterator.
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/fastmarch/grid"
)

// ExampleGrid demonstrates viewing a flat buffer as a 2×3 grid with the
// first axis fastest.
func ExampleGrid() {
	buffer := []int{10, 11, 20, 21, 30, 31}
	g, err := grid.New([]int{2, 3}, buffer)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.At([]int{0, 0}), g.At([]int{1, 0}), g.At([]int{0, 2}))
	// Output: 10 11 30
}

// ExampleIndexIterator walks every index of a 2×2 size, last axis
// fastest.
func ExampleIndexIterator() {
	it, err := grid.NewIndexIterator([]int{2, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for ok := true; ok; ok = it.Next() {
		fmt.Println(it.Index())
	}
	// Output:
	// [0 0]
	// [0 1]
	// [1 0]
	// [1 1]
}
