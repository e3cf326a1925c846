// Package tour_test provides runnable, deterministic examples for the tour
// primitives. Each example builds a tiny synthetic metric inline and prints
// a stable // Output: block.
package tour_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rondo/tour"
)

// squareMetric returns the unit-square metric: four corners, side 1,
// diagonal √2, zero diagonal. The cheapest round trip follows the sides.
func squareMetric() *mat.SymDense {
	const d = 1.4142135623730951 // √2
	return mat.NewSymDense(4, []float64{
		0, 1, d, 1,
		1, 0, 1, d,
		d, 1, 0, 1,
		1, d, 1, 0,
	})
}

// ExampleCost evaluates the perimeter tour of the unit square.
func ExampleCost() {
	c, err := tour.Cost(squareMetric(), []int{0, 1, 2, 3})
	if err != nil {
		fmt.Println("unexpected:", err)
		return
	}
	fmt.Println(c)
	// Output: 4
}

// ExampleCanonicalize shows that rotations and reflections of one cycle
// normalize to a single representative.
func ExampleCanonicalize() {
	rotated := []int{2, 3, 0, 1}
	reflected := []int{0, 3, 2, 1}

	_ = tour.Canonicalize(rotated)
	_ = tour.Canonicalize(reflected)

	fmt.Println(rotated)
	fmt.Println(reflected)
	// Output:
	// [0 1 2 3]
	// [0 1 2 3]
}
