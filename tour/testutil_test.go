// Package tour_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and mirror the fixtures used by the ils package tests.
package tour_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is a strict tolerance for exact-by-construction comparisons.
	epsTiny = 1e-12

	// epsLoose is a relaxed tolerance for noisy geometric comparisons.
	epsLoose = 1e-9

	// seedDet is a deterministic seed for RNG-based helpers.
	seedDet = int64(42)
)

// -----------------------------------------------------------------------------
// Generic helpers (assertions, numeric closeness)
// -----------------------------------------------------------------------------

// mustEqualInts asserts exact equality of two integer slices (length & values).
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// floatsClose checks relative/absolute closeness of two float64 values.
func floatsClose(a, b, rel, abs float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if diff <= abs {
		return true
	}
	den := math.Max(math.Abs(a), math.Abs(b))

	return diff <= rel*den
}

// mustFloatClose asserts closeness of two float64 values under rel/abs tolerances.
func mustFloatClose(t *testing.T, got, want, rel, abs float64) {
	t.Helper()
	if !floatsClose(got, want, rel, abs) {
		t.Fatalf("float mismatch: got=%.17g want=%.17g (rel=%.1e abs=%.1e)", got, want, rel, abs)
	}
}

// -----------------------------------------------------------------------------
// Geometric generators (Euclidean symmetric instances)
// -----------------------------------------------------------------------------

// euclid builds a symmetric Euclidean metric from 2D points with zero diagonal.
func euclid(pts [][2]float64) *mat.Dense {
	n := len(pts)
	m := mat.NewDense(n, n, nil)

	var (
		i, j      int
		dx, dy, d float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i][0] - pts[j][0]
			dy = pts[i][1] - pts[j][1]
			d = math.Hypot(dx, dy)
			m.Set(i, j, d)
			m.Set(j, i, d)
		}
	}

	return m
}

// unitSquare returns the canonical 4-city fixture: corners of the unit square,
// adjacent sides 1, diagonals √2, optimal cyclic cost exactly 4.
func unitSquare() *mat.Dense {
	return euclid([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
}
