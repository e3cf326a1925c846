// Package tour - validation utilities shared by solvers and callers.
//
// This file contains the two strict gatekeepers of the module:
//  1. ValidatePermutation — verify a permutation over {0..n-1}.
//  2. ValidateMatrix — verify distance-matrix shape and values
//     (square, n≥2, finite, non-negative, zero diagonal, symmetric).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix order; no hidden allocations.
package tour

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SymTol is the structural tolerance for symmetry/diagonal checks.
// It is independent from any solver's improvement tolerance.
const SymTol = 1e-12

// ValidatePermutation checks that t is a permutation of {0..n-1} of length n.
// It does not allocate besides a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(t []int, n int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(t) != n {
		return ErrNotPermutation
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = t[i]
		// Out-of-range element violates the bijection contract.
		if v < 0 || v >= n {
			return ErrNotPermutation
		}
		// Duplicates do too.
		if seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}

	return nil
}

// ValidateMatrix performs full distance-matrix validation:
//   - non-nil, square, n ≥ 2,
//   - diagonal ≈ 0 (|a_ii| ≤ SymTol), finite,
//   - no negative entries, no NaN/±Inf anywhere,
//   - |a_ij − a_ji| ≤ SymTol (symmetric instances only are supported).
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func ValidateMatrix(dist mat.Matrix) (int, error) {
	// Stage 1: shape checks (non-nil, square, n≥2).
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	var nr, nc int
	nr, nc = dist.Dims()
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	if nr < 2 {
		// A cyclic tour needs at least two distinct cities.
		return 0, ErrTooFewCities
	}
	var n int
	n = nr // the matrix order

	// Stage 2: diagonal, finiteness, negativity.
	var (
		i, j     int     // loop indices
		aij, aji float64 // matrix entries a[i][j] and a[j][i]
		abs      float64 // scratch for |value|
	)

	// Diagonal: a_ii ≈ 0 within SymTol, finite.
	for i = 0; i < n; i++ {
		aij = dist.At(i, i)
		if math.IsNaN(aij) || math.IsInf(aij, 0) {
			return 0, ErrNonFiniteWeight
		}
		abs = aij
		if abs < 0 {
			abs = -abs // abs(aij)
		}
		if abs > SymTol {
			return 0, ErrNonZeroDiagonal
		}
	}

	// Off-diagonal scan.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal already checked
			}
			aij = dist.At(i, j)
			if math.IsNaN(aij) || math.IsInf(aij, 0) {
				return 0, ErrNonFiniteWeight
			}
			if aij < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	// Stage 3: symmetry over the upper triangle.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij = dist.At(i, j)
			aji = dist.At(j, i)
			abs = aij - aji
			if abs < 0 {
				abs = -abs // |a_ij - a_ji|
			}
			if abs > SymTol {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}
