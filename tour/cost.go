// Package tour — cyclic cost model (the optimization objective).
//
// This file provides the single evaluate contract used across rondo:
// the total cost of visiting a permutation cyclically, closing edge
// included. Minimization framing everywhere: lower is better.
//
// Design:
//   - Strict sentinels from types.go on any invalid input.
//   - Defensive per-edge checks (NaN/Inf/negative) even when ValidateMatrix
//     already ran; misuse surfaces as an error, never as a silent NaN sum.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity:
//   - O(n) time for a tour of length n, O(n) space for the permutation guard.
package tour

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting optimality.
const roundScale = 1e9

// Cost returns the cyclic cost of t against dist: the sum of
// dist[t[i]][t[i+1]] for i in 0..n-2 plus the closing edge
// dist[t[n-1]][t[0]].
//
// Contract:
//   - dist must be square of order n ≥ 2 (ErrNonSquare / ErrTooFewCities).
//   - t must be a permutation of {0..n-1} (ErrNotPermutation), with
//     len(t) == n (ErrDimensionMismatch when lengths disagree).
//   - Every traversed entry must be finite and non-negative
//     (ErrNonFiniteWeight / ErrNegativeWeight).
//
// Pure function, no side effects.
//
// Complexity: O(n).
func Cost(dist mat.Matrix, t []int) (float64, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	var nr, nc int
	nr, nc = dist.Dims()
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	if nr < 2 {
		return 0, ErrTooFewCities
	}
	if len(t) != nr {
		return 0, ErrDimensionMismatch
	}
	if err := ValidatePermutation(t, nr); err != nil {
		return 0, err
	}

	// Main accumulation, closing edge folded in via modular successor.
	var (
		sum float64
		i   int
		u   int
		v   int
		w   float64
		n   = nr
	)
	for i = 0; i < n; i++ {
		u = t[i]
		v = t[(i+1)%n]

		w = dist.At(u, v)
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrNonFiniteWeight
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}

		sum += w
	}

	return Round1e9(sum), nil
}

// Round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps costs stable across platforms without affecting algorithmic
// correctness; solvers apply it once on every cost they hand back.
//
// Complexity: O(1).
func Round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
