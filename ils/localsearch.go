// Package ils - local search engine (first-improvement / steepest-ascent).
//
// LocalSearch drives a tour to a local optimum of the configured move
// neighborhood. The exported wrapper validates, prefetches the matrix into a
// linear buffer, and delegates to the unexported descend core that the ILS
// orchestrator reuses directly on its working candidate.
//
// Acceptance policies:
//
//   - FirstImprovement: scan the pair grid (i, j), i<j; the moment a move
//     improves strictly (Δ < −Eps), keep it and continue scanning the same
//     pass against the updated tour.
//   - SteepestAscent: scan the full grid per pass, remember the single most
//     improving pair, apply only that one move at the end of the pass.
//
// Both repeat passes until a full pass keeps nothing or the soft wall-clock
// budget elapses — the engine is anytime and always leaves a valid tour.
//
// Design:
//   - Strict sentinel errors only; all validation up front, none per pair.
//   - Dense 1D weight prefetch w[u*n+v]; no interface dispatch in hot loops.
//   - O(1) move deltas (move.go kernels); moves are applied, never re-costed.
//   - Deadline sampled every 2048 evaluations; accepted slack is bounded by
//     one sampling window.
//
// Complexity: O(n²) delta evaluations per pass, O(1) each; pass count is
// instance-dependent.
package ils

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rondo/tour"
)

// LocalSearch returns a local optimum reached from t under opts, together
// with its stabilized cyclic cost. The input tour is never mutated.
//
// Contract:
//   - opts must validate as a whole (start from DefaultOptions).
//   - dist must pass tour.ValidateMatrix; t must be a permutation of 0..n-1.
//   - Options.LocalSearchBudget 0 means no deadline: descend runs to a local
//     optimum. With n < 4 the input is returned unchanged (no nontrivial
//     pair exists under the cyclic model).
//
// Complexity: O(n²) prefetch + O(n²) per pass; O(n²) extra space.
func LocalSearch(dist mat.Matrix, t []int, opts Options) ([]int, float64, error) {
	if err := validateOptions(opts); err != nil {
		return nil, 0, err
	}
	var n, err = tour.ValidateMatrix(dist)
	if err != nil {
		return nil, 0, err
	}
	if err = tour.ValidatePermutation(t, n); err != nil {
		return nil, 0, err
	}

	// Soft per-call deadline; zero time means unbounded descent.
	var deadline time.Time
	if opts.LocalSearchBudget > 0 {
		deadline = time.Now().Add(opts.LocalSearchBudget)
	}

	// Work on a private copy to keep the caller's slice immutable.
	var (
		cur     = tour.Copy(t)
		cost, _ = descend(linearize(dist, n), n, cur, opts, deadline)
	)

	return cur, tour.Round1e9(cost), nil
}

// linearize prefetches dist into a row-major buffer w[u*n+v] so the descent
// loops read weights without interface indirection. The matrix already passed
// tour.ValidateMatrix upstream; entries are trusted here.
//
// Complexity: O(n²) time, O(n²) space.
func linearize(dist mat.Matrix, n int) []float64 {
	w := make([]float64, n*n)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w[i*n+j] = dist.At(i, j)
		}
	}

	return w
}

// cyclicCost sums the closed-loop cost of t over the linearized weights,
// closing edge included. Raw float sum; rounding happens once on returned
// values, never here.
//
// Complexity: O(n).
func cyclicCost(w []float64, n int, t []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += w[t[i]*n+t[(i+1)%n]]
	}

	return sum
}

// descend drives t to a local optimum in place and returns its final raw
// cyclic cost plus the number of delta evaluations performed. A zero deadline
// disables the budget; an expired deadline ends the descent mid-pass, leaving
// t valid (trial moves are evaluated by delta, never applied speculatively).
//
// Contracts:
//   - opts passed validateOptions; len(t) == n; w is the n-order prefetch.
//   - Callers own t exclusively for the duration of the call.
//
// Complexity: O(n²) evaluations per pass, O(1) each.
func descend(w []float64, n int, t []int, opts Options, deadline time.Time) (float64, int64) {
	cost := cyclicCost(w, n, t)
	if n < 4 {
		// Every permutation of 2 or 3 cities closes the same cycle.
		return cost, 0
	}

	// Policy knobs. The defensive clamp keeps the acceptance rule Δ < −eps
	// well-posed even though validateOptions already forbids negative Eps.
	var (
		eps      = opts.Eps
		useSwap  = opts.Move == SwapMove
		steepest = opts.Acceptance == SteepestAscent
		lo       = 0 // first scanned pair position
	)
	if eps < 0 {
		eps = 0
	}
	if !useSwap {
		// Reversing [0..j] mirrors reversing the complement segment on a
		// cycle, so the reversal grid starts at 1 without shrinking the
		// neighborhood.
		lo = 1
	}

	// Soft deadline, sampled every 2048 evaluations to keep the scan cheap.
	var (
		useDeadline = !deadline.IsZero()
		evals       int64
	)
	expired := func() bool {
		if !useDeadline || (evals&2047) != 0 {
			return false
		}

		return time.Now().After(deadline)
	}

	var (
		improved  bool    // pass-level dirty flag
		i, j      int     // candidate pair indices
		delta     float64 // cost change of the trial move (negative improves)
		bestDelta float64 // steepest-ascent: most negative Δ of this pass
		bestI     int     // steepest-ascent: pair of bestDelta
		bestJ     int
	)
	for {
		improved = false
		bestDelta = -eps
		bestI, bestJ = -1, -1

		for i = lo; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				if useSwap {
					delta = swapDelta(w, n, t, i, j)
				} else {
					delta = reverseDelta(w, n, t, i, j)
				}
				evals++
				if expired() {
					return cost, evals
				}

				if steepest {
					if delta < bestDelta {
						bestDelta = delta
						bestI, bestJ = i, j
					}

					continue
				}

				if delta < -eps {
					// First-improvement: keep the move, stay in the pass.
					if useSwap {
						Swap(t, i, j)
					} else {
						ReverseSegment(t, i, j)
					}
					cost += delta
					improved = true
				}
			}
		}

		// Steepest-ascent applies the remembered best move once per pass.
		if steepest && bestI >= 0 {
			if useSwap {
				Swap(t, bestI, bestJ)
			} else {
				ReverseSegment(t, bestI, bestJ)
			}
			cost += bestDelta
			improved = true
		}

		if !improved {
			// Local optimum under the chosen neighborhood and policy.
			break
		}
	}

	return cost, evals
}
