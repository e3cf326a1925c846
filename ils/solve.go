// Package ils - the iterated local search orchestrator.
//
// One run owns four tours: the working candidate, the homebase the next
// perturbation starts from, the best tour seen so far, and the bounded tabu
// history of accepted homebases. Each outer iteration:
//
//  1. descends the candidate to a local optimum (localsearch.go);
//  2. folds the candidate into best when strictly cheaper;
//  3. picks the next homebase (homebase.go);
//  4. perturbs the homebase with a double-bridge kick, resampling up to
//     RetryCap times while the tabu history remembers the result;
//  5. notifies the OnIteration observer.
//
// The run stops at MaxIterations or when TimeLimit elapses, whichever comes
// first. Budgets are soft and cooperative: deadlines are sampled at iteration
// boundaries and every 2048 delta evaluations inside a descent, and the best
// tour so far is always returned — exhausting a budget is an outcome, not an
// error.
//
// Design:
//   - All run state lives in locals of a single frame; the package keeps no
//     globals and multiple runs never share mutable state.
//   - Strict validation at the boundary, none inside the loop.
//   - The matrix is prefetched once; workers of a parallel run share the
//     read-only buffer (parallel.go).
package ils

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rondo/tour"
)

// Solve runs iterated local search on dist starting from initial and returns
// the best tour found together with run accounting. A nil initial starts from
// a random permutation drawn from the run's seeded stream; a non-nil initial
// is copied, never mutated.
//
// Determinism: equal (dist, initial, opts) with equal Options.Seed reproduce
// the identical result, including Iterations and Evaluations.
//
// Errors are strict and sentinel-wrapped: option errors from this package,
// instance errors from package tour. With n < 4 the run returns immediately
// — every permutation closes the same cycle, so there is nothing to improve.
func Solve(dist mat.Matrix, initial []int, opts Options) (RunResult, error) {
	if err := validateOptions(opts); err != nil {
		return RunResult{}, err
	}
	var n, err = tour.ValidateMatrix(dist)
	if err != nil {
		return RunResult{}, err
	}
	if initial != nil {
		if err = tour.ValidatePermutation(initial, n); err != nil {
			return RunResult{}, err
		}
	}

	return runILS(linearize(dist, n), n, initial, opts), nil
}

// runILS is the validated core shared by Solve and SolveParallel. w is the
// read-only row-major prefetch of the instance, n its order; initial may be
// nil. All inputs passed validation upstream, so the loop cannot fail — it
// can only run out of budget.
func runILS(w []float64, n int, initial []int, opts Options) RunResult {
	var (
		start = time.Now()
		rng   = rngFromSeed(opts.Seed)
		cand  []int
	)
	if initial == nil {
		// n ≥ 2 was established upstream, so Random cannot fail here.
		cand, _ = tour.Random(n, rng)
	} else {
		cand = tour.Copy(initial)
	}

	if n < 4 {
		// Degenerate order: the cyclic cost is permutation-independent.
		return RunResult{
			BestTour: cand,
			BestCost: tour.Round1e9(cyclicCost(w, n, cand)),
			Elapsed:  time.Since(start),
		}
	}

	// home = best = candidate; the history is seeded with the starting tour.
	var (
		history  = NewHistory(opts.TabuCapacity)
		home     = tour.Copy(cand)
		best     = tour.Copy(cand)
		homeCost = cyclicCost(w, n, cand)
		bestCost = homeCost
	)
	history.Push(home)

	var outerDeadline time.Time
	if opts.TimeLimit > 0 {
		outerDeadline = start.Add(opts.TimeLimit)
	}

	var (
		iterations  int   // completed outer iterations
		evaluations int64 // delta evaluations across all descents
		candCost    float64
		evals       int64
		next        []int
		tabuHit     bool
		attempts    int
		iter        int
	)
	for iter = 0; iter < opts.MaxIterations; iter++ {
		if !outerDeadline.IsZero() && time.Now().After(outerDeadline) {
			break
		}

		// 1. Descend the candidate to a local optimum in place.
		candCost, evals = descend(w, n, cand, opts, descentDeadline(outerDeadline, opts.LocalSearchBudget))
		evaluations += evals

		// 2. Fold into the incumbent best.
		if candCost < bestCost-opts.Eps {
			copy(best, cand)
			bestCost = candCost
		}

		// 3. Choose the next homebase. No copy: home and cand stay distinct
		//    buffers because step 4 rebinds cand to a fresh slice.
		home, homeCost = nextHome(opts.Homebase, home, cand, homeCost, candCost, opts.Epsilon, rng)

		// 4. Kick the homebase; resample while the history remembers the
		//    result, up to RetryCap times.
		next = DoubleBridge(home, sampleCuts(n, rng))
		tabuHit = history.Contains(next)
		for attempts = 0; tabuHit && attempts < opts.RetryCap; attempts++ {
			next = DoubleBridge(home, sampleCuts(n, rng))
			tabuHit = history.Contains(next)
		}
		if tabuHit && opts.Logger != nil {
			// Degraded-quality condition: the history covered every sampled
			// kick, so a remembered tour is accepted to keep the run moving.
			opts.Logger.Warn("tabu retry cap exhausted; accepting remembered tour",
				"iteration", iter+1, "retries", attempts, "capacity", history.Cap())
		}
		history.Push(next)
		cand = next

		// 5. Observe. Costs surface rounded, exactly as RunResult reports.
		iterations = iter + 1
		if opts.OnIteration != nil {
			opts.OnIteration(iterations, tour.Round1e9(bestCost))
		}
	}

	res := RunResult{
		BestTour:    best,
		BestCost:    tour.Round1e9(bestCost),
		Iterations:  iterations,
		Evaluations: evaluations,
		Elapsed:     time.Since(start),
	}
	if opts.Logger != nil {
		opts.Logger.Debug("run complete",
			"iterations", res.Iterations,
			"evaluations", res.Evaluations,
			"best", res.BestCost,
			"elapsed", res.Elapsed)
	}

	return res
}

// descentDeadline merges the per-descent budget with the run deadline and
// returns the earlier of the two; a zero time means unbounded.
func descentDeadline(outer time.Time, budget time.Duration) time.Time {
	var d time.Time
	if budget > 0 {
		d = time.Now().Add(budget)
	}
	if outer.IsZero() {
		return d
	}
	if d.IsZero() || outer.Before(d) {
		return outer
	}

	return d
}
