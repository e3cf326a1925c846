// Package ils - parallel multi-start coordinator.
//
// SolveParallel fans out independent ILS runs over worker goroutines and
// reduces their results to the cheapest tour. Workers share exactly one piece
// of state — the read-only matrix prefetch — and otherwise touch nothing in
// common: each owns its tours, history, and rand.Rand seeded with a stream
// derived from Options.Seed and the worker ordinal.
//
// Failure isolation: a worker panic is recovered and recorded as that
// worker's failure; the remaining workers finish and the run still returns
// the best completed result. Only the loss of every worker is an error.
//
// Design:
//   - Structured fan-out/fan-in: sync.WaitGroup plus one buffered channel
//     sized to the worker count, so no goroutine outlives the call and no
//     send can block.
//   - Deterministic reduction: results land in a slice indexed by worker
//     ordinal; ties on cost resolve to the lowest ordinal regardless of
//     completion order.
package ils

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/rondo/tour"
)

// SolveParallel runs workers independent ILS instances over dist and returns
// the cheapest result with per-worker accounting. workers ≤ 0 selects the
// default max(NumCPU−1, 1). A nil initial gives every worker its own random
// start; a non-nil initial is copied per worker, never mutated.
//
// Worker k runs with Seed derived from (Options.Seed, k), so equal inputs
// reproduce the identical MultiResult regardless of scheduling. Ties on best
// cost resolve to the lowest worker ordinal.
//
// Errors: validation sentinels as in Solve; ErrAllWorkersFailed when no
// worker completed. Individual failures are isolated — they surface through
// MultiResult.Failed, a NaN slot in Costs, and Options.Logger when set.
func SolveParallel(dist mat.Matrix, initial []int, opts Options, workers int) (MultiResult, error) {
	if err := validateOptions(opts); err != nil {
		return MultiResult{}, err
	}
	var n, err = tour.ValidateMatrix(dist)
	if err != nil {
		return MultiResult{}, err
	}
	if initial != nil {
		if err = tour.ValidatePermutation(initial, n); err != nil {
			return MultiResult{}, err
		}
	}

	if workers <= 0 {
		workers = runtime.NumCPU() - 1
		if workers < 1 {
			workers = 1
		}
	}

	// One prefetch, shared read-only by every worker.
	var (
		w        = linearize(dist, n)
		baseSeed = seedOrDefault(opts.Seed)
	)

	type outcome struct {
		worker int
		res    RunResult
		err    error
	}

	var (
		results = make(chan outcome, workers)
		wg      sync.WaitGroup
		k       int
	)
	for k = 0; k < workers; k++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			// A worker's panic is that worker's failure, never the run's.
			defer func() {
				if r := recover(); r != nil {
					results <- outcome{worker: worker, err: fmt.Errorf("ils: worker %d: panic: %v", worker, r)}
				}
			}()

			wopts := opts
			wopts.Seed = deriveSeed(baseSeed, uint64(worker))

			var init []int
			if initial != nil {
				init = tour.Copy(initial)
			}

			results <- outcome{worker: worker, res: runILS(w, n, init, wopts)}
		}(k)
	}
	wg.Wait()
	close(results)

	// Fan-in: order outcomes by worker ordinal before reducing.
	var (
		resByWorker = make([]RunResult, workers)
		errByWorker = make([]error, workers)
		o           outcome
	)
	for o = range results {
		resByWorker[o.worker] = o.res
		errByWorker[o.worker] = o.err
	}

	var (
		out       = MultiResult{Costs: make([]float64, workers)}
		completed = make([]float64, 0, workers)
		bestIdx   = -1
	)
	for k = 0; k < workers; k++ {
		if errByWorker[k] != nil {
			out.Costs[k] = math.NaN()
			out.Failed++
			if opts.Logger != nil {
				opts.Logger.Error("worker failed", "worker", k, "err", errByWorker[k])
			}

			continue
		}

		out.Costs[k] = resByWorker[k].BestCost
		completed = append(completed, resByWorker[k].BestCost)
		out.Completed++
		// Strict < keeps the lowest ordinal on ties.
		if bestIdx < 0 || resByWorker[k].BestCost < resByWorker[bestIdx].BestCost {
			bestIdx = k
		}
	}
	if bestIdx < 0 {
		return out, ErrAllWorkersFailed
	}
	out.Best = resByWorker[bestIdx]

	// Dispersion over completed workers only; a single sample has none.
	out.CostMean, out.CostStdDev = stat.MeanStdDev(completed, nil)
	if len(completed) == 1 {
		out.CostStdDev = 0
	}

	if opts.Logger != nil {
		opts.Logger.Debug("parallel run complete",
			"workers", workers,
			"completed", out.Completed,
			"failed", out.Failed,
			"best", out.Best.BestCost,
			"mean", out.CostMean)
	}

	return out, nil
}
