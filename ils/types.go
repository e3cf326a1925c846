// Package ils - public types: strategy enums, sentinel errors, results.
//
// The strategy surface is a small closed set of tagged variants dispatched
// by switch, not open-ended function values: the sets are fixed, static
// dispatch keeps hot paths branch-predictable, and configurations stay
// serializable (flags, TOML) for free.
package ils

import (
	"errors"
	"time"
)

// Acceptance selects how the local-search engine walks its neighborhood.
type Acceptance int

const (
	// FirstImprovement keeps every strictly improving move the moment the
	// scan finds it and finishes the pass; passes repeat while at least one
	// move was kept.
	FirstImprovement Acceptance = iota

	// SteepestAscent scans the full pair grid per pass and applies only the
	// single most improving move at the end of the pass.
	SteepestAscent
)

// String returns the canonical lower-case policy name.
func (a Acceptance) String() string {
	switch a {
	case FirstImprovement:
		return "first-improvement"
	case SteepestAscent:
		return "steepest-ascent"
	default:
		return "unknown-acceptance"
	}
}

// Move selects the neighborhood operator used by local search.
type Move int

const (
	// SwapMove exchanges the cities at two tour positions.
	SwapMove Move = iota

	// ReverseMove reverses the closed segment between two positions — the
	// classic 2-opt move on a cyclic tour.
	ReverseMove
)

// String returns the canonical lower-case operator name.
func (m Move) String() string {
	switch m {
	case SwapMove:
		return "swap"
	case ReverseMove:
		return "reverse"
	default:
		return "unknown-move"
	}
}

// Homebase selects the policy deciding the next perturbation origin.
type Homebase int

const (
	// AlwaysAccept adopts every candidate unconditionally (pure exploration).
	AlwaysAccept Homebase = iota

	// Greedy adopts a candidate only when it is strictly better than the
	// incumbent homebase (pure exploitation).
	Greedy

	// EpsilonGreedy draws once per decision: with probability 1−ε it acts
	// like Greedy, otherwise like AlwaysAccept.
	EpsilonGreedy
)

// String returns the canonical lower-case policy name.
func (h Homebase) String() string {
	switch h {
	case AlwaysAccept:
		return "always-accept"
	case Greedy:
		return "greedy"
	case EpsilonGreedy:
		return "epsilon-greedy"
	default:
		return "unknown-homebase"
	}
}

// Strict sentinel errors for configuration and coordination failures.
// Instance-shape problems surface as sentinels from package tour instead.
var (
	// ErrUnsupportedAcceptance is returned for an unknown Acceptance value.
	ErrUnsupportedAcceptance = errors.New("ils: unsupported acceptance policy")

	// ErrUnsupportedMove is returned for an unknown Move value.
	ErrUnsupportedMove = errors.New("ils: unsupported move operator")

	// ErrUnsupportedHomebase is returned for an unknown Homebase value.
	ErrUnsupportedHomebase = errors.New("ils: unsupported homebase policy")

	// ErrInvalidEpsilon is returned when Epsilon falls outside [0, 1].
	ErrInvalidEpsilon = errors.New("ils: epsilon outside [0,1]")

	// ErrInvalidTolerance is returned when the improvement tolerance Eps is
	// negative (that would invert the acceptance rule Δ < −Eps).
	ErrInvalidTolerance = errors.New("ils: negative improvement tolerance")

	// ErrNegativeTabuCapacity is returned when TabuCapacity < 0.
	ErrNegativeTabuCapacity = errors.New("ils: negative tabu capacity")

	// ErrNonPositiveIterations is returned when MaxIterations < 1; the outer
	// loop needs an iteration bound even when a time budget is set.
	ErrNonPositiveIterations = errors.New("ils: iteration cap must be positive")

	// ErrNegativeRetryCap is returned when RetryCap < 0.
	ErrNegativeRetryCap = errors.New("ils: negative retry cap")

	// ErrNegativeBudget is returned when a time budget is negative
	// (0 always means "no budget").
	ErrNegativeBudget = errors.New("ils: negative time budget")

	// ErrNilRNG is returned when a policy needing randomness gets a nil RNG.
	ErrNilRNG = errors.New("ils: nil RNG")

	// ErrAllWorkersFailed is returned by SolveParallel when not a single
	// worker produced a result.
	ErrAllWorkersFailed = errors.New("ils: all workers failed")
)

// RunResult is the immutable outcome snapshot of one ILS run.
type RunResult struct {
	// BestTour is the best permutation found (open form, length n; the
	// closing edge is implied by the cost model).
	BestTour []int

	// BestCost is the cyclic cost of BestTour, stabilized to 1e-9.
	BestCost float64

	// Iterations is the number of completed outer iterations.
	Iterations int

	// Evaluations counts move-delta evaluations across all local searches,
	// the natural effort metric for an anytime engine.
	Evaluations int64

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// MultiResult aggregates a parallel multi-start execution.
type MultiResult struct {
	// Best is the result of the completed worker with the lowest BestCost;
	// ties resolve to the lowest worker index so the value is deterministic.
	Best RunResult

	// Completed and Failed count worker outcomes; their sum equals the
	// number of launched workers.
	Completed int
	Failed    int

	// Costs holds each worker's BestCost indexed by worker ordinal; failed
	// workers are marked NaN.
	Costs []float64

	// CostMean and CostStdDev summarize the completed workers' best costs
	// (sample standard deviation; 0 when only one worker completed).
	CostMean   float64
	CostStdDev float64
}
