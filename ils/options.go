// Package ils - engine configuration.
//
// Options is a plain struct with a DefaultOptions constructor: every field
// has an obvious zero-adjacent default, configurations must survive copying
// into worker goroutines, and flat fields map 1:1 onto CLI flags and TOML
// keys. Validation is strict and happens once per entry point.
package ils

import (
	"time"

	"github.com/charmbracelet/log"
)

// Tuned defaults; see DefaultOptions for the rationale of each.
const (
	// DefaultEps is the improvement tolerance: a move is accepted only when
	// Δ < −Eps, so FP noise never counts as progress.
	DefaultEps = 1e-12

	// DefaultEpsilon is the exploration probability of EpsilonGreedy.
	DefaultEpsilon = 0.2

	// DefaultTabuCapacity bounds the FIFO memory of recent homebases.
	DefaultTabuCapacity = 10

	// DefaultRetryCap bounds tabu resampling per perturbation before the
	// engine falls back to accepting a tabu candidate.
	DefaultRetryCap = 10

	// DefaultMaxIterations bounds the outer loop when no caller override is
	// given; combined with budgets it keeps every run finite.
	DefaultMaxIterations = 100
)

// Options configures a single ILS run (and, via SolveParallel, each worker).
// The zero value is NOT valid; start from DefaultOptions and override.
type Options struct {
	// Acceptance selects the local-search scan policy
	// (FirstImprovement | SteepestAscent).
	Acceptance Acceptance

	// Move selects the local-search neighborhood operator
	// (SwapMove | ReverseMove). The double-bridge perturbation is fixed.
	Move Move

	// Homebase selects the next-origin policy
	// (AlwaysAccept | Greedy | EpsilonGreedy).
	Homebase Homebase

	// Epsilon is the EpsilonGreedy exploration probability, in [0, 1].
	Epsilon float64

	// TabuCapacity bounds the FIFO history of recent homebases; 0 disables
	// the memory entirely.
	TabuCapacity int

	// RetryCap bounds tabu resampling attempts per perturbation; on
	// exhaustion the engine accepts the tabu candidate and logs a warning.
	RetryCap int

	// MaxIterations caps the outer loop; must be ≥ 1.
	MaxIterations int

	// LocalSearchBudget is the soft wall-clock budget of one local-search
	// call; 0 means none (descend runs to a local optimum).
	LocalSearchBudget time.Duration

	// TimeLimit is the soft wall-clock budget of the whole run; 0 means
	// none. Checked at iteration granularity and inside descent passes.
	TimeLimit time.Duration

	// Eps is the strict improvement tolerance (Δ < −Eps); must be ≥ 0.
	Eps float64

	// Seed drives all randomness of the run. 0 selects the fixed default
	// stream, so runs are reproducible unless a caller opts into entropy.
	Seed int64

	// Logger receives degraded-quality warnings and debug run summaries.
	// nil keeps the engine fully silent; hot paths never log either way.
	Logger *log.Logger

	// OnIteration, when non-nil, observes (iteration, bestCost) once per
	// outer iteration on the solver goroutine. Keep it cheap.
	OnIteration func(iteration int, bestCost float64)
}

// DefaultOptions returns the recommended starting configuration:
// first-improvement 2-opt descent, greedy homebase, a small tabu memory,
// and no time budgets (the iteration cap keeps runs finite).
func DefaultOptions() Options {
	return Options{
		Acceptance:    FirstImprovement,
		Move:          ReverseMove,
		Homebase:      Greedy,
		Epsilon:       DefaultEpsilon,
		TabuCapacity:  DefaultTabuCapacity,
		RetryCap:      DefaultRetryCap,
		MaxIterations: DefaultMaxIterations,
		Eps:           DefaultEps,
	}
}

// validateOptions checks internal consistency of Options without touching
// matrices or tours. Strict sentinels only; nothing is silently corrected.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch opts.Acceptance {
	case FirstImprovement, SteepestAscent:
		// ok
	default:
		return ErrUnsupportedAcceptance
	}

	switch opts.Move {
	case SwapMove, ReverseMove:
		// ok
	default:
		return ErrUnsupportedMove
	}

	switch opts.Homebase {
	case AlwaysAccept, Greedy, EpsilonGreedy:
		// ok
	default:
		return ErrUnsupportedHomebase
	}

	if opts.Epsilon < 0 || opts.Epsilon > 1 {
		return ErrInvalidEpsilon
	}
	if opts.Eps < 0 {
		return ErrInvalidTolerance
	}
	if opts.TabuCapacity < 0 {
		return ErrNegativeTabuCapacity
	}
	if opts.RetryCap < 0 {
		return ErrNegativeRetryCap
	}
	if opts.MaxIterations < 1 {
		return ErrNonPositiveIterations
	}
	if opts.LocalSearchBudget < 0 || opts.TimeLimit < 0 {
		return ErrNegativeBudget
	}

	return nil
}
