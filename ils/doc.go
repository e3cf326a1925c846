// Package ils implements an anytime Iterated Local Search engine for
// symmetric cyclic tour problems.
//
// The engine composes five small parts:
//
//   - Move operators (move.go): pairwise swap and 2-opt segment reversal
//     explore a local neighborhood; the double-bridge 4-opt recombination
//     (A,B,C,D → A,D,C,B) jumps out of a local optimum's basin and is used
//     only as the perturbation.
//
//   - Local search (localsearch.go): drives a tour to a local optimum under
//     first-improvement or steepest-ascent acceptance, with an optional
//     per-call wall-clock budget. Budgets are soft: checks are sparse and a
//     pass may overshoot by its own duration.
//
//   - Tabu history (tabu.go): a bounded FIFO of recently used homebases,
//     blocking a perturbation from regenerating a just-visited tour.
//
//   - Homebase policies (homebase.go): always-accept, greedy, and
//     epsilon-greedy decide the origin of the next perturbation.
//
//   - Orchestration (solve.go, parallel.go): Solve runs one seeded ILS loop;
//     SolveParallel fans out independent seeded runs against the shared
//     read-only matrix and reduces to the minimum-cost result.
//
// Determinism: a fixed Options.Seed yields a bit-identical RunResult; worker
// seeds derive from the base seed and the worker index, so multi-start
// results are reproducible too. Seed 0 selects a fixed default stream.
//
// All inputs are validated strictly up front (sentinels from this package
// and from package tour); hot paths never log, never allocate per pair, and
// never panic on user input.
//
// Use this package when you need good tours under a deadline rather than
// provably optimal ones; n in the hundreds is comfortable territory.
package ils
