// Package rondo is an anytime Iterated Local Search (ILS) engine for
// symmetric tour problems — ordering the stops of a mobile workforce,
// a delivery round, or any visiting sequence whose cost closes back on
// its start.
//
// 🚀 What is rondo?
//
//	A small, deterministic, concurrency-friendly metaheuristic toolkit:
//		• Tour primitives: permutations, cyclic cost, strict validation
//		• Move operators: pairwise swap, 2-opt reversal, double-bridge 4-opt
//		• Local search: first-improvement and steepest-ascent, budgeted
//		• ILS orchestration: homebase policies + bounded tabu history
//		• Multi-start: independent seeded workers, min-reduction
//
// ✨ Why choose rondo?
//
//   - Anytime – stop it whenever you like, it always holds a valid tour
//   - Reproducible – one seed, one answer; worker streams derive from it
//   - Allocation-conscious – linearized weights, zero logging in hot paths
//   - Honest errors – strict sentinels, nothing silently corrected
//
// Everything is organized under two library packages and a demo binary:
//
//	tour/      — tour representation, cyclic cost model, validation
//	ils/       — local search, perturbation, tabu, homebase, orchestration
//	cmd/rondo/ — command-line runner on synthetic instances
//
// Quick ASCII example:
//
//	0───1
//	│   │        the unit square: best round = 0 1 2 3, cost 4
//	3───2
//
// Dive into the package docs of tour and ils for contracts, complexity
// notes, and runnable examples.
//
//	go get github.com/katalvlaran/rondo
package rondo
