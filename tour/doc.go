// Package tour provides the tour representation and cost model shared by
// all rondo solvers.
//
// A tour is a plain []int permutation of {0..n-1}, visited cyclically:
// the closing edge from the last element back to the first is part of the
// cost but never stored. Distance matrices are read through the gonum
// mat.Matrix interface (Dims/At/T); any square, symmetric, non-negative,
// zero-diagonal matrix works.
//
// The package is deliberately small:
//   - Cost — the cyclic tour cost (the optimization objective).
//   - ValidatePermutation / ValidateMatrix — strict input validation.
//   - Identity, Random, Copy, Equal, Shuffle, Canonicalize — permutation
//     plumbing for solvers, tests, and callers.
//
// No logging, no panics on user input — only sentinel errors from
// types.go. All helpers are O(n) or cheaper and allocation-conscious.
package tour
