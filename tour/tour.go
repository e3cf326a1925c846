// Package tour — permutation utilities shared by solvers, tests, and callers.
//
// This file contains compact, allocation-conscious helpers that operate purely
// on tour structure (index sequences), without touching distance matrices.
// Provided helpers:
//   - Identity: the canonical 0..n-1 permutation.
//   - Shuffle: in-place Fisher–Yates with a caller-supplied RNG.
//   - Random: a fresh shuffled permutation of 0..n-1.
//   - Copy: independent copy of a tour slice.
//   - Equal: positional equality of two tours.
//   - Canonicalize: in-place rotation/orientation normalization for stable
//     display and golden comparisons (cost-preserving under the symmetric
//     cyclic model).
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time, in-place mutation wherever the contract allows it.
//   - Deterministic behavior with clear pre/post-conditions.
package tour

import "math/rand"

// defaultShuffleSeed seeds the fallback RNG stream used when callers pass
// rng == nil. The value is arbitrary but stable to keep defaults reproducible.
const defaultShuffleSeed int64 = 1

// Identity returns the canonical permutation [0, 1, …, n-1].
// For n ≤ 0 it returns an empty slice.
//
// Complexity: O(n) time, O(n) space.
func Identity(n int) []int {
	if n <= 0 {
		return []int{}
	}
	t := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		t[i] = i
	}

	return t
}

// Shuffle performs an in-place Fisher–Yates shuffle of t using rng.
// If rng == nil, a deterministic default stream is used, so repeated calls
// without an RNG stay reproducible.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(t []int, rng *rand.Rand) {
	var n int
	n = len(t)
	if n <= 1 {
		return
	}

	var (
		r *rand.Rand
		i int
		j int
	)
	r = rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultShuffleSeed))
	}

	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		t[i], t[j] = t[j], t[i]
	}
}

// Random returns a permutation of 0..n-1 generated deterministically from rng
// (nil rng ⇒ the default deterministic stream). For n < 0 it returns
// ErrDimensionMismatch. Allocation is required by contract (the returned slice).
//
// Complexity: O(n) time, O(n) space.
func Random(n int, rng *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, ErrDimensionMismatch
	}
	t := Identity(n)
	Shuffle(t, rng)

	return t, nil
}

// Copy returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func Copy(t []int) []int {
	if t == nil {
		return nil
	}
	out := make([]int, len(t))
	copy(out, t)

	return out
}

// Equal reports positional equality of two tours: same length and the same
// city at every position. This is the equality the tabu history uses; two
// rotations of one cycle are NOT equal under it.
//
// Complexity: O(n) time.
func Equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	var i int
	for i = 0; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Canonicalize normalizes t in place to the unique representative of its
// cyclic equivalence class under the symmetric cost model:
//  1. rotate so that t[0] == 0,
//  2. if the right neighbor is lexicographically worse than the left one
//     (t[1] > t[n-1]), reverse the interior segment t[1..n-1].
//
// Both steps preserve the cyclic cost on symmetric matrices. Returns
// ErrNotPermutation when city 0 is absent (the input is not a permutation).
// Tours of length < 2 are left untouched.
//
// Complexity: O(n) time, O(1) space.
func Canonicalize(t []int) error {
	var n = len(t)
	if n < 2 {
		return nil
	}

	// Locate city 0.
	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if t[i] == 0 {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return ErrNotPermutation
	}

	// Rotate left by pivot via the three-reversal identity (in place, O(1) space).
	if pivot > 0 {
		reverseRange(t, 0, pivot-1)
		reverseRange(t, pivot, n-1)
		reverseRange(t, 0, n-1)
	}

	// Fix orientation: compare the two neighbors of the start.
	if t[1] > t[n-1] {
		reverseRange(t, 1, n-1)
	}

	return nil
}

// reverseRange reverses the inclusive range t[i..k] in place.
//
// Complexity: O(k-i) time, O(1) space.
func reverseRange(t []int, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}
