// Package ils - bounded tabu history of recent homebases.
//
// The orchestrator remembers the last few accepted tours and resamples
// perturbations that would revisit one of them. Membership is positional:
// rotations and reflections of a remembered tour are distinct entries, which
// keeps Contains a plain O(capacity·n) scan with no canonical signature pass
// on the hot path.
//
// Design:
//   - Fixed-capacity ring buffer; the write cursor evicts the oldest entry.
//   - Push stores a private copy; later mutation of the argument never
//     corrupts the history.
//   - Capacity 0 disables the mechanism: Contains is always false and Push
//     is a no-op.
//   - Not safe for concurrent use; every run owns its History exclusively.
package ils

import "github.com/katalvlaran/rondo/tour"

// History is a fixed-capacity FIFO memory of recently accepted tours.
// The zero value is unusable; construct with NewHistory.
type History struct {
	entries [][]int // ring of private tour copies, len == capacity
	next    int     // ring write position
	size    int     // number of stored tours, ≤ len(entries)
}

// NewHistory returns a History remembering at most capacity tours. Negative
// capacities clamp to zero; a zero-capacity history remembers nothing.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}

	return &History{entries: make([][]int, capacity)}
}

// Contains reports whether some remembered tour equals t at every position.
// Ring order is irrelevant for membership, so slots are scanned as stored.
//
// Complexity: O(capacity·n).
func (h *History) Contains(t []int) bool {
	var i int
	for i = 0; i < h.size; i++ {
		if tour.Equal(h.entries[i], t) {
			return true
		}
	}

	return false
}

// Push remembers a private copy of t, evicting the oldest remembered tour
// once the capacity is reached. Pushing into a zero-capacity history is a
// no-op.
//
// Complexity: O(n).
func (h *History) Push(t []int) {
	if len(h.entries) == 0 {
		return
	}

	// Reuse the evicted slot's backing array when the order matches.
	if slot := h.entries[h.next]; len(slot) == len(t) {
		copy(slot, t)
	} else {
		h.entries[h.next] = tour.Copy(t)
	}

	h.next++
	if h.next == len(h.entries) {
		h.next = 0
	}
	if h.size < len(h.entries) {
		h.size++
	}
}

// Len returns the number of tours currently remembered.
func (h *History) Len() int { return h.size }

// Cap returns the fixed capacity the History was constructed with.
func (h *History) Cap() int { return len(h.entries) }
