// Package ils - neighborhood move operators.
//
// Three tour transformations live here:
//
//   - Swap            : exchange two positions (self-inverse).
//   - ReverseSegment  : reverse a closed sub-range (self-inverse, 2-opt).
//   - DoubleBridge    : 4-opt segment recombination used as the perturbation
//     step. Unlike the two local moves it cannot be undone by a single swap
//     or reversal, which is exactly what lets it escape a local optimum's
//     basin instead of exploring within it.
//
// Alongside the operators sit their incremental cost kernels (swapDelta,
// reverseDelta). Both compute the exact cyclic-cost change of a move in
// O(1) from the linearized weight slice, so a full O(n²) scan never needs
// to re-evaluate whole tours.
//
// Contracts:
//   - Indices are positions in the tour, not city ids.
//   - Callers guarantee index bounds; operators do not re-validate.
//   - Delta kernels assume a symmetric weight matrix (enforced upstream by
//     tour.ValidateMatrix).
package ils

import "math/rand"

// Swap exchanges the elements at positions i and j in place.
// Applying it twice with the same (i, j) restores the original tour.
//
// Complexity: O(1).
func Swap(t []int, i, j int) {
	t[i], t[j] = t[j], t[i]
}

// ReverseSegment reverses the closed sub-range t[i..j] in place.
// Applying it twice with the same (i, j) restores the original tour.
//
// Complexity: O(j-i).
func ReverseSegment(t []int, i, j int) {
	for i < j {
		t[i], t[j] = t[j], t[i]
		i++
		j--
	}
}

// DoubleBridge cuts t into four contiguous segments
//
//	A = t[:cuts[0]]  B = t[cuts[0]:cuts[1]]  C = t[cuts[1]:cuts[2]]  D = t[cuts[2]:]
//
// and returns the recombination A,D,C,B as a freshly allocated slice.
// The input tour is left untouched.
//
// Contract: 0 < cuts[0] < cuts[1] < cuts[2] ≤ len(t). The third cut may
// equal len(t), leaving D empty; the result still differs from t because
// B and C trade places.
//
// Complexity: O(n).
func DoubleBridge(t []int, cuts [3]int) []int {
	out := make([]int, 0, len(t))
	out = append(out, t[:cuts[0]]...)        // A
	out = append(out, t[cuts[2]:]...)        // D
	out = append(out, t[cuts[1]:cuts[2]]...) // C
	out = append(out, t[cuts[0]:cuts[1]]...) // B

	return out
}

// sampleCuts draws three strictly increasing cut points for DoubleBridge.
// Each gap between consecutive cuts is uniform on [1, ⌊n/3⌋], so every
// segment A, B, C keeps at least one element and the cuts never exceed n.
//
// Contract: n ≥ 4 (guaranteed by the n<4 short-circuit upstream) and rng
// non-nil.
//
// Complexity: O(1).
func sampleCuts(n int, rng *rand.Rand) [3]int {
	var (
		maxGap = n / 3                     // upper bound per segment gap
		c1     = 1 + rng.Intn(maxGap)      // end of A
		c2     = c1 + 1 + rng.Intn(maxGap) // end of B
		c3     = c2 + 1 + rng.Intn(maxGap) // end of C
	)

	return [3]int{c1, c2, c3}
}

// swapDelta returns the exact cyclic-cost change of Swap(t, i, j) without
// applying it. Three shapes exist:
//
//   - wrap pair (0, n-1): the closing edge makes the two cities adjacent;
//   - inner adjacent pair (j == i+1): the shared edge survives the
//     exchange, only the two outer edges change;
//   - general pair: all four incident edges are rewired.
//
// Contract: 0 ≤ i < j ≤ n-1, n ≥ 4, w symmetric and linearized row-major.
//
// Complexity: O(1).
func swapDelta(w []float64, n int, t []int, i, j int) float64 {
	if i == 0 && j == n-1 {
		var (
			p = t[n-2] // predecessor of t[n-1] in cyclic order
			a = t[n-1] // first of the adjacent pair along the closing edge
			b = t[0]   // second of the adjacent pair
			s = t[1]   // successor of t[0]
		)

		return w[p*n+b] + w[a*n+s] - w[p*n+a] - w[b*n+s]
	}

	if j-i == 1 {
		var (
			p = t[(i-1+n)%n] // predecessor of t[i]
			a = t[i]
			b = t[j]
			s = t[(j+1)%n] // successor of t[j]
		)

		return w[p*n+b] + w[a*n+s] - w[p*n+a] - w[b*n+s]
	}

	var (
		pi = t[(i-1+n)%n] // predecessor of t[i]
		a  = t[i]
		si = t[i+1] // successor of t[i]; j ≥ i+2 keeps it inside the pair
		pj = t[j-1] // predecessor of t[j]
		b  = t[j]
		sj = t[(j+1)%n] // successor of t[j]
	)

	return w[pi*n+b] + w[b*n+si] + w[pj*n+a] + w[a*n+sj] -
		w[pi*n+a] - w[a*n+si] - w[pj*n+b] - w[b*n+sj]
}

// reverseDelta returns the exact cyclic-cost change of ReverseSegment(t, i, j)
// without applying it. Reversal rewires exactly two edges: (a,b) and (c,d)
// become (a,c) and (b,d); every edge inside the segment keeps its cost under
// a symmetric matrix.
//
// Contract: 1 ≤ i < j ≤ n-1, n ≥ 4, w symmetric and linearized row-major.
// The lower bound on i keeps the two rewired edges distinct.
//
// Complexity: O(1).
func reverseDelta(w []float64, n int, t []int, i, j int) float64 {
	var (
		a = t[i-1]     // predecessor of the segment head
		b = t[i]       // segment head
		c = t[j]       // segment tail
		d = t[(j+1)%n] // successor of the segment tail
	)

	return w[a*n+c] + w[b*n+d] - w[a*n+b] - w[c*n+d]
}
