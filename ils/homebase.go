// Package ils - homebase acceptance policies.
//
// After each descent the orchestrator decides which tour the next
// perturbation starts from: the incumbent homebase or the freshly descended
// candidate. The decision is a pure function of the two costs plus, for
// EpsilonGreedy, one uniform draw.
//
// Policies (minimization):
//   - AlwaysAccept:  the candidate becomes home unconditionally (random-walk
//     exploration).
//   - Greedy:        the candidate becomes home only when strictly cheaper.
//   - EpsilonGreedy: with probability Epsilon behave like AlwaysAccept,
//     otherwise like Greedy.
package ils

import "math/rand"

// NextHome applies policy to the incumbent home and the descended candidate
// and returns the tour the next perturbation starts from, together with its
// cost. The returned slice is one of the two inputs — no copy is made; the
// caller owns buffer lifetimes.
//
// Contract: epsilon is consulted only by EpsilonGreedy and must lie in
// [0, 1]; rng is consulted only by EpsilonGreedy and must be non-nil there.
//
// Complexity: O(1); at most one rng draw.
func NextHome(policy Homebase, home, cand []int, homeCost, candCost, epsilon float64, rng *rand.Rand) ([]int, float64, error) {
	switch policy {
	case AlwaysAccept, Greedy:
		// No policy inputs beyond the two costs.
	case EpsilonGreedy:
		if epsilon < 0 || epsilon > 1 {
			return nil, 0, ErrInvalidEpsilon
		}
		if rng == nil {
			return nil, 0, ErrNilRNG
		}
	default:
		return nil, 0, ErrUnsupportedHomebase
	}

	var h, c = nextHome(policy, home, cand, homeCost, candCost, epsilon, rng)

	return h, c, nil
}

// nextHome is the validated fast path used once per outer iteration.
func nextHome(policy Homebase, home, cand []int, homeCost, candCost, epsilon float64, rng *rand.Rand) ([]int, float64) {
	switch policy {
	case AlwaysAccept:
		return cand, candCost
	case EpsilonGreedy:
		// Explore with probability epsilon, otherwise exploit greedily.
		if rng.Float64() < epsilon {
			return cand, candCost
		}
	}

	// Greedy, and the exploit branch of EpsilonGreedy.
	if candCost < homeCost {
		return cand, candCost
	}

	return home, homeCost
}
