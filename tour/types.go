package tour

import "errors"

// Strict sentinel errors shared by every helper in this package.
// Callers match them with errors.Is; none of them is ever wrapped here.
var (
	// ErrTooFewCities is returned when a problem instance has n < 2 cities.
	ErrTooFewCities = errors.New("tour: fewer than two cities")

	// ErrNotPermutation is returned when a tour is not a permutation of 0..n-1.
	ErrNotPermutation = errors.New("tour: not a permutation of 0..n-1")

	// ErrDimensionMismatch is returned when a tour length disagrees with the
	// matrix order, or when an input has an invalid shape.
	ErrDimensionMismatch = errors.New("tour: dimension mismatch")

	// ErrNonSquare is returned when the distance matrix is not square.
	ErrNonSquare = errors.New("tour: distance matrix is not square")

	// ErrAsymmetry is returned when the distance matrix is not symmetric
	// within the structural tolerance.
	ErrAsymmetry = errors.New("tour: distance matrix is not symmetric")

	// ErrNegativeWeight is returned when a distance entry is negative.
	ErrNegativeWeight = errors.New("tour: negative edge weight")

	// ErrNonFiniteWeight is returned when a distance entry is NaN or ±Inf.
	ErrNonFiniteWeight = errors.New("tour: non-finite edge weight")

	// ErrNonZeroDiagonal is returned when some matrix[i][i] deviates from zero.
	ErrNonZeroDiagonal = errors.New("tour: non-zero diagonal entry")
)
