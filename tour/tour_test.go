package tour_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rondo/tour"
)

// ------------------------------------------------------------------------------------
// Identity / Random / Shuffle
// ------------------------------------------------------------------------------------

func TestIdentity(t *testing.T) {
	mustEqualInts(t, tour.Identity(0), []int{})
	mustEqualInts(t, tour.Identity(1), []int{0})
	mustEqualInts(t, tour.Identity(5), []int{0, 1, 2, 3, 4})
}

// TestRandom_IsPermutation checks that Random always yields a valid
// permutation and that a fixed seed reproduces the same one.
func TestRandom_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))

	var n int
	for n = 0; n <= 32; n++ {
		p, err := tour.Random(n, rng)
		if err != nil {
			t.Fatalf("Random(%d): %v", n, err)
		}
		if n > 0 {
			if verr := tour.ValidatePermutation(p, n); verr != nil {
				t.Fatalf("Random(%d) not a permutation: %v", n, verr)
			}
		}
	}

	// Same seed, same draw.
	a, _ := tour.Random(16, rand.New(rand.NewSource(seedDet)))
	b, _ := tour.Random(16, rand.New(rand.NewSource(seedDet)))
	mustEqualInts(t, a, b)

	// Negative n is a contract violation.
	_, err := tour.Random(-1, rng)
	mustErrIs(t, err, tour.ErrDimensionMismatch)
}

// TestShuffle_NilRNGIsDeterministic locks the nil-rng fallback policy:
// two shuffles without an RNG produce identical output.
func TestShuffle_NilRNGIsDeterministic(t *testing.T) {
	a := tour.Identity(12)
	b := tour.Identity(12)
	tour.Shuffle(a, nil)
	tour.Shuffle(b, nil)
	mustEqualInts(t, a, b)
}

// ------------------------------------------------------------------------------------
// Copy / Equal
// ------------------------------------------------------------------------------------

func TestCopy_Independent(t *testing.T) {
	a := []int{3, 1, 0, 2}
	b := tour.Copy(a)
	mustEqualInts(t, b, a)

	b[0] = 99
	if a[0] == 99 {
		t.Fatal("Copy must not alias the input")
	}

	if tour.Copy(nil) != nil {
		t.Fatal("Copy(nil) must stay nil")
	}
}

func TestEqual(t *testing.T) {
	if !tour.Equal([]int{0, 1, 2}, []int{0, 1, 2}) {
		t.Fatal("identical tours must be equal")
	}
	if tour.Equal([]int{0, 1, 2}, []int{1, 2, 0}) {
		t.Fatal("rotations are distinct under positional equality")
	}
	if tour.Equal([]int{0, 1}, []int{0, 1, 2}) {
		t.Fatal("length mismatch must not be equal")
	}
}

// ------------------------------------------------------------------------------------
// Canonicalize
// ------------------------------------------------------------------------------------

// TestCanonicalize_Golden pins the rotate-then-orient behavior on handmade cases.
func TestCanonicalize_Golden(t *testing.T) {
	// Rotation only: already oriented (1 < 3 after rotation).
	a := []int{2, 3, 0, 1}
	if err := tour.Canonicalize(a); err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	mustEqualInts(t, a, []int{0, 1, 2, 3})

	// Rotation plus orientation flip: right neighbor 3 > left neighbor 1.
	b := []int{3, 2, 1, 0}
	if err := tour.Canonicalize(b); err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	mustEqualInts(t, b, []int{0, 1, 2, 3})

	// Already canonical input is a fixed point.
	c := []int{0, 1, 4, 3, 2}
	if err := tour.Canonicalize(c); err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	mustEqualInts(t, c, []int{0, 1, 4, 3, 2})
}

// TestCanonicalize_CostPreserving verifies the normalization never changes
// the cyclic cost on a symmetric matrix.
func TestCanonicalize_CostPreserving(t *testing.T) {
	pts := [][2]float64{{0, 0}, {2, 1}, {3, 3}, {1, 4}, {-1, 2}, {0.5, 0.5}}
	dist := euclid(pts)
	rng := rand.New(rand.NewSource(seedDet))

	var trial int
	for trial = 0; trial < 50; trial++ {
		p, err := tour.Random(len(pts), rng)
		if err != nil {
			t.Fatalf("Random: %v", err)
		}
		before, err := tour.Cost(dist, p)
		if err != nil {
			t.Fatalf("Cost(before): %v", err)
		}
		if cerr := tour.Canonicalize(p); cerr != nil {
			t.Fatalf("Canonicalize: %v", cerr)
		}
		after, err := tour.Cost(dist, p)
		if err != nil {
			t.Fatalf("Cost(after): %v", err)
		}
		mustFloatClose(t, after, before, 0, epsLoose)
		if p[0] != 0 {
			t.Fatalf("canonical tour must start at 0, got %v", p)
		}
		if len(p) > 2 && p[1] > p[len(p)-1] {
			t.Fatalf("canonical orientation violated: %v", p)
		}
	}
}

// TestCanonicalize_Rejects checks the only failure mode: city 0 is missing.
func TestCanonicalize_Rejects(t *testing.T) {
	mustErrIs(t, tour.Canonicalize([]int{1, 2, 3}), tour.ErrNotPermutation)
}

// TestCanonicalize_Short documents the degenerate no-op cases.
func TestCanonicalize_Short(t *testing.T) {
	if err := tour.Canonicalize(nil); err != nil {
		t.Fatalf("nil: %v", err)
	}
	one := []int{0}
	if err := tour.Canonicalize(one); err != nil {
		t.Fatalf("singleton: %v", err)
	}
	mustEqualInts(t, one, []int{0})

	two := []int{1, 0}
	if err := tour.Canonicalize(two); err != nil {
		t.Fatalf("pair: %v", err)
	}
	mustEqualInts(t, two, []int{0, 1})
}
