package cli

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Instance kinds accepted by --instance and the TOML "instance" key.
const (
	instanceUniform = "uniform" // seeded uniform points in the unit square
	instanceRing    = "ring"    // circle with a deterministic ripple
)

// synthesize builds the Euclidean distance matrix of n synthetic points.
// The kind selects the geometry; seed drives the uniform generator (the
// ring is fully deterministic, ripple included, so equal n means equal
// matrices regardless of seed).
func synthesize(kind string, n int, seed int64) (*mat.SymDense, error) {
	switch kind {
	case instanceUniform:
		return euclidMatrix(uniformPoints(n, seed)), nil
	case instanceRing:
		return euclidMatrix(ringPoints(n)), nil
	default:
		return nil, fmt.Errorf("cli: unknown instance kind %q (want %s or %s)", kind, instanceUniform, instanceRing)
	}
}

// uniformPoints draws n points uniformly from the unit square using a
// dedicated generator, so instance synthesis never consumes the solver's
// random stream.
func uniformPoints(n int, seed int64) [][2]float64 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{rng.Float64(), rng.Float64()}
	}
	return pts
}

// ringPoints places n points on a gently rippled circle. The ripple breaks
// distance ties without obscuring the obvious optimum: the cheapest tour
// visits the points in angular order, which makes solver output easy to
// sanity-check by eye.
func ringPoints(n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		r := 1.0 + 0.02*float64((i*5)%7)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}
	return pts
}

// euclidMatrix builds the symmetric pairwise-distance matrix of pts with a
// zero diagonal. SymDense stores each pair once, so symmetry holds exactly.
func euclidMatrix(pts [][2]float64) *mat.SymDense {
	n := len(pts)
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.SetSym(i, j, math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1]))
		}
	}
	return m
}
