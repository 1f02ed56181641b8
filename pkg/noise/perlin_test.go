package noise

import (
	"math"
	"math/rand"
	"testing"
)

func TestNoise3Repeatable(t *testing.T) {
	pts := [][3]float64{
		{0, 0, 0},
		{1.5, -2.25, 3.75},
		{-100.1, 0.5, 99.9},
		{0.123, 0.456, 0.789},
	}
	for _, p := range pts {
		a := noise3(p[0], p[1], p[2])
		b := noise3(p[0], p[1], p[2])
		if a != b {
			t.Errorf("noise3(%v) not repeatable: %v vs %v", p, a, b)
		}
	}
}

func TestNoise3Bounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 10000; n++ {
		x := rng.Float64()*200 - 100
		y := rng.Float64()*200 - 100
		z := rng.Float64()*200 - 100
		n := noise3(x, y, z)
		if math.IsNaN(n) || math.Abs(n) > 1.5 {
			t.Fatalf("noise3(%v, %v, %v) = %v, out of expected range", x, y, z, n)
		}
	}
}

func TestNoise3Continuous(t *testing.T) {
	const eps = 1e-7
	rng := rand.New(rand.NewSource(2))
	for n := 0; n < 5000; n++ {
		x := rng.Float64()*20 - 10
		y := rng.Float64()*20 - 10
		z := rng.Float64()*20 - 10
		a := noise3(x, y, z)
		b := noise3(x+eps, y+eps, z+eps)
		if d := math.Abs(a - b); d > 1e-4 {
			t.Fatalf("noise3 jumps by %v over eps step at (%v, %v, %v)", d, x, y, z)
		}
	}
}

func TestNoise3ZeroAtLatticePoints(t *testing.T) {
	// Classic Perlin noise vanishes on the integer lattice.
	for _, p := range [][3]float64{{0, 0, 0}, {1, 2, 3}, {-5, 7, 11}} {
		if n := noise3(p[0], p[1], p[2]); n != 0 {
			t.Errorf("noise3(%v) = %v, want 0 at lattice point", p, n)
		}
	}
}
