package noise

import (
	"math"
	"math/rand"

	"github.com/orbitforge/regolith/pkg/vec"
)

// Table is the per-octave gradient table: one pseudo-random unit vector per
// octave, derived deterministically from a seed. Each vector anchors its
// octave's sampling domain so the octaves decorrelate.
//
// The table carries its own octave count, so a caller can never hand a
// combinator a table shorter than the octave loop. It is immutable after
// construction and safe to share across concurrent evaluations.
type Table struct {
	grads []vec.Vec3
}

// NewTable builds the gradient table for (seed, octaves). The same pair
// always reproduces a bit-identical table. A non-positive octave count
// yields an empty table, which every model evaluates to zero.
func NewTable(seed int64, octaves int) *Table {
	if octaves < 0 {
		octaves = 0
	}
	rng := rand.New(rand.NewSource(seed))
	grads := make([]vec.Vec3, octaves)
	for i := range grads {
		// Marsaglia's method: uniform on the unit sphere.
		z := 2*rng.Float64() - 1
		theta := 2 * math.Pi * rng.Float64()
		r := math.Sqrt(1 - z*z)
		grads[i] = vec.Vec3{X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: z}
	}
	return &Table{grads: grads}
}

// Octaves reports how many octaves the table covers. A nil table reports 0.
func (t *Table) Octaves() int {
	if t == nil {
		return 0
	}
	return len(t.grads)
}

// At returns octave i's gradient vector.
func (t *Table) At(i int) vec.Vec3 {
	return t.grads[i]
}
