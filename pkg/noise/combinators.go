package noise

import (
	"math"

	"github.com/orbitforge/regolith/pkg/vec"
)

// sample evaluates the base primitive for one octave: the point is scaled by
// the octave frequency and anchored by the octave's gradient vector. At zero
// frequency every point collapses onto the anchor and the octave contributes
// a frequency-independent constant.
func sample(pt vec.Vec3, freq float64, anchor vec.Vec3) float64 {
	return noise3(pt.X*freq+anchor.X, pt.Y*freq+anchor.Y, pt.Z*freq+anchor.Z)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// turbulence sums |noise| per octave with persistence amplitude decay.
// Every term is non-negative, so the result carries the sign of NoiseHeight.
func turbulence(pt vec.Vec3, tbl *Table, p Params) float64 {
	var sum float64
	freq, amp := p.Frequency, 1.0
	for i := 0; i < tbl.Octaves(); i++ {
		sum += amp * math.Abs(sample(pt, freq, tbl.At(i)))
		freq *= p.Lacunarity
		amp *= p.Persistence
	}
	return sum * p.NoiseHeight
}

// billowed remaps each octave's |noise| into a signed billow profile before
// accumulating with persistence decay.
func billowed(pt vec.Vec3, tbl *Table, p Params) float64 {
	var sum float64
	freq, amp := p.Frequency, 1.0
	for i := 0; i < tbl.Octaves(); i++ {
		sum += amp * (2*math.Abs(sample(pt, freq, tbl.At(i))) - 1)
		freq *= p.Lacunarity
		amp *= p.Persistence
	}
	return sum * p.NoiseHeight
}

// powerLaw derives each octave's amplitude from its frequency as freq^-Slope
// instead of a fixed persistence, giving Hurst-exponent spectral falloff.
// A zero-frequency octave contributes at unit amplitude so the result stays
// finite; negative frequency with a fractional Slope is pathological input
// and propagates NaN unchanged.
func powerLaw(pt vec.Vec3, tbl *Table, p Params) float64 {
	var sum float64
	freq := p.Frequency
	for i := 0; i < tbl.Octaves(); i++ {
		amp := 1.0
		if freq != 0 {
			amp = math.Pow(freq, -p.Slope)
		}
		sum += amp * math.Abs(sample(pt, freq, tbl.At(i)))
		freq *= p.Lacunarity
	}
	return sum * p.NoiseHeight
}

// ridged is the multifractal ridged construction: each octave contributes
// the squared ridge profile (1-|noise|)^2, weighted by the previous octave's
// profile so ridges reinforce across scales, with persistence amplitude
// decay. All terms are non-negative for non-negative Persistence.
func ridged(pt vec.Vec3, tbl *Table, p Params) float64 {
	var sum float64
	freq, amp, prev := p.Frequency, 1.0, 1.0
	for i := 0; i < tbl.Octaves(); i++ {
		s := 1 - math.Abs(sample(pt, freq, tbl.At(i)))
		s *= s
		sum += s * amp * prev
		prev = s
		freq *= p.Lacunarity
		amp *= p.Persistence
	}
	return sum * p.NoiseHeight
}

// swiss is the single-band warped model. Each octave's ridge profile offsets
// the next octave's input coordinates by Warp and thins the next amplitude
// by Gain where the signal is already strong, which reads as eroded ridges.
func swiss(pt vec.Vec3, tbl *Table, p Params) float64 {
	var sum, warp float64
	freq, amp := p.Frequency, 1.0
	for i := 0; i < tbl.Octaves(); i++ {
		q := vec.Vec3{X: pt.X + warp, Y: pt.Y + warp, Z: pt.Z + warp}
		s := 1 - math.Abs(sample(q, freq, tbl.At(i)))
		sum += amp * s
		warp += p.Warp * s
		amp *= p.Gain * clamp01(1-s)
		freq *= p.Lacunarity
	}
	return sum * p.NoiseHeight
}

// jordan interleaves two bands. The first octave is the primary band: its
// squared signal seeds the sum, the warp offset (Warp0) and the damping
// accumulator (Damp0). Subsequent octaves form the secondary band, starting
// at amplitude Gain0*DampScale and decaying by Gain, each contribution
// damped by 1/(1 + Damp*acc) where acc grows with the accumulated signal
// magnitude scaled by DampScale. The damping is monotone: the stronger the
// accumulated signal, the less the high octaves add.
func jordan(pt vec.Vec3, tbl *Table, p Params) float64 {
	freq := p.Frequency

	n := sample(pt, freq, tbl.At(0))
	sig := n * n
	sum := sig
	acc := p.Damp0 * sig
	warp := p.Warp0 * sig
	amp := p.Gain0 * p.DampScale
	freq *= p.Lacunarity

	for i := 1; i < tbl.Octaves(); i++ {
		q := vec.Vec3{X: pt.X + warp, Y: pt.Y + warp, Z: pt.Z + warp}
		n = sample(q, freq, tbl.At(i))
		sig = n * n
		sum += amp * sig / (1 + p.Damp*acc)
		acc += p.DampScale * sig
		warp += p.Warp * sig
		amp *= p.Gain
		freq *= p.Lacunarity
	}
	return sum * p.NoiseHeight
}
