package surface

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/dgravesa/go-parallel/parallel"
	"github.com/ojrac/opensimplex-go"
)

// MareLayer flattens low-lying zones toward a basin floor, the way large
// mare basins read on a real surface. The zone mask is a single band of
// low-frequency Perlin noise.
type MareLayer struct {
	Seed      int64
	Floor     float64 // basin floor elevation in meters, usually negative
	Frequency float64 // mask frequency in cycles per radian
	Threshold float64 // mask cutover in (-1, 1); nodes below it become basin
}

// ApplyMare blends elevation toward the basin floor wherever the zone mask
// falls below the threshold, ramping smoothly to full strength at mask -1.
func (g *Grid) ApplyMare(l MareLayer) {
	p := perlin.NewPerlin(2, 3, 3, l.Seed)

	span := l.Threshold + 1
	if span <= 0 {
		return
	}

	parallel.For(g.Height, func(j, _ int) {
		row := j * g.Width
		for i := 0; i < g.Width; i++ {
			n := g.nodes[row+i]
			zone := p.Noise3D(n.X*l.Frequency, n.Y*l.Frequency, n.Z*l.Frequency)
			if zone >= l.Threshold {
				continue
			}
			t := (l.Threshold - zone) / span
			if t > 1 {
				t = 1
			}
			g.Elevation[row+i] = g.Elevation[row+i]*(1-t) + l.Floor*t
		}
	})
}

// DegradationLayer adds small-scale regolith texture on top of the coherent
// field: a few octaves of simplex noise with persistence amplitude falloff,
// normalized so the result stays within +/-Amplitude.
type DegradationLayer struct {
	Seed        int64
	Amplitude   float64 // texture relief in meters
	Frequency   float64 // base frequency in cycles per radian
	Octaves     int
	Persistence float64
}

// ApplyDegradation accumulates the texture into the elevation field.
func (g *Grid) ApplyDegradation(l DegradationLayer) {
	if l.Octaves <= 0 {
		return
	}
	simplex := opensimplex.New(l.Seed)

	amps := make([]float64, l.Octaves)
	var total float64
	for i := range amps {
		amps[i] = math.Pow(l.Persistence, float64(i))
		total += amps[i]
	}
	if total == 0 {
		return
	}

	parallel.For(g.Height, func(j, _ int) {
		row := j * g.Width
		for i := 0; i < g.Width; i++ {
			n := g.nodes[row+i]
			var sum float64
			freq := l.Frequency
			for o := 0; o < l.Octaves; o++ {
				sum += amps[o] * simplex.Eval3(n.X*freq, n.Y*freq, n.Z*freq)
				freq *= 2
			}
			g.Elevation[row+i] += l.Amplitude * sum / total
		}
	})
}
