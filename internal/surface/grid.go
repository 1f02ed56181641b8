// Package surface owns the planetary elevation grid that the noise engine
// perturbs. The grid stores one elevation per lat/lon node on a sphere;
// noise passes borrow a read-only gradient table and write elevation only
// through their own node, so a pass can fill the grid in parallel.
package surface

import (
	"fmt"
	"math"

	"github.com/dgravesa/go-parallel/parallel"

	"github.com/orbitforge/regolith/pkg/noise"
	"github.com/orbitforge/regolith/pkg/vec"
)

// Grid is a lat/lon node grid over a sphere. Elevation is stored row-major,
// Height rows of Width, in meters relative to the reference sphere.
type Grid struct {
	Width  int     // nodes around the equator
	Height int     // nodes pole to pole
	Radius float64 // body radius in meters

	Elevation []float64

	nodes []vec.Vec3 // unit-sphere node directions, same layout
}

// New creates a zero-elevation grid for a body of the given radius.
func New(width, height int, radius float64) (*Grid, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("surface: grid must be at least 2x2, got %dx%d", width, height)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("surface: radius must be positive, got %g", radius)
	}

	g := &Grid{
		Width:     width,
		Height:    height,
		Radius:    radius,
		Elevation: make([]float64, width*height),
		nodes:     make([]vec.Vec3, width*height),
	}
	for j := 0; j < height; j++ {
		lat := math.Pi*float64(j)/float64(height-1) - math.Pi/2
		for i := 0; i < width; i++ {
			lon := 2 * math.Pi * float64(i) / float64(width)
			g.nodes[j*width+i] = vec.Vec3{
				X: math.Cos(lat) * math.Cos(lon),
				Y: math.Cos(lat) * math.Sin(lon),
				Z: math.Sin(lat),
			}
		}
	}
	return g, nil
}

// Index returns the flat index of node (i, j).
func (g *Grid) Index(i, j int) int {
	return j*g.Width + i
}

// At returns the elevation at node (i, j).
func (g *Grid) At(i, j int) float64 {
	return g.Elevation[g.Index(i, j)]
}

// Node returns the unit-sphere direction of node (i, j).
func (g *Grid) Node(i, j int) vec.Vec3 {
	return g.nodes[g.Index(i, j)]
}

// NoiseLayer describes one coherent-noise pass over the grid.
type NoiseLayer struct {
	Model   noise.Model
	Seed    int64
	Octaves int

	// NoiseWidth is the horizontal scale of the largest feature in meters.
	// Zero or negative means the body radius.
	NoiseWidth float64

	// Params drives the combinator; NoiseHeight is the relief in meters.
	Params noise.Params
}

// ApplyNoise builds the layer's gradient table, evaluates the model at every
// node and accumulates the result into the elevation field. Node evaluations
// are independent, so rows are filled in parallel.
func (g *Grid) ApplyNoise(l NoiseLayer) {
	tbl := noise.NewTable(l.Seed, l.Octaves)

	scale := 1.0
	if l.NoiseWidth > 0 {
		scale = g.Radius / l.NoiseWidth
	}

	// Relief meters to unit-sphere amplitude; scaled back after evaluation.
	p := l.Params
	p.NoiseHeight /= g.Radius

	parallel.For(g.Height, func(j, _ int) {
		row := j * g.Width
		for i := 0; i < g.Width; i++ {
			n := g.nodes[row+i].Scale(scale)
			g.Elevation[row+i] += noise.Evaluate(l.Model, n.X, n.Y, n.Z, tbl, p) * g.Radius
		}
	})
}

// InterpolatedElevation samples the field at fractional node coordinates
// with bilinear filtering, wrapping in longitude and clamping at the poles.
func (g *Grid) InterpolatedElevation(fi, fj float64) float64 {
	if fj < 0 {
		fj = 0
	}
	if fj > float64(g.Height-1) {
		fj = float64(g.Height - 1)
	}

	j0 := int(fj)
	if j0 > g.Height-2 {
		j0 = g.Height - 2
	}
	fracJ := fj - float64(j0)

	fi = math.Mod(fi, float64(g.Width))
	if fi < 0 {
		fi += float64(g.Width)
	}
	i0 := int(fi)
	fracI := fi - float64(i0)
	i1 := (i0 + 1) % g.Width

	south := g.At(i0, j0)*(1-fracI) + g.At(i1, j0)*fracI
	north := g.At(i0, j0+1)*(1-fracI) + g.At(i1, j0+1)*fracI
	return south*(1-fracJ) + north*fracJ
}

// Stats returns the minimum, maximum and mean elevation.
func (g *Grid) Stats() (min, max, mean float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	var sum float64
	for _, e := range g.Elevation {
		if e < min {
			min = e
		}
		if e > max {
			max = e
		}
		sum += e
	}
	return min, max, sum / float64(len(g.Elevation))
}
