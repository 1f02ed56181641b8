package noise

// Params bundles the numeric knobs for all six models. Each model reads only
// its relevant subset; the rest is ignored. A Params value has no lifecycle
// beyond the call it is passed to.
type Params struct {
	Frequency   float64 // spatial frequency of octave 0
	Persistence float64 // amplitude decay per octave (turbulence, billowed, ridged)
	Lacunarity  float64 // frequency growth per octave
	Slope       float64 // spectral falloff exponent (plaw)
	NoiseHeight float64 // output scale applied to the final sum

	Gain  float64 // secondary-band amplitude control (swiss, jordan)
	Gain0 float64 // primary-band amplitude control (jordan)
	Warp  float64 // domain-warp strength (swiss, jordan)
	Warp0 float64 // primary-band warp strength (jordan)

	Damp      float64 // damping strength against accumulated signal (jordan)
	Damp0     float64 // first-octave damping weight (jordan)
	DampScale float64 // scale of the accumulated-signal damping (jordan)
}

// Defaults returns the conventional parameter set for a model.
func Defaults(m Model) Params {
	p := Params{
		Frequency:   2.0,
		Persistence: 0.5,
		Lacunarity:  2.0,
		NoiseHeight: 1.0,
	}
	switch m {
	case PowerLaw:
		p.Slope = 2.0
	case Swiss:
		p.Frequency = 1.0
		p.Lacunarity = 1.92
		p.Gain = 0.5
		p.Warp = 0.35
	case Jordan:
		p.Frequency = 1.0
		p.Lacunarity = 1.92
		p.Gain = 0.5
		p.Warp = 0.35
		p.Gain0 = 70.0
		p.Warp0 = 0.4
		p.Damp = 0.8
		p.Damp0 = 1.0
		p.DampScale = 0.01
	}
	return p
}
