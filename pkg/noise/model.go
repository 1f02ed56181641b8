package noise

import (
	"fmt"

	"github.com/orbitforge/regolith/pkg/vec"
)

// Model identifies one of the six fractal combinator models.
type Model uint8

const (
	Turbulence Model = iota
	Billowed
	PowerLaw
	Ridged
	Swiss
	Jordan
)

var modelNames = map[string]Model{
	"turbulence": Turbulence,
	"billowed":   Billowed,
	"plaw":       PowerLaw,
	"ridged":     Ridged,
	"swiss":      Swiss,
	"jordan":     Jordan,
}

// String returns the model's wire name.
func (m Model) String() string {
	switch m {
	case Turbulence:
		return "turbulence"
	case Billowed:
		return "billowed"
	case PowerLaw:
		return "plaw"
	case Ridged:
		return "ridged"
	case Swiss:
		return "swiss"
	case Jordan:
		return "jordan"
	default:
		return "unknown"
	}
}

// ParseModel maps a model name to its Model. Callers that must detect a
// misconfigured name (EvaluateString silently maps unknown names to zero)
// validate with ParseModel at setup time.
func ParseModel(name string) (Model, error) {
	m, ok := modelNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown noise model %q", name)
	}
	return m, nil
}

// Models lists the supported models in a stable order.
func Models() []Model {
	return []Model{Turbulence, Billowed, PowerLaw, Ridged, Swiss, Jordan}
}

// Evaluate computes the model's noise value at (x, y, z) using the borrowed
// gradient table. The octave count is the table's length. A nil or empty
// table yields 0.0 ("no noise applied"), as does a Model outside the known
// set. The result scales linearly with p.NoiseHeight.
func Evaluate(m Model, x, y, z float64, tbl *Table, p Params) float64 {
	if tbl.Octaves() == 0 {
		return 0
	}
	pt := vec.Vec3{X: x, Y: y, Z: z}
	switch m {
	case Turbulence:
		return turbulence(pt, tbl, p)
	case Billowed:
		return billowed(pt, tbl, p)
	case PowerLaw:
		return powerLaw(pt, tbl, p)
	case Ridged:
		return ridged(pt, tbl, p)
	case Swiss:
		return swiss(pt, tbl, p)
	case Jordan:
		return jordan(pt, tbl, p)
	default:
		return 0
	}
}

// EvaluateString is the string-keyed entry point for callers that carry the
// model name as configuration. An unrecognized name returns the documented
// 0.0 fallback, indistinguishable from a genuine zero evaluation by value
// alone; use ParseModel first when that distinction matters.
func EvaluateString(model string, x, y, z float64, tbl *Table, p Params) float64 {
	m, err := ParseModel(model)
	if err != nil {
		return 0
	}
	return Evaluate(m, x, y, z, tbl, p)
}
