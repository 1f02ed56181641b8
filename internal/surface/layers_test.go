package surface

import (
	"math"
	"testing"
)

func TestApplyMareDeterministic(t *testing.T) {
	mare := MareLayer{Seed: 7, Floor: -2000, Frequency: 2, Threshold: 0.0}

	a, err := New(24, 12, moonRadius)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	b, _ := New(24, 12, moonRadius)
	a.ApplyNoise(defaultLayer(42))
	b.ApplyNoise(defaultLayer(42))

	a.ApplyMare(mare)
	b.ApplyMare(mare)
	for k := range a.Elevation {
		if a.Elevation[k] != b.Elevation[k] {
			t.Fatalf("mare pass not deterministic at cell %d", k)
		}
	}
}

func TestApplyMarePullsTowardFloor(t *testing.T) {
	g, err := New(32, 16, moonRadius)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for k := range g.Elevation {
		g.Elevation[k] = 5000
	}

	g.ApplyMare(MareLayer{Seed: 7, Floor: -2000, Frequency: 2, Threshold: 0.3})

	var lowered int
	for _, e := range g.Elevation {
		if e < 5000-1 {
			lowered++
		}
		if e < -2000-1e-6 {
			t.Fatalf("elevation %v fell below the basin floor", e)
		}
	}
	if lowered == 0 {
		t.Error("mare pass changed nothing; expected some basin zones")
	}
}

func TestApplyMareDegenerateThreshold(t *testing.T) {
	g, err := New(8, 4, moonRadius)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	g.Elevation[0] = 123
	g.ApplyMare(MareLayer{Seed: 1, Floor: -100, Frequency: 2, Threshold: -1})
	if g.Elevation[0] != 123 {
		t.Errorf("threshold -1 should be a no-op, elevation changed to %v", g.Elevation[0])
	}
}

func TestApplyDegradation(t *testing.T) {
	l := DegradationLayer{Seed: 3, Amplitude: 50, Frequency: 40, Octaves: 4, Persistence: 0.5}

	a, err := New(24, 12, moonRadius)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	b, _ := New(24, 12, moonRadius)

	a.ApplyDegradation(l)
	b.ApplyDegradation(l)

	var nonzero int
	for k := range a.Elevation {
		if a.Elevation[k] != b.Elevation[k] {
			t.Fatalf("degradation pass not deterministic at cell %d", k)
		}
		if math.Abs(a.Elevation[k]) > l.Amplitude {
			t.Fatalf("degradation texture %v exceeds amplitude %v", a.Elevation[k], l.Amplitude)
		}
		if a.Elevation[k] != 0 {
			nonzero++
		}
	}
	if nonzero == 0 {
		t.Error("degradation pass changed nothing")
	}
}

func TestApplyDegradationZeroOctaves(t *testing.T) {
	g, err := New(8, 4, moonRadius)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	g.ApplyDegradation(DegradationLayer{Seed: 3, Amplitude: 50, Frequency: 40, Octaves: 0, Persistence: 0.5})
	for k, e := range g.Elevation {
		if e != 0 {
			t.Fatalf("cell %d = %v after zero-octave degradation, want 0", k, e)
		}
	}
}
