package noise

import (
	"testing"
)

func TestParseModel(t *testing.T) {
	for _, m := range Models() {
		got, err := ParseModel(m.String())
		if err != nil {
			t.Errorf("ParseModel(%q) error: %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseModel(%q) = %v, want %v", m.String(), got, m)
		}
	}

	if _, err := ParseModel("bogus"); err == nil {
		t.Error("ParseModel(\"bogus\") expected error, got nil")
	}
	if _, err := ParseModel(""); err == nil {
		t.Error("ParseModel(\"\") expected error, got nil")
	}
}

func TestModelString(t *testing.T) {
	want := []string{"turbulence", "billowed", "plaw", "ridged", "swiss", "jordan"}
	models := Models()
	if len(models) != len(want) {
		t.Fatalf("Models() has %d entries, want %d", len(models), len(want))
	}
	for i, m := range models {
		if m.String() != want[i] {
			t.Errorf("Models()[%d].String() = %q, want %q", i, m.String(), want[i])
		}
	}
	if got := Model(250).String(); got != "unknown" {
		t.Errorf("out-of-range Model.String() = %q, want \"unknown\"", got)
	}
}

func TestEvaluateStringUnknownModel(t *testing.T) {
	tbl := NewTable(42, 8)
	for _, m := range Models() {
		p := Defaults(m)
		if got := EvaluateString("bogus", 1, 2, 3, tbl, p); got != 0 {
			t.Errorf("EvaluateString(\"bogus\") with %v params = %v, want 0", m, got)
		}
	}
}

func TestEvaluateNilTable(t *testing.T) {
	p := Defaults(Turbulence)
	a := Evaluate(Turbulence, 1, 2, 3, nil, p)
	b := Evaluate(Turbulence, 1, 2, 3, nil, p)
	if a != 0 || b != 0 {
		t.Errorf("Evaluate with nil table = %v, %v, want 0, 0", a, b)
	}
	if a != b {
		t.Errorf("nil-table fallback not deterministic: %v vs %v", a, b)
	}
}

func TestEvaluateZeroOctaves(t *testing.T) {
	tbl := NewTable(42, 0)
	for _, m := range Models() {
		if got := Evaluate(m, 1, 2, 3, tbl, Defaults(m)); got != 0 {
			t.Errorf("%v with zero octaves = %v, want exactly 0", m, got)
		}
	}
}

func TestEvaluateUnknownEnumValue(t *testing.T) {
	tbl := NewTable(42, 4)
	if got := Evaluate(Model(99), 1, 2, 3, tbl, Defaults(Turbulence)); got != 0 {
		t.Errorf("Evaluate(Model(99)) = %v, want 0", got)
	}
}
