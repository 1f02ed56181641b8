package noise

import (
	"math"
	"testing"
)

func TestNewTableDeterministic(t *testing.T) {
	a := NewTable(42, 12)
	b := NewTable(42, 12)

	if a.Octaves() != b.Octaves() {
		t.Fatalf("octave counts differ: %d vs %d", a.Octaves(), b.Octaves())
	}
	for i := 0; i < a.Octaves(); i++ {
		if a.At(i) != b.At(i) {
			t.Errorf("octave %d differs: %v vs %v", i, a.At(i), b.At(i))
		}
	}
}

func TestNewTableSeedsDiffer(t *testing.T) {
	a := NewTable(1, 8)
	b := NewTable(2, 8)

	same := true
	for i := 0; i < a.Octaves(); i++ {
		if a.At(i) != b.At(i) {
			same = false
			break
		}
	}
	if same {
		t.Error("tables from different seeds are identical")
	}
}

func TestTableUnitVectors(t *testing.T) {
	tbl := NewTable(7, 16)
	for i := 0; i < tbl.Octaves(); i++ {
		l := tbl.At(i).Length()
		if math.Abs(l-1) > 1e-12 {
			t.Errorf("octave %d gradient length = %v, want 1", i, l)
		}
	}
}

func TestTableOctaves(t *testing.T) {
	if got := NewTable(0, 5).Octaves(); got != 5 {
		t.Errorf("Octaves() = %d, want 5", got)
	}
	if got := NewTable(0, 0).Octaves(); got != 0 {
		t.Errorf("Octaves() = %d, want 0 for empty table", got)
	}
	if got := NewTable(0, -3).Octaves(); got != 0 {
		t.Errorf("Octaves() = %d, want 0 for negative count", got)
	}

	var nilTable *Table
	if got := nilTable.Octaves(); got != 0 {
		t.Errorf("nil table Octaves() = %d, want 0", got)
	}
}
