package core

import "testing"

func TestRandomCellsDeterministic(t *testing.T) {
	b, _ := NewBounds(0, 15, 0, 15, false)

	a := RandomCells(NewRNG(1337), b, 0.4)
	c := RandomCells(NewRNG(1337), b, 0.4)
	if len(a) != len(c) {
		t.Fatalf("same seed produced %d and %d cells", len(a), len(c))
	}
	for i := range a {
		if a[i] != c[i] {
			t.Fatalf("cell %d differs: %+v vs %+v", i, a[i], c[i])
		}
	}
}

func TestRandomCellsDensityExtremes(t *testing.T) {
	b, _ := NewBounds(0, 9, 0, 9, false)
	if cells := RandomCells(NewRNG(1), b, 0); len(cells) != 0 {
		t.Fatalf("density 0 produced %d cells", len(cells))
	}
	if cells := RandomCells(NewRNG(1), b, 1); len(cells) != 100 {
		t.Fatalf("density 1 produced %d cells, want 100", len(cells))
	}
}

func TestRandomCellsInBounds(t *testing.T) {
	b, _ := NewBounds(-3, 3, -2, 2, false)
	for _, pos := range RandomCells(NewRNG(7), b, 0.5) {
		if !b.Contains(pos.X, pos.Y) {
			t.Fatalf("cell %+v outside bounds", pos)
		}
	}
}
