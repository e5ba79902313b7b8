package life

import (
	"testing"

	"sparselife/internal/core"
)

func seed(e *Engine, cells ...core.Position) {
	for _, pos := range cells {
		e.SetCellAlive(pos.X, pos.Y)
	}
}

func aliveMap(e *Engine) map[core.Position]bool {
	out := make(map[core.Position]bool)
	for _, pos := range e.LiveCells() {
		out[pos] = true
	}
	return out
}

func expectAlive(t *testing.T, e *Engine, want []core.Position) {
	t.Helper()
	got := aliveMap(e)
	if len(got) != len(want) {
		t.Fatalf("population = %d, want %d (cells %v)", len(got), len(want), e.LiveCells())
	}
	for _, pos := range want {
		if !got[pos] {
			t.Fatalf("cell %+v should be alive, live set %v", pos, e.LiveCells())
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	e := New(mustBounds(t, -50, 50, -50, 50, false))
	original := []core.Position{{X: 0, Y: -1}, {X: 0, Y: 0}, {X: 0, Y: 1}}
	seed(e, original...)

	if changed := e.Step(); !changed {
		t.Fatal("blinker step 1 should report a change")
	}
	expectAlive(t, e, []core.Position{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}})
	if e.LivingCellCount() != 3 {
		t.Fatalf("population = %d, want 3", e.LivingCellCount())
	}

	if changed := e.Step(); !changed {
		t.Fatal("blinker step 2 should report a change")
	}
	expectAlive(t, e, original)
	if e.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", e.Generation())
	}
}

func TestBlockStillLife(t *testing.T) {
	e := New(mustBounds(t, -50, 50, -50, 50, false))
	block := []core.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	seed(e, block...)

	for i := 0; i < 12; i++ {
		if changed := e.Step(); changed {
			t.Fatalf("block reported change at step %d", i+1)
		}
		expectAlive(t, e, block)
	}
}

func TestUnderpopulation(t *testing.T) {
	e := New(mustBounds(t, -50, 50, -50, 50, false))
	seed(e, core.Position{X: 0, Y: 0})

	e.Step()
	if e.LivingCellCount() != 0 {
		t.Fatalf("lone cell survived: population = %d", e.LivingCellCount())
	}
}

func TestGliderTranslation(t *testing.T) {
	e := New(mustBounds(t, -50, 50, -50, 50, false))
	glider := []core.Position{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	seed(e, glider...)

	for i := 0; i < 4; i++ {
		e.Step()
	}

	shifted := make([]core.Position, len(glider))
	for i, pos := range glider {
		shifted[i] = core.Position{X: pos.X + 1, Y: pos.Y + 1}
	}
	expectAlive(t, e, shifted)
}

func TestToroidalNeighborCount(t *testing.T) {
	e := New(mustBounds(t, 0, 2, 0, 2, true))
	for y := int32(0); y <= 2; y++ {
		for x := int32(0); x <= 2; x++ {
			if x == 0 && y == 0 {
				continue
			}
			e.SetCellAlive(x, y)
		}
	}

	if got := e.NeighborCount(0, 0); got != 8 {
		t.Fatalf("NeighborCount(0,0) = %d, want 8 via wraparound", got)
	}
}

func TestToroidalSeedingWraps(t *testing.T) {
	e := New(mustBounds(t, 0, 2, 0, 2, true))
	e.SetCellAlive(3, 3)

	if !e.IsCellAlive(0, 0) {
		t.Fatal("wrapped seed should land on (0,0)")
	}
	if e.LivingCellCount() != 1 {
		t.Fatalf("population = %d, want 1", e.LivingCellCount())
	}
}

func TestBoundedModeIgnoresOutOfRange(t *testing.T) {
	e := New(mustBounds(t, -50, 50, -50, 50, false))

	e.SetCellAlive(51, 0)
	e.SetCellAlive(0, -51)
	e.SetCellDead(200, 200)

	if e.LivingCellCount() != 0 {
		t.Fatalf("out-of-range seeding changed population to %d", e.LivingCellCount())
	}
	if e.IsCellAlive(51, 0) {
		t.Fatal("out-of-range cell reported alive")
	}
}

func TestSetCellAliveIdempotent(t *testing.T) {
	e := New(mustBounds(t, -50, 50, -50, 50, false))
	e.SetCellAlive(2, 3)
	e.SetCellAlive(2, 3)

	if e.LivingCellCount() != 1 {
		t.Fatalf("population = %d, want 1", e.LivingCellCount())
	}
}

func TestCountMatchesLiveCells(t *testing.T) {
	e := New(mustBounds(t, -50, 50, -50, 50, false))
	seed(e, core.Position{X: 1, Y: 0}, core.Position{X: 2, Y: 1}, core.Position{X: 0, Y: 2}, core.Position{X: 1, Y: 2}, core.Position{X: 2, Y: 2})

	for i := 0; i < 10; i++ {
		if e.LivingCellCount() != len(e.LiveCells()) {
			t.Fatalf("step %d: count %d != len(LiveCells) %d", i, e.LivingCellCount(), len(e.LiveCells()))
		}
		e.Step()
	}
}

func TestResetAndReseed(t *testing.T) {
	e := New(mustBounds(t, -50, 50, -50, 50, false))
	original := []core.Position{{X: 0, Y: -1}, {X: 0, Y: 0}, {X: 0, Y: 1}}
	seed(e, original...)

	for i := 0; i < 5; i++ {
		e.Step()
	}
	e.Reset()

	if e.Generation() != 0 {
		t.Fatalf("generation = %d after reset, want 0", e.Generation())
	}
	if e.LivingCellCount() != 0 {
		t.Fatalf("population = %d after reset, want 0", e.LivingCellCount())
	}
	if e.IsStable() {
		t.Fatal("reset engine must not report stable")
	}

	seed(e, original...)
	expectAlive(t, e, original)
}

func TestSetBoundsResets(t *testing.T) {
	e := New(mustBounds(t, -50, 50, -50, 50, false))
	seed(e, core.Position{X: 0, Y: 0}, core.Position{X: 1, Y: 0}, core.Position{X: 0, Y: 1}, core.Position{X: 1, Y: 1})
	e.Step()

	e.SetBounds(mustBounds(t, 0, 9, 0, 9, true))

	if e.Generation() != 0 || e.LivingCellCount() != 0 {
		t.Fatalf("SetBounds kept state: generation %d population %d", e.Generation(), e.LivingCellCount())
	}
	if !e.Bounds().WrapEdges {
		t.Fatal("new bounds not applied")
	}
}

func TestStabilityWindowFillTiming(t *testing.T) {
	e := NewWithWindow(mustBounds(t, -50, 50, -50, 50, false), 5)
	seed(e, core.Position{X: 0, Y: 0}, core.Position{X: 1, Y: 0}, core.Position{X: 0, Y: 1}, core.Position{X: 1, Y: 1})

	for i := 1; i <= 4; i++ {
		e.Step()
		if e.IsStable() {
			t.Fatalf("stable after %d steps, window needs 5", i)
		}
	}

	e.Step()
	if !e.IsStable() {
		t.Fatal("fifth identical population count should fill the window")
	}

	for i := 0; i < 5; i++ {
		e.Step()
		if !e.IsStable() {
			t.Fatal("stability must persist for an unchanged still life")
		}
	}
}

func TestBlinkerReportedStable(t *testing.T) {
	// The stability check compares population counts only, so a blinker —
	// which oscillates positionally but keeps three cells — fills the window
	// and is reported stable while still changing every step.
	e := NewWithWindow(mustBounds(t, -50, 50, -50, 50, false), 4)
	seed(e, core.Position{X: 0, Y: -1}, core.Position{X: 0, Y: 0}, core.Position{X: 0, Y: 1})

	var changed bool
	for i := 0; i < 4; i++ {
		changed = e.Step()
	}

	if !e.IsStable() {
		t.Fatal("population-constant oscillator should be reported stable")
	}
	if !changed {
		t.Fatal("blinker should still report positional change")
	}
}

func TestCellsInRegion(t *testing.T) {
	e := New(mustBounds(t, -50, 50, -50, 50, false))
	seed(e, core.Position{X: -5, Y: -5}, core.Position{X: 0, Y: 0}, core.Position{X: 1, Y: 1}, core.Position{X: 10, Y: 10})

	got := e.CellsInRegion(-1, 2, -1, 2)
	if len(got) != 2 {
		t.Fatalf("region query returned %d cells, want 2: %v", len(got), got)
	}
	for _, pos := range got {
		if pos.X < -1 || pos.X > 2 || pos.Y < -1 || pos.Y > 2 {
			t.Fatalf("cell %+v outside queried region", pos)
		}
	}
}

func TestCellsWithNeighborCount(t *testing.T) {
	e := New(mustBounds(t, -50, 50, -50, 50, false))
	seed(e, core.Position{X: 0, Y: -1}, core.Position{X: 0, Y: 0}, core.Position{X: 0, Y: 1})

	twos := e.CellsWithNeighborCount(2)
	if len(twos) != 1 || twos[0] != (core.Position{X: 0, Y: 0}) {
		t.Fatalf("cells with two neighbors = %v, want [{0 0}]", twos)
	}
	ones := e.CellsWithNeighborCount(1)
	if len(ones) != 2 {
		t.Fatalf("cells with one neighbor = %v, want the blinker tips", ones)
	}
}

func TestRandomFillDeterministic(t *testing.T) {
	b := mustBounds(t, 0, 31, 0, 31, false)

	a := New(b)
	a.RandomFill(core.NewRNG(99), 0.3)
	c := New(b)
	c.RandomFill(core.NewRNG(99), 0.3)

	if a.LivingCellCount() == 0 {
		t.Fatal("random fill produced an empty board")
	}
	am, cm := aliveMap(a), aliveMap(c)
	if len(am) != len(cm) {
		t.Fatalf("same seed produced %d and %d cells", len(am), len(cm))
	}
	for pos := range am {
		if !cm[pos] {
			t.Fatalf("cell %+v present in one fill only", pos)
		}
	}
}
