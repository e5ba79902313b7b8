package life

import "sparselife/internal/core"

// DefaultStabilityWindow is the number of consecutive equal population counts
// after which the simulation reports itself stable.
const DefaultStabilityWindow = 10

// Engine runs Conway's Game of Life over a sparse cell store. A single Engine
// is not safe for concurrent use; drive it from one goroutine and hand copies
// to readers (see the control package).
type Engine struct {
	bounds     core.Bounds
	store      *Store
	generation uint64
	window     *populationWindow
	stable     bool
}

// New constructs an engine with the default stability window.
func New(b core.Bounds) *Engine {
	return NewWithWindow(b, DefaultStabilityWindow)
}

// NewWithWindow constructs an engine whose stability window holds cycles
// population counts. Window sizes below one are a configuration error and are
// expected to be rejected upstream; they are clamped here as a backstop.
func NewWithWindow(b core.Bounds, cycles int) *Engine {
	if cycles < 1 {
		cycles = DefaultStabilityWindow
	}
	return &Engine{
		bounds: b,
		store:  NewStore(),
		window: newPopulationWindow(cycles),
	}
}

// Bounds returns the current playing field.
func (e *Engine) Bounds() core.Bounds { return e.bounds }

// SetBounds replaces the playing field. All cells, the generation counter and
// the stability window are discarded; reseeding is the caller's job.
func (e *Engine) SetBounds(b core.Bounds) {
	e.bounds = b
	e.Reset()
}

// SetCellAlive seeds a live cell. Coordinates outside a bounded field are
// silently ignored; on a torus they wrap onto it.
func (e *Engine) SetCellAlive(x, y int32) {
	if !e.bounds.Contains(x, y) {
		return
	}
	e.store.SetAlive(e.bounds.Normalize(x, y))
}

// SetCellDead removes a cell. Dead and out-of-range positions are no-ops.
func (e *Engine) SetCellDead(x, y int32) {
	if !e.bounds.Contains(x, y) {
		return
	}
	e.store.SetDead(e.bounds.Normalize(x, y))
}

// IsCellAlive reports whether the cell at (x, y) is alive.
func (e *Engine) IsCellAlive(x, y int32) bool {
	if !e.bounds.Contains(x, y) {
		return false
	}
	return e.store.IsAlive(e.bounds.Normalize(x, y))
}

// LivingCellCount returns the current population.
func (e *Engine) LivingCellCount() int { return e.store.Count() }

// Generation returns the number of completed steps since the last reset.
func (e *Engine) Generation() uint64 { return e.generation }

// IsStable reports whether the population count has been constant for a full
// stability window.
func (e *Engine) IsStable() bool { return e.stable }

// LiveCells returns a copied snapshot of all live positions.
func (e *Engine) LiveCells() []core.Position { return e.store.Positions() }

// NeighborCount returns the live-neighbor count of (x, y), wrap-aware.
func (e *Engine) NeighborCount(x, y int32) uint8 {
	return CountAt(e.store, e.bounds, x, y)
}

// CellsInRegion returns the live cells inside the inclusive rectangle.
func (e *Engine) CellsInRegion(minX, maxX, minY, maxY int32) []core.Position {
	var out []core.Position
	for _, pos := range e.store.Positions() {
		if pos.X >= minX && pos.X <= maxX && pos.Y >= minY && pos.Y <= maxY {
			out = append(out, pos)
		}
	}
	return out
}

// CellsWithNeighborCount returns the live cells that currently have exactly n
// live neighbors.
func (e *Engine) CellsWithNeighborCount(n uint8) []core.Position {
	var out []core.Position
	for _, pos := range e.store.Positions() {
		if CountAt(e.store, e.bounds, pos.X, pos.Y) == n {
			out = append(out, pos)
		}
	}
	return out
}

// RandomFill seeds the field with a random soup at the given density.
func (e *Engine) RandomFill(rng *core.RNG, density float64) {
	for _, pos := range core.RandomCells(rng, e.bounds, density) {
		e.store.SetAlive(pos)
	}
}

// Step advances the simulation by one generation and reports whether the live
// set changed. Counting, evaluation and commit run as strictly sequential
// phases; evaluation only ever sees the frozen pre-step state.
func (e *Engine) Step() bool {
	prev := make(map[core.Position]struct{}, e.store.Count())
	for _, pos := range e.store.Positions() {
		prev[pos] = struct{}{}
	}

	counts := NeighborCounts(e.store, e.bounds)
	next := NextAlive(counts, e.store.IsAlive, e.bounds)

	e.store.Clear()
	for pos := range next {
		e.store.setRecord(pos, counts[pos])
	}

	e.generation++
	e.window.push(len(next))
	e.stable = e.window.stable()

	changed := len(next) != len(prev)
	if !changed {
		for pos := range next {
			if _, ok := prev[pos]; !ok {
				changed = true
				break
			}
		}
	}
	return changed
}

// Reset clears all cells, rewinds the generation counter and empties the
// stability window. The bounds are kept.
func (e *Engine) Reset() {
	e.store.Clear()
	e.generation = 0
	e.window.reset()
	e.stable = false
}
