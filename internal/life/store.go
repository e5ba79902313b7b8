package life

import "sparselife/internal/core"

// cellRecord is the per-cell payload. The record's presence in the store is
// what marks a position alive; neighbors caches the live-neighbor count the
// cell was committed with and is recomputed every step.
type cellRecord struct {
	neighbors uint8
}

// Store is a sparse map of live cells. Records exist only for live positions,
// so memory scales with the population and never with the grid area.
type Store struct {
	cells map[core.Position]cellRecord
}

// NewStore returns an empty cell store.
func NewStore() *Store {
	return &Store{cells: make(map[core.Position]cellRecord)}
}

// SetAlive inserts a record for pos. Calling it on an already-live cell does
// nothing, preserving the record's transient fields.
func (s *Store) SetAlive(pos core.Position) {
	if _, ok := s.cells[pos]; ok {
		return
	}
	s.cells[pos] = cellRecord{}
}

// setRecord inserts pos with a known neighbor count, used by the commit phase.
func (s *Store) setRecord(pos core.Position, neighbors uint8) {
	s.cells[pos] = cellRecord{neighbors: neighbors}
}

// SetDead removes the record for pos. Removing a dead cell is a no-op.
func (s *Store) SetDead(pos core.Position) {
	delete(s.cells, pos)
}

// IsAlive reports whether pos holds a live cell.
func (s *Store) IsAlive(pos core.Position) bool {
	_, ok := s.cells[pos]
	return ok
}

// Count returns the number of live cells.
func (s *Store) Count() int { return len(s.cells) }

// Positions returns a copied snapshot of all live positions. Later mutations
// of the store never show through the snapshot.
func (s *Store) Positions() []core.Position {
	out := make([]core.Position, 0, len(s.cells))
	for pos := range s.cells {
		out = append(out, pos)
	}
	return out
}

// Clear removes every record.
func (s *Store) Clear() {
	clear(s.cells)
}
