package life

import "sparselife/internal/core"

// NeighborCounts computes live-neighbor counts over the active frontier: every
// live cell plus each of its in-bounds Moore neighbors. Positions outside the
// frontier cannot change state next step and are never materialized.
//
// Each live cell scatters one increment to each of its eight normalized
// neighbors, so the cost is eight map operations per live cell regardless of
// grid extent.
func NeighborCounts(s *Store, b core.Bounds) map[core.Position]uint8 {
	live := s.Positions()
	counts := make(map[core.Position]uint8, len(live)*4)
	for _, pos := range live {
		for _, off := range core.NeighborOffsets {
			nx, ny := pos.X+off[0], pos.Y+off[1]
			if !b.Contains(nx, ny) {
				continue
			}
			counts[b.Normalize(nx, ny)]++
		}
	}
	// Isolated live cells receive no increments but are still part of the
	// frontier; they must appear with a zero count.
	for _, pos := range live {
		if _, ok := counts[pos]; !ok {
			counts[pos] = 0
		}
	}
	return counts
}

// CountAt computes the live-neighbor count of a single position on demand.
// On a torus, neighbors that fold onto the same cell are counted once per
// offset, matching the scatter pass above.
func CountAt(s *Store, b core.Bounds, x, y int32) uint8 {
	var n uint8
	for _, off := range core.NeighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if !b.Contains(nx, ny) {
			continue
		}
		if s.IsAlive(b.Normalize(nx, ny)) {
			n++
		}
	}
	return n
}
