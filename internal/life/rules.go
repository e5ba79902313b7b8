package life

import "sparselife/internal/core"

// NextAlive applies the birth-3 / survive-2-or-3 rule to a frontier count map.
// alive must answer against the frozen pre-step store; the function reads
// nothing else, which keeps evaluation independent of visit order.
func NextAlive(counts map[core.Position]uint8, alive func(core.Position) bool, b core.Bounds) map[core.Position]struct{} {
	next := make(map[core.Position]struct{}, len(counts)/4+1)
	for pos, n := range counts {
		if alive(pos) {
			if n == 2 || n == 3 {
				next[pos] = struct{}{}
			}
			continue
		}
		// The frontier only holds valid positions already; the bounds check
		// stays as an explicit guard on births at the field edge.
		if n == 3 && b.Contains(pos.X, pos.Y) {
			next[pos] = struct{}{}
		}
	}
	return next
}
