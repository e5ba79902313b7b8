package life

// populationWindow is a fixed-capacity ring of recent population counts. The
// simulation counts as stable once the ring is full and holds a single
// repeated value. This is a population heuristic, not a positional one:
// oscillators that preserve their cell count also fill the ring.
type populationWindow struct {
	counts []int
	next   int
	size   int
}

func newPopulationWindow(capacity int) *populationWindow {
	if capacity < 1 {
		capacity = 1
	}
	return &populationWindow{counts: make([]int, capacity)}
}

func (w *populationWindow) push(n int) {
	w.counts[w.next] = n
	w.next = (w.next + 1) % len(w.counts)
	if w.size < len(w.counts) {
		w.size++
	}
}

func (w *populationWindow) stable() bool {
	if w.size < len(w.counts) {
		return false
	}
	first := w.counts[0]
	for _, n := range w.counts[1:] {
		if n != first {
			return false
		}
	}
	return true
}

func (w *populationWindow) reset() {
	w.next = 0
	w.size = 0
}
