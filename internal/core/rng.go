package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding of random soups.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p, clamped to [0, 1].
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// RandomCells samples every position inside b independently with the given
// density and returns the selected ones in row-major order.
func RandomCells(r *RNG, b Bounds, density float64) []Position {
	var cells []Position
	for y := int64(b.MinY); y <= int64(b.MaxY); y++ {
		for x := int64(b.MinX); x <= int64(b.MaxX); x++ {
			if r.Chance(density) {
				cells = append(cells, Position{X: int32(x), Y: int32(y)})
			}
		}
	}
	return cells
}
