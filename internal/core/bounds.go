package core

import (
	"errors"
	"fmt"
)

// ErrInvalidBounds reports a grid whose minimum exceeds its maximum on some
// axis. It is a configuration error and is only raised at construction time.
var ErrInvalidBounds = errors.New("core: invalid grid bounds")

// Bounds describes the rectangular playing field and its edge policy. With
// WrapEdges set the field is a torus and every integer coordinate maps onto
// it; otherwise coordinates outside the rectangle are permanently dead.
type Bounds struct {
	MinX int32
	MaxX int32
	MinY int32
	MaxY int32

	WrapEdges bool
}

// NewBounds validates the axis ranges and returns the bounds. Per-cell code
// never re-validates; a Bounds value that exists is well formed.
func NewBounds(minX, maxX, minY, maxY int32, wrap bool) (Bounds, error) {
	if minX > maxX || minY > maxY {
		return Bounds{}, fmt.Errorf("%w: x %d..%d y %d..%d", ErrInvalidBounds, minX, maxX, minY, maxY)
	}
	return Bounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY, WrapEdges: wrap}, nil
}

// Width returns the number of columns in the field.
func (b Bounds) Width() int64 { return int64(b.MaxX) - int64(b.MinX) + 1 }

// Height returns the number of rows in the field.
func (b Bounds) Height() int64 { return int64(b.MaxY) - int64(b.MinY) + 1 }

// Contains reports whether (x, y) lies on the field. On a torus every
// coordinate does.
func (b Bounds) Contains(x, y int32) bool {
	if b.WrapEdges {
		return true
	}
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Normalize maps arbitrary coordinates to their canonical on-field position.
// Without wrapping it is the identity; callers must gate on Contains before
// treating the result as a valid cell.
func (b Bounds) Normalize(x, y int32) Position {
	if !b.WrapEdges {
		return Position{X: x, Y: y}
	}
	return Position{
		X: wrapAxis(x, b.MinX, b.Width()),
		Y: wrapAxis(y, b.MinY, b.Height()),
	}
}

// wrapAxis folds v into [min, min+size). The arithmetic runs in int64 so the
// double-mod stays exact for any int32 input, negative offsets included.
func wrapAxis(v, min int32, size int64) int32 {
	off := (int64(v) - int64(min)) % size
	if off < 0 {
		off += size
	}
	return int32(int64(min) + off)
}
