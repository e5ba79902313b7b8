package core

// Position identifies a single grid cell by its integer coordinates. It is a
// plain value type and is used directly as a map key.
type Position struct {
	X int32
	Y int32
}

// NeighborOffsets lists the eight Moore-neighborhood offsets. The order is
// fixed so that neighbor scans are reproducible across runs and tests.
var NeighborOffsets = [8][2]int32{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
