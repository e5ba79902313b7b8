package pattern

func init() {
	Register("blinker", []Cell{
		{0, -1}, {0, 0}, {0, 1},
	})
	Register("block", []Cell{
		{0, 0}, {1, 0},
		{0, 1}, {1, 1},
	})
	Register("toad", []Cell{
		{1, 0}, {2, 0}, {3, 0},
		{0, 1}, {1, 1}, {2, 1},
	})
	Register("beacon", []Cell{
		{0, 0}, {1, 0},
		{0, 1}, {1, 1},
		{2, 2}, {3, 2},
		{2, 3}, {3, 3},
	})
	Register("glider", []Cell{
		{1, 0},
		{2, 1},
		{0, 2}, {1, 2}, {2, 2},
	})
	Register("r-pentomino", []Cell{
		{1, 0}, {2, 0},
		{0, 1}, {1, 1},
		{1, 2},
	})
}
