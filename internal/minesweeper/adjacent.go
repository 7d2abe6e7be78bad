package minesweeper

// Compass offsets in the fixed enumeration order: NW, N, NE, W, E, SW, S, SE.
// Counting logic is order-independent but tests compare against this order.
var compassOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// adjacentIndices returns the flattened indices of the valid neighbors of
// (row, col) on a height x width board, clipped at the edges. At most 8
// results.
func adjacentIndices(row, col, height, width int) []int {
	idxs := make([]int, 0, 8)
	for _, off := range compassOffsets {
		r, c := row+off[0], col+off[1]
		if r < 0 || r >= height || c < 0 || c >= width {
			continue
		}
		idxs = append(idxs, r*width+c)
	}
	return idxs
}
