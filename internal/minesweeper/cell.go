package minesweeper

// Cell is a single board position. MineAdjacent is computed once during
// construction and never changes; IsRevealed only ever goes false to true.
type Cell struct {
	IsMine       bool
	MineAdjacent int
	IsRevealed   bool
	IsFlagged    bool
}

func newCell(isMine bool) Cell {
	return Cell{IsMine: isMine}
}
