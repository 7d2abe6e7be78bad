package minesweeper

// clickUnrevealed handles a click on an unrevealed cell: reject flagged
// targets, explode on a direct mine hit, otherwise flood-fill outward.
func (b *Board) clickUnrevealed(row, col int) error {
	idx := row*b.width + col

	if b.cells[idx].IsFlagged {
		return ErrAlreadyFlagged
	}

	if b.cells[idx].IsMine {
		// A directly clicked mine is never marked revealed.
		b.state = exploded([]Position{{Row: row, Col: col}})
		return nil
	}

	b.revealFrom(idx)
	b.checkState()

	return nil
}

// revealFrom reveals the cell at idx. A numbered cell is revealed on its
// own; a zero-adjacency cell seeds a breadth-first flood fill that expands
// through the connected zero region and reveals its numbered boundary
// without expanding past it. Flagged cells block the fill.
//
// Each cell is revealed before its neighbors are inspected and the revealed
// check gates every enqueue, so the queue drains in at most height*width
// visits.
func (b *Board) revealFrom(idx int) {
	if b.cells[idx].MineAdjacent != 0 {
		b.cells[idx].IsRevealed = true
		return
	}

	queue := make([]int, 0, len(b.cells))
	queue = append(queue, idx)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		b.cells[cur].IsRevealed = true

		for _, n := range adjacentIndices(cur/b.width, cur%b.width, b.height, b.width) {
			if b.cells[n].IsFlagged || b.cells[n].IsRevealed {
				continue
			}
			if b.cells[n].MineAdjacent == 0 {
				queue = append(queue, n)
			} else {
				b.cells[n].IsRevealed = true
			}
		}
	}
}
