package minesweeper

// clickRevealed handles a chord: a click on an already-revealed numbered
// cell. When the flagged-neighbor count matches the cell's number, every
// unflagged-unrevealed neighbor is revealed; mines among them detonate and
// the whole detonation set becomes the terminal Exploded state. When
// autoFlag is set and the remaining unrevealed neighbors must all be mines,
// they are flagged instead. Returns whether the board changed.
func (b *Board) clickRevealed(row, col int, autoFlag bool) bool {
	idx := row*b.width + col
	if b.cells[idx].MineAdjacent == 0 {
		return false
	}

	changed := false
	neighbors := adjacentIndices(row, col, b.height, b.width)

	revealed, flagged := 0, 0
	for _, n := range neighbors {
		switch {
		case b.cells[n].IsRevealed:
			revealed++
		case b.cells[n].IsFlagged:
			flagged++
		}
	}
	unrevealed := len(neighbors) - revealed - flagged

	if unrevealed > 0 {
		if flagged == b.cells[idx].MineAdjacent {
			var detonated []Position

			for _, n := range neighbors {
				if b.cells[n].IsFlagged || b.cells[n].IsRevealed {
					continue
				}
				if b.cells[n].IsMine {
					b.cells[n].IsRevealed = true
					detonated = append(detonated, Position{Row: n / b.width, Col: n % b.width})
				} else {
					b.revealFrom(n)
					changed = true
				}
			}

			if len(detonated) > 0 {
				b.state = exploded(detonated)
				return true
			}
		}

		if autoFlag && unrevealed+flagged == b.cells[idx].MineAdjacent {
			for _, n := range neighbors {
				if !b.cells[n].IsFlagged && !b.cells[n].IsRevealed {
					b.cells[n].IsFlagged = true
					changed = true
				}
			}
		}
	}

	b.checkState()

	return changed
}
