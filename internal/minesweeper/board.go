package minesweeper

import "fmt"

// Sampler supplies uniform random indices for mine placement. IntN must
// return a value in [0, n). *rand.Rand from math/rand/v2 satisfies it; tests
// inject scripted fakes for reproducible layouts.
type Sampler interface {
	IntN(n int) int
}

// Board is a Minesweeper game. The cells live in a single flat slice indexed
// row*width+col, avoiding a nested allocation per row.
type Board struct {
	cells  []Cell
	height int
	width  int
	state  GameState
}

// New creates a board with the given dimensions, places mines at positions
// drawn from the sampler and precomputes every cell's adjacent mine count.
// Returns ErrTooManyMines when mines exceeds the cell count.
func New(height, width, mines int, sampler Sampler) (*Board, error) {
	size := height * width
	if mines > size {
		return nil, ErrTooManyMines
	}

	cells := make([]Cell, size)
	for i := range cells {
		cells[i] = newCell(i < mines)
	}

	b := &Board{
		cells:  cells,
		height: height,
		width:  width,
		state:  inProgress(),
	}
	b.shuffle(sampler)
	b.updateAdjacentMineCounts()

	return b, nil
}

// shuffle swaps every index with a sample drawn from the full range. The
// resample is deliberately not a shrinking-range Fisher-Yates: seeded
// layouts depend on this exact swap sequence.
func (b *Board) shuffle(sampler Sampler) {
	size := len(b.cells)
	for idx := 0; idx < size; idx++ {
		other := sampler.IntN(size)
		b.cells[idx], b.cells[other] = b.cells[other], b.cells[idx]
	}
}

func (b *Board) updateAdjacentMineCounts() {
	for idx := range b.cells {
		count := 0
		for _, n := range adjacentIndices(idx/b.width, idx%b.width, b.height, b.width) {
			if b.cells[n].IsMine {
				count++
			}
		}
		b.cells[idx].MineAdjacent = count
	}
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Get returns a copy of the cell at (row, col).
// Panics when the position is out of bounds.
func (b *Board) Get(row, col int) Cell {
	b.mustBeValid(row, col)
	return b.cells[row*b.width+col]
}

// IsEnded reports whether the game has reached Win or Exploded.
func (b *Board) IsEnded() bool {
	return b.state.IsTerminal()
}

// Status returns the current game state.
func (b *Board) Status() GameState {
	return b.state
}

// Click clicks the cell at (row, col). An unrevealed cell is revealed,
// flood-filling outward from a zero-adjacency cell; a revealed numbered cell
// is chorded (see clickRevealed). The returned bool reports whether the
// board changed.
//
// Panics when the position is out of bounds.
func (b *Board) Click(row, col int, autoFlag bool) (bool, error) {
	b.mustBeValid(row, col)

	if b.IsEnded() {
		return false, ErrGameEnded
	}

	if !b.cells[row*b.width+col].IsRevealed {
		if err := b.clickUnrevealed(row, col); err != nil {
			return false, err
		}
		return true, nil
	}
	return b.clickRevealed(row, col, autoFlag), nil
}

// ToggleFlag inverts the flag on the unrevealed cell at (row, col).
// Panics when the position is out of bounds.
func (b *Board) ToggleFlag(row, col int) error {
	b.mustBeValid(row, col)

	if b.IsEnded() {
		return ErrGameEnded
	}

	idx := row*b.width + col
	if b.cells[idx].IsRevealed {
		return ErrAlreadyRevealed
	}

	b.cells[idx].IsFlagged = !b.cells[idx].IsFlagged

	// Flagging alone can never finish the game, but the recompute keeps the
	// postcondition uniform across every mutating call.
	b.checkState()

	return nil
}

// checkState derives Win from the board contents: the game is won the moment
// every non-mine cell is revealed. Exploded transitions are set directly by
// the reveal paths and never pass through here.
func (b *Board) checkState() {
	for _, cell := range b.cells {
		if !cell.IsMine && !cell.IsRevealed {
			b.state = inProgress()
			return
		}
	}
	b.state = won()
}

func (b *Board) mustBeValid(row, col int) {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		panic(fmt.Sprintf("minesweeper: invalid position (%d, %d)", row, col))
	}
}
