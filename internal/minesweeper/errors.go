package minesweeper

import "errors"

var (
	// ErrTooManyMines is returned by New when mines exceeds height*width.
	ErrTooManyMines = errors.New("too many mines for board size")

	// ErrGameEnded is returned by mutating calls once the game is terminal.
	ErrGameEnded = errors.New("game already ended")

	// ErrAlreadyFlagged is returned by Click when the target cell is flagged.
	ErrAlreadyFlagged = errors.New("cell is flagged")

	// ErrAlreadyRevealed is returned by ToggleFlag when the target cell is
	// already revealed.
	ErrAlreadyRevealed = errors.New("cell is already revealed")
)
