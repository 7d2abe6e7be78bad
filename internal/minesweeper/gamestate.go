package minesweeper

import "fmt"

// Position identifies a board cell by row and column.
type Position struct {
	Row int
	Col int
}

// String returns the position as "(row, col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Status is the coarse game status.
type Status int

const (
	InProgress Status = iota
	Win
	Exploded
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case Win:
		return "win"
	case Exploded:
		return "exploded"
	default:
		return "unknown"
	}
}

// GameState is the full game status. When Status is Exploded it also carries
// the set of mine positions detonated by the terminal move; a single click
// detonates one mine, a chord can detonate several at once.
type GameState struct {
	status   Status
	exploded []Position
}

func inProgress() GameState {
	return GameState{status: InProgress}
}

func won() GameState {
	return GameState{status: Win}
}

func exploded(positions []Position) GameState {
	return GameState{status: Exploded, exploded: positions}
}

// Status returns the coarse status.
func (g GameState) Status() Status {
	return g.status
}

// IsTerminal reports whether the game has ended.
func (g GameState) IsTerminal() bool {
	return g.status != InProgress
}

// ExplodedPositions returns the detonated mine positions, or nil when the
// game has not exploded. The slice is copied so the terminal state stays
// frozen.
func (g GameState) ExplodedPositions() []Position {
	if len(g.exploded) == 0 {
		return nil
	}
	out := make([]Position, len(g.exploded))
	copy(out, g.exploded)
	return out
}
