// Package minesweeper implements the core Minesweeper board engine:
// randomized mine placement, adjacency precomputation, flood-fill reveal,
// chorded reveal/auto-flag and terminal win/loss detection.
//
// The main type is Board, which owns a flat row-major cell buffer and a
// game state that moves from InProgress to exactly one of Win or Exploded.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	b, err := minesweeper.New(8, 8, 9, rng)
//	if err != nil {
//	    return err
//	}
//	b.ToggleFlag(3, 2)
//	changed, err := b.Click(7, 7, true)
//
// # Deterministic Testing
//
// Mine placement is driven entirely by the injected Sampler, so a seeded
// generator (or a scripted fake) reproduces the exact same board layout on
// every run. The engine performs no I/O and holds no other external state.
//
// # Contracts
//
// Passing an out-of-bounds position to Get, Click or ToggleFlag panics.
// Validate coordinates first when dealing with user input. All recoverable
// failures (ErrTooManyMines, ErrGameEnded, ErrAlreadyFlagged,
// ErrAlreadyRevealed) are returned as sentinel errors.
//
// A Board is exclusively owned by one game session and is not safe for
// concurrent use.
package minesweeper
