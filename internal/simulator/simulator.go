// Package simulator drives random playouts against the minesweeper engine
// and aggregates their outcomes. Each game is seeded independently so any
// single playout can be replayed from its seed alone.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/minesweeper/internal/minesweeper"
	"github.com/lox/minesweeper/internal/randutil"
	"github.com/lox/minesweeper/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations.
type Config struct {
	Height      int
	Width       int
	Mines       int
	Games       int
	Seed        int64
	AutoFlag    bool  // pass auto-flag on every click
	FlagEvery   int   // roughly one flag toggle per this many moves (0 disables)
	MoveCap     int   // abort a game after this many moves (0 derives from board size)
	Parallelism int   // concurrent games; each game owns its board exclusively
	Logger      *log.Logger
	Clock       quartz.Clock
}

func (c *Config) validate() error {
	if c.Height < 1 || c.Width < 1 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", c.Height, c.Width)
	}
	if c.Mines < 0 {
		return fmt.Errorf("mine count must not be negative, got %d", c.Mines)
	}
	if c.Mines > c.Height*c.Width {
		return fmt.Errorf("%d mines do not fit on a %dx%d board", c.Mines, c.Height, c.Width)
	}
	if c.Games < 1 {
		return fmt.Errorf("game count must be at least 1, got %d", c.Games)
	}
	return nil
}

// Simulator runs minesweeper playout simulations.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration. Zero-valued
// optional fields are filled with defaults when Run is called.
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the configured number of games and returns the merged
// statistics plus wall-clock elapsed time. Games run concurrently up to
// Parallelism, but every board is mutated by exactly one goroutine; the
// engine itself stays single-threaded.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, time.Duration, error) {
	if err := s.config.validate(); err != nil {
		return nil, 0, err
	}

	logger := s.config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := s.config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	parallelism := s.config.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	logger.Info("starting simulation",
		"board", fmt.Sprintf("%dx%d", s.config.Height, s.config.Width),
		"mines", s.config.Mines,
		"games", s.config.Games,
		"seed", s.config.Seed)

	start := clock.Now()
	results := make([]statistics.GameResult, s.config.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i := 0; i < s.config.Games; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.playGame(s.config.Seed + int64(i))
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	stats := &statistics.Statistics{}
	for _, result := range results {
		stats.Add(result)
	}
	if err := stats.Validate(); err != nil {
		return nil, 0, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := clock.Since(start)
	logger.Info("simulation complete",
		"games", stats.Games,
		"wins", stats.Wins,
		"explosions", stats.Explosions,
		"unfinished", stats.Unfinished,
		"elapsed", elapsed)

	return stats, elapsed, nil
}

// playGame plays one game to a terminal state (or the move cap) by issuing
// random clicks with an occasional flag toggle.
func (s *Simulator) playGame(seed int64) (statistics.GameResult, error) {
	rng := randutil.New(seed)

	board, err := minesweeper.New(s.config.Height, s.config.Width, s.config.Mines, rng)
	if err != nil {
		return statistics.GameResult{}, err
	}

	flagEvery := s.config.FlagEvery
	moveCap := s.config.MoveCap
	if moveCap < 1 {
		// Random flags can wall off part of the board for a while, so leave
		// plenty of headroom over the cell count.
		moveCap = 8*s.config.Height*s.config.Width + 32
	}

	moves := 0
	for !board.IsEnded() && moves < moveCap {
		row := rng.IntN(s.config.Height)
		col := rng.IntN(s.config.Width)
		moves++

		if flagEvery > 0 && rng.IntN(flagEvery) == 0 {
			if err := board.ToggleFlag(row, col); err != nil && !errors.Is(err, minesweeper.ErrAlreadyRevealed) {
				return statistics.GameResult{}, fmt.Errorf("toggle flag %d,%d: %w", row, col, err)
			}
			continue
		}

		if _, err := board.Click(row, col, s.config.AutoFlag); err != nil && !errors.Is(err, minesweeper.ErrAlreadyFlagged) {
			return statistics.GameResult{}, fmt.Errorf("click %d,%d: %w", row, col, err)
		}
	}

	revealed, flagged := 0, 0
	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			cell := board.Get(row, col)
			if cell.IsRevealed {
				revealed++
			}
			if cell.IsFlagged {
				flagged++
			}
		}
	}

	return statistics.GameResult{
		Seed:      seed,
		Status:    board.Status().Status(),
		Moves:     moves,
		Revealed:  revealed,
		Flagged:   flagged,
		Detonated: len(board.Status().ExplodedPositions()),
	}, nil
}
