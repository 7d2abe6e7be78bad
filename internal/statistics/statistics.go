// Package statistics aggregates outcomes across many simulated minesweeper
// games: win/loss tallies plus distribution statistics over the number of
// moves each game took to reach a terminal state.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/minesweeper/internal/minesweeper"
)

// GameResult is the outcome of a single simulated game.
type GameResult struct {
	Seed      int64              // RNG seed for this game (for replay)
	Status    minesweeper.Status // terminal status, or InProgress if the move cap was hit
	Moves     int                // mutating calls issued before the game ended
	Revealed  int                // cells revealed at the end
	Flagged   int                // flags standing at the end
	Detonated int                // mines detonated by the terminal move
}

// Statistics tracks aggregate results across games.
type Statistics struct {
	Games      int
	Wins       int
	Explosions int
	Unfinished int // games that hit the move cap while still in progress

	SumMoves  float64
	SumMoves2 float64   // sum of squares for variance calculation
	Values    []float64 // all move counts, for median calculation

	RevealedTotal  int
	FlaggedTotal   int
	DetonatedTotal int
	MaxMoves       int
	MaxDetonated   int // largest multi-mine detonation observed (chords)
}

// Add records one game result.
func (s *Statistics) Add(result GameResult) {
	s.Games++
	switch result.Status {
	case minesweeper.Win:
		s.Wins++
	case minesweeper.Exploded:
		s.Explosions++
	default:
		s.Unfinished++
	}

	moves := float64(result.Moves)
	s.SumMoves += moves
	s.SumMoves2 += moves * moves
	s.Values = append(s.Values, moves)

	s.RevealedTotal += result.Revealed
	s.FlaggedTotal += result.Flagged
	s.DetonatedTotal += result.Detonated
	if result.Moves > s.MaxMoves {
		s.MaxMoves = result.Moves
	}
	if result.Detonated > s.MaxDetonated {
		s.MaxDetonated = result.Detonated
	}
}

// Merge folds other into s. Used to combine per-shard statistics after
// parallel simulation.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.Wins += other.Wins
	s.Explosions += other.Explosions
	s.Unfinished += other.Unfinished
	s.SumMoves += other.SumMoves
	s.SumMoves2 += other.SumMoves2
	s.Values = append(s.Values, other.Values...)
	s.RevealedTotal += other.RevealedTotal
	s.FlaggedTotal += other.FlaggedTotal
	s.DetonatedTotal += other.DetonatedTotal
	if other.MaxMoves > s.MaxMoves {
		s.MaxMoves = other.MaxMoves
	}
	if other.MaxDetonated > s.MaxDetonated {
		s.MaxDetonated = other.MaxDetonated
	}
}

// WinRate returns the fraction of games won, in [0, 1].
func (s *Statistics) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Mean returns the arithmetic mean of moves per game.
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumMoves / float64(s.Games)
}

// Variance returns the sample variance of moves per game.
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumMoves2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of moves per game.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for mean moves.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median moves per game.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Validate checks internal consistency of the aggregates.
func (s *Statistics) Validate() error {
	if s.Wins+s.Explosions+s.Unfinished != s.Games {
		return fmt.Errorf("outcome tallies (%d+%d+%d) do not sum to game count %d",
			s.Wins, s.Explosions, s.Unfinished, s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("recorded %d move counts for %d games", len(s.Values), s.Games)
	}
	if s.Explosions == 0 && s.DetonatedTotal != 0 {
		return fmt.Errorf("%d mines detonated across zero explosions", s.DetonatedTotal)
	}
	return nil
}
