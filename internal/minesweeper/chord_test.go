package minesweeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Chord boards below use the identity sampler: 3x3 with two mines pins them
// to (0,0) and (0,1), which makes (1,0) and (1,1) "2" cells and the bottom
// row a zero region.

func TestChordRevealsSatisfiedNeighbors(t *testing.T) {
	b := newKnownBoard(t, 3, 3, 2)

	_, err := b.Click(1, 1, false)
	require.NoError(t, err)
	require.Equal(t, 2, b.Get(1, 1).MineAdjacent)

	require.NoError(t, b.ToggleFlag(0, 0))
	require.NoError(t, b.ToggleFlag(0, 1))

	changed, err := b.Click(1, 1, false)
	require.NoError(t, err)
	assert.True(t, changed)

	// Both flags are correct, so the chord reveals every remaining
	// neighbor and cascades through the zero region below.
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell := b.Get(row, col)
			if cell.IsMine {
				assert.False(t, cell.IsRevealed)
			} else {
				assert.True(t, cell.IsRevealed, "cell (%d, %d)", row, col)
			}
		}
	}
	assert.Equal(t, Win, b.Status().Status())
}

func TestChordAggregatesMultipleDetonations(t *testing.T) {
	b := newKnownBoard(t, 3, 3, 2)

	_, err := b.Click(1, 1, false)
	require.NoError(t, err)

	// Two wrong flags satisfy the count; the chord then detonates both
	// mines in a single terminal transition.
	require.NoError(t, b.ToggleFlag(1, 0))
	require.NoError(t, b.ToggleFlag(1, 2))

	changed, err := b.Click(1, 1, false)
	require.NoError(t, err)
	assert.True(t, changed)

	state := b.Status()
	require.Equal(t, Exploded, state.Status())
	assert.ElementsMatch(t,
		[]Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
		state.ExplodedPositions())

	// Unlike a direct click, chord-detonated mines are marked revealed.
	assert.True(t, b.Get(0, 0).IsRevealed)
	assert.True(t, b.Get(0, 1).IsRevealed)
	assert.True(t, b.IsEnded())
}

func TestChordAutoFlagsForcedMines(t *testing.T) {
	b := newKnownBoard(t, 3, 3, 2)

	// (0,2) touches exactly one mine, (0,1). Reveal its safe neighbors so
	// the only unrevealed neighbor left is the mine itself.
	_, err := b.Click(0, 2, false)
	require.NoError(t, err)
	_, err = b.Click(1, 1, false)
	require.NoError(t, err)
	_, err = b.Click(1, 2, false)
	require.NoError(t, err)
	require.Equal(t, 1, b.Get(0, 2).MineAdjacent)

	changed, err := b.Click(0, 2, true)
	require.NoError(t, err)
	assert.True(t, changed)

	assert.True(t, b.Get(0, 1).IsFlagged, "the forced mine gets auto-flagged")
	assert.False(t, b.Get(0, 1).IsRevealed)
	assert.Equal(t, InProgress, b.Status().Status())
}

func TestChordNoOpCases(t *testing.T) {
	t.Run("zero-adjacency target", func(t *testing.T) {
		b := newKnownBoard(t, 3, 3, 2)
		_, err := b.Click(2, 2, false)
		require.NoError(t, err)

		changed, err := b.Click(2, 2, true)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("no unrevealed neighbors", func(t *testing.T) {
		// 2x3 with mines at (0,0) and (0,1). Surround (0,2) with revealed
		// or flagged cells; the chord then has nothing to act on even
		// though the flag count satisfies the number.
		b := newKnownBoard(t, 2, 3, 2)
		for _, pos := range []Position{{0, 2}, {1, 1}, {1, 2}} {
			_, err := b.Click(pos.Row, pos.Col, false)
			require.NoError(t, err)
		}
		require.NoError(t, b.ToggleFlag(0, 1))
		require.False(t, b.IsEnded())

		changed, err := b.Click(0, 2, true)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("flag count does not satisfy the number", func(t *testing.T) {
		b := newKnownBoard(t, 3, 3, 2)
		_, err := b.Click(1, 1, false)
		require.NoError(t, err)
		require.NoError(t, b.ToggleFlag(0, 0)) // one flag, number is 2

		before := snapshot(b)
		changed, err := b.Click(1, 1, false)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, before, snapshot(b))
	})
}
