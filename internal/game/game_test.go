package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("empty board has no outcome", func(t *testing.T) {
		// When: an untouched board is evaluated
		outcome := Evaluate(Board{})

		// Then: there is no winner, no draw, and the game is not terminal
		require.False(t, outcome.HasWinner())
		assert.False(t, outcome.IsDraw)
		assert.False(t, outcome.IsTerminal())
	})

	t.Run("row win", func(t *testing.T) {
		// Given: X holds the top row
		board := Board{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: X wins on the top row
		require.Equal(t, PlayerX, outcome.Winner)
		assert.Equal(t, [3]int{0, 1, 2}, outcome.Line)
		assert.False(t, outcome.IsDraw)
		assert.True(t, outcome.IsTerminal())
	})

	t.Run("column win", func(t *testing.T) {
		// Given: O holds the middle column
		board := Board{
			PlayerX, PlayerO, PlayerX,
			EmptyCell, PlayerO, PlayerX,
			EmptyCell, PlayerO, EmptyCell,
		}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: O wins on the middle column
		require.Equal(t, PlayerO, outcome.Winner)
		assert.Equal(t, [3]int{1, 4, 7}, outcome.Line)
	})

	t.Run("diagonal win", func(t *testing.T) {
		// Given: X holds the anti-diagonal
		board := Board{
			PlayerO, PlayerO, PlayerX,
			EmptyCell, PlayerX, EmptyCell,
			PlayerX, EmptyCell, EmptyCell,
		}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: X wins on the anti-diagonal
		require.Equal(t, PlayerX, outcome.Winner)
		assert.Equal(t, [3]int{2, 4, 6}, outcome.Line)
	})

	t.Run("draw on a full board with no triple", func(t *testing.T) {
		// Given: all nine cells filled without three in a row
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: it is a draw with no winner
		require.False(t, outcome.HasWinner())
		assert.True(t, outcome.IsDraw)
		assert.True(t, outcome.IsTerminal())
	})

	t.Run("multiple wins resolve to the first triple in enumeration order", func(t *testing.T) {
		// Given: a board where X completes both the top row and the left column
		board := Board{
			PlayerX, PlayerX, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerX, PlayerO, EmptyCell,
		}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: the top row is reported, since rows come first in WinCombos
		require.Equal(t, PlayerX, outcome.Winner)
		assert.Equal(t, [3]int{0, 1, 2}, outcome.Line)
	})
}

func TestTurnFor(t *testing.T) {
	// Then: X opens and the marks strictly alternate
	assert.Equal(t, PlayerX, TurnFor(0))
	assert.Equal(t, PlayerO, TurnFor(1))
	assert.Equal(t, PlayerX, TurnFor(2))
	assert.Equal(t, PlayerO, TurnFor(7))
	assert.Equal(t, PlayerX, TurnFor(8))
}
