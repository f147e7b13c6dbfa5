package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
)

func newTestSearcher(seed int64) *Searcher {
	return NewSearcher(rand.New(rand.NewSource(seed)), DefaultExhaustiveLimit)
}

func TestParseDifficulty(t *testing.T) {
	t.Run("Known values are case insensitive", func(t *testing.T) {
		difficulty, err := ParseDifficulty(" Impossible ")

		require.NoError(t, err)
		assert.Equal(t, Impossible, difficulty)
	})

	t.Run("Unknown value is rejected", func(t *testing.T) {
		_, err := ParseDifficulty("nightmare")

		assert.ErrorIs(t, err, ErrUnknownDifficulty)
	})
}

func TestSearcher_ChooseMove(t *testing.T) {
	t.Run("Full board has no move", func(t *testing.T) {
		// Given: a drawn board
		board := parseBoard(t,
			"XOX",
			"XOO",
			"OXX",
		)

		for _, difficulty := range []Difficulty{Easy, Medium, Hard, Impossible} {
			// When: asking for a move
			_, ok, err := newTestSearcher(1).ChooseMove(board, X, difficulty)

			// Then: there is nothing to play
			require.NoError(t, err)
			assert.False(t, ok, difficulty)
		}
	})

	t.Run("Board with a winner is rejected", func(t *testing.T) {
		// Given: X already owns the top row and cells are still empty
		board := parseBoard(t,
			"XXX",
			"OO.",
			"...",
		)

		for _, difficulty := range []Difficulty{Easy, Medium, Hard, Impossible} {
			_, ok, err := newTestSearcher(1).ChooseMove(board, O, difficulty)

			require.ErrorIs(t, err, ErrBoardDecided, difficulty)
			assert.ErrorIs(t, err, apperror.ErrValidation)
			assert.False(t, ok)
		}
	})

	t.Run("Unknown difficulty is rejected", func(t *testing.T) {
		_, _, err := newTestSearcher(1).ChooseMove(NewBoard(3), X, "nightmare")

		assert.ErrorIs(t, err, ErrUnknownDifficulty)
	})

	t.Run("Invalid mark is rejected", func(t *testing.T) {
		_, _, err := newTestSearcher(1).ChooseMove(NewBoard(3), Empty, Hard)

		assert.ErrorIs(t, err, ErrInvalidMark)
	})

	t.Run("Ragged board is rejected", func(t *testing.T) {
		_, _, err := newTestSearcher(1).ChooseMove(Board{{Empty}, {Empty, Empty}}, X, Hard)

		assert.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Easy and medium always return an empty cell", func(t *testing.T) {
		// Given: a board with three empty cells
		board := parseBoard(t,
			"XO.",
			"OX.",
			"XO.",
		)
		empties := board.EmptyCells()
		searcher := newTestSearcher(42)

		for i := 0; i < 50; i++ {
			for _, difficulty := range []Difficulty{Easy, Medium} {
				// When: asking for a move
				cell, ok, err := searcher.ChooseMove(board, O, difficulty)

				// Then: the cell is one of the empty ones
				require.NoError(t, err)
				require.True(t, ok)
				assert.Contains(t, empties, cell)
			}
		}
	})

	t.Run("Hard on an empty board takes the first cell", func(t *testing.T) {
		cell, ok, err := newTestSearcher(1).ChooseMove(NewBoard(4), X, Hard)

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, Cell{Row: 0, Col: 0}, cell)
	})

	t.Run("Winning move comes before blocking", func(t *testing.T) {
		// Given: both players threaten a row
		board := parseBoard(t,
			"XX.",
			"OO.",
			"...",
		)

		for _, difficulty := range []Difficulty{Hard, Impossible} {
			// When: each side asks for a move
			forX, _, err := newTestSearcher(1).ChooseMove(board, X, difficulty)
			require.NoError(t, err)
			forO, _, err := newTestSearcher(1).ChooseMove(board, O, difficulty)
			require.NoError(t, err)

			// Then: each completes its own row
			assert.Equal(t, Cell{Row: 0, Col: 2}, forX, difficulty)
			assert.Equal(t, Cell{Row: 1, Col: 2}, forO, difficulty)
		}
	})

	t.Run("Blocks the opponent line", func(t *testing.T) {
		// Given: O threatens the middle row and X has no win
		board := parseBoard(t,
			"X..",
			"OO.",
			"X..",
		)

		for _, difficulty := range []Difficulty{Hard, Impossible} {
			// When: X asks for a move
			cell, _, err := newTestSearcher(1).ChooseMove(board, X, difficulty)

			// Then: X blocks
			require.NoError(t, err)
			assert.Equal(t, Cell{Row: 1, Col: 2}, cell, difficulty)
		}
	})

	t.Run("Hard and impossible are deterministic", func(t *testing.T) {
		board := parseBoard(t,
			"X...",
			".O..",
			"..X.",
			"....",
		)

		for _, difficulty := range []Difficulty{Hard, Impossible} {
			first, _, err := newTestSearcher(1).ChooseMove(board, O, difficulty)
			require.NoError(t, err)
			second, _, err := newTestSearcher(99).ChooseMove(board, O, difficulty)
			require.NoError(t, err)

			assert.Equal(t, first, second, difficulty)
		}
	})

	t.Run("Board is not mutated", func(t *testing.T) {
		board := parseBoard(t,
			"X..",
			".O.",
			"...",
		)
		snapshot := board.Clone()

		for _, difficulty := range []Difficulty{Easy, Medium, Hard, Impossible} {
			_, _, err := newTestSearcher(1).ChooseMove(board, X, difficulty)
			require.NoError(t, err)
		}

		assert.Equal(t, snapshot, board)
	})

	t.Run("Impossible takes the fork-proof corner reply", func(t *testing.T) {
		// Given: X opened in the centre
		board := parseBoard(t,
			"...",
			".X.",
			"...",
		)

		// When: O replies
		cell, _, err := newTestSearcher(1).ChooseMove(board, O, Impossible)

		// Then: O takes a corner, the only non-losing replies
		require.NoError(t, err)
		assert.Equal(t, Cell{Row: 0, Col: 0}, cell)
	})
}

// TestSearcher_ImpossibleNeverLoses plays every opponent line against the impossible bot.
func TestSearcher_ImpossibleNeverLoses(t *testing.T) {
	searcher := newTestSearcher(1)

	var explore func(t *testing.T, board Board, toMove, bot Mark)
	explore = func(t *testing.T, board Board, toMove, bot Mark) {
		result, winner := Evaluate(board)
		if result != Ongoing {
			require.NotEqual(t, bot.Opponent(), winner, "bot lost on %s", board)
			return
		}

		if toMove == bot {
			cell, ok, err := searcher.ChooseMove(board, bot, Impossible)
			require.NoError(t, err)
			require.True(t, ok)

			next := board.Clone()
			require.NoError(t, next.Place(bot, cell.Row, cell.Col))
			explore(t, next, toMove.Opponent(), bot)

			return
		}

		for _, cell := range board.EmptyCells() {
			next := board.Clone()
			require.NoError(t, next.Place(toMove, cell.Row, cell.Col))
			explore(t, next, toMove.Opponent(), bot)
		}
	}

	t.Run("Bot moves second", func(t *testing.T) {
		explore(t, NewBoard(3), X, O)
	})

	t.Run("Bot moves first", func(t *testing.T) {
		explore(t, NewBoard(3), X, X)
	})
}
