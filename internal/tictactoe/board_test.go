package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseBoard builds a board from rows like "XO.", '.' meaning empty.
func parseBoard(t *testing.T, rows ...string) Board {
	t.Helper()

	board := NewBoard(len(rows))
	for row, line := range rows {
		require.Len(t, line, len(rows))
		for col, ch := range line {
			switch ch {
			case 'X':
				board[row][col] = X
			case 'O':
				board[row][col] = O
			}
		}
	}

	return board
}

func TestWinner(t *testing.T) {
	t.Run("Empty board has no winner", func(t *testing.T) {
		for size := 1; size <= 8; size++ {
			// Given: an empty board
			board := NewBoard(size)

			// When: looking for a winner
			winner := Winner(board)

			// Then: there is none
			assert.Equal(t, Empty, winner, "size %d", size)
		}
	})

	t.Run("Board without a full line has no winner", func(t *testing.T) {
		// Given: a busy board where no line is homogeneous
		board := parseBoard(t,
			"XOX",
			"XOO",
			"OX.",
		)

		// When: looking for a winner
		winner := Winner(board)

		// Then: there is none
		assert.Equal(t, Empty, winner)
	})

	t.Run("Any full row, column or diagonal wins for every size", func(t *testing.T) {
		for size := 3; size <= 8; size++ {
			lines := map[string]func(i int) (int, int){
				"first row":     func(i int) (int, int) { return 0, i },
				"last row":      func(i int) (int, int) { return size - 1, i },
				"middle column": func(i int) (int, int) { return i, size / 2 },
				"main diagonal": func(i int) (int, int) { return i, i },
				"anti-diagonal": func(i int) (int, int) { return i, size - 1 - i },
			}

			for name, cellAt := range lines {
				// Given: a board where only one line is filled with O
				board := NewBoard(size)
				for i := 0; i < size; i++ {
					row, col := cellAt(i)
					board[row][col] = O
				}

				// When: looking for a winner
				winner := Winner(board)

				// Then: O owns the line
				assert.Equal(t, O, winner, "size %d, %s", size, name)
			}
		}
	})

	t.Run("Line must span the whole board", func(t *testing.T) {
		// Given: a 4x4 board with three X in a row
		board := parseBoard(t,
			"XXX.",
			"OO..",
			"....",
			"....",
		)

		// When: looking for a winner
		winner := Winner(board)

		// Then: three in a row is not enough
		assert.Equal(t, Empty, winner)
	})

	t.Run("Two parallel lines report the first row", func(t *testing.T) {
		// Given: an unreachable board where X owns row 0 and O owns row 2
		board := parseBoard(t,
			"XXX",
			"...",
			"OOO",
		)

		// When: looking for a winner
		winner := Winner(board)

		// Then: rows are scanned top to bottom
		assert.Equal(t, X, winner)
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("Draw on a full board without a line", func(t *testing.T) {
		// Given: X,O,X / X,O,O / O,X,X
		board := parseBoard(t,
			"XOX",
			"XOO",
			"OXX",
		)

		// When: evaluating
		result, winner := Evaluate(board)

		// Then: it is a draw with no winner
		assert.Equal(t, Draw, result)
		assert.Equal(t, Empty, winner)
		assert.True(t, IsFull(board))
	})

	t.Run("Win on a full board beats the draw", func(t *testing.T) {
		// Given: a full board where X completed the top row
		board := parseBoard(t,
			"XXX",
			"OOX",
			"XOO",
		)

		// When: evaluating
		result, winner := Evaluate(board)

		// Then: X wins
		assert.Equal(t, Win, result)
		assert.Equal(t, X, winner)
	})

	t.Run("Ongoing game", func(t *testing.T) {
		// Given: a half-played board
		board := parseBoard(t,
			"XO.",
			".X.",
			"..O",
		)

		// When: evaluating
		result, winner := Evaluate(board)

		// Then: the game continues
		assert.Equal(t, Ongoing, result)
		assert.Equal(t, Empty, winner)
		assert.False(t, IsFull(board))
	})

	t.Run("Input is not mutated", func(t *testing.T) {
		// Given: a board and a copy of it
		board := parseBoard(t,
			"XO.",
			".X.",
			"..O",
		)
		snapshot := board.Clone()

		// When: evaluating
		Evaluate(board)

		// Then: the board is unchanged
		assert.Equal(t, snapshot, board)
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places mark on empty cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard(3)

		// When: X is placed in the centre
		err := board.Place(X, 1, 1)

		// Then: the cell holds X
		require.NoError(t, err)
		assert.Equal(t, X, board[1][1])
	})

	t.Run("Rejects occupied cell", func(t *testing.T) {
		// Given: a board with X in the centre
		board := NewBoard(3)
		require.NoError(t, board.Place(X, 1, 1))

		// When: O tries the same cell
		err := board.Place(O, 1, 1)

		// Then: the cell is occupied and keeps X
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, X, board[1][1])
	})

	t.Run("Rejects out of range cell", func(t *testing.T) {
		board := NewBoard(3)

		for _, cell := range []Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			err := board.Place(X, cell.Row, cell.Col)

			require.ErrorIs(t, err, ErrInvalidCell)
			assert.ErrorIs(t, err, apperror.ErrValidation)
		}
	})

	t.Run("Rejects empty mark", func(t *testing.T) {
		board := NewBoard(3)

		err := board.Place(Empty, 0, 0)

		assert.ErrorIs(t, err, ErrInvalidMark)
	})
}

func TestBoard_Validate(t *testing.T) {
	t.Run("Square board is valid", func(t *testing.T) {
		assert.NoError(t, NewBoard(5).Validate())
	})

	t.Run("Empty board is invalid", func(t *testing.T) {
		assert.ErrorIs(t, Board{}.Validate(), ErrInvalidBoard)
	})

	t.Run("Ragged board is invalid", func(t *testing.T) {
		board := Board{{X, O, Empty}, {Empty, Empty}, {Empty, Empty, Empty}}

		assert.ErrorIs(t, board.Validate(), ErrInvalidBoard)
	})

	t.Run("Unknown mark is invalid", func(t *testing.T) {
		board := NewBoard(3)
		board[2][2] = "Z"

		assert.ErrorIs(t, board.Validate(), ErrInvalidMark)
	})
}
