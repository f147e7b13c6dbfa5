package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
)

type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Result - terminal classification of a board.
type Result int

const (
	Ongoing Result = iota
	Win
	Draw
)

var (
	ErrInvalidCell   = fmt.Errorf("%w: cell is out of the board", apperror.ErrValidation)
	ErrInvalidMark   = fmt.Errorf("%w: unknown mark", apperror.ErrValidation)
	ErrInvalidBoard  = fmt.Errorf("%w: board must be a non-empty square grid", apperror.ErrValidation)
	ErrBoardTooLarge = fmt.Errorf("%w: board is larger than %d×%d", apperror.ErrValidation, MaxBoardSize, MaxBoardSize)
)

// MaxBoardSize - the largest board the server plays or searches on. Evaluation takes any N.
const MaxBoardSize = 8

// Cell - zero-based board coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board - N×N grid of marks, indexed [row][col].
type Board [][]Mark

func NewBoard(size int) Board {
	board := make(Board, size)
	for row := range board {
		board[row] = make([]Mark, size)
	}

	return board
}

func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (m Mark) IsValid() bool {
	return m == X || m == O
}

func (that Board) Size() int {
	return len(that)
}

// Validate - checks the board is square and holds only known marks.
func (that Board) Validate() error {
	size := that.Size()
	if size == 0 {
		return ErrInvalidBoard
	}

	for row := range that {
		if len(that[row]) != size {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, row, len(that[row]))
		}

		for col, mark := range that[row] {
			if mark != Empty && !mark.IsValid() {
				return fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidMark, mark, row, col)
			}
		}
	}

	return nil
}

func (that Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < that.Size() && col < that.Size()
}

func (that Board) Clone() Board {
	clone := make(Board, len(that))
	for row := range that {
		clone[row] = append([]Mark(nil), that[row]...)
	}

	return clone
}

// Place - writes mark into an empty cell.
func (that Board) Place(mark Mark, row, col int) error {
	if !mark.IsValid() {
		return ErrInvalidMark
	}

	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrInvalidCell, row, col, that.Size(), that.Size())
	}

	if that[row][col] != Empty {
		return apperror.ErrCellOccupied
	}

	that[row][col] = mark

	return nil
}

// EmptyCells - empty cells in row-major order.
func (that Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, that.Size()*that.Size())
	for row := range that {
		for col, mark := range that[row] {
			if mark == Empty {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}

	return cells
}

// Count - number of cells holding mark.
func (that Board) Count(mark Mark) int {
	count := 0
	for row := range that {
		for _, cell := range that[row] {
			if cell == mark {
				count++
			}
		}
	}

	return count
}

func (that Board) String() string {
	var sb strings.Builder
	for row := range that {
		if row > 0 {
			sb.WriteByte('/')
		}

		for _, mark := range that[row] {
			if mark == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(string(mark))
		}
	}

	return sb.String()
}

// Winner - returns the mark owning a full row, column or diagonal, checked in that order.
func Winner(board Board) Mark {
	size := board.Size()
	if size == 0 {
		return Empty
	}

	for row := 0; row < size; row++ {
		if mark := lineOwner(board, row, 0, 0, 1); mark != Empty {
			return mark
		}
	}

	for col := 0; col < size; col++ {
		if mark := lineOwner(board, 0, col, 1, 0); mark != Empty {
			return mark
		}
	}

	if mark := lineOwner(board, 0, 0, 1, 1); mark != Empty {
		return mark
	}

	return lineOwner(board, 0, size-1, 1, -1)
}

// IsFull - true when no empty cell is left.
func IsFull(board Board) bool {
	for row := range board {
		for _, mark := range board[row] {
			if mark == Empty {
				return false
			}
		}
	}

	return true
}

// Evaluate - classifies the board; the mark is set only for Win.
func Evaluate(board Board) (Result, Mark) {
	if winner := Winner(board); winner != Empty {
		return Win, winner
	}

	if IsFull(board) {
		return Draw, Empty
	}

	return Ongoing, Empty
}

// completesLine - whether the mark at (row, col) finishes any line through that cell.
func completesLine(board Board, row, col int) bool {
	size := board.Size()

	if lineOwner(board, row, 0, 0, 1) != Empty || lineOwner(board, 0, col, 1, 0) != Empty {
		return true
	}

	if row == col && lineOwner(board, 0, 0, 1, 1) != Empty {
		return true
	}

	return row+col == size-1 && lineOwner(board, 0, size-1, 1, -1) != Empty
}

func lineOwner(board Board, row, col, dRow, dCol int) Mark {
	first := board[row][col]
	if first == Empty {
		return Empty
	}

	for i := 1; i < board.Size(); i++ {
		if board[row+i*dRow][col+i*dCol] != first {
			return Empty
		}
	}

	return first
}
