package tictactoe

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
)

type Difficulty string

const (
	Easy       Difficulty = "easy"
	Medium     Difficulty = "medium"
	Hard       Difficulty = "hard"
	Impossible Difficulty = "impossible"
)

// DefaultExhaustiveLimit - the largest number of empty cells searched exhaustively.
const DefaultExhaustiveLimit = 10

var (
	ErrUnknownDifficulty = fmt.Errorf("%w: unknown difficulty", apperror.ErrValidation)
	ErrBoardDecided      = fmt.Errorf("%w: board already has a winner", apperror.ErrValidation)
)

func ParseDifficulty(value string) (Difficulty, error) {
	difficulty := Difficulty(strings.ToLower(strings.TrimSpace(value)))
	if !difficulty.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, value)
	}

	return difficulty, nil
}

func (d Difficulty) IsValid() bool {
	switch d {
	case Easy, Medium, Hard, Impossible:
		return true
	default:
		return false
	}
}

// Searcher picks moves for the AI opponent. Safe for concurrent use.
type Searcher struct {
	mu  sync.Mutex
	rnd *rand.Rand

	exhaustiveLimit int
}

func NewSearcher(rnd *rand.Rand, exhaustiveLimit int) *Searcher {
	if exhaustiveLimit <= 0 {
		exhaustiveLimit = DefaultExhaustiveLimit
	}

	return &Searcher{
		rnd:             rnd,
		exhaustiveLimit: exhaustiveLimit,
	}
}

// ChooseMove - selects an empty cell for mark; ok is false when the board is full.
// A board that already has a winner is rejected. The board is not modified.
func (that *Searcher) ChooseMove(board Board, mark Mark, difficulty Difficulty) (Cell, bool, error) {
	if !mark.IsValid() {
		return Cell{}, false, ErrInvalidMark
	}

	if err := board.Validate(); err != nil {
		return Cell{}, false, err
	}

	empties := board.EmptyCells()
	if len(empties) == 0 {
		return Cell{}, false, nil
	}

	// with no line on the board, a new line has to run through the placed cell
	if Winner(board) != Empty {
		return Cell{}, false, ErrBoardDecided
	}

	switch difficulty {
	case Easy:
		return that.randomCell(empties), true, nil
	case Medium:
		if that.coinFlip() {
			return that.randomCell(empties), true, nil
		}
		return bestMove(board.Clone(), mark, empties), true, nil
	case Hard:
		return bestMove(board.Clone(), mark, empties), true, nil
	case Impossible:
		return that.perfectMove(board.Clone(), mark, empties), true, nil
	default:
		return Cell{}, false, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
}

func (that *Searcher) randomCell(empties []Cell) Cell {
	that.mu.Lock()
	defer that.mu.Unlock()

	return empties[that.rnd.Intn(len(empties))]
}

func (that *Searcher) coinFlip() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Float64() < 0.5
}

// bestMove - win now, else block now, else the first empty cell.
func bestMove(board Board, mark Mark, empties []Cell) Cell {
	if cell, ok := immediateWin(board, mark, empties); ok {
		return cell
	}

	if cell, ok := immediateWin(board, mark.Opponent(), empties); ok {
		return cell
	}

	return empties[0]
}

func (that *Searcher) perfectMove(board Board, mark Mark, empties []Cell) Cell {
	if cell, ok := immediateWin(board, mark, empties); ok {
		return cell
	}

	if cell, ok := immediateWin(board, mark.Opponent(), empties); ok {
		return cell
	}

	if len(empties) > that.exhaustiveLimit {
		return empties[0]
	}

	s := &solver{
		board:   board,
		empties: len(empties),
		table:   make(map[string]ttEntry),
	}

	return s.root(mark, empties)
}

// immediateWin - first empty cell (row-major) that completes a line for mark.
func immediateWin(board Board, mark Mark, empties []Cell) (Cell, bool) {
	for _, cell := range empties {
		board[cell.Row][cell.Col] = mark
		won := completesLine(board, cell.Row, cell.Col)
		board[cell.Row][cell.Col] = Empty

		if won {
			return cell, true
		}
	}

	return Cell{}, false
}

type ttFlag uint8

const (
	ttExact ttFlag = iota
	ttLower
	ttUpper
)

type ttEntry struct {
	score int
	flag  ttFlag
}

// solver runs negamax with alpha-beta pruning over a scratch board.
// A win scores empties+1 so faster wins rank higher.
type solver struct {
	board   Board
	empties int
	table   map[string]ttEntry
}

func (s *solver) root(mark Mark, empties []Cell) Cell {
	best := empties[0]
	bestScore := math.MinInt
	alpha, beta := -math.MaxInt, math.MaxInt

	for _, cell := range empties {
		score := s.play(mark, cell, alpha, beta)
		if score > bestScore {
			bestScore = score
			best = cell
		}

		if bestScore > alpha {
			alpha = bestScore
		}
	}

	return best
}

// play - scores placing mark at cell from mark's point of view.
func (s *solver) play(mark Mark, cell Cell, alpha, beta int) int {
	s.board[cell.Row][cell.Col] = mark
	s.empties--

	var score int
	switch {
	case completesLine(s.board, cell.Row, cell.Col):
		score = s.empties + 1
	case s.empties == 0:
		score = 0
	default:
		score = -s.negamax(mark.Opponent(), -beta, -alpha)
	}

	s.empties++
	s.board[cell.Row][cell.Col] = Empty

	return score
}

func (s *solver) negamax(mark Mark, alpha, beta int) int {
	alphaOrig := alpha
	key := string(mark) + s.board.String()

	if entry, ok := s.table[key]; ok {
		switch entry.flag {
		case ttExact:
			return entry.score
		case ttLower:
			alpha = max(alpha, entry.score)
		case ttUpper:
			beta = min(beta, entry.score)
		}

		if alpha >= beta {
			return entry.score
		}
	}

	best := math.MinInt
	for _, cell := range s.board.EmptyCells() {
		score := s.play(mark, cell, alpha, beta)
		best = max(best, score)
		alpha = max(alpha, best)

		if alpha >= beta {
			break
		}
	}

	flag := ttExact
	switch {
	case best <= alphaOrig:
		flag = ttUpper
	case best >= beta:
		flag = ttLower
	}
	s.table[key] = ttEntry{score: best, flag: flag}

	return best
}
