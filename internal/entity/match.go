package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/tictactoe"
)

const (
	StatusWaiting  = "waiting"
	StatusActive   = "active"
	StatusComplete = "complete"

	WinnerDraw = "draw"
)

const (
	PvPType     = "pvp"
	WithBotType = "bot"
)

// End reasons of a complete match.
const (
	EndLine     = "line"
	EndDraw     = "draw"
	EndTimeout  = "timeout"
	EndReported = "reported"
)

var (
	ErrMatchNotActive = fmt.Errorf("%w: match is not active", apperror.ErrInvalidTurn)
	ErrNotYourTurn    = fmt.Errorf("%w: it's the opponent's turn", apperror.ErrInvalidTurn)
	ErrInvalidWinner  = fmt.Errorf("%w: winner must be a participant or %q", apperror.ErrValidation, WinnerDraw)
)

type Move struct {
	Player string    `json:"player"`
	Row    int       `json:"row"`
	Column int       `json:"column"`
	At     time.Time `json:"at"`
}

// Match - authoritative state of one game. The board is never stored, it is replayed from Moves.
type Match struct {
	ID         string               `json:"id"`
	Type       string               `json:"type"`
	Size       int                  `json:"size"`
	PlayerX    string               `json:"player_x"`
	PlayerO    string               `json:"player_o"`
	Difficulty tictactoe.Difficulty `json:"difficulty,omitempty"`
	Moves      []Move               `json:"moves"`
	Status     string               `json:"status"`
	Winner     string               `json:"winner,omitempty"`
	EndReason  string               `json:"end_reason,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	LastMoveAt time.Time            `json:"last_move_at"`
	FinishedAt time.Time            `json:"finished_at,omitempty"`
}

// NewMatch - active match between two humans, playerX moves first.
func NewMatch(id, playerX, playerO string, size int, now time.Time) *Match {
	return &Match{
		ID:         id,
		Type:       PvPType,
		Size:       size,
		PlayerX:    playerX,
		PlayerO:    playerO,
		Moves:      []Move{},
		Status:     StatusActive,
		CreatedAt:  now,
		LastMoveAt: now,
	}
}

// NewBotMatch - active match where the human plays X against the AI.
func NewBotMatch(id, player string, difficulty tictactoe.Difficulty, size int, now time.Time) *Match {
	match := NewMatch(id, player, BotID(difficulty), size, now)
	match.Type = WithBotType
	match.Difficulty = difficulty

	return match
}

func (that *Match) IsActive() bool {
	return that.Status == StatusActive
}

func (that *Match) IsComplete() bool {
	return that.Status == StatusComplete
}

func (that *Match) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Match) IsParticipant(player string) bool {
	return player != "" && (player == that.PlayerX || player == that.PlayerO)
}

func (that *Match) MarkOf(player string) tictactoe.Mark {
	switch player {
	case that.PlayerX:
		return tictactoe.X
	case that.PlayerO:
		return tictactoe.O
	default:
		return tictactoe.Empty
	}
}

func (that *Match) PlayerOf(mark tictactoe.Mark) string {
	switch mark {
	case tictactoe.X:
		return that.PlayerX
	case tictactoe.O:
		return that.PlayerO
	default:
		return ""
	}
}

func (that *Match) Opponent(player string) string {
	switch player {
	case that.PlayerX:
		return that.PlayerO
	case that.PlayerO:
		return that.PlayerX
	default:
		return ""
	}
}

// PlayerToMove - derived from history parity: even length is X's turn.
func (that *Match) PlayerToMove() string {
	if len(that.Moves)%2 == 0 {
		return that.PlayerX
	}

	return that.PlayerO
}

func (that *Match) Board() (tictactoe.Board, error) {
	board := tictactoe.NewBoard(that.Size)
	for i, move := range that.Moves {
		if err := board.Place(that.MarkOf(move.Player), move.Row, move.Column); err != nil {
			return nil, fmt.Errorf("replay move %d of match %s: %w", i, that.ID, err)
		}
	}

	return board, nil
}

// ApplyMove - validates and appends one move, completing the match on a line or a full board.
// On error the match is left untouched.
func (that *Match) ApplyMove(player string, row, col int, now time.Time) error {
	if !that.IsActive() {
		return ErrMatchNotActive
	}

	if !that.IsParticipant(player) {
		return apperror.ErrNotParticipant
	}

	if that.PlayerToMove() != player {
		return ErrNotYourTurn
	}

	board, err := that.Board()
	if err != nil {
		return err
	}

	if err = board.Place(that.MarkOf(player), row, col); err != nil {
		return err
	}

	that.Moves = append(that.Moves, Move{Player: player, Row: row, Column: col, At: now})
	that.LastMoveAt = now

	switch result, mark := tictactoe.Evaluate(board); result {
	case tictactoe.Win:
		that.complete(that.PlayerOf(mark), EndLine, now)
	case tictactoe.Draw:
		that.complete(WinnerDraw, EndDraw, now)
	case tictactoe.Ongoing:
	}

	return nil
}

// TimedOut - whether the player to move has exceeded limit since the last move.
func (that *Match) TimedOut(now time.Time, limit time.Duration) bool {
	return that.IsActive() && now.Sub(that.LastMoveAt) >= limit
}

// Timeout - the player to move forfeits. Reports false when nothing changed.
func (that *Match) Timeout(now time.Time, limit time.Duration) bool {
	if !that.TimedOut(now, limit) {
		return false
	}

	that.complete(that.Opponent(that.PlayerToMove()), EndTimeout, now)

	return true
}

// Conclude - completes an active match with an externally reported winner.
// Reports false when the match was already complete.
func (that *Match) Conclude(winner string, now time.Time) (bool, error) {
	if winner != WinnerDraw && !that.IsParticipant(winner) {
		return false, fmt.Errorf("%w: %q", ErrInvalidWinner, winner)
	}

	if that.IsComplete() {
		return false, nil
	}

	that.complete(winner, EndReported, now)

	return true, nil
}

// Outcome - result of a complete match from player's side.
func (that *Match) Outcome(player string) Outcome {
	switch that.Winner {
	case WinnerDraw:
		return OutcomeDraw
	case player:
		return OutcomeWin
	default:
		return OutcomeLoss
	}
}

func (that *Match) complete(winner, reason string, now time.Time) {
	that.Status = StatusComplete
	that.FinishedAt = now
	that.Winner = winner
	that.EndReason = reason
}
