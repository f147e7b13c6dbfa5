package apperror

import "errors"

var (
	ErrValidation     = errors.New("invalid request")
	ErrInvalidTurn    = errors.New("it's not your turn")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrNotFound       = errors.New("not found")
	ErrNotParticipant = errors.New("player is not a participant of the match")
	ErrConflict       = errors.New("concurrent update, try again")
)

// Error codes exposed to clients.
const (
	CodeValidation     = "validation"
	CodeInvalidTurn    = "invalid_turn"
	CodeCellOccupied   = "cell_occupied"
	CodeNotFound       = "not_found"
	CodeNotParticipant = "not_participant"
	CodeConflict       = "conflict"
	CodeInternal       = "internal"
)

// Code - the client-facing kind of err.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrNotParticipant):
		return CodeNotParticipant
	case errors.Is(err, ErrInvalidTurn):
		return CodeInvalidTurn
	case errors.Is(err, ErrCellOccupied):
		return CodeCellOccupied
	case errors.Is(err, ErrConflict):
		return CodeConflict
	default:
		return CodeInternal
	}
}
