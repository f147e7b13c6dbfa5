package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
)

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeDraw Outcome = "draw"
)

var ErrUnknownOutcome = fmt.Errorf("%w: unknown outcome", apperror.ErrValidation)

func ParseOutcome(value string) (Outcome, error) {
	outcome := Outcome(strings.ToLower(strings.TrimSpace(value)))
	switch outcome {
	case OutcomeWin, OutcomeLoss, OutcomeDraw:
		return outcome, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOutcome, value)
	}
}

// Score - actual score used by the ELO formula.
func (o Outcome) Score() float64 {
	switch o {
	case OutcomeWin:
		return 1
	case OutcomeDraw:
		return 0.5
	default:
		return 0
	}
}

// Reverse - the outcome seen from the other side of the board.
func (o Outcome) Reverse() Outcome {
	switch o {
	case OutcomeWin:
		return OutcomeLoss
	case OutcomeLoss:
		return OutcomeWin
	default:
		return o
	}
}

// Rating - persisted ELO record of a human player.
type Rating struct {
	Player      string `json:"player"`
	Rating      int    `json:"rating"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Draws       int    `json:"draws"`
	GamesPlayed int    `json:"games_played"`
}

func NewRating(player string, base int) *Rating {
	return &Rating{
		Player: player,
		Rating: base,
	}
}

// Record - stores the new rating and bumps exactly one result counter.
func (that *Rating) Record(outcome Outcome, newRating int) {
	that.Rating = newRating
	that.GamesPlayed++

	switch outcome {
	case OutcomeWin:
		that.Wins++
	case OutcomeLoss:
		that.Losses++
	case OutcomeDraw:
		that.Draws++
	}
}
