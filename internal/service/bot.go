package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/tictactoe"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	ChooseMove(board tictactoe.Board, mark tictactoe.Mark, difficulty tictactoe.Difficulty) (tictactoe.Cell, bool, error)
	MakeTurn(match *entity.Match, now time.Time) error
}

type moveSearcher interface {
	ChooseMove(board tictactoe.Board, mark tictactoe.Mark, difficulty tictactoe.Difficulty) (tictactoe.Cell, bool, error)
}

type botService struct {
	searcher moveSearcher
}

func NewBotService(searcher moveSearcher) BotService {
	return &botService{
		searcher: searcher,
	}
}

// ChooseMove - when mark is empty it is inferred from the counts: X moves on equal counts.
func (that *botService) ChooseMove(
	board tictactoe.Board, mark tictactoe.Mark, difficulty tictactoe.Difficulty,
) (tictactoe.Cell, bool, error) {
	if mark == tictactoe.Empty {
		mark = tictactoe.O
		if board.Count(tictactoe.X) == board.Count(tictactoe.O) {
			mark = tictactoe.X
		}
	}

	cell, ok, err := that.searcher.ChooseMove(board, mark, difficulty)
	if err != nil {
		return tictactoe.Cell{}, false, fmt.Errorf("failed to choose move: %w", err)
	}

	return cell, ok, nil
}

// MakeTurn - plays the bot's reply when the bot is the player to move.
func (that *botService) MakeTurn(match *entity.Match, now time.Time) error {
	botPlayer := match.PlayerToMove()

	difficulty, ok := entity.BotDifficulty(botPlayer)
	if !ok {
		return fmt.Errorf("%w: match %s", ErrBotNotFound, match.ID)
	}

	board, err := match.Board()
	if err != nil {
		return err
	}

	cell, ok, err := that.searcher.ChooseMove(board, match.MarkOf(botPlayer), difficulty)
	if err != nil {
		return fmt.Errorf("bot failed to choose move: %w", err)
	}

	if !ok {
		return ErrNoAvailableMoves
	}

	if err = match.ApplyMove(botPlayer, cell.Row, cell.Col, now); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
