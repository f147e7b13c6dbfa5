package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/repository"
	"github.com/rocketscienceinc/tictactoe-pro/internal/tictactoe"
)

const (
	DefaultRating          = 1200
	DefaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
)

var ErrInvalidPlayer = fmt.Errorf("%w: player id is not ratable", apperror.ErrValidation)

// KFactor - grows with opponent strength.
func KFactor(difficulty tictactoe.Difficulty) float64 {
	switch difficulty {
	case tictactoe.Easy:
		return 16
	case tictactoe.Medium:
		return 24
	case tictactoe.Hard:
		return 32
	case tictactoe.Impossible:
		return 40
	default:
		return 0
	}
}

// ExpectedScore - ELO probability of player beating opponent.
func ExpectedScore(player, opponent int) float64 {
	return 1 / (1 + math.Pow(10, float64(opponent-player)/400))
}

func NewRating(player, opponent int, outcome entity.Outcome, difficulty tictactoe.Difficulty) int {
	delta := KFactor(difficulty) * (outcome.Score() - ExpectedScore(player, opponent))

	return int(math.Round(float64(player) + delta))
}

type RatingConfig struct {
	Base          int
	AIBaseline    int
	PvPDifficulty tictactoe.Difficulty
}

type RatingService interface {
	RecordAIMatch(ctx context.Context, player string, outcome entity.Outcome, difficulty tictactoe.Difficulty) (*entity.Rating, error)
	RecordMatch(ctx context.Context, match *entity.Match) (bool, error)
	GetRating(ctx context.Context, player string) (*entity.Rating, error)
	Leaderboard(ctx context.Context, limit int) ([]*entity.Rating, error)
	Search(ctx context.Context, query string, limit int) ([]*entity.Rating, error)
}

type ratingRepo interface {
	GetByPlayer(ctx context.Context, player string) (*entity.Rating, error)
	Apply(ctx context.Context, guard string, players []string, change repository.RatingChange) (bool, error)
	Top(ctx context.Context, limit int) ([]*entity.Rating, error)
	Search(ctx context.Context, query string, limit int) ([]*entity.Rating, error)
}

type ratingService struct {
	ratingRepo ratingRepo
	config     RatingConfig
}

func NewRatingService(ratingRepo ratingRepo, config RatingConfig) RatingService {
	if config.Base <= 0 {
		config.Base = DefaultRating
	}

	if config.AIBaseline <= 0 {
		config.AIBaseline = DefaultRating
	}

	if !config.PvPDifficulty.IsValid() {
		config.PvPDifficulty = tictactoe.Hard
	}

	return &ratingService{
		ratingRepo: ratingRepo,
		config:     config,
	}
}

// RecordAIMatch - applies a client-reported result against the AI; every call counts.
func (that *ratingService) RecordAIMatch(
	ctx context.Context, player string, outcome entity.Outcome, difficulty tictactoe.Difficulty,
) (*entity.Rating, error) {
	if entity.IsReserved(player) {
		return nil, ErrInvalidPlayer
	}

	if !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: %q", tictactoe.ErrUnknownDifficulty, difficulty)
	}

	if _, err := entity.ParseOutcome(string(outcome)); err != nil {
		return nil, err
	}

	var updated *entity.Rating
	_, err := that.ratingRepo.Apply(ctx, "", []string{player}, func(current map[string]*entity.Rating) ([]*entity.Rating, error) {
		updated = that.againstAI(player, current[player], outcome, difficulty)
		return []*entity.Rating{updated}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record AI match result: %w", err)
	}

	return updated, nil
}

// RecordMatch - rates a complete match exactly once; false means it had been rated before.
func (that *ratingService) RecordMatch(ctx context.Context, match *entity.Match) (bool, error) {
	if !match.IsComplete() {
		return false, fmt.Errorf("%w: match %s is not complete", apperror.ErrInvalidTurn, match.ID)
	}

	guard := repository.RatingGuardKey(match.ID)

	var (
		players []string
		change  repository.RatingChange
	)

	if match.IsWithBot() {
		human := match.PlayerX
		if entity.IsBot(human) {
			human = match.PlayerO
		}

		players = []string{human}
		change = func(current map[string]*entity.Rating) ([]*entity.Rating, error) {
			return []*entity.Rating{that.againstAI(human, current[human], match.Outcome(human), match.Difficulty)}, nil
		}
	} else {
		players = []string{match.PlayerX, match.PlayerO}
		change = func(current map[string]*entity.Rating) ([]*entity.Rating, error) {
			x := that.orDefault(match.PlayerX, current[match.PlayerX])
			o := that.orDefault(match.PlayerO, current[match.PlayerO])

			// both sides use the pre-match ratings
			xRating, oRating := x.Rating, o.Rating
			xOutcome := match.Outcome(match.PlayerX)
			x.Record(xOutcome, NewRating(xRating, oRating, xOutcome, that.config.PvPDifficulty))
			o.Record(xOutcome.Reverse(), NewRating(oRating, xRating, xOutcome.Reverse(), that.config.PvPDifficulty))

			return []*entity.Rating{x, o}, nil
		}
	}

	applied, err := that.ratingRepo.Apply(ctx, guard, players, change)
	if err != nil {
		return false, fmt.Errorf("failed to rate match %s: %w", match.ID, err)
	}

	return applied, nil
}

// GetRating - a player without games gets a fresh default record.
func (that *ratingService) GetRating(ctx context.Context, player string) (*entity.Rating, error) {
	rating, err := that.ratingRepo.GetByPlayer(ctx, player)
	if errors.Is(err, apperror.ErrNotFound) {
		return entity.NewRating(player, that.config.Base), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	return rating, nil
}

func (that *ratingService) Leaderboard(ctx context.Context, limit int) ([]*entity.Rating, error) {
	ratings, err := that.ratingRepo.Top(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return ratings, nil
}

func (that *ratingService) Search(ctx context.Context, query string, limit int) ([]*entity.Rating, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", apperror.ErrValidation)
	}

	ratings, err := that.ratingRepo.Search(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to search leaderboard: %w", err)
	}

	return ratings, nil
}

func (that *ratingService) againstAI(
	player string, current *entity.Rating, outcome entity.Outcome, difficulty tictactoe.Difficulty,
) *entity.Rating {
	rating := that.orDefault(player, current)
	rating.Record(outcome, NewRating(rating.Rating, that.config.AIBaseline, outcome, difficulty))

	return rating
}

func (that *ratingService) orDefault(player string, current *entity.Rating) *entity.Rating {
	if current == nil {
		return entity.NewRating(player, that.config.Base)
	}

	return current
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLeaderboardSize
	case limit > maxLeaderboardSize:
		return maxLeaderboardSize
	default:
		return limit
	}
}
