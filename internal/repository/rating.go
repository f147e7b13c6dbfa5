package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
)

const leaderboardKey = "leaderboard"

var ErrRatingNotFound = fmt.Errorf("rating %w", apperror.ErrNotFound)

// RatingChange - computes new records from the current ones; missing players map to nil.
type RatingChange func(current map[string]*entity.Rating) ([]*entity.Rating, error)

type RatingRepository interface {
	GetByPlayer(ctx context.Context, player string) (*entity.Rating, error)
	// Apply - writes the change atomically. With a non-empty guard the change is applied
	// at most once, and false is returned when the guard was already taken.
	Apply(ctx context.Context, guard string, players []string, change RatingChange) (bool, error)
	Top(ctx context.Context, limit int) ([]*entity.Rating, error)
	Search(ctx context.Context, query string, limit int) ([]*entity.Rating, error)
}

type dbRating struct {
	client     *redis.Client
	maxRetries int
}

func NewRatingRepository(client *redis.Client, maxRetries int) RatingRepository {
	if maxRetries <= 0 {
		maxRetries = 1
	}

	return &dbRating{
		client:     client,
		maxRetries: maxRetries,
	}
}

func ratingKey(player string) string {
	return "rating:" + player
}

// RatingGuardKey - marks a match as rated. It never expires on its own;
// MatchRepository.Settle gives it the retention of the match.
func RatingGuardKey(matchID string) string {
	return "rated:" + matchID
}

func (that *dbRating) GetByPlayer(ctx context.Context, player string) (*entity.Rating, error) {
	response, err := that.client.Get(ctx, ratingKey(player)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrRatingNotFound, player)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	return decodeRating(response)
}

func (that *dbRating) Apply(ctx context.Context, guard string, players []string, change RatingChange) (bool, error) {
	keys := make([]string, 0, len(players)+1)
	for _, player := range players {
		keys = append(keys, ratingKey(player))
	}

	if guard != "" {
		keys = append(keys, guard)
	}

	applied := false
	txf := func(tx *redis.Tx) error {
		applied = false

		if guard != "" {
			taken, err := tx.Exists(ctx, guard).Result()
			if err != nil {
				return fmt.Errorf("failed to check rating guard: %w", err)
			}

			if taken > 0 {
				return nil
			}
		}

		current := make(map[string]*entity.Rating, len(players))
		for _, player := range players {
			response, err := tx.Get(ctx, ratingKey(player)).Result()
			if errors.Is(err, redis.Nil) {
				current[player] = nil
				continue
			}

			if err != nil {
				return fmt.Errorf("failed to get rating: %w", err)
			}

			if current[player], err = decodeRating(response); err != nil {
				return err
			}
		}

		updated, err := change(current)
		if err != nil {
			return err
		}

		payloads := make([][]byte, len(updated))
		for i, rating := range updated {
			if payloads[i], err = json.Marshal(rating); err != nil {
				return fmt.Errorf("failed to marshal rating: %w", err)
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for i, rating := range updated {
				pipe.Set(ctx, ratingKey(rating.Player), payloads[i], 0)
				pipe.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(rating.Rating), Member: rating.Player})
			}

			if guard != "" {
				pipe.Set(ctx, guard, time.Now().UTC().Format(time.RFC3339), 0)
			}

			return nil
		})
		if err != nil {
			return err
		}

		applied = true

		return nil
	}

	for range that.maxRetries {
		err := that.client.Watch(ctx, txf, keys...)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		if err != nil {
			return false, err
		}

		return applied, nil
	}

	return false, fmt.Errorf("%w: rating of %s", apperror.ErrConflict, strings.Join(players, ","))
}

// Top - best ratings first.
func (that *dbRating) Top(ctx context.Context, limit int) ([]*entity.Rating, error) {
	if limit <= 0 {
		return []*entity.Rating{}, nil
	}

	players, err := that.client.ZRevRange(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	return that.load(ctx, players)
}

// Search - case-insensitive substring match on player ids, best ratings first.
func (that *dbRating) Search(ctx context.Context, query string, limit int) ([]*entity.Rating, error) {
	players, err := that.client.ZRevRange(ctx, leaderboardKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	needle := strings.ToLower(query)
	matched := make([]string, 0)
	for _, player := range players {
		if limit > 0 && len(matched) == limit {
			break
		}

		if strings.Contains(strings.ToLower(player), needle) {
			matched = append(matched, player)
		}
	}

	return that.load(ctx, matched)
}

func (that *dbRating) load(ctx context.Context, players []string) ([]*entity.Rating, error) {
	ratings := make([]*entity.Rating, 0, len(players))
	if len(players) == 0 {
		return ratings, nil
	}

	keys := make([]string, len(players))
	for i, player := range players {
		keys[i] = ratingKey(player)
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}

	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		rating, err := decodeRating(raw)
		if err != nil {
			return nil, err
		}

		ratings = append(ratings, rating)
	}

	return ratings, nil
}

func decodeRating(raw string) (*entity.Rating, error) {
	var rating entity.Rating
	if err := json.Unmarshal([]byte(raw), &rating); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rating: %w", err)
	}

	return &rating, nil
}
