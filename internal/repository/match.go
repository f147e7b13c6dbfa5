package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
)

const activeMatchesKey = "matches:active"

var (
	ErrMatchNotFound = fmt.Errorf("match %w", apperror.ErrNotFound)
	ErrMatchExists   = errors.New("match already exists")
)

// MatchMutation - changes the freshly read match in place and reports whether it must be written.
// It may run several times when the transaction is retried.
type MatchMutation func(match *entity.Match) (bool, error)

type MatchRepository interface {
	Create(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	Update(ctx context.Context, id string, mutate MatchMutation) (*entity.Match, error)
	ActiveIDs(ctx context.Context) ([]string, error)
	Settle(ctx context.Context, id string) error
}

type dbMatch struct {
	client     *redis.Client
	maxRetries int
	retention  time.Duration
}

// NewMatchRepository - maxRetries bounds optimistic transaction attempts,
// retention is how long settled matches stay readable.
func NewMatchRepository(client *redis.Client, maxRetries int, retention time.Duration) MatchRepository {
	if maxRetries <= 0 {
		maxRetries = 1
	}

	return &dbMatch{
		client:     client,
		maxRetries: maxRetries,
		retention:  retention,
	}
}

func matchKey(id string) string {
	return "match:" + id
}

func (that *dbMatch) Create(ctx context.Context, match *entity.Match) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	created, err := that.client.SetNX(ctx, matchKey(match.ID), matchJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to set match: %w", err)
	}

	if !created {
		return fmt.Errorf("%w: %s", ErrMatchExists, match.ID)
	}

	if err = that.client.SAdd(ctx, activeMatchesKey, match.ID).Err(); err != nil {
		return fmt.Errorf("failed to index match: %w", err)
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	return getMatch(ctx, that.client, id)
}

// Update - read-modify-write of one match under WATCH. Concurrent writers make the
// transaction fail and the mutation is retried on the new state.
func (that *dbMatch) Update(ctx context.Context, id string, mutate MatchMutation) (*entity.Match, error) {
	key := matchKey(id)

	var updated *entity.Match
	txf := func(tx *redis.Tx) error {
		match, err := getMatch(ctx, tx, id)
		if err != nil {
			return err
		}

		changed, err := mutate(match)
		if err != nil {
			return err
		}

		updated = match
		if !changed {
			return nil
		}

		matchJSON, err := json.Marshal(match)
		if err != nil {
			return fmt.Errorf("could not marshal match: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, matchJSON, redis.KeepTTL)
			return nil
		})

		return err
	}

	for range that.maxRetries {
		err := that.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		if err != nil {
			return nil, err
		}

		return updated, nil
	}

	return nil, fmt.Errorf("%w: match %s", apperror.ErrConflict, id)
}

func (that *dbMatch) ActiveIDs(ctx context.Context) ([]string, error) {
	ids, err := that.client.SMembers(ctx, activeMatchesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list active matches: %w", err)
	}

	return ids, nil
}

// Settle - drops a finished match from the active index and starts the retention clock
// of the match and of its rating guard.
func (that *dbMatch) Settle(ctx context.Context, id string) error {
	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SRem(ctx, activeMatchesKey, id)
		if that.retention > 0 {
			pipe.Expire(ctx, matchKey(id), that.retention)
			pipe.Expire(ctx, RatingGuardKey(id), that.retention)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to settle match: %w", err)
	}

	return nil
}

// stringGetter - satisfied by both *redis.Client and *redis.Tx.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func getMatch(ctx context.Context, client stringGetter, id string) (*entity.Match, error) {
	response, err := client.Get(ctx, matchKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	var match entity.Match
	if err = json.Unmarshal([]byte(response), &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}
