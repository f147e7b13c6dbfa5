package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const queueKey = "matchmaking:queue"

type PairingStatus string

const (
	PairingWaiting PairingStatus = "waiting"
	PairingPaired  PairingStatus = "paired"
	// PairingSeated - the player already holds a seat in MatchID.
	PairingSeated PairingStatus = "seated"
)

type Pairing struct {
	Status   PairingStatus
	MatchID  string
	Opponent string
}

// pairOrWait is the atomic pop-or-insert of the matchmaking queue.
// The popped player is seated as X, the caller as O, both in ARGV[2].
var pairOrWait = redis.NewScript(`
local seat = redis.call('GET', KEYS[2])
if seat then
	local player = cjson.decode(seat)
	if player.match_id and player.match_id ~= '' then
		return {'seated', player.match_id, ''}
	end
end

redis.call('LREM', KEYS[1], 0, ARGV[1])

local other = redis.call('LPOP', KEYS[1])
if other then
	local ttl = tonumber(ARGV[3])
	redis.call('SET', ARGV[4] .. other, cjson.encode({id = other, mark = 'X', match_id = ARGV[2]}), 'PX', ttl)
	redis.call('SET', KEYS[2], cjson.encode({id = ARGV[1], mark = 'O', match_id = ARGV[2]}), 'PX', ttl)
	return {'paired', ARGV[2], other}
end

redis.call('RPUSH', KEYS[1], ARGV[1])
return {'waiting', '', ''}
`)

type QueueRepository interface {
	PairOrWait(ctx context.Context, player, matchID string) (*Pairing, error)
	Remove(ctx context.Context, player string) error
	Waiting(ctx context.Context) ([]string, error)
}

type dbQueue struct {
	client  *redis.Client
	seatTTL time.Duration
}

func NewQueueRepository(client *redis.Client, seatTTL time.Duration) QueueRepository {
	if seatTTL <= 0 {
		seatTTL = 24 * time.Hour
	}

	return &dbQueue{
		client:  client,
		seatTTL: seatTTL,
	}
}

// PairOrWait - pairs player with the earliest waiting entry under matchID, or queues it.
// A player that already holds a seat gets it back instead.
func (that *dbQueue) PairOrWait(ctx context.Context, player, matchID string) (*Pairing, error) {
	keys := []string{queueKey, playerKey(player)}
	args := []any{player, matchID, that.seatTTL.Milliseconds(), playerKeyPrefix}

	reply, err := pairOrWait.Run(ctx, that.client, keys, args...).StringSlice()
	if err != nil {
		return nil, fmt.Errorf("failed to run matchmaking script: %w", err)
	}

	if len(reply) != 3 {
		return nil, fmt.Errorf("unexpected matchmaking reply: %v", reply)
	}

	return &Pairing{
		Status:   PairingStatus(reply[0]),
		MatchID:  reply[1],
		Opponent: reply[2],
	}, nil
}

func (that *dbQueue) Remove(ctx context.Context, player string) error {
	if err := that.client.LRem(ctx, queueKey, 0, player).Err(); err != nil {
		return fmt.Errorf("failed to leave matchmaking queue: %w", err)
	}

	return nil
}

func (that *dbQueue) Waiting(ctx context.Context) ([]string, error) {
	players, err := that.client.LRange(ctx, queueKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list matchmaking queue: %w", err)
	}

	return players, nil
}
