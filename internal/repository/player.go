package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const playerKeyPrefix = "player:"

// releaseSeat deletes the seat only while it still points at the given match.
var releaseSeat = redis.NewScript(`
local seat = redis.call('GET', KEYS[1])
if not seat then
	return 0
end
local player = cjson.decode(seat)
if player.match_id == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

// PlayerRepository - seats are written by the matchmaking script; this side only frees them.
type PlayerRepository interface {
	Release(ctx context.Context, id, matchID string) error
}

type dbPlayer struct {
	client *redis.Client
}

func NewPlayerRepository(client *redis.Client) PlayerRepository {
	return &dbPlayer{
		client: client,
	}
}

func playerKey(id string) string {
	return playerKeyPrefix + id
}

// Release - frees the player's seat if it still belongs to matchID.
func (that *dbPlayer) Release(ctx context.Context, id, matchID string) error {
	if err := releaseSeat.Run(ctx, that.client, []string{playerKey(id)}, matchID).Err(); err != nil {
		return fmt.Errorf("failed to release player seat: %w", err)
	}

	return nil
}
