package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
)

type EventRepository interface {
	PublishMatch(ctx context.Context, event *entity.Event) error
	PublishPlayer(ctx context.Context, player string, event *entity.Event) error
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
}

type dbEvents struct {
	client *redis.Client
}

func NewEventRepository(client *redis.Client) EventRepository {
	return &dbEvents{
		client: client,
	}
}

func MatchChannel(matchID string) string {
	return "match:" + matchID
}

func PlayerChannel(player string) string {
	return "player:" + player
}

func (that *dbEvents) PublishMatch(ctx context.Context, event *entity.Event) error {
	return that.publish(ctx, MatchChannel(event.Match.ID), event)
}

func (that *dbEvents) PublishPlayer(ctx context.Context, player string, event *entity.Event) error {
	return that.publish(ctx, PlayerChannel(player), event)
}

// Subscribe - the caller owns the returned subscription and must close it.
func (that *dbEvents) Subscribe(ctx context.Context, channels ...string) *redis.PubSub {
	return that.client.Subscribe(ctx, channels...)
}

func (that *dbEvents) publish(ctx context.Context, channel string, event *entity.Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
