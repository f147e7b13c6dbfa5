package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/repository"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
	sendBuffer   = 32
	maxMessage   = 4096
)

// client - one connection. Only the writer goroutine touches conn for writing.
type client struct {
	server *Server
	conn   *websocket.Conn
	player string

	send       chan []byte
	done       chan struct{}
	writerDone chan struct{}

	mu      sync.Mutex
	sub     *redis.PubSub
	matches map[string]struct{}
}

func newClient(server *Server, conn *websocket.Conn, player string) *client {
	return &client{
		server:     server,
		conn:       conn,
		player:     player,
		send:       make(chan []byte, sendBuffer),
		done:       make(chan struct{}),
		writerDone: make(chan struct{}),
		matches:    make(map[string]struct{}),
	}
}

func (that *client) serve(ctx context.Context) {
	log := that.server.logger.With("method", "serve", "player", that.player)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	that.sub = that.server.events.Subscribe(ctx, repository.PlayerChannel(that.player))
	if _, err := that.sub.Receive(ctx); err != nil {
		log.Error("failed to subscribe to player events", "error", err)
		_ = that.conn.Close()
		return
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		that.forwardEvents(ctx)
	}()

	go func() {
		defer wg.Done()
		defer close(that.writerDone)

		if err := that.writeWithHeartbeat(); err != nil {
			log.Debug("writer stopped", "error", err)
			_ = that.conn.Close()
		}
	}()

	that.readMessages(ctx)

	close(that.done)
	_ = that.sub.Close()
	wg.Wait()
	_ = that.conn.Close()
}

// readMessages - dispatches requests until the connection fails.
func (that *client) readMessages(ctx context.Context) {
	log := that.server.logger.With("method", "readMessages", "player", that.player)

	that.conn.SetReadLimit(maxMessage)
	_ = that.conn.SetReadDeadline(time.Now().Add(pongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var message Message
		if err := that.conn.ReadJSON(&message); err != nil {
			var (
				syntaxErr *json.SyntaxError
				typeErr   *json.UnmarshalTypeError
			)
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				that.push(errorResponse(actionError, err))
				continue
			}

			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}

			return
		}

		handler, ok := that.server.handlers[message.Action]
		if !ok {
			that.push(errorResponse(message.Action, errUnknownAction))
			continue
		}

		result, err := handler(ctx, that, message.Payload)
		if err != nil {
			if apperror.Code(err) == apperror.CodeInternal {
				log.Error("failed to handle message", "action", message.Action, "error", err)
			}

			that.push(errorResponse(message.Action, err))
			continue
		}

		that.push(Response{Action: message.Action, Payload: result})
	}
}

// forwardEvents - relays pub/sub events; pairing events also subscribe the client to the new match.
func (that *client) forwardEvents(ctx context.Context) {
	log := that.server.logger.With("method", "forwardEvents", "player", that.player)

	for msg := range that.sub.Channel() {
		var event entity.Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Error("failed to decode event", "channel", msg.Channel, "error", err)
			continue
		}

		if event.Type == entity.EventPaired {
			if err := that.follow(ctx, event.Match.ID); err != nil {
				log.Error("failed to follow match", "match_id", event.Match.ID, "error", err)
			}
		}

		view, err := newMatchView(event.Match)
		if err != nil {
			log.Error("failed to render match", "match_id", event.Match.ID, "error", err)
			continue
		}

		that.push(Response{Action: event.Type, Payload: view})
	}
}

// follow - subscribes to a match channel once per connection.
func (that *client) follow(ctx context.Context, matchID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.matches[matchID]; ok {
		return nil
	}

	if err := that.sub.Subscribe(ctx, repository.MatchChannel(matchID)); err != nil {
		return err
	}

	that.matches[matchID] = struct{}{}

	return nil
}

// push - queues a frame for the writer; dropped once the connection is closing.
func (that *client) push(response Response) {
	data, err := json.Marshal(response)
	if err != nil {
		that.server.logger.Error("failed to marshal response", "action", response.Action, "error", err)
		return
	}

	select {
	case that.send <- data:
	case <-that.done:
	case <-that.writerDone:
	}
}

func (that *client) writeWithHeartbeat() error {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-that.done:
			_ = that.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return nil

		case data := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return err
			}

		case <-ticker.C:
			if err := that.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		}
	}
}
