package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/repository"
	"github.com/rocketscienceinc/tictactoe-pro/internal/service"
	"github.com/rocketscienceinc/tictactoe-pro/internal/usecase"
	mockedWebsocket "github.com/rocketscienceinc/tictactoe-pro/mocks/websocket"
	"github.com/rocketscienceinc/tictactoe-pro/testing/suite"
)

const aliceToken = "alice-token"

type received struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
	Error   *ErrorPayload   `json:"error"`
}

type fixture struct {
	url     string
	matches *mockedWebsocket.MockmatchCoordinator
	events  repository.EventRepository
}

func newFixture(t *testing.T) (context.Context, *fixture) {
	t.Helper()

	ctx, st := suite.New(t)

	matches := mockedWebsocket.NewMockmatchCoordinator(t)

	parser := mockedWebsocket.NewMocktokenParser(t)
	parser.EXPECT().ParseToken(aliceToken).Return("alice", nil).Maybe()
	parser.EXPECT().ParseToken(mock.Anything).Return("", service.ErrInvalidToken).Maybe()

	events := repository.NewEventRepository(st.Storage)
	server := New(st.Logger, matches, events, parser)

	serverCtx, cancel := context.WithCancel(ctx)
	httpServer := httptest.NewServer(server.Handler(serverCtx))
	t.Cleanup(func() {
		cancel()
		httpServer.Close()
	})

	return ctx, &fixture{
		url:     "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws",
		matches: matches,
		events:  events,
	}
}

// connect - dials as alice and waits until the connection is serving requests.
func (that *fixture) connect(t *testing.T) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(that.url+"?token="+aliceToken, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	send(t, conn, Message{Action: "hello"})
	require.Equal(t, "hello", read(t, conn).Action)

	return conn
}

func send(t *testing.T, conn *websocket.Conn, message Message) {
	t.Helper()

	require.NoError(t, conn.WriteJSON(message))
}

func read(t *testing.T, conn *websocket.Conn) received {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var message received
	require.NoError(t, conn.ReadJSON(&message))

	return message
}

func readView(t *testing.T, message received) MatchView {
	t.Helper()

	var view MatchView
	require.NoError(t, json.Unmarshal(message.Payload, &view))

	return view
}

func newMatch() *entity.Match {
	return entity.NewMatch("m-1", "alice", "bob", 3, time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC))
}

func TestServer_Handshake(t *testing.T) {
	_, f := newFixture(t)

	// When: dialing with a forged token
	conn, resp, err := websocket.DefaultDialer.Dial(f.url+"?token=forged", nil)

	// Then: the upgrade is refused
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Nil(t, conn)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_Subscribe(t *testing.T) {
	ctx, f := newFixture(t)
	conn := f.connect(t)

	// Given: alice subscribes to her match
	match := newMatch()
	f.matches.EXPECT().GetMatchState(mock.Anything, "m-1").Return(match, nil)

	send(t, conn, Message{Action: actionSubscribe, Payload: map[string]any{"match_id": "m-1"}})

	response := read(t, conn)
	require.Equal(t, actionSubscribe, response.Action)
	require.Nil(t, response.Error)
	assert.Equal(t, "alice", readView(t, response).NextPlayer)

	// When: the match changes
	updated := newMatch()
	require.NoError(t, updated.ApplyMove("alice", 1, 1, updated.CreatedAt))
	require.NoError(t, f.events.PublishMatch(ctx, &entity.Event{Type: entity.EventUpdated, Match: updated}))

	// Then: the change is pushed
	pushed := read(t, conn)
	assert.Equal(t, entity.EventUpdated, pushed.Action)

	view := readView(t, pushed)
	assert.Len(t, view.Match.Moves, 1)
	assert.Equal(t, "bob", view.NextPlayer)
}

func TestServer_PairingFollowsTheMatch(t *testing.T) {
	ctx, f := newFixture(t)
	conn := f.connect(t)

	// When: alice is paired while waiting
	match := newMatch()
	require.NoError(t, f.events.PublishPlayer(ctx, "alice", &entity.Event{Type: entity.EventPaired, Match: match}))

	// Then: she is told, and later match events reach her
	assert.Equal(t, entity.EventPaired, read(t, conn).Action)

	_, err := match.Conclude("bob", match.CreatedAt)
	require.NoError(t, err)
	require.NoError(t, f.events.PublishMatch(ctx, &entity.Event{Type: entity.EventCompleted, Match: match}))

	pushed := read(t, conn)
	assert.Equal(t, entity.EventCompleted, pushed.Action)
	assert.Equal(t, "bob", readView(t, pushed).Match.Winner)
}

func TestServer_Join(t *testing.T) {
	ctx, f := newFixture(t)
	conn := f.connect(t)

	match := newMatch()
	f.matches.EXPECT().Enqueue(mock.Anything, "alice").Return(&usecase.MatchmakingResult{
		Status:      usecase.StatusPaired,
		MatchID:     match.ID,
		Opponent:    "bob",
		FirstPlayer: "alice",
		Match:       match,
	}, nil)

	send(t, conn, Message{Action: actionJoin})

	var result usecase.MatchmakingResult
	response := read(t, conn)
	require.Equal(t, actionJoin, response.Action)
	require.NoError(t, json.Unmarshal(response.Payload, &result))
	assert.Equal(t, "bob", result.Opponent)

	// the joined match is followed
	require.NoError(t, f.events.PublishMatch(ctx, &entity.Event{Type: entity.EventUpdated, Match: match}))
	assert.Equal(t, entity.EventUpdated, read(t, conn).Action)
}

func TestServer_Requests(t *testing.T) {
	t.Run("Move", func(t *testing.T) {
		_, f := newFixture(t)
		conn := f.connect(t)

		match := newMatch()
		require.NoError(t, match.ApplyMove("alice", 0, 2, match.CreatedAt))
		f.matches.EXPECT().SubmitMove(mock.Anything, "m-1", "alice", 0, 2).Return(match, nil)

		send(t, conn, Message{Action: actionMove, Payload: map[string]any{"match_id": "m-1", "row": 0, "col": 2}})

		response := read(t, conn)
		require.Nil(t, response.Error)
		assert.Len(t, readView(t, response).Match.Moves, 1)
	})

	t.Run("Move without coordinates", func(t *testing.T) {
		_, f := newFixture(t)
		conn := f.connect(t)

		send(t, conn, Message{Action: actionMove, Payload: map[string]any{"match_id": "m-1", "row": 0}})

		response := read(t, conn)
		require.NotNil(t, response.Error)
		assert.Equal(t, apperror.CodeValidation, response.Error.Code)
	})

	t.Run("Move with fractional coordinates", func(t *testing.T) {
		_, f := newFixture(t)
		conn := f.connect(t)

		send(t, conn, Message{Action: actionMove, Payload: map[string]any{"match_id": "m-1", "row": 1.9, "col": -0.7}})

		response := read(t, conn)
		require.NotNil(t, response.Error)
		assert.Equal(t, apperror.CodeValidation, response.Error.Code)
	})

	t.Run("Rejected move keeps the connection", func(t *testing.T) {
		_, f := newFixture(t)
		conn := f.connect(t)

		f.matches.EXPECT().SubmitMove(mock.Anything, "m-1", "alice", 1, 1).Return(nil, apperror.ErrCellOccupied)
		f.matches.EXPECT().CancelMatchmaking(mock.Anything, "alice").Return(nil)

		send(t, conn, Message{Action: actionMove, Payload: map[string]any{"match_id": "m-1", "row": 1, "col": 1}})
		assert.Equal(t, apperror.CodeCellOccupied, read(t, conn).Error.Code)

		send(t, conn, Message{Action: actionLeave})
		response := read(t, conn)
		assert.Equal(t, actionLeave, response.Action)
		assert.Nil(t, response.Error)
	})

	t.Run("Timeout", func(t *testing.T) {
		_, f := newFixture(t)
		conn := f.connect(t)

		f.matches.EXPECT().CheckTimeout(mock.Anything, "m-1", "alice").Return(newMatch(), false, nil)

		send(t, conn, Message{Action: actionTimeout, Payload: map[string]any{"match_id": "m-1"}})

		var payload struct {
			TimedOut bool `json:"timed_out"`
		}
		response := read(t, conn)
		require.NoError(t, json.Unmarshal(response.Payload, &payload))
		assert.False(t, payload.TimedOut)
	})

	t.Run("Missing match id", func(t *testing.T) {
		_, f := newFixture(t)
		conn := f.connect(t)

		send(t, conn, Message{Action: actionSubscribe})

		assert.Equal(t, apperror.CodeValidation, read(t, conn).Error.Code)
	})
}
