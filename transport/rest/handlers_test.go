package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/service"
	"github.com/rocketscienceinc/tictactoe-pro/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-pro/internal/usecase"
	mockedRest "github.com/rocketscienceinc/tictactoe-pro/mocks/rest"
	"github.com/rocketscienceinc/tictactoe-pro/testing/suite"
)

const token = "token-of-alice"

type fixture struct {
	router  http.Handler
	matches *mockedRest.MockmatchCoordinator
	ratings *mockedRest.MockratingReader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	matches := mockedRest.NewMockmatchCoordinator(t)
	ratings := mockedRest.NewMockratingReader(t)

	parser := mockedRest.NewMocktokenParser(t)
	parser.EXPECT().ParseToken(token).Return("alice", nil).Maybe()
	parser.EXPECT().ParseToken(mock.Anything).Return("", service.ErrInvalidToken).Maybe()

	logger := suite.NewLogger()

	return &fixture{
		router:  NewRouter(logger, NewHandlers(logger, matches, ratings), parser),
		matches: matches,
		ratings: ratings,
	}
}

func (that *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	that.router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var value T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&value))

	return value
}

func activeMatch() *entity.Match {
	return entity.NewMatch("m-1", "alice", "bob", 3, time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC))
}

func TestRouter_Auth(t *testing.T) {
	t.Run("Ping needs no token", func(t *testing.T) {
		f := newFixture(t)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", rec.Body.String())
	})

	t.Run("Missing token is unauthorized", func(t *testing.T) {
		f := newFixture(t)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/matchmaking", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Forged token is unauthorized", func(t *testing.T) {
		f := newFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/matchmaking", nil)
		req.Header.Set("Authorization", "Bearer forged")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "unauthorized", decode[errorResponse](t, rec).Code)
	})

	t.Run("Signed token resolves the player", func(t *testing.T) {
		// Given: a real signer and parser
		auth := service.NewAuthService("secret")
		signed, err := auth.GenerateToken("carol")
		require.NoError(t, err)

		matches := mockedRest.NewMockmatchCoordinator(t)
		matches.EXPECT().Enqueue(mock.Anything, "carol").
			Return(&usecase.MatchmakingResult{Status: entity.StatusWaiting}, nil)

		logger := suite.NewLogger()
		router := NewRouter(logger, NewHandlers(logger, matches, mockedRest.NewMockratingReader(t)), auth)

		// When
		req := httptest.NewRequest(http.MethodPost, "/matchmaking", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		// Then
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandlers_Matchmaking(t *testing.T) {
	t.Run("Enqueue returns the pairing", func(t *testing.T) {
		f := newFixture(t)
		match := activeMatch()
		f.matches.EXPECT().Enqueue(mock.Anything, "alice").Return(&usecase.MatchmakingResult{
			Status:      usecase.StatusPaired,
			MatchID:     match.ID,
			Opponent:    "bob",
			FirstPlayer: "alice",
			Mark:        tictactoe.X,
			Match:       match,
		}, nil)

		rec := f.do(http.MethodPost, "/matchmaking", "")

		require.Equal(t, http.StatusOK, rec.Code)
		result := decode[usecase.MatchmakingResult](t, rec)
		assert.Equal(t, usecase.StatusPaired, result.Status)
		assert.Equal(t, "bob", result.Opponent)
		assert.Equal(t, tictactoe.X, result.Mark)
	})

	t.Run("Cancel", func(t *testing.T) {
		f := newFixture(t)
		f.matches.EXPECT().CancelMatchmaking(mock.Anything, "alice").Return(nil)

		rec := f.do(http.MethodDelete, "/matchmaking", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestHandlers_Matches(t *testing.T) {
	t.Run("State includes the board and the player to move", func(t *testing.T) {
		f := newFixture(t)
		match := activeMatch()
		require.NoError(t, match.ApplyMove("alice", 1, 1, match.CreatedAt))
		f.matches.EXPECT().GetMatchState(mock.Anything, "m-1").Return(match, nil)

		rec := f.do(http.MethodGet, "/matches/m-1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[map[string]any](t, rec)
		assert.Equal(t, "bob", body["next_player"])
		assert.Equal(t, "X", body["board"].([]any)[1].([]any)[1])
		assert.Equal(t, "m-1", body["id"])
	})

	t.Run("Move is submitted as the caller", func(t *testing.T) {
		f := newFixture(t)
		f.matches.EXPECT().SubmitMove(mock.Anything, "m-1", "alice", 0, 2).Return(activeMatch(), nil)

		rec := f.do(http.MethodPost, "/matches/m-1/moves", `{"row":0,"col":2}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Missing coordinates are a validation error", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/matches/m-1/moves", `{"row":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Domain errors map onto statuses", func(t *testing.T) {
		tests := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"Occupied", apperror.ErrCellOccupied, http.StatusConflict, "cell_occupied"},
			{"Out of turn", entity.ErrNotYourTurn, http.StatusConflict, "invalid_turn"},
			{"Out of board", tictactoe.ErrInvalidCell, http.StatusBadRequest, "validation"},
			{"Stranger", apperror.ErrNotParticipant, http.StatusForbidden, "not_participant"},
			{"Unknown match", apperror.ErrNotFound, http.StatusNotFound, "not_found"},
			{"Contention", apperror.ErrConflict, http.StatusConflict, "conflict"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)
				f.matches.EXPECT().SubmitMove(mock.Anything, "m-1", "alice", 1, 1).Return(nil, tt.err)

				rec := f.do(http.MethodPost, "/matches/m-1/moves", `{"row":1,"col":1}`)

				assert.Equal(t, tt.status, rec.Code)
				assert.Equal(t, tt.code, decode[errorResponse](t, rec).Code)
			})
		}
	})

	t.Run("Timeout check reports whether it fired", func(t *testing.T) {
		f := newFixture(t)
		f.matches.EXPECT().CheckTimeout(mock.Anything, "m-1", "alice").Return(activeMatch(), false, nil)

		rec := f.do(http.MethodPost, "/matches/m-1/timeout", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decode[timeoutResponse](t, rec).TimedOut)
	})

	t.Run("Result report", func(t *testing.T) {
		f := newFixture(t)
		match := activeMatch()
		_, err := match.Conclude("bob", match.CreatedAt)
		require.NoError(t, err)
		f.matches.EXPECT().ReportResult(mock.Anything, "m-1", "alice", "bob").Return(match, nil)

		rec := f.do(http.MethodPost, "/matches/m-1/result", `{"winner":"bob"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "bob", decode[map[string]any](t, rec)["winner"])
	})

	t.Run("AI match with unknown difficulty", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/matches/ai", `{"difficulty":"nightmare"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("AI match is created", func(t *testing.T) {
		f := newFixture(t)
		match := entity.NewBotMatch("m-2", "alice", tictactoe.Medium, 3, time.Now())
		f.matches.EXPECT().StartAIMatch(mock.Anything, "alice", tictactoe.Medium).Return(match, nil)

		rec := f.do(http.MethodPost, "/matches/ai", `{"difficulty":"Medium"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestHandlers_AI(t *testing.T) {
	t.Run("Suggested move", func(t *testing.T) {
		f := newFixture(t)
		f.matches.EXPECT().
			PlayAIMove(mock.Anything, tictactoe.Empty, tictactoe.Impossible).
			Return(tictactoe.Cell{Row: 0, Col: 2}, true, nil)

		rec := f.do(http.MethodPost, "/ai/move",
			`{"board":[["O","O",""],["X","X",""],["X","",""]],"difficulty":"impossible"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		response := decode[aiMoveResponse](t, rec)
		require.NotNil(t, response.Move)
		assert.Equal(t, tictactoe.Cell{Row: 0, Col: 2}, *response.Move)
	})

	t.Run("Full board has no move", func(t *testing.T) {
		f := newFixture(t)
		f.matches.EXPECT().
			PlayAIMove(mock.Anything, tictactoe.O, tictactoe.Easy).
			Return(tictactoe.Cell{}, false, nil)

		rec := f.do(http.MethodPost, "/ai/move",
			`{"board":[["X","O","X"],["X","O","O"],["O","X","X"]],"mark":"O","difficulty":"easy"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, decode[aiMoveResponse](t, rec).Move)
	})

	t.Run("Board larger than the maximum is rejected", func(t *testing.T) {
		f := newFixture(t)

		rows := make([]string, tictactoe.MaxBoardSize+1)
		for i := range rows {
			rows[i] = `[` + strings.Repeat(`"",`, tictactoe.MaxBoardSize) + `""]`
		}

		rec := f.do(http.MethodPost, "/ai/move", `{"board":[`+strings.Join(rows, ",")+`],"difficulty":"easy"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apperror.CodeValidation, decode[errorResponse](t, rec).Code)
	})

	t.Run("Oversized body is rejected", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/ai/move",
			`{"difficulty":"easy","padding":"`+strings.Repeat("x", maxBodyBytes)+`"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("AI result is recorded", func(t *testing.T) {
		f := newFixture(t)
		f.matches.EXPECT().
			RecordAIMatchResult(mock.Anything, "alice", entity.OutcomeWin, tictactoe.Medium).
			Return(&entity.Rating{Player: "alice", Rating: 1212, Wins: 1, GamesPlayed: 1}, nil)

		rec := f.do(http.MethodPost, "/ratings/ai-match", `{"outcome":"win","difficulty":"medium"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1212, decode[entity.Rating](t, rec).Rating)
	})

	t.Run("Unknown outcome", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/ratings/ai-match", `{"outcome":"abandoned","difficulty":"medium"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlers_Ratings(t *testing.T) {
	t.Run("Leaderboard passes the limit", func(t *testing.T) {
		f := newFixture(t)
		f.ratings.EXPECT().Leaderboard(mock.Anything, 5).Return([]*entity.Rating{
			{Player: "bob", Rating: 1300},
			{Player: "alice", Rating: 1250},
		}, nil)

		rec := f.do(http.MethodGet, "/leaderboard?limit=5", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]entity.Rating](t, rec), 2)
	})

	t.Run("Bad limit", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/leaderboard?limit=ten", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Search by username", func(t *testing.T) {
		f := newFixture(t)
		f.ratings.EXPECT().Search(mock.Anything, "ali", 0).Return([]*entity.Rating{{Player: "alice", Rating: 1250}}, nil)

		rec := f.do(http.MethodGet, "/leaderboard/search?username=ali", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice", decode[[]entity.Rating](t, rec)[0].Player)
	})

	t.Run("Rating of a player", func(t *testing.T) {
		f := newFixture(t)
		f.ratings.EXPECT().GetRating(mock.Anything, "bob").Return(entity.NewRating("bob", 1200), nil)

		rec := f.do(http.MethodGet, "/ratings/bob", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1200, decode[entity.Rating](t, rec).Rating)
	})

	t.Run("Match history", func(t *testing.T) {
		f := newFixture(t)
		f.matches.EXPECT().MatchHistory(mock.Anything, "bob", 3).Return([]*entity.Match{activeMatch()}, nil)

		rec := f.do(http.MethodGet, "/players/bob/matches?limit=3", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]entity.Match](t, rec), 1)
	})
}
