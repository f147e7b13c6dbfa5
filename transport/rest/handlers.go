package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-pro/internal/usecase"
)

type matchCoordinator interface {
	Enqueue(ctx context.Context, player string) (*usecase.MatchmakingResult, error)
	CancelMatchmaking(ctx context.Context, player string) error
	StartAIMatch(ctx context.Context, player string, difficulty tictactoe.Difficulty) (*entity.Match, error)
	GetMatchState(ctx context.Context, matchID string) (*entity.Match, error)
	SubmitMove(ctx context.Context, matchID, player string, row, col int) (*entity.Match, error)
	CheckTimeout(ctx context.Context, matchID, player string) (*entity.Match, bool, error)
	ReportResult(ctx context.Context, matchID, player, winner string) (*entity.Match, error)
	PlayAIMove(board tictactoe.Board, mark tictactoe.Mark, difficulty tictactoe.Difficulty) (tictactoe.Cell, bool, error)
	RecordAIMatchResult(ctx context.Context, player string, outcome entity.Outcome, difficulty tictactoe.Difficulty) (*entity.Rating, error)
	MatchHistory(ctx context.Context, player string, limit int) ([]*entity.Match, error)
}

type ratingReader interface {
	GetRating(ctx context.Context, player string) (*entity.Rating, error)
	Leaderboard(ctx context.Context, limit int) ([]*entity.Rating, error)
	Search(ctx context.Context, query string, limit int) ([]*entity.Rating, error)
}

type Handlers struct {
	logger *slog.Logger

	matches matchCoordinator
	ratings ratingReader
}

func NewHandlers(logger *slog.Logger, matches matchCoordinator, ratings ratingReader) *Handlers {
	return &Handlers{
		logger:  logger.With("component", "rest"),
		matches: matches,
		ratings: ratings,
	}
}

// matchResponse - the stored match plus the derived board and the player to move.
type matchResponse struct {
	*entity.Match
	Board      tictactoe.Board `json:"board"`
	NextPlayer string          `json:"next_player,omitempty"`
}

type moveRequest struct {
	Row    *int `json:"row"`
	Column *int `json:"col"`
}

type resultRequest struct {
	Winner string `json:"winner"`
}

type aiMatchRequest struct {
	Difficulty string `json:"difficulty"`
}

type aiMoveRequest struct {
	Board      tictactoe.Board `json:"board"`
	Mark       tictactoe.Mark  `json:"mark"`
	Difficulty string          `json:"difficulty"`
}

type aiMoveResponse struct {
	Move *tictactoe.Cell `json:"move"`
}

type aiResultRequest struct {
	Outcome    string `json:"outcome"`
	Difficulty string `json:"difficulty"`
}

type timeoutResponse struct {
	TimedOut bool           `json:"timed_out"`
	Match    *matchResponse `json:"match"`
}

func (that *Handlers) Enqueue(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Enqueue")

	result, err := that.matches.Enqueue(r.Context(), PlayerFromContext(r.Context()))
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (that *Handlers) CancelMatchmaking(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "CancelMatchmaking")

	if err := that.matches.CancelMatchmaking(r.Context(), PlayerFromContext(r.Context())); err != nil {
		writeError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Handlers) StartAIMatch(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "StartAIMatch")

	var req aiMatchRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	difficulty, err := tictactoe.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, log, err)
		return
	}

	match, err := that.matches.StartAIMatch(r.Context(), PlayerFromContext(r.Context()), difficulty)
	if err != nil {
		writeError(w, log, err)
		return
	}

	that.writeMatch(w, log, http.StatusCreated, match)
}

func (that *Handlers) GetMatch(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GetMatch")

	match, err := that.matches.GetMatchState(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	that.writeMatch(w, log, http.StatusOK, match)
}

func (that *Handlers) SubmitMove(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "SubmitMove")

	var req moveRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	if req.Row == nil || req.Column == nil {
		writeError(w, log, fmt.Errorf("%w: row and col are required", apperror.ErrValidation))
		return
	}

	match, err := that.matches.SubmitMove(r.Context(), chi.URLParam(r, "id"), PlayerFromContext(r.Context()), *req.Row, *req.Column)
	if err != nil {
		writeError(w, log, err)
		return
	}

	that.writeMatch(w, log, http.StatusOK, match)
}

func (that *Handlers) CheckTimeout(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "CheckTimeout")

	match, timedOut, err := that.matches.CheckTimeout(r.Context(), chi.URLParam(r, "id"), PlayerFromContext(r.Context()))
	if err != nil {
		writeError(w, log, err)
		return
	}

	response, err := newMatchResponse(match)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, timeoutResponse{TimedOut: timedOut, Match: response})
}

func (that *Handlers) ReportResult(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ReportResult")

	var req resultRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	match, err := that.matches.ReportResult(r.Context(), chi.URLParam(r, "id"), PlayerFromContext(r.Context()), req.Winner)
	if err != nil {
		writeError(w, log, err)
		return
	}

	that.writeMatch(w, log, http.StatusOK, match)
}

func (that *Handlers) PlayAIMove(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "PlayAIMove")

	var req aiMoveRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	if req.Board.Size() > tictactoe.MaxBoardSize {
		writeError(w, log, tictactoe.ErrBoardTooLarge)
		return
	}

	difficulty, err := tictactoe.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, log, err)
		return
	}

	cell, ok, err := that.matches.PlayAIMove(req.Board, req.Mark, difficulty)
	if err != nil {
		writeError(w, log, err)
		return
	}

	response := aiMoveResponse{}
	if ok {
		response.Move = &cell
	}

	writeJSON(w, http.StatusOK, response)
}

func (that *Handlers) RecordAIMatch(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "RecordAIMatch")

	var req aiResultRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	outcome, err := entity.ParseOutcome(req.Outcome)
	if err != nil {
		writeError(w, log, err)
		return
	}

	difficulty, err := tictactoe.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, log, err)
		return
	}

	rating, err := that.matches.RecordAIMatchResult(r.Context(), PlayerFromContext(r.Context()), outcome, difficulty)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, rating)
}

func (that *Handlers) GetRating(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GetRating")

	rating, err := that.ratings.GetRating(r.Context(), chi.URLParam(r, "player"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, rating)
}

func (that *Handlers) Leaderboard(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Leaderboard")

	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, log, err)
		return
	}

	ratings, err := that.ratings.Leaderboard(r.Context(), limit)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, ratings)
}

func (that *Handlers) SearchLeaderboard(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "SearchLeaderboard")

	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, log, err)
		return
	}

	ratings, err := that.ratings.Search(r.Context(), r.URL.Query().Get("username"), limit)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, ratings)
}

func (that *Handlers) MatchHistory(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "MatchHistory")

	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, log, err)
		return
	}

	matches, err := that.matches.MatchHistory(r.Context(), chi.URLParam(r, "player"), limit)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, matches)
}

func (that *Handlers) writeMatch(w http.ResponseWriter, log *slog.Logger, status int, match *entity.Match) {
	response, err := newMatchResponse(match)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, status, response)
}

func newMatchResponse(match *entity.Match) (*matchResponse, error) {
	board, err := match.Board()
	if err != nil {
		return nil, err
	}

	response := &matchResponse{Match: match, Board: board}
	if match.IsActive() {
		response.NextPlayer = match.PlayerToMove()
	}

	return response, nil
}

// queryLimit - 0 when absent, the services apply their own defaults.
func queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("%w: limit must be a non-negative integer", apperror.ErrValidation)
	}

	return limit, nil
}
