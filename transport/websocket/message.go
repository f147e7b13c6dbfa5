package websocket

import (
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/tictactoe"
)

const (
	actionJoin      = "matchmaking:join"
	actionLeave     = "matchmaking:leave"
	actionSubscribe = "match:subscribe"
	actionMove      = "match:move"
	actionTimeout   = "match:timeout"

	actionError = "error"
)

// Message - a client request; Payload is decoded per action.
type Message struct {
	Action  string         `json:"action"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Response - a reply to a request or a pushed event.
type Response struct {
	Action  string        `json:"action"`
	Payload any           `json:"payload,omitempty"`
	Error   *ErrorPayload `json:"error,omitempty"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type matchPayload struct {
	MatchID string `mapstructure:"match_id"`
}

type movePayload struct {
	MatchID string `mapstructure:"match_id"`
	Row     *int   `mapstructure:"row"`
	Column  *int   `mapstructure:"col"`
}

type timeoutPayload struct {
	TimedOut bool       `json:"timed_out"`
	Match    *MatchView `json:"match"`
}

// MatchView - the match plus the derived board.
type MatchView struct {
	Match      *entity.Match   `json:"match"`
	Board      tictactoe.Board `json:"board"`
	NextPlayer string          `json:"next_player,omitempty"`
}

func newMatchView(match *entity.Match) (*MatchView, error) {
	board, err := match.Board()
	if err != nil {
		return nil, err
	}

	view := &MatchView{Match: match, Board: board}
	if match.IsActive() {
		view.NextPlayer = match.PlayerToMove()
	}

	return view, nil
}
