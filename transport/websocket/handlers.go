package websocket

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/usecase"
)

var (
	errUnknownAction  = fmt.Errorf("%w: unknown action", apperror.ErrValidation)
	errMissingMatchID = fmt.Errorf("%w: match_id is required", apperror.ErrValidation)
)

func (that *Server) handleJoin(ctx context.Context, client *client, _ map[string]any) (any, error) {
	result, err := that.matches.Enqueue(ctx, client.player)
	if err != nil {
		return nil, err
	}

	if result.Status == usecase.StatusPaired {
		if err = client.follow(ctx, result.MatchID); err != nil {
			return nil, fmt.Errorf("failed to follow match: %w", err)
		}
	}

	return result, nil
}

func (that *Server) handleLeave(ctx context.Context, client *client, _ map[string]any) (any, error) {
	if err := that.matches.CancelMatchmaking(ctx, client.player); err != nil {
		return nil, err
	}

	return nil, nil
}

// handleSubscribe - starts pushing the match's events and returns its current state.
func (that *Server) handleSubscribe(ctx context.Context, client *client, payload map[string]any) (any, error) {
	var req matchPayload
	if err := decodePayload(payload, &req); err != nil {
		return nil, err
	}

	if req.MatchID == "" {
		return nil, errMissingMatchID
	}

	match, err := that.matches.GetMatchState(ctx, req.MatchID)
	if err != nil {
		return nil, err
	}

	if err = client.follow(ctx, match.ID); err != nil {
		return nil, fmt.Errorf("failed to follow match: %w", err)
	}

	return newMatchView(match)
}

func (that *Server) handleMove(ctx context.Context, client *client, payload map[string]any) (any, error) {
	var req movePayload
	if err := decodePayload(payload, &req); err != nil {
		return nil, err
	}

	if req.MatchID == "" {
		return nil, errMissingMatchID
	}

	if req.Row == nil || req.Column == nil {
		return nil, fmt.Errorf("%w: row and col are required", apperror.ErrValidation)
	}

	match, err := that.matches.SubmitMove(ctx, req.MatchID, client.player, *req.Row, *req.Column)
	if err != nil {
		return nil, err
	}

	return newMatchView(match)
}

func (that *Server) handleTimeout(ctx context.Context, client *client, payload map[string]any) (any, error) {
	var req matchPayload
	if err := decodePayload(payload, &req); err != nil {
		return nil, err
	}

	if req.MatchID == "" {
		return nil, errMissingMatchID
	}

	match, timedOut, err := that.matches.CheckTimeout(ctx, req.MatchID, client.player)
	if err != nil {
		return nil, err
	}

	view, err := newMatchView(match)
	if err != nil {
		return nil, err
	}

	return timeoutPayload{TimedOut: timedOut, Match: view}, nil
}

func decodePayload(payload map[string]any, dst any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: wholeNumbers,
		Result:     dst,
	})
	if err != nil {
		return fmt.Errorf("failed to create payload decoder: %w", err)
	}

	if err = decoder.Decode(payload); err != nil {
		return errors.Join(apperror.ErrValidation, err)
	}

	return nil
}

// wholeNumbers - JSON numbers arrive as float64; integer fields only take whole values.
func wholeNumbers(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 || to.Kind() != reflect.Int {
		return data, nil
	}

	number := reflect.ValueOf(data).Float()
	if number != math.Trunc(number) || math.Abs(number) > math.MaxInt32 {
		return nil, fmt.Errorf("%v is not a whole number", number)
	}

	return int(number), nil
}

func errorResponse(action string, err error) Response {
	code := apperror.Code(err)

	message := err.Error()
	if code == apperror.CodeInternal {
		message = "Internal Server Error"
	}

	return Response{Action: action, Error: &ErrorPayload{Code: code, Message: message}}
}
