package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rocketscienceinc/tictactoe-pro/internal/service"
)

type tokenParser interface {
	ParseToken(token string) (string, error)
}

type playerKey struct{}

var errMissingToken = errors.New("missing bearer token")

// Authenticate - resolves the player identity from the bearer token.
func Authenticate(logger *slog.Logger, parser tokenParser) func(http.Handler) http.Handler {
	log := logger.With("component", "auth")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				writeError(w, log, errors.Join(service.ErrInvalidToken, errMissingToken))
				return
			}

			player, err := parser.ParseToken(token)
			if err != nil {
				log.Debug("rejected token", "error", err)
				writeError(w, log, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPlayer(r.Context(), player)))
		})
	}
}

func WithPlayer(ctx context.Context, player string) context.Context {
	return context.WithValue(ctx, playerKey{}, player)
}

func PlayerFromContext(ctx context.Context) string {
	player, _ := ctx.Value(playerKey{}).(string)
	return player
}
