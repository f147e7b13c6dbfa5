package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type matchCoordinator interface {
	Enqueue(ctx context.Context, player string) (*usecase.MatchmakingResult, error)
	CancelMatchmaking(ctx context.Context, player string) error
	GetMatchState(ctx context.Context, matchID string) (*entity.Match, error)
	SubmitMove(ctx context.Context, matchID, player string, row, col int) (*entity.Match, error)
	CheckTimeout(ctx context.Context, matchID, player string) (*entity.Match, bool, error)
}

type eventSubscriber interface {
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
}

type tokenParser interface {
	ParseToken(token string) (string, error)
}

type handlerFunc func(ctx context.Context, client *client, payload map[string]any) (any, error)

type Server struct {
	logger *slog.Logger

	matches matchCoordinator
	events  eventSubscriber
	auth    tokenParser

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, matches matchCoordinator, events eventSubscriber, auth tokenParser) *Server {
	server := &Server{
		logger:  logger.With("component", "websocket"),
		matches: matches,
		events:  events,
		auth:    auth,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}

	server.handlers = map[string]handlerFunc{
		actionJoin:      server.handleJoin,
		actionLeave:     server.handleLeave,
		actionSubscribe: server.handleSubscribe,
		actionMove:      server.handleMove,
		actionTimeout:   server.handleTimeout,
	}

	return server
}

func (that *Server) Handler(ctx context.Context) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return router
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - authenticates the player, upgrades the connection and serves it until it closes.
func (that *Server) upgradeToWebSocket(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	player, err := that.auth.ParseToken(bearerToken(r))
	if err != nil {
		log.Debug("rejected connection", "error", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	log.Info("WebSocket connection established", "player", player)

	newClient(that, conn, player).serve(ctx)

	log.Info("WebSocket connection closed", "player", player)
}

// bearerToken - from the Authorization header or the token query parameter.
func bearerToken(r *http.Request) string {
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return token
	}

	return r.URL.Query().Get("token")
}
