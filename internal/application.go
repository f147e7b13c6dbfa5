package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-pro/internal/config"
	"github.com/rocketscienceinc/tictactoe-pro/internal/repository"
	"github.com/rocketscienceinc/tictactoe-pro/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-pro/internal/service"
	"github.com/rocketscienceinc/tictactoe-pro/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-pro/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-pro/transport/rest"
	"github.com/rocketscienceinc/tictactoe-pro/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	archiveStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = archiveStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = archiveStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	pvpDifficulty, err := tictactoe.ParseDifficulty(conf.Rating.PvPDifficulty)
	if err != nil {
		return fmt.Errorf("invalid rating.pvp-difficulty: %w", err)
	}

	client := redisStorage.Connection
	retention := conf.Match.Retention

	matchRepo := repository.NewMatchRepository(client, conf.Match.MaxTxRetries, retention)
	playerRepo := repository.NewPlayerRepository(client)
	queueRepo := repository.NewQueueRepository(client, retention)
	ratingRepo := repository.NewRatingRepository(client, conf.Match.MaxTxRetries)
	eventRepo := repository.NewEventRepository(client)
	archiveRepo := repository.NewArchiveRepository(archiveStorage.Connection)

	authService := service.NewAuthService(conf.JWTSecretKey)
	ratingService := service.NewRatingService(ratingRepo, service.RatingConfig{
		Base:          conf.Rating.Base,
		AIBaseline:    conf.Rating.AIBaseline,
		PvPDifficulty: pvpDifficulty,
	})
	searcher := tictactoe.NewSearcher(rand.New(rand.NewSource(time.Now().UnixNano())), conf.Search.ExhaustiveLimit) //nolint:gosec // move randomness is not security sensitive
	botService := service.NewBotService(searcher)

	coordinator := usecase.NewMatchCoordinator(logger, usecase.Deps{
		Matches: matchRepo,
		Players: playerRepo,
		Queue:   queueRepo,
		Archive: archiveRepo,
		Events:  eventRepo,
		Ratings: ratingService,
		Bot:     botService,
		Settings: usecase.MatchConfig{
			BoardSize:   conf.Match.BoardSize,
			TurnTimeout: conf.Match.TurnTimeout,
		},
	})

	// run timeout sweeper
	sweeper := usecase.NewSweeper(logger, coordinator, conf.Match.SweepInterval, conf.Match.SweepWorkers)
	go func() {
		log.Info("Starting timeout sweeper", "interval", conf.Match.SweepInterval)
		if sweepErr := sweeper.Run(ctx); sweepErr != nil {
			log.Error("sweeper error", "error", sweepErr)
		}
	}()

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		handlers := rest.NewHandlers(logger, coordinator, ratingService)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, handlers, authService)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, coordinator, eventRepo, authService)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
