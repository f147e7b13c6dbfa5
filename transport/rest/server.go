package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - every route except /ping requires a bearer token.
func NewRouter(logger *slog.Logger, handlers *Handlers, parser tokenParser) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)

	router.Get("/ping", PingHandler)

	router.Group(func(r chi.Router) {
		r.Use(Authenticate(logger, parser))

		r.Post("/matchmaking", handlers.Enqueue)
		r.Delete("/matchmaking", handlers.CancelMatchmaking)

		r.Post("/matches/ai", handlers.StartAIMatch)
		r.Route("/matches/{id}", func(r chi.Router) {
			r.Get("/", handlers.GetMatch)
			r.Post("/moves", handlers.SubmitMove)
			r.Post("/timeout", handlers.CheckTimeout)
			r.Post("/result", handlers.ReportResult)
		})

		r.Post("/ai/move", handlers.PlayAIMove)
		r.Post("/ratings/ai-match", handlers.RecordAIMatch)
		r.Get("/ratings/{player}", handlers.GetRating)

		r.Get("/leaderboard", handlers.Leaderboard)
		r.Get("/leaderboard/search", handlers.SearchLeaderboard)

		r.Get("/players/{player}/matches", handlers.MatchHistory)
	})

	return router
}

// Start - serves until ctx is done, then shuts down gracefully.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
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

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	log := logger.With("component", "http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Debug("request served",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
			)
		})
	}
}
