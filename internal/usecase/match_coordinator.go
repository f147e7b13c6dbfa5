package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/repository"
	"github.com/rocketscienceinc/tictactoe-pro/internal/tictactoe"
)

const (
	DefaultHistorySize = 20
	maxHistorySize     = 100
)

var ErrMatchStillActive = fmt.Errorf("%w: match is still active, only a resignation can end it", apperror.ErrInvalidTurn)

type matchRepo interface {
	Create(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	Update(ctx context.Context, id string, mutate repository.MatchMutation) (*entity.Match, error)
	ActiveIDs(ctx context.Context) ([]string, error)
	Settle(ctx context.Context, id string) error
}

type playerRepo interface {
	Release(ctx context.Context, id, matchID string) error
}

type queueRepo interface {
	PairOrWait(ctx context.Context, player, matchID string) (*repository.Pairing, error)
	Remove(ctx context.Context, player string) error
}

type archiveRepo interface {
	Save(ctx context.Context, match *entity.Match) error
	ListByPlayer(ctx context.Context, player string, limit int) ([]*entity.Match, error)
}

type eventPublisher interface {
	PublishMatch(ctx context.Context, event *entity.Event) error
	PublishPlayer(ctx context.Context, player string, event *entity.Event) error
}

type ratingService interface {
	RecordMatch(ctx context.Context, match *entity.Match) (bool, error)
	RecordAIMatch(ctx context.Context, player string, outcome entity.Outcome, difficulty tictactoe.Difficulty) (*entity.Rating, error)
}

type botService interface {
	ChooseMove(board tictactoe.Board, mark tictactoe.Mark, difficulty tictactoe.Difficulty) (tictactoe.Cell, bool, error)
	MakeTurn(match *entity.Match, now time.Time) error
}

type MatchConfig struct {
	BoardSize   int
	TurnTimeout time.Duration
}

// MatchmakingResult - Status is entity.StatusWaiting or "paired".
type MatchmakingResult struct {
	Status      string         `json:"status"`
	MatchID     string         `json:"match_id,omitempty"`
	Opponent    string         `json:"opponent,omitempty"`
	FirstPlayer string         `json:"first_player,omitempty"`
	Mark        tictactoe.Mark `json:"mark,omitempty"`
	Match       *entity.Match  `json:"match,omitempty"`
}

const StatusPaired = "paired"

type Deps struct {
	Matches  matchRepo
	Players  playerRepo
	Queue    queueRepo
	Archive  archiveRepo
	Events   eventPublisher
	Ratings  ratingService
	Bot      botService
	Clock    func() time.Time
	NewID    func() string
	Settings MatchConfig
}

// MatchCoordinator - the only writer of matches and the matchmaking queue.
type MatchCoordinator struct {
	logger *slog.Logger

	matchRepo   matchRepo
	playerRepo  playerRepo
	queueRepo   queueRepo
	archiveRepo archiveRepo
	events      eventPublisher
	ratings     ratingService
	bot         botService

	clock  func() time.Time
	newID  func() string
	config MatchConfig
}

func NewMatchCoordinator(logger *slog.Logger, deps Deps) *MatchCoordinator {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}

	if deps.Settings.BoardSize <= 0 {
		deps.Settings.BoardSize = 3
	}

	if deps.Settings.TurnTimeout <= 0 {
		deps.Settings.TurnTimeout = 30 * time.Second
	}

	return &MatchCoordinator{
		logger: logger.With("component", "match_coordinator"),

		matchRepo:   deps.Matches,
		playerRepo:  deps.Players,
		queueRepo:   deps.Queue,
		archiveRepo: deps.Archive,
		events:      deps.Events,
		ratings:     deps.Ratings,
		bot:         deps.Bot,

		clock:  deps.Clock,
		newID:  deps.NewID,
		config: deps.Settings,
	}
}

// Enqueue - pairs player with the earliest waiting player or puts it in the queue.
// The earlier waiting player plays X and moves first.
func (that *MatchCoordinator) Enqueue(ctx context.Context, player string) (*MatchmakingResult, error) {
	log := that.logger.With("method", "Enqueue", "player", player)

	if err := validatePlayer(player); err != nil {
		return nil, err
	}

	// a second round is needed only when the held seat belonged to a finished match
	for range 2 {
		pairing, err := that.queueRepo.PairOrWait(ctx, player, that.newID())
		if err != nil {
			return nil, fmt.Errorf("failed to enter matchmaking: %w", err)
		}

		switch pairing.Status {
		case repository.PairingWaiting:
			return &MatchmakingResult{Status: entity.StatusWaiting}, nil

		case repository.PairingPaired:
			match := entity.NewMatch(pairing.MatchID, pairing.Opponent, player, that.config.BoardSize, that.clock())
			if err = that.matchRepo.Create(ctx, match); err != nil {
				that.releaseSeats(ctx, match)
				return nil, fmt.Errorf("failed to create match: %w", err)
			}

			log.Info("players paired", "match_id", match.ID, "opponent", pairing.Opponent)

			event := &entity.Event{Type: entity.EventPaired, Match: match}
			that.notifyPlayer(ctx, pairing.Opponent, event)
			that.notify(ctx, event)

			return pairedResult(match, player), nil

		case repository.PairingSeated:
			match, err := that.matchRepo.GetByID(ctx, pairing.MatchID)
			if errors.Is(err, repository.ErrMatchNotFound) {
				// the pairing side is still creating the match
				return &MatchmakingResult{Status: entity.StatusWaiting}, nil
			}

			if err != nil {
				return nil, fmt.Errorf("failed to get seated match: %w", err)
			}

			if match.IsActive() {
				return pairedResult(match, player), nil
			}

			if err = that.playerRepo.Release(ctx, player, match.ID); err != nil {
				return nil, fmt.Errorf("failed to release finished seat: %w", err)
			}
		}
	}

	return nil, fmt.Errorf("%w: matchmaking for %s", apperror.ErrConflict, player)
}

// CancelMatchmaking - a no-op for players that are not waiting.
func (that *MatchCoordinator) CancelMatchmaking(ctx context.Context, player string) error {
	if err := validatePlayer(player); err != nil {
		return err
	}

	if err := that.queueRepo.Remove(ctx, player); err != nil {
		return fmt.Errorf("failed to cancel matchmaking: %w", err)
	}

	return nil
}

// StartAIMatch - the human plays X against the AI and moves first.
func (that *MatchCoordinator) StartAIMatch(ctx context.Context, player string, difficulty tictactoe.Difficulty) (*entity.Match, error) {
	if err := validatePlayer(player); err != nil {
		return nil, err
	}

	if !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: %q", tictactoe.ErrUnknownDifficulty, difficulty)
	}

	match := entity.NewBotMatch(that.newID(), player, difficulty, that.config.BoardSize, that.clock())
	if err := that.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create AI match: %w", err)
	}

	return match, nil
}

func (that *MatchCoordinator) GetMatchState(ctx context.Context, matchID string) (*entity.Match, error) {
	match, err := that.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

// SubmitMove - applies the move atomically; in AI matches the bot reply is part of the same write.
func (that *MatchCoordinator) SubmitMove(ctx context.Context, matchID, player string, row, col int) (*entity.Match, error) {
	now := that.clock()

	match, err := that.matchRepo.Update(ctx, matchID, func(match *entity.Match) (bool, error) {
		if err := match.ApplyMove(player, row, col, now); err != nil {
			return false, err
		}

		if match.IsActive() && match.IsWithBot() {
			if err := that.bot.MakeTurn(match, now); err != nil {
				return false, err
			}
		}

		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit move: %w", err)
	}

	if match.IsComplete() {
		that.conclude(ctx, match)
		return match, nil
	}

	that.notify(ctx, &entity.Event{Type: entity.EventUpdated, Match: match})

	return match, nil
}

// CheckTimeout - the player to move loses once the turn limit has passed.
// Reports false when nothing changed.
func (that *MatchCoordinator) CheckTimeout(ctx context.Context, matchID, player string) (*entity.Match, bool, error) {
	return that.expire(ctx, matchID, func(match *entity.Match) error {
		if !match.IsParticipant(player) {
			return apperror.ErrNotParticipant
		}

		return nil
	})
}

// ReportResult - acknowledges a result reported by a participant. A complete match keeps
// its recorded result; an active one can only end by the reporter conceding to the opponent.
func (that *MatchCoordinator) ReportResult(ctx context.Context, matchID, player, winner string) (*entity.Match, error) {
	log := that.logger.With("method", "ReportResult", "match_id", matchID)
	now := that.clock()

	concluded := false
	match, err := that.matchRepo.Update(ctx, matchID, func(match *entity.Match) (bool, error) {
		concluded = false

		if !match.IsParticipant(player) {
			return false, apperror.ErrNotParticipant
		}

		if match.IsActive() && winner != match.Opponent(player) {
			return false, ErrMatchStillActive
		}

		changed, err := match.Conclude(winner, now)
		concluded = changed

		return changed, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to report result: %w", err)
	}

	if concluded {
		that.conclude(ctx, match)
		return match, nil
	}

	if match.Winner != winner {
		log.Warn("reported winner differs from recorded result", "reported", winner, "recorded", match.Winner)
	}

	// completion side effects are idempotent; repeat them in case the first run failed
	if err = that.settle(ctx, match); err != nil {
		log.Error("failed to settle match", "error", err)
	}

	return match, nil
}

// PlayAIMove - stateless move suggestion for client-side AI games.
func (that *MatchCoordinator) PlayAIMove(
	board tictactoe.Board, mark tictactoe.Mark, difficulty tictactoe.Difficulty,
) (tictactoe.Cell, bool, error) {
	return that.bot.ChooseMove(board, mark, difficulty)
}

func (that *MatchCoordinator) RecordAIMatchResult(
	ctx context.Context, player string, outcome entity.Outcome, difficulty tictactoe.Difficulty,
) (*entity.Rating, error) {
	if err := validatePlayer(player); err != nil {
		return nil, err
	}

	rating, err := that.ratings.RecordAIMatch(ctx, player, outcome, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to record AI match result: %w", err)
	}

	return rating, nil
}

// MatchHistory - the player's archived matches, newest first.
func (that *MatchCoordinator) MatchHistory(ctx context.Context, player string, limit int) ([]*entity.Match, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistorySize
	case limit > maxHistorySize:
		limit = maxHistorySize
	}

	matches, err := that.archiveRepo.ListByPlayer(ctx, player, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get match history: %w", err)
	}

	return matches, nil
}

// ActiveMatchIDs - matches that still need completion handling.
func (that *MatchCoordinator) ActiveMatchIDs(ctx context.Context) ([]string, error) {
	ids, err := that.matchRepo.ActiveIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active matches: %w", err)
	}

	return ids, nil
}

// Sweep - resolves a timed out match, or finishes completion handling of a complete one.
func (that *MatchCoordinator) Sweep(ctx context.Context, matchID string) error {
	match, err := that.matchRepo.GetByID(ctx, matchID)
	if errors.Is(err, repository.ErrMatchNotFound) {
		return that.matchRepo.Settle(ctx, matchID)
	}

	if err != nil {
		return fmt.Errorf("failed to get match: %w", err)
	}

	if match.IsComplete() {
		return that.settle(ctx, match)
	}

	if !match.TimedOut(that.clock(), that.config.TurnTimeout) {
		return nil
	}

	_, _, err = that.expire(ctx, matchID, nil)

	return err
}

func (that *MatchCoordinator) expire(ctx context.Context, matchID string, check func(*entity.Match) error) (*entity.Match, bool, error) {
	now := that.clock()

	timedOut := false
	match, err := that.matchRepo.Update(ctx, matchID, func(match *entity.Match) (bool, error) {
		timedOut = false

		if check != nil {
			if err := check(match); err != nil {
				return false, err
			}
		}

		timedOut = match.Timeout(now, that.config.TurnTimeout)

		return timedOut, nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to check timeout: %w", err)
	}

	if timedOut {
		that.logger.Info("match timed out", "match_id", match.ID, "winner", match.Winner)
		that.conclude(ctx, match)
	}

	return match, timedOut, nil
}

// conclude - runs once per active to complete transition observed by this process.
func (that *MatchCoordinator) conclude(ctx context.Context, match *entity.Match) {
	log := that.logger.With("method", "conclude", "match_id", match.ID)

	// the sweeper retries matches that stay in the active index
	if err := that.settle(ctx, match); err != nil {
		log.Error("failed to settle match", "error", err)
	}

	that.notify(ctx, &entity.Event{Type: entity.EventCompleted, Match: match})
}

// settle - rating, seat release, archive and retention of a complete match. Every step is idempotent.
func (that *MatchCoordinator) settle(ctx context.Context, match *entity.Match) error {
	rated, err := that.ratings.RecordMatch(ctx, match)
	if err != nil {
		return fmt.Errorf("failed to rate match: %w", err)
	}

	if rated {
		that.logger.Info("match rated", "match_id", match.ID, "winner", match.Winner)
	}

	that.releaseSeats(ctx, match)

	if err = that.archiveRepo.Save(ctx, match); err != nil {
		return fmt.Errorf("failed to archive match: %w", err)
	}

	if err = that.matchRepo.Settle(ctx, match.ID); err != nil {
		return fmt.Errorf("failed to settle match: %w", err)
	}

	return nil
}

func (that *MatchCoordinator) releaseSeats(ctx context.Context, match *entity.Match) {
	log := that.logger.With("method", "releaseSeats", "match_id", match.ID)

	for _, player := range []string{match.PlayerX, match.PlayerO} {
		if entity.IsBot(player) {
			continue
		}

		if err := that.playerRepo.Release(ctx, player, match.ID); err != nil {
			log.Error("failed to release player seat", "player", player, "error", err)
		}
	}
}

func (that *MatchCoordinator) notify(ctx context.Context, event *entity.Event) {
	if err := that.events.PublishMatch(ctx, event); err != nil {
		that.logger.Error("failed to publish match event", "match_id", event.Match.ID, "error", err)
	}
}

func (that *MatchCoordinator) notifyPlayer(ctx context.Context, player string, event *entity.Event) {
	if err := that.events.PublishPlayer(ctx, player, event); err != nil {
		that.logger.Error("failed to publish player event", "player", player, "error", err)
	}
}

func pairedResult(match *entity.Match, player string) *MatchmakingResult {
	return &MatchmakingResult{
		Status:      StatusPaired,
		MatchID:     match.ID,
		Opponent:    match.Opponent(player),
		FirstPlayer: match.PlayerX,
		Mark:        match.MarkOf(player),
		Match:       match,
	}
}

func validatePlayer(player string) error {
	if entity.IsReserved(player) {
		return fmt.Errorf("%w: invalid player id %q", apperror.ErrValidation, player)
	}

	return nil
}
