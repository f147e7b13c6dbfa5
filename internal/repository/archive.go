package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-pro/internal/entity"
	"github.com/rocketscienceinc/tictactoe-pro/internal/tictactoe"
)

type ArchiveRepository interface {
	Save(ctx context.Context, match *entity.Match) error
	ListByPlayer(ctx context.Context, player string, limit int) ([]*entity.Match, error)
}

type archiveRepository struct {
	conn *sql.DB
}

func NewArchiveRepository(conn *sql.DB) ArchiveRepository {
	return &archiveRepository{
		conn: conn,
	}
}

// Save - stores a complete match; saving the same match twice keeps the first copy.
func (that *archiveRepository) Save(ctx context.Context, match *entity.Match) error {
	moves, err := json.Marshal(match.Moves)
	if err != nil {
		return fmt.Errorf("failed to marshal moves: %w", err)
	}

	query := `INSERT OR IGNORE INTO matches
		(id, type, size, player_x, player_o, difficulty, winner, end_reason, moves, created_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = that.conn.ExecContext(ctx, query,
		match.ID, match.Type, match.Size, match.PlayerX, match.PlayerO, string(match.Difficulty),
		match.Winner, match.EndReason, string(moves),
		match.CreatedAt.UnixMilli(), match.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to archive match: %w", err)
	}

	return nil
}

// ListByPlayer - most recently finished first.
func (that *archiveRepository) ListByPlayer(ctx context.Context, player string, limit int) ([]*entity.Match, error) {
	query := `SELECT id, type, size, player_x, player_o, difficulty, winner, end_reason, moves, created_at, finished_at
		FROM matches
		WHERE player_x = ? OR player_o = ?
		ORDER BY finished_at DESC, id
		LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, player, player, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive: %w", err)
	}
	defer rows.Close()

	matches := make([]*entity.Match, 0)
	for rows.Next() {
		var (
			match                 entity.Match
			difficulty, moves     string
			createdAt, finishedAt int64
		)

		err = rows.Scan(
			&match.ID, &match.Type, &match.Size, &match.PlayerX, &match.PlayerO, &difficulty,
			&match.Winner, &match.EndReason, &moves, &createdAt, &finishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan archived match: %w", err)
		}

		if err = json.Unmarshal([]byte(moves), &match.Moves); err != nil {
			return nil, fmt.Errorf("failed to unmarshal moves: %w", err)
		}

		match.Difficulty = tictactoe.Difficulty(difficulty)
		match.Status = entity.StatusComplete
		match.CreatedAt = time.UnixMilli(createdAt).UTC()
		match.FinishedAt = time.UnixMilli(finishedAt).UTC()
		match.LastMoveAt = match.FinishedAt
		if n := len(match.Moves); n > 0 {
			match.LastMoveAt = match.Moves[n-1].At
		}

		matches = append(matches, &match)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}

	return matches, nil
}
