package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const inMemoryPath = ":memory:"

type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	// every connection to :memory: is a separate database
	if path == inMemoryPath {
		conn.SetMaxOpenConns(1)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS matches (
		id          TEXT PRIMARY KEY,
		type        TEXT NOT NULL,
		size        INTEGER NOT NULL,
		player_x    TEXT NOT NULL,
		player_o    TEXT NOT NULL,
		difficulty  TEXT NOT NULL DEFAULT '',
		winner      TEXT NOT NULL,
		end_reason  TEXT NOT NULL,
		moves       TEXT NOT NULL,
		created_at  INTEGER NOT NULL,
		finished_at INTEGER NOT NULL
	)`

	if _, err := that.Connection.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS matches_player_x ON matches (player_x, finished_at)`,
		`CREATE INDEX IF NOT EXISTS matches_player_o ON matches (player_o, finished_at)`,
	}

	for _, query = range indexes {
		if _, err := that.Connection.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("can't create index: %w", err)
		}
	}

	return nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
