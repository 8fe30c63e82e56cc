// Package sqlite persists player snapshots, predictions, realized results,
// and tuning trials in a single-file database, so planning runs and tuning
// sessions can be replayed without refetching anything.
package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS players (
	season    TEXT    NOT NULL,
	gameweek  INTEGER NOT NULL,
	id        INTEGER NOT NULL,
	team      INTEGER NOT NULL,
	name      TEXT    NOT NULL,
	position  TEXT    NOT NULL,
	now_cost  INTEGER NOT NULL,
	PRIMARY KEY (season, gameweek, id)
);

CREATE TABLE IF NOT EXISTS predictions (
	season    TEXT    NOT NULL,
	gameweek  INTEGER NOT NULL,
	player_id INTEGER NOT NULL,
	points    REAL    NOT NULL,
	PRIMARY KEY (season, gameweek, player_id)
);

CREATE TABLE IF NOT EXISTS results (
	season    TEXT    NOT NULL,
	gameweek  INTEGER NOT NULL,
	player_id INTEGER NOT NULL,
	points    REAL    NOT NULL,
	minutes   REAL    NOT NULL,
	PRIMARY KEY (season, gameweek, player_id)
);

CREATE TABLE IF NOT EXISTS trials (
	id         TEXT NOT NULL PRIMARY KEY,
	created_at TEXT NOT NULL,
	params     TEXT NOT NULL,
	score      REAL NOT NULL
);
`

// Open connects to the database file at path, creating it when absent.
// Pass ":memory:" for an ephemeral database.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %s: %w", path, err)
	}
	// The driver serializes writes; a single connection avoids lock churn.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode = WAL; PRAGMA foreign_keys = ON;`); err != nil {
		return nil, fmt.Errorf("apply sqlite pragmas: %w", err)
	}

	return db, nil
}

// Migrate creates every table the repositories expect.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate sqlite schema: %w", err)
	}

	return nil
}
