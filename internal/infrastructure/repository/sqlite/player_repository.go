package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fpl-planner/internal/domain/player"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var _ player.Repository = (*PlayerRepository)(nil)

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Save replaces the stored universe of one gameweek.
func (r *PlayerRepository) Save(ctx context.Context, season string, gameweek int, players []player.Player) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save players tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM players WHERE season = ? AND gameweek = ?`, season, gameweek); err != nil {
		return fmt.Errorf("clear players for %s gameweek %d: %w", season, gameweek, err)
	}

	for _, p := range players {
		if _, err := tx.NamedExecContext(ctx, `
INSERT INTO players (season, gameweek, id, team, name, position, now_cost)
VALUES (:season, :gameweek, :id, :team, :name, :position, :now_cost)`, playerTableModel{
			Season:   season,
			Gameweek: gameweek,
			ID:       p.ID,
			Team:     p.Team,
			Name:     p.Name,
			Position: string(p.Position),
			NowCost:  p.NowCost,
		}); err != nil {
			return fmt.Errorf("insert player %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save players tx: %w", err)
	}

	return nil
}

func (r *PlayerRepository) ListByGameweek(ctx context.Context, season string, gameweek int) ([]player.Player, error) {
	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, `
SELECT season, gameweek, id, team, name, position, now_cost
FROM players
WHERE season = ? AND gameweek = ?
ORDER BY id`, season, gameweek); err != nil {
		return nil, fmt.Errorf("select players for %s gameweek %d: %w", season, gameweek, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no player snapshot for season %s gameweek %d", season, gameweek)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:       row.ID,
			Team:     row.Team,
			Name:     row.Name,
			Position: player.Position(row.Position),
			NowCost:  row.NowCost,
		})
	}

	return out, nil
}
