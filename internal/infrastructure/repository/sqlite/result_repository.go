package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fpl-planner/internal/domain/prediction"
)

// ResultRepository stores realized points and minutes per round, the ground
// truth that season replays score against.
type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) Save(ctx context.Context, season string, points, minutes prediction.Matrix) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save results tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM results WHERE season = ?`, season); err != nil {
		return fmt.Errorf("clear results for %s: %w", season, err)
	}

	for gameweek, row := range points {
		for playerID, pts := range row {
			if _, err := tx.NamedExecContext(ctx, `
INSERT INTO results (season, gameweek, player_id, points, minutes)
VALUES (:season, :gameweek, :player_id, :points, :minutes)`, resultTableModel{
				Season:   season,
				Gameweek: gameweek,
				PlayerID: playerID,
				Points:   pts,
				Minutes:  minutes.At(playerID, gameweek),
			}); err != nil {
				return fmt.Errorf("insert result %d/%d: %w", gameweek, playerID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save results tx: %w", err)
	}

	return nil
}

func (r *ResultRepository) List(ctx context.Context, season string) (points, minutes prediction.Matrix, err error) {
	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, `
SELECT season, gameweek, player_id, points, minutes
FROM results
WHERE season = ?
ORDER BY gameweek, player_id`, season); err != nil {
		return nil, nil, fmt.Errorf("select results for %s: %w", season, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("no results for season %s", season)
	}

	points = make(prediction.Matrix)
	minutes = make(prediction.Matrix)
	for _, row := range rows {
		points.Set(row.PlayerID, row.Gameweek, row.Points)
		minutes.Set(row.PlayerID, row.Gameweek, row.Minutes)
	}

	return points, minutes, nil
}
