package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fpl-planner/internal/domain/prediction"
)

type PredictionRepository struct {
	db *sqlx.DB
}

var _ prediction.Repository = (*PredictionRepository)(nil)

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// Save stores or overwrites the predictions of one season.
func (r *PredictionRepository) Save(ctx context.Context, season string, matrix prediction.Matrix) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save predictions tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM predictions WHERE season = ?`, season); err != nil {
		return fmt.Errorf("clear predictions for %s: %w", season, err)
	}

	for gameweek, row := range matrix {
		for playerID, points := range row {
			if _, err := tx.NamedExecContext(ctx, `
INSERT INTO predictions (season, gameweek, player_id, points)
VALUES (:season, :gameweek, :player_id, :points)`, predictionTableModel{
				Season:   season,
				Gameweek: gameweek,
				PlayerID: playerID,
				Points:   points,
			}); err != nil {
				return fmt.Errorf("insert prediction %d/%d: %w", gameweek, playerID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save predictions tx: %w", err)
	}

	return nil
}

// ListByGameweek returns the full prediction matrix of the season from the
// given gameweek on.
func (r *PredictionRepository) ListByGameweek(ctx context.Context, season string, gameweek int) (prediction.Matrix, error) {
	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, `
SELECT season, gameweek, player_id, points
FROM predictions
WHERE season = ? AND gameweek >= ?
ORDER BY gameweek, player_id`, season, gameweek); err != nil {
		return nil, fmt.Errorf("select predictions for %s gameweek %d: %w", season, gameweek, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no predictions for season %s gameweek %d", season, gameweek)
	}

	matrix := make(prediction.Matrix)
	for _, row := range rows {
		matrix.Set(row.PlayerID, row.Gameweek, row.Points)
	}

	return matrix, nil
}
