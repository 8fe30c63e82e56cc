package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fpl-planner/internal/optimize"
	"github.com/riskibarqy/fpl-planner/internal/tuning"
)

var ErrNoTrials = errors.New("no trials recorded")

type TrialRepository struct {
	db *sqlx.DB
}

func NewTrialRepository(db *sqlx.DB) *TrialRepository {
	return &TrialRepository{db: db}
}

func (r *TrialRepository) Save(ctx context.Context, trial tuning.Trial) error {
	params, err := sonic.MarshalString(trial.Params)
	if err != nil {
		return fmt.Errorf("marshal trial %s params: %w", trial.ID, err)
	}

	if _, err := r.db.NamedExecContext(ctx, `
INSERT INTO trials (id, created_at, params, score)
VALUES (:id, :created_at, :params, :score)`, trialTableModel{
		ID:        trial.ID,
		CreatedAt: trial.CreatedAt.UTC().Format(time.RFC3339Nano),
		Params:    params,
		Score:     trial.Score,
	}); err != nil {
		return fmt.Errorf("insert trial %s: %w", trial.ID, err)
	}

	return nil
}

func (r *TrialRepository) Best(ctx context.Context) (tuning.Trial, error) {
	var row trialTableModel
	err := r.db.GetContext(ctx, &row, `
SELECT id, created_at, params, score
FROM trials
ORDER BY score DESC, created_at ASC
LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return tuning.Trial{}, ErrNoTrials
	}
	if err != nil {
		return tuning.Trial{}, fmt.Errorf("select best trial: %w", err)
	}

	return decodeTrial(row)
}

// List returns every trial, best first.
func (r *TrialRepository) List(ctx context.Context) ([]tuning.Trial, error) {
	var rows []trialTableModel
	if err := r.db.SelectContext(ctx, &rows, `
SELECT id, created_at, params, score
FROM trials
ORDER BY score DESC, created_at ASC`); err != nil {
		return nil, fmt.Errorf("select trials: %w", err)
	}

	out := make([]tuning.Trial, 0, len(rows))
	for _, row := range rows {
		trial, err := decodeTrial(row)
		if err != nil {
			return nil, err
		}
		out = append(out, trial)
	}

	return out, nil
}

func decodeTrial(row trialTableModel) (tuning.Trial, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, row.CreatedAt)
	if err != nil {
		return tuning.Trial{}, fmt.Errorf("parse trial %s timestamp: %w", row.ID, err)
	}

	var params optimize.Parameters
	if err := sonic.UnmarshalString(row.Params, &params); err != nil {
		return tuning.Trial{}, fmt.Errorf("unmarshal trial %s params: %w", row.ID, err)
	}

	return tuning.Trial{
		ID:        row.ID,
		CreatedAt: createdAt,
		Params:    params,
		Score:     row.Score,
	}, nil
}
