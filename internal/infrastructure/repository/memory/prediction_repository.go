package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/fpl-planner/internal/domain/prediction"
)

// PredictionRepository serves point predictions from memory. The same full
// matrix is returned for every gameweek of a stored season, which matches
// how fixture predictions are laid out for tests and demos.
type PredictionRepository struct {
	mu       sync.RWMutex
	bySeason map[string]prediction.Matrix
}

var _ prediction.Repository = (*PredictionRepository)(nil)

func NewPredictionRepository() *PredictionRepository {
	return &PredictionRepository{bySeason: make(map[string]prediction.Matrix)}
}

func (r *PredictionRepository) Put(season string, matrix prediction.Matrix) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bySeason[season] = cloneMatrix(matrix)
}

func (r *PredictionRepository) ListByGameweek(_ context.Context, season string, _ int) (prediction.Matrix, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matrix, ok := r.bySeason[season]
	if !ok {
		return nil, fmt.Errorf("no predictions for season %s", season)
	}

	return cloneMatrix(matrix), nil
}

func cloneMatrix(m prediction.Matrix) prediction.Matrix {
	out := make(prediction.Matrix, len(m))
	for gameweek, row := range m {
		cloned := make(map[int]float64, len(row))
		for id, points := range row {
			cloned[id] = points
		}
		out[gameweek] = cloned
	}

	return out
}
