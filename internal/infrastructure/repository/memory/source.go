package memory

import (
	"context"

	"github.com/riskibarqy/fpl-planner/internal/domain/player"
	"github.com/riskibarqy/fpl-planner/internal/domain/prediction"
)

// SimulationSource bundles the seeded repositories and results into one
// replay data source.
type SimulationSource struct {
	players     *PlayerRepository
	predictions *PredictionRepository
	points      prediction.Matrix
	minutes     prediction.Matrix
}

// NewSeededSource returns a source covering the seeded season.
func NewSeededSource() *SimulationSource {
	points, minutes := SeedResults()
	return &SimulationSource{
		players:     NewSeededPlayerRepository(),
		predictions: NewSeededPredictionRepository(),
		points:      points,
		minutes:     minutes,
	}
}

func (s *SimulationSource) Players(ctx context.Context, season string, gameweek int) ([]player.Player, error) {
	return s.players.ListByGameweek(ctx, season, gameweek)
}

func (s *SimulationSource) Predictions(ctx context.Context, season string, gameweek int) (prediction.Matrix, error) {
	return s.predictions.ListByGameweek(ctx, season, gameweek)
}

func (s *SimulationSource) Results(_ context.Context, _ string) (prediction.Matrix, prediction.Matrix, error) {
	return cloneMatrix(s.points), cloneMatrix(s.minutes), nil
}
