package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fpl-planner/internal/domain/player"
	"github.com/riskibarqy/fpl-planner/internal/domain/prediction"
)

// Source exposes the stored rosters, predictions, and results as one replay
// data source.
type Source struct {
	players     *PlayerRepository
	predictions *PredictionRepository
	results     *ResultRepository
}

func NewSource(db *sqlx.DB) *Source {
	return &Source{
		players:     NewPlayerRepository(db),
		predictions: NewPredictionRepository(db),
		results:     NewResultRepository(db),
	}
}

func (s *Source) Players(ctx context.Context, season string, gameweek int) ([]player.Player, error) {
	return s.players.ListByGameweek(ctx, season, gameweek)
}

func (s *Source) Predictions(ctx context.Context, season string, gameweek int) (prediction.Matrix, error) {
	return s.predictions.ListByGameweek(ctx, season, gameweek)
}

func (s *Source) Results(ctx context.Context, season string) (prediction.Matrix, prediction.Matrix, error) {
	return s.results.List(ctx, season)
}
