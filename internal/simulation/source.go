package simulation

import (
	"context"

	"github.com/riskibarqy/fpl-planner/internal/domain/plan"
	"github.com/riskibarqy/fpl-planner/internal/domain/player"
	"github.com/riskibarqy/fpl-planner/internal/domain/prediction"
	"github.com/riskibarqy/fpl-planner/internal/optimize"
)

// Source supplies everything a season replay consumes: the per-round player
// market, the predictions available before each round, and the realized
// points and minutes to score against.
type Source interface {
	Players(ctx context.Context, season string, gameweek int) ([]player.Player, error)
	Predictions(ctx context.Context, season string, gameweek int) (prediction.Matrix, error)
	Results(ctx context.Context, season string) (points, minutes prediction.Matrix, err error)
}

// Engine is the planning engine under replay; both engines satisfy it.
type Engine interface {
	Optimize(ctx context.Context, req optimize.Request) (plan.Plan, error)
}
