package tuning

import (
	"context"
	"time"

	"github.com/riskibarqy/fpl-planner/internal/optimize"
)

// Trial is one evaluated parameter sample: the parameters tried and the mean
// season score they achieved.
type Trial struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"created_at"`
	Params    optimize.Parameters `json:"params"`
	Score     float64             `json:"score"`
}

// TrialRepository persists finished trials so a tuning session can be
// resumed or audited later.
type TrialRepository interface {
	Save(ctx context.Context, trial Trial) error
	Best(ctx context.Context) (Trial, error)
}
