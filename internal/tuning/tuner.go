package tuning

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fpl-planner/internal/optimize"
	"github.com/riskibarqy/fpl-planner/internal/platform/logging"
	"github.com/riskibarqy/fpl-planner/internal/simulation"
)

// Tuner searches the parameter space by random sampling: every trial replays
// the configured seasons under one sampled parameter set and scores it by the
// mean net season points.
type Tuner struct {
	replayer *simulation.Replayer
	seasons  []simulation.Config
	trials   TrialRepository
	log      *logging.Logger
	rng      *rand.Rand
	workers  int
}

// NewTuner builds a tuner over the given season configurations; the Params
// field of each configuration is overwritten per trial. Seed makes the
// sampling sequence reproducible.
func NewTuner(
	replayer *simulation.Replayer,
	seasons []simulation.Config,
	trials TrialRepository,
	log *logging.Logger,
	seed int64,
	workers int,
) *Tuner {
	if log == nil {
		log = logging.Default()
	}
	if workers < 1 {
		workers = 1
	}

	return &Tuner{
		replayer: replayer,
		seasons:  seasons,
		trials:   trials,
		log:      log,
		rng:      rand.New(rand.NewSource(seed)),
		workers:  workers,
	}
}

// Run executes the given number of trials and returns the best one.
func (t *Tuner) Run(ctx context.Context, trials int) (Trial, error) {
	if trials < 1 || len(t.seasons) == 0 {
		return Trial{}, fmt.Errorf("%w: %d trials over %d seasons", optimize.ErrInvalidInput, trials, len(t.seasons))
	}

	var best Trial
	for i := 0; i < trials; i++ {
		if err := ctx.Err(); err != nil {
			return Trial{}, err
		}

		params := t.sample()
		score, err := t.evaluate(ctx, params)
		if err != nil {
			return Trial{}, fmt.Errorf("trial %d: %w", i, err)
		}

		trial := Trial{
			ID:        uuid.NewString(),
			CreatedAt: time.Now().UTC(),
			Params:    params,
			Score:     score,
		}
		if t.trials != nil {
			if err := t.trials.Save(ctx, trial); err != nil {
				return Trial{}, fmt.Errorf("save trial %s: %w", trial.ID, err)
			}
		}

		if i == 0 || trial.Score > best.Score {
			best = trial
			t.log.Info("new best trial",
				"trial", i,
				"id", trial.ID,
				"score", trial.Score,
			)
		}
	}

	return best, nil
}

// evaluate replays every configured season under params on a worker pool and
// averages the net points.
func (t *Tuner) evaluate(ctx context.Context, params optimize.Parameters) (float64, error) {
	pool, err := ants.NewPool(t.workers)
	if err != nil {
		return 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	type outcome struct {
		points float64
		err    error
	}
	results := make(chan outcome, len(t.seasons))

	var workers sync.WaitGroup
	for _, season := range t.seasons {
		cfg := season
		cfg.Params = params

		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			report, err := t.replayer.Replay(ctx, cfg)
			if err != nil {
				results <- outcome{err: fmt.Errorf("replay season %s: %w", cfg.Season, err)}
				return
			}
			results <- outcome{points: report.TotalPoints}
		}); err != nil {
			workers.Done()
			return 0, fmt.Errorf("submit season to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	total := 0.0
	for r := range results {
		if r.err != nil {
			return 0, r.err
		}
		total += r.points
	}

	return total / float64(len(t.seasons)), nil
}

// sample draws one parameter set from the search space.
func (t *Tuner) sample() optimize.Parameters {
	uniform := func(lo, hi float64) float64 {
		return lo + t.rng.Float64()*(hi-lo)
	}

	return optimize.Parameters{
		SquadEvaluationRoundFactor: uniform(0.1, 1.0),
		StartingXIMultiplier:       1.0,
		CaptainMultiplier:          uniform(1.0, 2.5),
		ViceCaptainMultiplier:      uniform(1.0, 1.5),
		ReserveGKPMultiplier:       uniform(0, 0.5),
		ReserveOutMultipliers: [3]float64{
			uniform(0, 0.5),
			uniform(0, 0.5),
			uniform(0, 0.5),
		},
		FutureGameweeksEvaluated: 1 + t.rng.Intn(5),
		BudgetImportance:         uniform(0, 0.1),
		TransferAversionFactor:   uniform(0.5, 3.0),
	}
}
