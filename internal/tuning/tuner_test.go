package tuning

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/riskibarqy/fpl-planner/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fpl-planner/internal/optimize"
	"github.com/riskibarqy/fpl-planner/internal/platform/logging"
	"github.com/riskibarqy/fpl-planner/internal/simulation"
)

type recordingTrialRepository struct {
	mu     sync.Mutex
	trials []Trial
}

func (r *recordingTrialRepository) Save(_ context.Context, trial Trial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trials = append(r.trials, trial)
	return nil
}

func (r *recordingTrialRepository) Best(_ context.Context) (Trial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.trials) == 0 {
		return Trial{}, errors.New("no trials")
	}
	best := r.trials[0]
	for _, trial := range r.trials[1:] {
		if trial.Score > best.Score {
			best = trial
		}
	}
	return best, nil
}

func seededSeasons() []simulation.Config {
	return []simulation.Config{{
		Season:        memory.SeedSeason,
		FirstGameweek: 1,
		LastGameweek:  memory.SeedGameweeks,
		InitialSquad:  memory.SeedSquad(),
		InitialBudget: 0,
	}}
}

func newTestTuner(repo TrialRepository, seed int64) *Tuner {
	replayer := simulation.NewReplayer(
		optimize.NewGreedy(logging.NewNop()),
		memory.NewSeededSource(),
		logging.NewNop(),
	)
	return NewTuner(replayer, seededSeasons(), repo, logging.NewNop(), seed, 2)
}

func TestTunerRun(t *testing.T) {
	repo := &recordingTrialRepository{}
	tuner := newTestTuner(repo, 42)

	best, err := tuner.Run(context.Background(), 3)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(repo.trials) != 3 {
		t.Fatalf("saved trials = %d, want 3", len(repo.trials))
	}
	if best.ID == "" {
		t.Fatal("best trial has no id")
	}

	stored, err := repo.Best(context.Background())
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if stored.Score != best.Score {
		t.Fatalf("best score mismatch: run=%v stored=%v", best.Score, stored.Score)
	}

	for _, trial := range repo.trials {
		p := trial.Params
		if p.FutureGameweeksEvaluated < 1 || p.FutureGameweeksEvaluated > 5 {
			t.Fatalf("horizon out of range: %d", p.FutureGameweeksEvaluated)
		}
		if p.TransferAversionFactor < 0.5 || p.TransferAversionFactor > 3.0 {
			t.Fatalf("aversion out of range: %v", p.TransferAversionFactor)
		}
		if p.StartingXIMultiplier != 1.0 {
			t.Fatalf("starting eleven multiplier drifted: %v", p.StartingXIMultiplier)
		}
	}
}

func TestTunerDeterministicSampling(t *testing.T) {
	first := newTestTuner(&recordingTrialRepository{}, 7)
	second := newTestTuner(&recordingTrialRepository{}, 7)

	a, err := first.Run(context.Background(), 2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := second.Run(context.Background(), 2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if a.Params != b.Params {
		t.Fatalf("same seed sampled different parameters: %+v vs %+v", a.Params, b.Params)
	}
	if a.Score != b.Score {
		t.Fatalf("same seed scored differently: %v vs %v", a.Score, b.Score)
	}
}

func TestTunerRejectsEmptyRun(t *testing.T) {
	tuner := newTestTuner(&recordingTrialRepository{}, 1)

	if _, err := tuner.Run(context.Background(), 0); !errors.Is(err, optimize.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
