package simulation

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fpl-planner/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fpl-planner/internal/optimize"
	"github.com/riskibarqy/fpl-planner/internal/platform/logging"
)

func seededConfig() Config {
	return Config{
		Season:        memory.SeedSeason,
		FirstGameweek: 1,
		LastGameweek:  memory.SeedGameweeks,
		InitialSquad:  memory.SeedSquad(),
		InitialBudget: 0,
		Params:        optimize.DefaultParameters(),
	}
}

func TestReplay(t *testing.T) {
	replayer := NewReplayer(optimize.NewGreedy(logging.NewNop()), memory.NewSeededSource(), logging.NewNop())

	report, err := replayer.Replay(context.Background(), seededConfig())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}

	if report.Season != memory.SeedSeason {
		t.Fatalf("season = %s", report.Season)
	}
	if len(report.Rounds) != memory.SeedGameweeks {
		t.Fatalf("rounds = %d, want %d", len(report.Rounds), memory.SeedGameweeks)
	}
	if report.TotalPoints <= 0 {
		t.Fatalf("total points = %v, want positive", report.TotalPoints)
	}

	for _, round := range report.Rounds {
		if round.Budget < 0 {
			t.Fatalf("gameweek %d went into debt: %d", round.Gameweek, round.Budget)
		}
		if round.PenaltyPoints < 0 {
			t.Fatalf("gameweek %d negative penalty: %d", round.Gameweek, round.PenaltyPoints)
		}
	}
}

func TestReplayDeterministic(t *testing.T) {
	first, err := NewReplayer(optimize.NewGreedy(logging.NewNop()), memory.NewSeededSource(), logging.NewNop()).
		Replay(context.Background(), seededConfig())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	second, err := NewReplayer(optimize.NewGreedy(logging.NewNop()), memory.NewSeededSource(), logging.NewNop()).
		Replay(context.Background(), seededConfig())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}

	if first.TotalPoints != second.TotalPoints {
		t.Fatalf("replays diverged: %v vs %v", first.TotalPoints, second.TotalPoints)
	}
}

func TestReplaySkipsBlackouts(t *testing.T) {
	replayer := NewReplayer(optimize.NewGreedy(logging.NewNop()), memory.NewSeededSource(), logging.NewNop())

	cfg := seededConfig()
	cfg.BlackoutGameweeks = []int{2}

	report, err := replayer.Replay(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}

	if len(report.Rounds) != memory.SeedGameweeks-1 {
		t.Fatalf("rounds = %d, want %d", len(report.Rounds), memory.SeedGameweeks-1)
	}
	for _, round := range report.Rounds {
		if round.Gameweek == 2 {
			t.Fatal("blacked-out round was played")
		}
	}
}

func TestReplayRejectsBadConfig(t *testing.T) {
	replayer := NewReplayer(optimize.NewGreedy(logging.NewNop()), memory.NewSeededSource(), logging.NewNop())

	cfg := seededConfig()
	cfg.LastGameweek = 0

	if _, err := replayer.Replay(context.Background(), cfg); !errors.Is(err, optimize.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
