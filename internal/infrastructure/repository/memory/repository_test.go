package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/fpl-planner/internal/domain/player"
	"github.com/riskibarqy/fpl-planner/internal/domain/squad"
)

func TestPlayerRepository(t *testing.T) {
	repo := NewSeededPlayerRepository()

	players, err := repo.ListByGameweek(context.Background(), SeedSeason, 1)
	if err != nil {
		t.Fatalf("ListByGameweek: %v", err)
	}
	if len(players) != 30 {
		t.Fatalf("universe size = %d, want 30", len(players))
	}

	if _, err := repo.ListByGameweek(context.Background(), SeedSeason, 99); err == nil {
		t.Fatal("missing gameweek served")
	}
	if _, err := repo.ListByGameweek(context.Background(), "1999-00", 1); err == nil {
		t.Fatal("missing season served")
	}
}

func TestPlayerRepositoryCopiesOnRead(t *testing.T) {
	repo := NewSeededPlayerRepository()

	first, err := repo.ListByGameweek(context.Background(), SeedSeason, 1)
	if err != nil {
		t.Fatalf("ListByGameweek: %v", err)
	}
	first[0].NowCost = 9999

	second, err := repo.ListByGameweek(context.Background(), SeedSeason, 1)
	if err != nil {
		t.Fatalf("ListByGameweek: %v", err)
	}
	if second[0].NowCost == 9999 {
		t.Fatal("stored snapshot mutated through a read")
	}
}

func TestPredictionRepository(t *testing.T) {
	repo := NewSeededPredictionRepository()

	matrix, err := repo.ListByGameweek(context.Background(), SeedSeason, 1)
	if err != nil {
		t.Fatalf("ListByGameweek: %v", err)
	}
	if matrix.At(13, 1) != 10 {
		t.Fatalf("At(13, 1) = %v, want 10", matrix.At(13, 1))
	}

	matrix.Set(13, 1, 0)
	again, err := repo.ListByGameweek(context.Background(), SeedSeason, 1)
	if err != nil {
		t.Fatalf("ListByGameweek: %v", err)
	}
	if again.At(13, 1) != 10 {
		t.Fatal("stored matrix mutated through a read")
	}
}

func TestSeedIsLegal(t *testing.T) {
	universe, err := player.NewUniverse(SeedPlayers())
	if err != nil {
		t.Fatalf("seed universe invalid: %v", err)
	}
	if err := squad.Validate(SeedSquad(), universe); err != nil {
		t.Fatalf("seed squad illegal: %v", err)
	}

	points, minutes := SeedResults()
	for g := 1; g <= SeedGameweeks; g++ {
		if len(points[g]) != 30 || len(minutes[g]) != 30 {
			t.Fatalf("gameweek %d results incomplete", g)
		}
	}
}
