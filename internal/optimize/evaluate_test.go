package optimize

import (
	"math"
	"testing"

	"github.com/riskibarqy/fpl-planner/internal/infrastructure/repository/memory"
)

func TestEvaluateSquad(t *testing.T) {
	universe := seededUniverse(t)
	predictions := memory.SeedPredictions()

	got, err := EvaluateSquad(memory.SeedSquad(), 0, universe.Positions(), []int{1}, predictions, 1, 1, richParameters())
	if err != nil {
		t.Fatalf("EvaluateSquad: %v", err)
	}
	if math.Abs(got-73.3) > 1e-9 {
		t.Fatalf("EvaluateSquad = %v, want 73.3", got)
	}
}

func TestEvaluateSquadTransferPenalty(t *testing.T) {
	universe := seededUniverse(t)
	predictions := memory.SeedPredictions()
	params := richParameters()

	within, err := EvaluateSquad(memory.SeedSquad(), 0, universe.Positions(), []int{1, 2}, predictions, 1, 1, params)
	if err != nil {
		t.Fatalf("EvaluateSquad: %v", err)
	}
	over, err := EvaluateSquad(memory.SeedSquad(), 0, universe.Positions(), []int{1, 2}, predictions, 1, 2, params)
	if err != nil {
		t.Fatalf("EvaluateSquad: %v", err)
	}

	// One transfer beyond the allowance costs exactly 4 points at aversion 1.
	if math.Abs((within-over)-4.0) > 1e-9 {
		t.Fatalf("penalty delta = %v, want 4", within-over)
	}
}

func TestEvaluateSquadBudgetImportance(t *testing.T) {
	universe := seededUniverse(t)
	predictions := memory.SeedPredictions()

	params := richParameters()
	params.BudgetImportance = 0.01

	broke, err := EvaluateSquad(memory.SeedSquad(), 0, universe.Positions(), []int{1}, predictions, 1, 0, params)
	if err != nil {
		t.Fatalf("EvaluateSquad: %v", err)
	}
	rich, err := EvaluateSquad(memory.SeedSquad(), 50, universe.Positions(), []int{1}, predictions, 1, 0, params)
	if err != nil {
		t.Fatalf("EvaluateSquad: %v", err)
	}

	if math.Abs((rich-broke)-0.5) > 1e-9 {
		t.Fatalf("budget delta = %v, want 0.5", rich-broke)
	}
}

func TestDecayWeights(t *testing.T) {
	weights := decayWeights(3, 0.5)

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if math.Abs(total-1.0) > 1e-9 {
		t.Fatalf("weights sum to %v, want 1", total)
	}
	// 1 : 0.5 : 0.25 normalized.
	if math.Abs(weights[0]-4.0/7.0) > 1e-9 || math.Abs(weights[1]-2.0/7.0) > 1e-9 || math.Abs(weights[2]-1.0/7.0) > 1e-9 {
		t.Fatalf("weights = %v, want [4/7 2/7 1/7]", weights)
	}
}
