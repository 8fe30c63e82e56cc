package optimize

import (
	"reflect"
	"testing"

	"github.com/riskibarqy/fpl-planner/internal/domain/squad"
	"github.com/riskibarqy/fpl-planner/internal/infrastructure/repository/memory"
)

func marketSellingPrices(t *testing.T, s squad.Squad) map[int]int {
	t.Helper()
	universe := seededUniverse(t)

	out := make(map[int]int, len(s))
	for id := range s {
		out[id] = universe[id].NowCost
	}
	return out
}

func TestValidTransfers(t *testing.T) {
	universe := seededUniverse(t)
	s := memory.SeedSquad()
	selling := marketSellingPrices(t, s)

	tests := []struct {
		name   string
		out    int
		budget int
		want   []int
	}{
		// Team 1 already fields three players, so defender 18 is barred
		// unless a team-1 player is the one leaving.
		{name: "team limit bars same-team arrival", out: 5, budget: 100, want: []int{5, 19, 20, 21, 22}},
		{name: "departure frees the team slot", out: 3, budget: 100, want: []int{3, 18, 19, 20, 21, 22}},
		{name: "budget restricts candidates", out: 5, budget: 0, want: []int{5, 21, 22}},
		{name: "goalkeepers swap only for goalkeepers", out: 1, budget: 100, want: []int{1, 16, 17}},
		{name: "sale proceeds fund the arrival", out: 2, budget: 0, want: []int{2, 17}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidTransfers(s, tt.out, universe, selling, tt.budget)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ValidTransfers(out=%d, budget=%d) = %v, want %v", tt.out, tt.budget, got, tt.want)
			}
		})
	}
}

func TestBestTransfer(t *testing.T) {
	universe := seededUniverse(t)
	s := memory.SeedSquad()
	selling := marketSellingPrices(t, s)
	predictions := memory.SeedPredictions()

	got, err := BestTransfer(s, 0, []int{1}, universe, selling, predictions, 1, 0, richParameters())
	if err != nil {
		t.Fatalf("BestTransfer: %v", err)
	}

	// Swapping midfielder 10 for 25 lifts the best lineup by a full point
	// and stays within the free allowance.
	want := s.Swap(10, 25)
	if !got.Equal(want) {
		t.Fatalf("BestTransfer = %v, want %v", got.IDs(), want.IDs())
	}
}

func TestBestTransferAversionHoldsSquad(t *testing.T) {
	universe := seededUniverse(t)
	s := memory.SeedSquad()
	selling := marketSellingPrices(t, s)
	predictions := memory.SeedPredictions()

	params := richParameters()
	params.TransferAversionFactor = 99

	// The allowance is already spent, so any move costs 4 * 99 points.
	got, err := BestTransfer(s, 0, []int{1}, universe, selling, predictions, 1, 1, params)
	if err != nil {
		t.Fatalf("BestTransfer: %v", err)
	}
	if !got.Equal(s) {
		t.Fatalf("BestTransfer moved despite prohibitive aversion: %v", got.IDs())
	}
}
