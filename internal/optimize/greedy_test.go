package optimize

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/riskibarqy/fpl-planner/internal/domain/squad"
	"github.com/riskibarqy/fpl-planner/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fpl-planner/internal/platform/logging"
)

func seededRequest(gameweek, budget int) Request {
	return Request{
		Season:        memory.SeedSeason,
		NextGameweek:  gameweek,
		Squad:         memory.SeedSquad(),
		Budget:        budget,
		FreeTransfers: 1,
		Players:       memory.SeedPlayers(),
		Predictions:   memory.SeedPredictions(),
		Params:        DefaultParameters(),
	}
}

func TestGreedyOptimize(t *testing.T) {
	engine := NewGreedy(logging.NewNop())

	p, err := engine.Optimize(context.Background(), seededRequest(2, 55))
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}

	// The climb buys 23 for 11 with the free transfer, then pays 4 points
	// to also bring 28 in for 14, and no further move covers its penalty.
	if !reflect.DeepEqual(p.Sales, []int{11, 14}) {
		t.Fatalf("sales = %v, want [11 14]", p.Sales)
	}
	if !reflect.DeepEqual(p.Purchases, []int{23, 28}) {
		t.Fatalf("purchases = %v, want [23 28]", p.Purchases)
	}
	if p.Budget != 0 {
		t.Fatalf("budget = %d, want 0", p.Budget)
	}
	if p.PaidTransfers != 1 {
		t.Fatalf("paid transfers = %d, want 1", p.PaidTransfers)
	}
	if p.FreeTransfers != 1 {
		t.Fatalf("free transfers = %d, want 1", p.FreeTransfers)
	}
	if p.Captain != 28 || p.ViceCaptain != 15 {
		t.Fatalf("armbands = %d/%d, want 28/15", p.Captain, p.ViceCaptain)
	}

	universe := seededUniverse(t)
	if err := p.Validate(universe.Positions()); err != nil {
		t.Fatalf("plan invalid: %v", err)
	}
}

func TestGreedyOptimizeNoImprovingMove(t *testing.T) {
	engine := NewGreedy(logging.NewNop())

	// With no cash in the bank nothing on the seeded market beats the
	// owned squad at gameweek 2.
	p, err := engine.Optimize(context.Background(), seededRequest(2, 0))
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}

	if len(p.Purchases) != 0 || len(p.Sales) != 0 {
		t.Fatalf("expected no transfers, got purchases=%v sales=%v", p.Purchases, p.Sales)
	}
	if !squad.New(p.Squad...).Equal(memory.SeedSquad()) {
		t.Fatalf("squad changed: %v", p.Squad)
	}
	if p.PaidTransfers != 0 {
		t.Fatalf("paid transfers = %d, want 0", p.PaidTransfers)
	}
}

func TestGreedyOptimizeIdempotent(t *testing.T) {
	engine := NewGreedy(logging.NewNop())

	first, err := engine.Optimize(context.Background(), seededRequest(2, 55))
	if err != nil {
		t.Fatalf("first run: %v", err)
	}

	again := seededRequest(2, first.Budget)
	again.Squad = squad.New(first.Squad...)
	again.TransfersMade = len(first.Sales)
	again.SellingPrices = map[int]int{23: 90, 28: 95}

	second, err := engine.Optimize(context.Background(), again)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !squad.New(second.Squad...).Equal(squad.New(first.Squad...)) {
		t.Fatalf("second run moved a converged squad: %v vs %v", second.Squad, first.Squad)
	}
	if len(second.Purchases) != 0 {
		t.Fatalf("second run made transfers: %v", second.Purchases)
	}
}

func TestGreedyOptimizeRoundOne(t *testing.T) {
	engine := NewGreedy(logging.NewNop())

	// Round 1 grants unlimited transfers: the engine first frees budget by
	// downgrading, then climbs without ever paying a transfer penalty.
	p, err := engine.Optimize(context.Background(), seededRequest(1, 0))
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}

	if p.PaidTransfers != 0 {
		t.Fatalf("paid transfers on round 1 = %d, want 0", p.PaidTransfers)
	}
	if p.Budget < 0 {
		t.Fatalf("negative budget %d", p.Budget)
	}
	if len(p.Purchases) != len(p.Sales) {
		t.Fatalf("unpaired transfers: %v / %v", p.Purchases, p.Sales)
	}

	universe := seededUniverse(t)
	if err := p.Validate(universe.Positions()); err != nil {
		t.Fatalf("plan invalid: %v", err)
	}
}

func TestGreedyFreeBudget(t *testing.T) {
	engine := NewGreedy(logging.NewNop())
	universe := seededUniverse(t)
	s := memory.SeedSquad()
	selling := marketSellingPrices(t, s)

	freed, budget, _ := engine.freeBudget(s, 0, universe, selling)

	if budget != 145 {
		t.Fatalf("freed budget = %d, want 145", budget)
	}
	want := squad.New(2, 6, 7, 10, 11, 12, 15, 17, 18, 21, 22, 26, 27, 29, 30)
	if !freed.Equal(want) {
		t.Fatalf("freed squad = %v, want %v", freed.IDs(), want.IDs())
	}
	if err := squad.Validate(freed, universe); err != nil {
		t.Fatalf("freed squad illegal: %v", err)
	}
}

func TestGreedyOptimizeRejectsBadRequest(t *testing.T) {
	engine := NewGreedy(logging.NewNop())

	req := seededRequest(2, 0)
	req.WildcardGameweeks = []int{1}
	if _, err := engine.Optimize(context.Background(), req); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("wildcard in round 1 accepted: %v", err)
	}

	req = seededRequest(40, 0)
	if _, err := engine.Optimize(context.Background(), req); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("gameweek 40 accepted: %v", err)
	}

	req = seededRequest(2, 0)
	req.Squad = squad.New(1, 2, 3)
	if _, err := engine.Optimize(context.Background(), req); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short squad accepted: %v", err)
	}
}

func TestGreedyOptimizeCancelled(t *testing.T) {
	engine := NewGreedy(logging.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.Optimize(ctx, seededRequest(2, 55)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
