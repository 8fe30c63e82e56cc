package optimize

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fpl-planner/internal/domain/plan"
	"github.com/riskibarqy/fpl-planner/internal/domain/player"
	"github.com/riskibarqy/fpl-planner/internal/domain/squad"
	"github.com/riskibarqy/fpl-planner/internal/platform/logging"
)

// Greedy is the hill-climbing engine: it repeatedly applies the single best
// transfer until no strictly improving move exists. No backtracking and no
// global-optimality guarantee, but deterministic given the id tie-breaks.
type Greedy struct {
	log *logging.Logger
}

func NewGreedy(log *logging.Logger) *Greedy {
	if log == nil {
		log = logging.Default()
	}
	return &Greedy{log: log}
}

func (e *Greedy) Optimize(ctx context.Context, req Request) (plan.Plan, error) {
	if err := req.Validate(); err != nil {
		return plan.Plan{}, err
	}

	universe, err := player.NewUniverse(req.Players)
	if err != nil {
		return plan.Plan{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	window := req.window(req.Params.FutureGameweeksEvaluated)

	freeTransfers := req.FreeTransfers
	if req.unlimitedTransfers() {
		freeTransfers = UnlimitedFreeTransfers
	}

	initialSquad := req.Squad.Clone()
	currentSquad := req.Squad.Clone()
	currentBudget := req.Budget
	sellingPrices := req.sellingPrices(universe)
	transfersMade := req.TransfersMade

	// On round 1 and wildcard rounds every swap is free, so cash freed by
	// downgrading to the cheapest legal alternatives widens the later search.
	if freeTransfers == UnlimitedFreeTransfers {
		currentSquad, currentBudget, sellingPrices = e.freeBudget(currentSquad, currentBudget, universe, sellingPrices)
	}

	for {
		if err := ctx.Err(); err != nil {
			return plan.Plan{}, err
		}

		nextSquad, err := BestTransfer(
			currentSquad, currentBudget, window, universe, sellingPrices,
			req.Predictions, freeTransfers, transfersMade, req.Params,
		)
		if err != nil {
			return plan.Plan{}, err
		}
		if nextSquad.Equal(currentSquad) {
			break
		}

		made, err := CountTransfers(currentSquad, nextSquad)
		if err != nil {
			return plan.Plan{}, err
		}
		currentBudget = CalculateBudget(currentSquad, nextSquad, currentBudget, sellingPrices, universe.NowCosts())
		sellingPrices = UpdateSellingPrices(sellingPrices, universe.NowCosts(), currentSquad, nextSquad)
		transfersMade += made
		currentSquad = nextSquad
	}

	return e.buildPlan(req, universe, initialSquad, currentSquad, currentBudget)
}

// freeBudget replaces every owned player with its market-cheapest legal
// replacement, one swap at a time in ascending id order.
func (e *Greedy) freeBudget(
	s squad.Squad,
	budget int,
	universe player.Universe,
	sellingPrices map[int]int,
) (squad.Squad, int, map[int]int) {
	currentSquad := s.Clone()
	currentBudget := budget
	nowCosts := universe.NowCosts()

	for _, out := range s.IDs() {
		cheapest := out
		for _, in := range ValidTransfers(currentSquad, out, universe, sellingPrices, currentBudget) {
			if nowCosts[in] < nowCosts[cheapest] || (nowCosts[in] == nowCosts[cheapest] && in < cheapest) {
				cheapest = in
			}
		}
		if cheapest == out {
			continue
		}

		nextSquad := currentSquad.Swap(out, cheapest)
		currentBudget = CalculateBudget(currentSquad, nextSquad, currentBudget, sellingPrices, nowCosts)
		sellingPrices = UpdateSellingPrices(sellingPrices, nowCosts, currentSquad, nextSquad)
		currentSquad = nextSquad
	}

	return currentSquad, currentBudget, sellingPrices
}

func (e *Greedy) buildPlan(
	req Request,
	universe player.Universe,
	initialSquad, finalSquad squad.Squad,
	finalBudget int,
) (plan.Plan, error) {
	positions := universe.Positions()

	roles, err := SuggestRoles(finalSquad, positions, req.Predictions.Gameweek(req.NextGameweek))
	if err != nil {
		return plan.Plan{}, err
	}

	made, err := CountTransfers(initialSquad, finalSquad)
	if err != nil {
		return plan.Plan{}, err
	}

	paidCost := 0
	if !req.unlimitedTransfers() {
		paidCost = TransferCost(req.FreeTransfers, req.TransfersMade+made)
	}

	p := plan.Plan{
		Gameweek:      req.NextGameweek,
		Squad:         finalSquad.IDs(),
		Roles:         roles,
		Purchases:     finalSquad.Minus(initialSquad),
		Sales:         initialSquad.Minus(finalSquad),
		Budget:        finalBudget,
		FreeTransfers: max(req.FreeTransfers, 0),
		PaidTransfers: paidCost / TransferPenalty,
	}

	if err := p.Validate(positions); err != nil {
		return plan.Plan{}, err
	}

	e.log.Debug("greedy optimization converged",
		"gameweek", req.NextGameweek,
		"transfers", made,
		"budget", finalBudget,
	)

	return p, nil
}
