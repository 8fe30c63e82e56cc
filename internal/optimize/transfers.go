package optimize

import (
	"sort"

	"github.com/riskibarqy/fpl-planner/internal/domain/player"
	"github.com/riskibarqy/fpl-planner/internal/domain/prediction"
	"github.com/riskibarqy/fpl-planner/internal/domain/squad"
)

// ValidTransfers returns every player id that may legally take over the
// squad slot of out: same position, not already owned, within the per-team
// limit after the swap, and affordable from the budget plus the sale
// proceeds of out. The departing player is always included as the no-op
// transfer. Results are in ascending id order.
func ValidTransfers(s squad.Squad, out int, universe player.Universe, sellingPrices map[int]int, budget int) []int {
	departing := universe[out]
	available := budget + sellingPrices[out]

	teamCounts := squad.TeamCounts(s, universe)
	teamCounts[departing.Team]--

	candidates := []int{out}
	for id, p := range universe {
		if p.Position != departing.Position || s.Contains(id) {
			continue
		}
		if teamCounts[p.Team]+1 > squad.MaxPlayersPerTeam {
			continue
		}
		if p.NowCost > available {
			continue
		}
		candidates = append(candidates, id)
	}
	sort.Ints(candidates)

	return candidates
}

// BestTransfer evaluates every single buy/sell pair reachable from the
// squad, plus the unchanged squad itself, and returns whichever scores
// strictly highest. Returning the input squad unchanged is the normal
// "no improving transfer" outcome, not an error.
func BestTransfer(
	s squad.Squad,
	budget int,
	gameweeks []int,
	universe player.Universe,
	sellingPrices map[int]int,
	predictions prediction.Matrix,
	freeTransfers int,
	transfersMade int,
	params Parameters,
) (squad.Squad, error) {
	positions := universe.Positions()
	nowCosts := universe.NowCosts()

	bestSquad := s
	bestScore, err := EvaluateSquad(s, budget, positions, gameweeks, predictions, freeTransfers, transfersMade, params)
	if err != nil {
		return nil, err
	}

	for _, out := range s.IDs() {
		for _, in := range ValidTransfers(s, out, universe, sellingPrices, budget) {
			if in == out {
				continue
			}

			next := s.Swap(out, in)
			nextBudget := CalculateBudget(s, next, budget, sellingPrices, nowCosts)
			if nextBudget < 0 {
				continue
			}

			score, err := EvaluateSquad(next, nextBudget, positions, gameweeks, predictions, freeTransfers, transfersMade+1, params)
			if err != nil {
				return nil, err
			}
			if score > bestScore {
				bestScore = score
				bestSquad = next
			}
		}
	}

	return bestSquad, nil
}
