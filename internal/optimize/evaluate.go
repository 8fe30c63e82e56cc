package optimize

import (
	"math"

	"github.com/riskibarqy/fpl-planner/internal/domain/player"
	"github.com/riskibarqy/fpl-planner/internal/domain/prediction"
	"github.com/riskibarqy/fpl-planner/internal/domain/squad"
)

// EvaluateSquad scores a squad over a window of future gameweeks: the
// decay-weighted best-lineup points of each round, minus the aversion-scaled
// transfer penalty, plus the configured value of cash in the bank.
func EvaluateSquad(
	s squad.Squad,
	budget int,
	positions map[int]player.Position,
	gameweeks []int,
	predictions prediction.Matrix,
	freeTransfers int,
	transfersMade int,
	params Parameters,
) (float64, error) {
	weights := decayWeights(len(gameweeks), params.SquadEvaluationRoundFactor)

	score := 0.0
	for i, gameweek := range gameweeks {
		points := predictions.Gameweek(gameweek)
		roles, err := SuggestRoles(s, positions, points)
		if err != nil {
			return 0, err
		}
		score += weights[i] * ScoreRoles(roles, points, params)
	}

	score -= params.TransferAversionFactor * float64(TransferCost(freeTransfers, transfersMade))
	score += params.BudgetImportance * float64(budget)

	return score, nil
}

// decayWeights returns decay^k for k = 0..n-1, normalized to sum to 1.
func decayWeights(n int, decay float64) []float64 {
	weights := make([]float64, n)
	total := 0.0
	for k := range weights {
		weights[k] = math.Pow(decay, float64(k))
		total += weights[k]
	}
	if total == 0 {
		return weights
	}
	for k := range weights {
		weights[k] /= total
	}

	return weights
}
