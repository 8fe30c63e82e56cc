package optimize

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/fpl-planner/internal/domain/plan"
	"github.com/riskibarqy/fpl-planner/internal/domain/player"
	"github.com/riskibarqy/fpl-planner/internal/domain/squad"
)

// SuggestRoles deterministically deploys a squad for one gameweek: the
// starting eleven maximizing predicted points over every legal formation,
// the captain and vice captain as its two highest scorers, the spare
// goalkeeper on the bench, and the remaining outfielders as ordered reserves.
// Ties are always broken by ascending player id so repeated runs and both
// engines agree on the same lineup.
func SuggestRoles(s squad.Squad, positions map[int]player.Position, points map[int]float64) (plan.Roles, error) {
	byPosition := make(map[player.Position][]int, len(player.AllPositions))
	for id := range s {
		pos, ok := positions[id]
		if !ok {
			return plan.Roles{}, fmt.Errorf("%w: no position for player %d", ErrInvalidInput, id)
		}
		byPosition[pos] = append(byPosition[pos], id)
	}

	for pos, required := range squad.CompositionByPosition {
		if len(byPosition[pos]) != required {
			return plan.Roles{}, fmt.Errorf("%w: squad has %d %s, expected %d", ErrInvalidInput, len(byPosition[pos]), pos, required)
		}
	}

	for _, group := range byPosition {
		sortByPoints(group, points)
	}

	goalkeepers := byPosition[player.PositionGoalkeeper]
	defenders := byPosition[player.PositionDefender]
	midfielders := byPosition[player.PositionMidfielder]
	forwards := byPosition[player.PositionForward]

	// The starting goalkeeper is forced; only the outfield formation varies.
	// Prefix sums make each (def, mid, fwd) split a constant-time lookup.
	defSums := prefixSums(defenders, points)
	midSums := prefixSums(midfielders, points)
	fwdSums := prefixSums(forwards, points)

	bestTotal := 0.0
	bestDef, bestMid, bestFwd := -1, -1, -1
	for def := 3; def <= 5; def++ {
		for mid := 2; mid <= 5; mid++ {
			fwd := 10 - def - mid
			if fwd < 1 || fwd > 3 {
				continue
			}
			total := defSums[def] + midSums[mid] + fwdSums[fwd]
			if bestDef == -1 || total > bestTotal {
				bestTotal = total
				bestDef, bestMid, bestFwd = def, mid, fwd
			}
		}
	}

	startingXI := make([]int, 0, 11)
	startingXI = append(startingXI, goalkeepers[0])
	startingXI = append(startingXI, defenders[:bestDef]...)
	startingXI = append(startingXI, midfielders[:bestMid]...)
	startingXI = append(startingXI, forwards[:bestFwd]...)

	ranked := append([]int(nil), startingXI...)
	sortByPoints(ranked, points)

	reserveOut := make([]int, 0, 3)
	reserveOut = append(reserveOut, defenders[bestDef:]...)
	reserveOut = append(reserveOut, midfielders[bestMid:]...)
	reserveOut = append(reserveOut, forwards[bestFwd:]...)
	sortByPoints(reserveOut, points)

	roles := plan.Roles{
		StartingXI:  startingXI,
		Captain:     ranked[0],
		ViceCaptain: ranked[1],
		ReserveGKP:  goalkeepers[1],
	}
	copy(roles.ReserveOut[:], reserveOut)

	return roles, nil
}

// ScoreRoles values a deployed lineup under the per-role multipliers. The
// captain and vice terms only add the margin above the starting-eleven
// multiplier, since both are already counted as starters.
func ScoreRoles(roles plan.Roles, points map[int]float64, params Parameters) float64 {
	score := SumPoints(roles.StartingXI, points) * params.StartingXIMultiplier
	score += points[roles.Captain] * (params.CaptainMultiplier - params.StartingXIMultiplier)
	score += points[roles.ViceCaptain] * (params.ViceCaptainMultiplier - params.StartingXIMultiplier)
	score += points[roles.ReserveGKP] * params.ReserveGKPMultiplier
	for i, id := range roles.ReserveOut {
		score += points[id] * params.ReserveOutMultipliers[i]
	}

	return score
}

// SumPoints totals the predicted points of the given players. Players absent
// from the mapping contribute 0.
func SumPoints(ids []int, points map[int]float64) float64 {
	total := 0.0
	for _, id := range ids {
		total += points[id]
	}

	return total
}

func prefixSums(ids []int, points map[int]float64) []float64 {
	sums := make([]float64, len(ids)+1)
	for i, id := range ids {
		sums[i+1] = sums[i] + points[id]
	}

	return sums
}

func sortByPoints(ids []int, points map[int]float64) {
	sort.Slice(ids, func(i, j int) bool {
		if points[ids[i]] != points[ids[j]] {
			return points[ids[i]] > points[ids[j]]
		}
		return ids[i] < ids[j]
	})
}
