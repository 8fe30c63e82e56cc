package simulation

import (
	"github.com/riskibarqy/fpl-planner/internal/domain/plan"
	"github.com/riskibarqy/fpl-planner/internal/domain/player"
)

// scoreRoles totals the realized points of a deployed lineup after automatic
// substitutions: zero-minute starters are replaced from the bench in priority
// order when the formation stays legal, the captain's points count twice, and
// a benched captain passes the armband to the vice.
func scoreRoles(
	roles plan.Roles,
	positions map[int]player.Position,
	points map[int]float64,
	minutes map[int]float64,
) float64 {
	starters := applySubstitutions(roles, positions, minutes)

	total := 0.0
	for _, id := range starters {
		total += points[id]
	}

	// Armband: double the captain, or the vice when the captain sat out.
	switch {
	case minutes[roles.Captain] > 0:
		total += points[roles.Captain]
	case minutes[roles.ViceCaptain] > 0:
		total += points[roles.ViceCaptain]
	}

	return total
}

// applySubstitutions returns the effective starting eleven for a round.
func applySubstitutions(
	roles plan.Roles,
	positions map[int]player.Position,
	minutes map[int]float64,
) []int {
	starters := append([]int(nil), roles.StartingXI...)

	formation := make(map[player.Position]int)
	for _, id := range starters {
		formation[positions[id]]++
	}

	benchUsed := make(map[int]bool, 4)
	bench := roles.ReserveOut[:]

	for i, id := range starters {
		if minutes[id] > 0 {
			continue
		}

		if positions[id] == player.PositionGoalkeeper {
			if minutes[roles.ReserveGKP] > 0 {
				starters[i] = roles.ReserveGKP
			}
			continue
		}

		for _, sub := range bench {
			if benchUsed[sub] || minutes[sub] <= 0 {
				continue
			}
			if !formationLegal(formation, positions[id], positions[sub]) {
				continue
			}
			formation[positions[id]]--
			formation[positions[sub]]++
			benchUsed[sub] = true
			starters[i] = sub
			break
		}
	}

	return starters
}

// formationLegal reports whether swapping one outfield starter of position
// out for a bench player of position in keeps the formation valid.
func formationLegal(formation map[player.Position]int, out, in player.Position) bool {
	if out == in {
		return true
	}
	if out == player.PositionDefender && formation[player.PositionDefender] <= 3 {
		return false
	}
	if out == player.PositionForward && formation[player.PositionForward] <= 1 {
		return false
	}

	return true
}
