package plan

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/fpl-planner/internal/domain/player"
	"github.com/riskibarqy/fpl-planner/internal/domain/squad"
)

var ErrInvalidPlan = errors.New("invalid plan")

// Roles is the deployment of a squad for one gameweek: the starting eleven,
// the armbands, and the ordered bench.
type Roles struct {
	StartingXI  []int  `json:"starting_xi"`
	Captain     int    `json:"captain"`
	ViceCaptain int    `json:"vice_captain"`
	ReserveGKP  int    `json:"reserve_gkp"`
	ReserveOut  [3]int `json:"reserve_out"`
}

// Plan is the solution contract both engines produce for one target gameweek.
type Plan struct {
	Gameweek int   `json:"gameweek"`
	Squad    []int `json:"squad"`
	Roles
	Purchases     []int `json:"purchases"`
	Sales         []int `json:"sales"`
	Budget        int   `json:"budget"`
	FreeTransfers int   `json:"free_transfers"`
	PaidTransfers int   `json:"paid_transfers"`
}

// Validate checks every cardinality, subset, disjointness, and formation
// invariant of the solution contract. A violation means the producing engine
// has a modeling bug, so callers must treat failures as fatal.
func (p Plan) Validate(positions map[int]player.Position) error {
	if len(p.Squad) != squad.Size {
		return fmt.Errorf("%w: squad size %d", ErrInvalidPlan, len(p.Squad))
	}
	squadSet := squad.New(p.Squad...)
	if len(squadSet) != squad.Size {
		return fmt.Errorf("%w: duplicate player in squad", ErrInvalidPlan)
	}

	if len(p.StartingXI) != 11 {
		return fmt.Errorf("%w: starting eleven size %d", ErrInvalidPlan, len(p.StartingXI))
	}

	xi := make(map[int]struct{}, len(p.StartingXI))
	positionCounter := make(map[player.Position]int)
	for _, id := range p.StartingXI {
		if !squadSet.Contains(id) {
			return fmt.Errorf("%w: starter %d not in squad", ErrInvalidPlan, id)
		}
		if _, dup := xi[id]; dup {
			return fmt.Errorf("%w: duplicate starter %d", ErrInvalidPlan, id)
		}
		xi[id] = struct{}{}
		positionCounter[positions[id]]++
	}

	if positionCounter[player.PositionGoalkeeper] != 1 {
		return fmt.Errorf("%w: starting eleven must contain exactly 1 GKP", ErrInvalidPlan)
	}
	if positionCounter[player.PositionDefender] < 3 {
		return fmt.Errorf("%w: starting eleven must contain at least 3 DEF", ErrInvalidPlan)
	}
	if positionCounter[player.PositionForward] < 1 {
		return fmt.Errorf("%w: starting eleven must contain at least 1 FWD", ErrInvalidPlan)
	}

	if _, ok := xi[p.Captain]; !ok {
		return fmt.Errorf("%w: captain %d not in starting eleven", ErrInvalidPlan, p.Captain)
	}
	if _, ok := xi[p.ViceCaptain]; !ok {
		return fmt.Errorf("%w: vice captain %d not in starting eleven", ErrInvalidPlan, p.ViceCaptain)
	}
	if p.Captain == p.ViceCaptain {
		return fmt.Errorf("%w: captain and vice captain must be different", ErrInvalidPlan)
	}

	if positions[p.ReserveGKP] != player.PositionGoalkeeper {
		return fmt.Errorf("%w: reserve goalkeeper %d is not a GKP", ErrInvalidPlan, p.ReserveGKP)
	}

	bench := append([]int{p.ReserveGKP}, p.ReserveOut[:]...)
	covered := make(map[int]struct{}, len(xi))
	for id := range xi {
		covered[id] = struct{}{}
	}
	for _, id := range bench {
		if !squadSet.Contains(id) {
			return fmt.Errorf("%w: reserve %d not in squad", ErrInvalidPlan, id)
		}
		if _, dup := covered[id]; dup {
			return fmt.Errorf("%w: reserve %d overlaps another role", ErrInvalidPlan, id)
		}
		covered[id] = struct{}{}
	}
	if len(covered) != squad.Size {
		return fmt.Errorf("%w: starting eleven and reserves must cover the squad", ErrInvalidPlan)
	}

	if len(p.Purchases) != len(p.Sales) {
		return fmt.Errorf("%w: purchases (%d) and sales (%d) must pair up", ErrInvalidPlan, len(p.Purchases), len(p.Sales))
	}
	if p.Budget < 0 {
		return fmt.Errorf("%w: negative budget %d", ErrInvalidPlan, p.Budget)
	}
	if p.PaidTransfers < 0 {
		return fmt.Errorf("%w: negative paid transfers %d", ErrInvalidPlan, p.PaidTransfers)
	}

	return nil
}
