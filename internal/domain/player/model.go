package player

import (
	"fmt"
	"sort"
)

// Position represents football position categories used in squad rules.
type Position string

const (
	PositionGoalkeeper Position = "GKP"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Player is one entry of the player universe for a single gameweek.
// Prices are in game currency tenths (a NowCost of 55 is 5.5).
// Attributes are immutable within a round; NowCost varies round to round.
type Player struct {
	ID       int
	Team     int
	Name     string
	Position Position
	NowCost  int
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be positive")
	}
	if p.Team <= 0 {
		return fmt.Errorf("player team is required: id=%d", p.ID)
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: id=%d position=%s", p.ID, p.Position)
	}
	if p.NowCost <= 0 {
		return fmt.Errorf("player cost must be greater than zero: id=%d", p.ID)
	}

	return nil
}

// Universe indexes the player pool of one gameweek by id.
type Universe map[int]Player

// NewUniverse builds an id index, rejecting duplicate or invalid entries.
func NewUniverse(players []Player) (Universe, error) {
	u := make(Universe, len(players))
	for _, p := range players {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := u[p.ID]; exists {
			return nil, fmt.Errorf("duplicate player in universe: id=%d", p.ID)
		}
		u[p.ID] = p
	}

	return u, nil
}

// IDs returns all player ids in ascending order.
func (u Universe) IDs() []int {
	ids := make([]int, 0, len(u))
	for id := range u {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Positions returns the id-to-position mapping for the universe.
func (u Universe) Positions() map[int]Position {
	out := make(map[int]Position, len(u))
	for id, p := range u {
		out[id] = p.Position
	}

	return out
}

// NowCosts returns the id-to-market-price mapping for the universe.
func (u Universe) NowCosts() map[int]int {
	out := make(map[int]int, len(u))
	for id, p := range u {
		out[id] = p.NowCost
	}

	return out
}
