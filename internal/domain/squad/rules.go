package squad

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/fpl-planner/internal/domain/player"
)

var (
	ErrInvalidSquadSize      = errors.New("invalid squad size")
	ErrExceededTeamLimit     = errors.New("max players from same team exceeded")
	ErrInvalidComposition    = errors.New("squad position composition not met")
	ErrUnknownPlayer         = errors.New("player not in universe")
	ErrUnknownPlayerPosition = errors.New("unknown player position")
)

const (
	Size              = 15
	MaxPlayersPerTeam = 3
)

// CompositionByPosition is the exact per-position squad requirement.
var CompositionByPosition = map[player.Position]int{
	player.PositionGoalkeeper: 2,
	player.PositionDefender:   5,
	player.PositionMidfielder: 5,
	player.PositionForward:    3,
}

// Validate checks squad size, position composition, and the per-team limit
// against the given player universe.
func Validate(s Squad, universe player.Universe) error {
	if len(s) != Size {
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidSquadSize, Size, len(s))
	}

	teamCounter := make(map[int]int)
	positionCounter := make(map[player.Position]int)

	for id := range s {
		p, ok := universe[id]
		if !ok {
			return fmt.Errorf("%w: id=%d", ErrUnknownPlayer, id)
		}
		if _, ok := player.AllPositions[p.Position]; !ok {
			return fmt.Errorf("%w: id=%d position=%s", ErrUnknownPlayerPosition, id, p.Position)
		}

		teamCounter[p.Team]++
		if teamCounter[p.Team] > MaxPlayersPerTeam {
			return fmt.Errorf("%w: team=%d max=%d", ErrExceededTeamLimit, p.Team, MaxPlayersPerTeam)
		}

		positionCounter[p.Position]++
	}

	for pos, required := range CompositionByPosition {
		if positionCounter[pos] != required {
			return fmt.Errorf("%w: pos=%s expected=%d got=%d", ErrInvalidComposition, pos, required, positionCounter[pos])
		}
	}

	return nil
}

// TeamCounts returns how many squad members each team contributes.
func TeamCounts(s Squad, universe player.Universe) map[int]int {
	counts := make(map[int]int)
	for id := range s {
		counts[universe[id].Team]++
	}

	return counts
}
