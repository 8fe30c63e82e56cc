package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/fpl-planner/internal/domain/player"
)

type gameweekKey struct {
	season   string
	gameweek int
}

// PlayerRepository serves per-gameweek player snapshots from memory.
type PlayerRepository struct {
	mu        sync.RWMutex
	snapshots map[gameweekKey][]player.Player
}

var _ player.Repository = (*PlayerRepository)(nil)

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{snapshots: make(map[gameweekKey][]player.Player)}
}

// Put stores the player universe of one gameweek.
func (r *PlayerRepository) Put(season string, gameweek int, players []player.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]player.Player, len(players))
	copy(stored, players)
	r.snapshots[gameweekKey{season: season, gameweek: gameweek}] = stored
}

func (r *PlayerRepository) ListByGameweek(_ context.Context, season string, gameweek int) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.snapshots[gameweekKey{season: season, gameweek: gameweek}]
	if !ok {
		return nil, fmt.Errorf("no player snapshot for season %s gameweek %d", season, gameweek)
	}

	out := make([]player.Player, len(stored))
	copy(out, stored)

	return out, nil
}
