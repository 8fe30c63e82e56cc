package prediction

import "context"

// Matrix holds predicted points keyed by gameweek and player id.
// Players absent from a gameweek predict 0 points.
type Matrix map[int]map[int]float64

// At returns the predicted points for one player in one gameweek.
func (m Matrix) At(playerID, gameweek int) float64 {
	return m[gameweek][playerID]
}

// Gameweek returns the per-player predictions of one gameweek.
// The returned map may be nil; lookups on it still yield 0.
func (m Matrix) Gameweek(gameweek int) map[int]float64 {
	return m[gameweek]
}

// Set records a prediction, allocating the gameweek row when needed.
func (m Matrix) Set(playerID, gameweek int, points float64) {
	row, ok := m[gameweek]
	if !ok {
		row = make(map[int]float64)
		m[gameweek] = row
	}
	row[playerID] = points
}

// Repository supplies point predictions made before a given gameweek.
type Repository interface {
	ListByGameweek(ctx context.Context, season string, gameweek int) (Matrix, error)
}
