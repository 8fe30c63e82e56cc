package player

import "context"

// Repository supplies the player universe for each gameweek of a season.
// Implementations never mutate previously returned data.
type Repository interface {
	ListByGameweek(ctx context.Context, season string, gameweek int) ([]Player, error)
}
