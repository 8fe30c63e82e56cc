package optimize

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fpl-planner/internal/domain/player"
	"github.com/riskibarqy/fpl-planner/internal/domain/prediction"
	"github.com/riskibarqy/fpl-planner/internal/domain/squad"
)

var validate = validator.New()

// Request carries one complete optimization problem. Engines never mutate it;
// squads and price maps are copied before any local bookkeeping.
type Request struct {
	Season            string
	NextGameweek      int `validate:"required,min=1,max=38"`
	LastGameweek      int `validate:"omitempty,min=1,max=38"`
	WildcardGameweeks []int
	BlackoutGameweeks []int

	Squad          squad.Squad     `validate:"required,len=15"`
	Budget         int             `validate:"min=0"`
	FreeTransfers  int             `validate:"min=-1"`
	TransfersMade  int             `validate:"min=0"`
	Players        []player.Player `validate:"required,min=15"`
	PurchasePrices map[int]int
	SellingPrices  map[int]int
	Predictions    prediction.Matrix

	Params Parameters
}

// Validate rejects structurally broken requests before any solving begins.
// Marking round 1 as a wildcard round is a configuration error: the game
// grants unlimited transfers there unconditionally.
func (r Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for _, wc := range r.WildcardGameweeks {
		if wc == 1 {
			return fmt.Errorf("%w: wildcards are not available in gameweek 1", ErrInvalidInput)
		}
	}
	if r.NextGameweek > r.lastGameweek() {
		return fmt.Errorf("%w: next gameweek %d beyond last gameweek %d", ErrInvalidInput, r.NextGameweek, r.lastGameweek())
	}

	universe, err := player.NewUniverse(r.Players)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := squad.Validate(r.Squad, universe); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

func (r Request) lastGameweek() int {
	if r.LastGameweek == 0 {
		return LastGameweek
	}
	return r.LastGameweek
}

// unlimitedTransfers reports whether the target round grants unlimited free
// transfers: round 1 and wildcard rounds.
func (r Request) unlimitedTransfers() bool {
	if r.NextGameweek == 1 {
		return true
	}
	for _, wc := range r.WildcardGameweeks {
		if wc == r.NextGameweek {
			return true
		}
	}

	return false
}

// window computes the evaluation window for the request, dropping any
// blacked-out rounds (rounds with no fixtures to score).
func (r Request) window(horizon int) []int {
	full := FutureGameweeks(r.NextGameweek, r.lastGameweek(), r.WildcardGameweeks, horizon)

	out := make([]int, 0, len(full))
	for _, g := range full {
		if r.blackedOut(g) {
			continue
		}
		out = append(out, g)
	}
	if len(out) == 0 {
		out = append(out, r.NextGameweek)
	}

	return out
}

func (r Request) blackedOut(gameweek int) bool {
	for _, b := range r.BlackoutGameweeks {
		if b == gameweek {
			return true
		}
	}
	return false
}

// sellingPrices returns a complete selling-price map for the owned squad,
// defaulting missing entries to the player's market price.
func (r Request) sellingPrices(universe player.Universe) map[int]int {
	out := make(map[int]int, len(r.Squad))
	for id := range r.Squad {
		if price, ok := r.SellingPrices[id]; ok {
			out[id] = price
			continue
		}
		out[id] = universe[id].NowCost
	}

	return out
}
