package simulation

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fpl-planner/internal/domain/player"
	"github.com/riskibarqy/fpl-planner/internal/domain/squad"
	"github.com/riskibarqy/fpl-planner/internal/optimize"
	"github.com/riskibarqy/fpl-planner/internal/platform/logging"
)

// Config describes one season replay.
type Config struct {
	Season            string
	FirstGameweek     int
	LastGameweek      int
	WildcardGameweeks []int
	BlackoutGameweeks []int
	InitialSquad      squad.Squad
	InitialBudget     int
	Params            optimize.Parameters
}

// GameweekReport is the realized outcome of one replayed round.
type GameweekReport struct {
	Gameweek      int     `json:"gameweek"`
	Points        float64 `json:"points"`
	PenaltyPoints int     `json:"penalty_points"`
	TransfersMade int     `json:"transfers_made"`
	Budget        int     `json:"budget"`
	Captain       int     `json:"captain"`
}

// SeasonReport sums a full replay. TotalPoints is net of transfer penalties.
type SeasonReport struct {
	Season      string           `json:"season"`
	TotalPoints float64          `json:"total_points"`
	Rounds      []GameweekReport `json:"rounds"`
}

// Replayer drives a planning engine through a past season round by round,
// carrying budget, prices, and the free-transfer allowance between rounds,
// and scores each plan against what actually happened.
type Replayer struct {
	engine Engine
	source Source
	log    *logging.Logger
}

func NewReplayer(engine Engine, source Source, log *logging.Logger) *Replayer {
	if log == nil {
		log = logging.Default()
	}
	return &Replayer{engine: engine, source: source, log: log}
}

func (r *Replayer) Replay(ctx context.Context, cfg Config) (*SeasonReport, error) {
	if cfg.FirstGameweek < 1 || cfg.LastGameweek < cfg.FirstGameweek {
		return nil, fmt.Errorf("%w: replay rounds %d..%d", optimize.ErrInvalidInput, cfg.FirstGameweek, cfg.LastGameweek)
	}

	truePoints, trueMinutes, err := r.source.Results(ctx, cfg.Season)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}

	report := &SeasonReport{Season: cfg.Season}

	currentSquad := cfg.InitialSquad.Clone()
	budget := cfg.InitialBudget
	freeTransfers := 1
	var purchasePrices map[int]int

	for g := cfg.FirstGameweek; g <= cfg.LastGameweek; g++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if contains(cfg.BlackoutGameweeks, g) {
			// No fixtures to score, but the allowance still accrues.
			freeTransfers = min(freeTransfers+1, optimize.MaxFreeTransfers)
			continue
		}

		players, err := r.source.Players(ctx, cfg.Season, g)
		if err != nil {
			return nil, fmt.Errorf("load players for gameweek %d: %w", g, err)
		}
		universe, err := player.NewUniverse(players)
		if err != nil {
			return nil, fmt.Errorf("universe for gameweek %d: %w", g, err)
		}
		predictions, err := r.source.Predictions(ctx, cfg.Season, g)
		if err != nil {
			return nil, fmt.Errorf("load predictions for gameweek %d: %w", g, err)
		}

		nowCosts := universe.NowCosts()
		if purchasePrices == nil {
			purchasePrices = make(map[int]int, len(currentSquad))
			for id := range currentSquad {
				purchasePrices[id] = nowCosts[id]
			}
		}
		sellingPrices := optimize.DeriveSellingPrices(currentSquad, purchasePrices, nowCosts)

		p, err := r.engine.Optimize(ctx, optimize.Request{
			Season:            cfg.Season,
			NextGameweek:      g,
			LastGameweek:      cfg.LastGameweek,
			WildcardGameweeks: cfg.WildcardGameweeks,
			BlackoutGameweeks: cfg.BlackoutGameweeks,
			Squad:             currentSquad,
			Budget:            budget,
			FreeTransfers:     freeTransfers,
			Players:           players,
			PurchasePrices:    purchasePrices,
			SellingPrices:     sellingPrices,
			Predictions:       predictions,
			Params:            cfg.Params,
		})
		if err != nil {
			return nil, fmt.Errorf("optimize gameweek %d: %w", g, err)
		}

		nextSquad := squad.New(p.Squad...)
		purchasePrices = optimize.UpdatePurchasePrices(purchasePrices, nowCosts, currentSquad, nextSquad)

		points := scoreRoles(p.Roles, universe.Positions(), truePoints.Gameweek(g), trueMinutes.Gameweek(g))
		penalty := p.PaidTransfers * optimize.TransferPenalty
		made := len(p.Sales)

		report.Rounds = append(report.Rounds, GameweekReport{
			Gameweek:      g,
			Points:        points,
			PenaltyPoints: penalty,
			TransfersMade: made,
			Budget:        p.Budget,
			Captain:       p.Captain,
		})
		report.TotalPoints += points - float64(penalty)

		r.log.Debug("replayed gameweek",
			"season", cfg.Season,
			"gameweek", g,
			"points", points,
			"transfers", made,
			"penalty", penalty,
		)

		// Free-transfer accrual: round 1 resets the allowance, a wildcard
		// round leaves it untouched, every other round applies the
		// min(max(ft - made + 1, 1), 2) recurrence.
		switch {
		case g == 1:
			freeTransfers = 1
		case contains(cfg.WildcardGameweeks, g):
			// carried as-is
		default:
			freeTransfers = min(max(freeTransfers-made+1, 1), optimize.MaxFreeTransfers)
		}

		currentSquad = nextSquad
		budget = p.Budget
	}

	r.log.Info("season replay finished",
		"season", cfg.Season,
		"rounds", len(report.Rounds),
		"total_points", report.TotalPoints,
	)

	return report, nil
}

func contains(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
