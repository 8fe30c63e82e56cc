package optimize

import (
	"context"
	"fmt"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/fpl-planner/internal/domain/plan"
	"github.com/riskibarqy/fpl-planner/internal/domain/player"
	"github.com/riskibarqy/fpl-planner/internal/domain/squad"
	"github.com/riskibarqy/fpl-planner/internal/platform/logging"
	"github.com/riskibarqy/fpl-planner/internal/platform/lp"
)

// transferBound dominates transfers made, free transfers, and paid transfers
// in any feasible round: at most all 15 squad members can be transferred, so
// every max/min linearization over those quantities is safe with 15.
const transferBound = squad.Size

// Exact is the multi-period engine: it encodes squad legality, budget
// evolution, free-transfer accrual, and the decayed objective over the whole
// planning horizon as one mixed-integer model and lets the solver pick the
// jointly optimal transfer schedule.
type Exact struct {
	log *logging.Logger
}

func NewExact(log *logging.Logger) *Exact {
	if log == nil {
		log = logging.Default()
	}
	return &Exact{log: log}
}

func (e *Exact) Optimize(ctx context.Context, req Request) (plan.Plan, error) {
	if err := req.Validate(); err != nil {
		return plan.Plan{}, err
	}

	universe, err := player.NewUniverse(req.Players)
	if err != nil {
		return plan.Plan{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	window := req.window(req.Params.FutureGameweeksEvaluated)

	m := newExactModel(window, universe, req)
	m.addSelectionConstraints()
	m.addBudgetConstraints()
	m.addTransferConstraints()
	m.addObjective()

	if err := ctx.Err(); err != nil {
		return plan.Plan{}, err
	}

	solution, err := m.model.Solve()
	if err != nil {
		return plan.Plan{}, errors.Wrap(err, "solve transfer plan")
	}

	plans, err := m.decode(solution)
	if err != nil {
		return plan.Plan{}, err
	}

	e.log.Debug("exact optimization solved",
		"gameweek", req.NextGameweek,
		"horizon", len(window),
		"objective", solution.Objective(),
	)

	// Later rounds only inform the objective; the caller acts on the next one.
	return plans[req.NextGameweek], nil
}

type exactModel struct {
	model    *lp.Model
	req      Request
	universe player.Universe

	gameweeks []int
	players   []int

	// Selection variables, indexed [gameweek][player].
	squadVar   map[int]map[int]lp.Var
	startingXI map[int]map[int]lp.Var
	captain    map[int]map[int]lp.Var
	vice       map[int]map[int]lp.Var
	reserveGKP map[int]map[int]lp.Var
	reserveOut [3]map[int]map[int]lp.Var
	purchases  map[int]map[int]lp.Var
	sales      map[int]map[int]lp.Var

	// Per-gameweek scalars.
	budget        map[int]lp.Var
	freeTransfers map[int]lp.Var
	paidTransfers map[int]lp.Var
	wildcard      map[int]lp.Var

	sellingPrices map[int]int
}

func newExactModel(gameweeks []int, universe player.Universe, req Request) *exactModel {
	m := &exactModel{
		model:         lp.NewModel(),
		req:           req,
		universe:      universe,
		gameweeks:     gameweeks,
		players:       universe.IDs(),
		squadVar:      map[int]map[int]lp.Var{},
		startingXI:    map[int]map[int]lp.Var{},
		captain:       map[int]map[int]lp.Var{},
		vice:          map[int]map[int]lp.Var{},
		reserveGKP:    map[int]map[int]lp.Var{},
		purchases:     map[int]map[int]lp.Var{},
		sales:         map[int]map[int]lp.Var{},
		budget:        map[int]lp.Var{},
		freeTransfers: map[int]lp.Var{},
		paidTransfers: map[int]lp.Var{},
		wildcard:      map[int]lp.Var{},
		sellingPrices: req.sellingPrices(universe),
	}
	for slot := range m.reserveOut {
		m.reserveOut[slot] = map[int]map[int]lp.Var{}
	}

	binaryFamily := func(family string, g int) map[int]lp.Var {
		vars := make(map[int]lp.Var, len(m.players))
		for _, p := range m.players {
			vars[p] = m.model.Binary(fmt.Sprintf("%s_%d_%d", family, p, g))
		}
		return vars
	}

	for _, g := range gameweeks {
		m.squadVar[g] = binaryFamily("squad", g)
		m.startingXI[g] = binaryFamily("starting_xi", g)
		m.captain[g] = binaryFamily("captain", g)
		m.vice[g] = binaryFamily("vice_captain", g)
		m.reserveGKP[g] = binaryFamily("reserve_gkp", g)
		for slot := range m.reserveOut {
			m.reserveOut[slot][g] = binaryFamily(fmt.Sprintf("reserve_%d", slot+1), g)
		}
		m.purchases[g] = binaryFamily("purchase", g)
		m.sales[g] = binaryFamily("sale", g)

		m.budget[g] = m.model.Int(fmt.Sprintf("budget_%d", g), 0, math.Inf(1))
		m.freeTransfers[g] = m.model.Int(fmt.Sprintf("free_transfers_%d", g), 0, transferBound)
		m.paidTransfers[g] = m.model.Int(fmt.Sprintf("paid_transfers_%d", g), 0, transferBound)
		m.wildcard[g] = m.model.Binary(fmt.Sprintf("wildcard_%d", g))
	}

	return m
}

// addSelectionConstraints encodes squad legality and role assignment for
// every round: composition and team limits, role cardinalities, formation
// bounds, subset relations, and pairwise role disjointness.
func (m *exactModel) addSelectionConstraints() {
	teams := map[int][]int{}
	byPosition := map[player.Position][]int{}
	for _, p := range m.players {
		info := m.universe[p]
		teams[info.Team] = append(teams[info.Team], p)
		byPosition[info.Position] = append(byPosition[info.Position], p)
	}

	for _, g := range m.gameweeks {
		// No more than 3 squad members from any one team.
		for _, members := range teams {
			e := lp.NewExpr()
			for _, p := range members {
				e.Add(m.squadVar[g][p], 1)
			}
			m.model.AddConstraint(e, lp.LE, float64(squad.MaxPlayersPerTeam))
		}

		// Exactly 2 GKP, 5 DEF, 5 MID, 3 FWD in the squad.
		for pos, required := range squad.CompositionByPosition {
			e := lp.NewExpr()
			for _, p := range byPosition[pos] {
				e.Add(m.squadVar[g][p], 1)
			}
			m.model.AddConstraint(e, lp.EQ, float64(required))
		}

		// Role cardinalities.
		m.addCardinality(m.captain[g], m.players, lp.EQ, 1)
		m.addCardinality(m.vice[g], m.players, lp.EQ, 1)
		m.addCardinality(m.startingXI[g], m.players, lp.EQ, 11)
		m.addCardinality(m.reserveGKP[g], m.players, lp.EQ, 1)
		for slot := range m.reserveOut {
			m.addCardinality(m.reserveOut[slot][g], m.players, lp.EQ, 1)
		}

		// The reserve goalkeeper slot must hold a GKP.
		m.addCardinality(m.reserveGKP[g], byPosition[player.PositionGoalkeeper], lp.EQ, 1)

		// Formation: exactly 1 starting GKP, at least 3 DEF, at least 1 FWD.
		m.addCardinality(m.startingXI[g], byPosition[player.PositionGoalkeeper], lp.EQ, 1)
		m.addCardinality(m.startingXI[g], byPosition[player.PositionDefender], lp.GE, 3)
		m.addCardinality(m.startingXI[g], byPosition[player.PositionForward], lp.GE, 1)

		for _, p := range m.players {
			// Starters and every reserve slot draw from the squad.
			m.addSubset(m.startingXI[g][p], m.squadVar[g][p])
			m.addSubset(m.reserveGKP[g][p], m.squadVar[g][p])
			for slot := range m.reserveOut {
				m.addSubset(m.reserveOut[slot][g][p], m.squadVar[g][p])
			}

			// Armbands go to starters only.
			m.addSubset(m.captain[g][p], m.startingXI[g][p])
			m.addSubset(m.vice[g][p], m.startingXI[g][p])

			// Reserves never start.
			m.addDisjoint(m.reserveGKP[g][p], m.startingXI[g][p])
			for slot := range m.reserveOut {
				m.addDisjoint(m.reserveOut[slot][g][p], m.startingXI[g][p])
			}

			// One player holds at most one of the six special roles.
			e := lp.NewExpr().
				Add(m.captain[g][p], 1).
				Add(m.vice[g][p], 1).
				Add(m.reserveGKP[g][p], 1)
			for slot := range m.reserveOut {
				e.Add(m.reserveOut[slot][g][p], 1)
			}
			m.model.AddConstraint(e, lp.LE, 1)
		}
	}
}

// addBudgetConstraints ties each round's budget and squad to the prior
// round through purchases and sales.
func (m *exactModel) addBudgetConstraints() {
	for i, g := range m.gameweeks {
		// budget_g = prior budget + sale income - purchase expense.
		e := lp.FromVar(m.budget[g])
		for _, p := range m.players {
			e.Add(m.sales[g][p], -float64(m.sellingPriceOf(p)))
			e.Add(m.purchases[g][p], float64(m.universe[p].NowCost))
		}
		if i == 0 {
			m.model.AddConstraint(e, lp.EQ, float64(m.req.Budget))
		} else {
			e.Add(m.budget[m.gameweeks[i-1]], -1)
			m.model.AddConstraint(e, lp.EQ, 0)
		}

		// squad_g = prior squad + purchases - sales; players can only be
		// sold when owned and bought when not.
		for _, p := range m.players {
			membership := lp.FromVar(m.squadVar[g][p]).
				Add(m.purchases[g][p], -1).
				Add(m.sales[g][p], 1)
			sale := lp.FromVar(m.sales[g][p])
			purchase := lp.FromVar(m.purchases[g][p])

			if i == 0 {
				prior := 0.0
				if m.req.Squad.Contains(p) {
					prior = 1
				}
				m.model.AddConstraint(membership, lp.EQ, prior)
				m.model.AddConstraint(sale, lp.LE, prior)
				m.model.AddConstraint(purchase, lp.LE, 1-prior)
			} else {
				priorVar := m.squadVar[m.gameweeks[i-1]][p]
				m.model.AddConstraint(membership.Add(priorVar, -1), lp.EQ, 0)
				m.model.AddConstraint(sale.Add(priorVar, -1), lp.LE, 0)
				m.model.AddConstraint(purchase.Add(priorVar, 1), lp.LE, 1)
			}
		}
	}
}

// addTransferConstraints fixes the wildcard indicators and encodes the paid
// and free transfer recurrences, linearizing their max/min forms.
func (m *exactModel) addTransferConstraints() {
	for i, g := range m.gameweeks {
		fixed := 0.0
		if m.isWildcard(g) {
			fixed = 1
		}
		m.model.AddConstraint(lp.FromVar(m.wildcard[g]), lp.EQ, fixed)

		// Paid transfers: zero in round 1 and on wildcard rounds, otherwise
		// max(transfers made - free transfers, 0).
		if g == 1 || m.isWildcard(g) {
			m.model.AddConstraint(lp.FromVar(m.paidTransfers[g]), lp.EQ, 0)
		} else {
			made := m.transfersMadeExpr(g)
			m.model.EqualMax(
				lp.FromVar(m.paidTransfers[g]),
				made.AddScaled(lp.FromVar(m.freeTransfers[g]), -1),
				lp.Constant(0),
				transferBound,
			)
		}

		// Free transfers.
		switch {
		case i == 0:
			initial := m.req.FreeTransfers
			if initial < 0 {
				initial = 0
			}
			m.model.AddConstraint(lp.FromVar(m.freeTransfers[g]), lp.EQ, float64(initial))
		case g == 1:
			m.model.AddConstraint(lp.FromVar(m.freeTransfers[g]), lp.EQ, 0)
		case m.isWildcard(g - 1):
			// The allowance rolls over untouched across a wildcard round.
			carried := lp.FromVar(m.freeTransfers[g]).Add(m.freeTransfers[m.gameweeks[i-1]], -1)
			m.model.AddConstraint(carried, lp.EQ, 0)
		default:
			// FT_g = min(max(1, FT_prev - made_prev + 1), 2), linearized with
			// an auxiliary variable for the inner max.
			prev := m.gameweeks[i-1]
			inner := m.model.Int(fmt.Sprintf("free_transfers_inner_%d", g), 1, transferBound)
			accrued := lp.FromVar(m.freeTransfers[prev]).
				AddScaled(m.transfersMadeExpr(prev), -1).
				AddConst(1)
			m.model.EqualMax(lp.FromVar(inner), lp.Constant(1), accrued, transferBound)
			m.model.EqualMin(lp.FromVar(m.freeTransfers[g]), lp.FromVar(inner), lp.Constant(MaxFreeTransfers), transferBound)
		}
	}
}

// addObjective combines the per-round role-weighted points and transfer
// penalties into one decayed, normalized scalar.
func (m *exactModel) addObjective() {
	weights := decayWeights(len(m.gameweeks), m.req.Params.SquadEvaluationRoundFactor)
	params := m.req.Params

	objective := lp.NewExpr()
	for i, g := range m.gameweeks {
		score := lp.NewExpr()
		for _, p := range m.players {
			points := m.req.Predictions.At(p, g)
			score.Add(m.startingXI[g][p], points*params.StartingXIMultiplier)
			score.Add(m.captain[g][p], points*(params.CaptainMultiplier-params.StartingXIMultiplier))
			score.Add(m.vice[g][p], points*(params.ViceCaptainMultiplier-params.StartingXIMultiplier))
			score.Add(m.reserveGKP[g][p], points*params.ReserveGKPMultiplier)
			for slot := range m.reserveOut {
				score.Add(m.reserveOut[slot][g][p], points*params.ReserveOutMultipliers[slot])
			}
		}
		score.Add(m.paidTransfers[g], -float64(TransferPenalty))

		objective.AddScaled(score, weights[i])
	}

	m.model.Maximize(objective)
}

// decode reads the solved variables back into one plan per round and
// validates every solution-contract invariant before returning.
func (m *exactModel) decode(solution *lp.Solution) (map[int]plan.Plan, error) {
	positions := m.universe.Positions()
	plans := make(map[int]plan.Plan, len(m.gameweeks))

	for _, g := range m.gameweeks {
		p := plan.Plan{
			Gameweek:      g,
			Squad:         m.selected(solution, m.squadVar[g]),
			Purchases:     m.selected(solution, m.purchases[g]),
			Sales:         m.selected(solution, m.sales[g]),
			Budget:        solution.Int(m.budget[g]),
			FreeTransfers: solution.Int(m.freeTransfers[g]),
			PaidTransfers: solution.Int(m.paidTransfers[g]),
		}
		p.StartingXI = m.selected(solution, m.startingXI[g])

		var err error
		if p.Captain, err = m.selectedOne(solution, m.captain[g], "captain", g); err != nil {
			return nil, err
		}
		if p.ViceCaptain, err = m.selectedOne(solution, m.vice[g], "vice_captain", g); err != nil {
			return nil, err
		}
		if p.ReserveGKP, err = m.selectedOne(solution, m.reserveGKP[g], "reserve_gkp", g); err != nil {
			return nil, err
		}
		for slot := range m.reserveOut {
			if p.ReserveOut[slot], err = m.selectedOne(solution, m.reserveOut[slot][g], fmt.Sprintf("reserve_%d", slot+1), g); err != nil {
				return nil, err
			}
		}

		if err := p.Validate(positions); err != nil {
			return nil, errors.Wrapf(err, "decoded solution for gameweek %d", g)
		}
		plans[g] = p
	}

	return plans, nil
}

func (m *exactModel) selected(solution *lp.Solution, vars map[int]lp.Var) []int {
	out := make([]int, 0)
	for _, p := range m.players {
		if solution.Bool(vars[p]) {
			out = append(out, p)
		}
	}

	return out
}

func (m *exactModel) selectedOne(solution *lp.Solution, vars map[int]lp.Var, role string, gameweek int) (int, error) {
	ids := m.selected(solution, vars)
	if len(ids) != 1 {
		return 0, errors.Newf("decoded solution for gameweek %d selects %d players for %s", gameweek, len(ids), role)
	}

	return ids[0], nil
}

func (m *exactModel) addCardinality(vars map[int]lp.Var, players []int, sense lp.Sense, rhs float64) {
	e := lp.NewExpr()
	for _, p := range players {
		e.Add(vars[p], 1)
	}
	m.model.AddConstraint(e, sense, rhs)
}

// addSubset enforces a <= b: membership in the smaller set implies the larger.
func (m *exactModel) addSubset(a, b lp.Var) {
	m.model.AddConstraint(lp.FromVar(a).Add(b, -1), lp.LE, 0)
}

// addDisjoint enforces a + b <= 1.
func (m *exactModel) addDisjoint(a, b lp.Var) {
	m.model.AddConstraint(lp.NewExpr().Add(a, 1).Add(b, 1), lp.LE, 1)
}

// transfersMadeExpr counts the sales of one round.
func (m *exactModel) transfersMadeExpr(g int) *lp.Expr {
	e := lp.NewExpr()
	for _, p := range m.players {
		e.Add(m.sales[g][p], 1)
	}

	return e
}

func (m *exactModel) isWildcard(g int) bool {
	for _, wc := range m.req.WildcardGameweeks {
		if wc == g {
			return true
		}
	}
	return false
}

func (m *exactModel) sellingPriceOf(p int) int {
	if price, ok := m.sellingPrices[p]; ok {
		return price
	}

	return m.universe[p].NowCost
}
