// Package lp builds mixed-integer linear models and solves them through the
// lp_solve bindings. Engines describe variables, linear constraints, and an
// objective; the model is compiled to solver form only when Solve is called.
package lp

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/draffensperger/golp"
	"github.com/google/uuid"
)

// ErrNoSolution is returned when the solver reports no feasible or optimal
// assignment. Callers must treat it as fatal for the request.
var ErrNoSolution = errors.New("solver found no solution")

// Var identifies one column of the model.
type Var int

// Sense is the comparison direction of a linear constraint.
type Sense int

const (
	LE Sense = iota
	GE
	EQ
)

type column struct {
	name    string
	integer bool
	lower   float64
	upper   float64 // +Inf when unbounded
}

type row struct {
	expr  *Expr
	sense Sense
	rhs   float64
}

// Model is a mixed-integer linear model under construction.
type Model struct {
	cols      []column
	rows      []row
	objective *Expr
}

func NewModel() *Model {
	return &Model{}
}

// Binary declares a 0/1 integer variable.
func (m *Model) Binary(name string) Var {
	return m.addColumn(column{name: name, integer: true, lower: 0, upper: 1})
}

// Int declares an integer variable with the given bounds. Pass math.Inf(1)
// as the upper bound to leave it unbounded above.
func (m *Model) Int(name string, lower, upper float64) Var {
	return m.addColumn(column{name: name, integer: true, lower: lower, upper: upper})
}

func (m *Model) addColumn(c column) Var {
	m.cols = append(m.cols, c)
	return Var(len(m.cols) - 1)
}

// AddConstraint records the linear constraint expr (sense) rhs.
func (m *Model) AddConstraint(expr *Expr, sense Sense, rhs float64) {
	m.rows = append(m.rows, row{expr: expr.Clone(), sense: sense, rhs: rhs})
}

// EqualMax constrains y = max(a, b) through the big-M linearization
//
//	y >= a, y >= b, y <= a + bound*(1-z), y <= b + bound*z
//
// with a fresh binary indicator z. The bound must dominate both a and b over
// every feasible assignment, and should stay as small as practical to keep
// the relaxation tight.
func (m *Model) EqualMax(y, a, b *Expr, bound float64) {
	z := m.Binary("aux_max_" + uuid.NewString())

	m.AddConstraint(NewExpr().AddScaled(y, 1).AddScaled(a, -1), GE, 0)
	m.AddConstraint(NewExpr().AddScaled(y, 1).AddScaled(b, -1), GE, 0)
	m.AddConstraint(NewExpr().AddScaled(y, 1).AddScaled(a, -1).Add(z, bound), LE, bound)
	m.AddConstraint(NewExpr().AddScaled(y, 1).AddScaled(b, -1).Add(z, -bound), LE, 0)
}

// EqualMin constrains y = min(a, b); the mirror image of EqualMax.
func (m *Model) EqualMin(y, a, b *Expr, bound float64) {
	z := m.Binary("aux_min_" + uuid.NewString())

	m.AddConstraint(NewExpr().AddScaled(y, 1).AddScaled(a, -1), LE, 0)
	m.AddConstraint(NewExpr().AddScaled(y, 1).AddScaled(b, -1), LE, 0)
	m.AddConstraint(NewExpr().AddScaled(y, 1).AddScaled(a, -1).Add(z, -bound), GE, -bound)
	m.AddConstraint(NewExpr().AddScaled(y, 1).AddScaled(b, -1).Add(z, bound), GE, 0)
}

// Maximize sets the objective. Constant offsets are folded back into the
// reported objective value after solving.
func (m *Model) Maximize(expr *Expr) {
	m.objective = expr.Clone()
}

// Solution holds the solved column assignment.
type Solution struct {
	values    []float64
	objective float64
}

func (s *Solution) Value(v Var) float64 {
	return s.values[int(v)]
}

// Bool reads a binary column, tolerating solver round-off.
func (s *Solution) Bool(v Var) bool {
	return s.values[int(v)] > 0.5
}

// Int reads an integer column, tolerating solver round-off.
func (s *Solution) Int(v Var) int {
	return int(math.Round(s.values[int(v)]))
}

func (s *Solution) Objective() float64 {
	return s.objective
}

// Solve compiles the model to lp_solve and runs it synchronously.
func (m *Model) Solve() (*Solution, error) {
	solver := golp.NewLP(0, len(m.cols))

	for j, col := range m.cols {
		if col.integer {
			solver.SetInt(j, true)
		}
		// lp_solve columns default to [0, +Inf); tighter bounds become rows.
		if col.lower > 0 {
			if err := solver.AddConstraintSparse([]golp.Entry{{Col: j, Val: 1}}, golp.GE, col.lower); err != nil {
				return nil, errors.Wrapf(err, "add lower bound for %s", col.name)
			}
		}
		if !math.IsInf(col.upper, 1) {
			if err := solver.AddConstraintSparse([]golp.Entry{{Col: j, Val: 1}}, golp.LE, col.upper); err != nil {
				return nil, errors.Wrapf(err, "add upper bound for %s", col.name)
			}
		}
	}

	for _, r := range m.rows {
		entries, offset := r.expr.compile()
		if err := solver.AddConstraintSparse(entries, senseToGolp(r.sense), r.rhs-offset); err != nil {
			return nil, errors.Wrap(err, "add constraint")
		}
	}

	objOffset := 0.0
	objRow := make([]float64, len(m.cols))
	if m.objective != nil {
		entries, offset := m.objective.compile()
		objOffset = offset
		for _, e := range entries {
			objRow[e.Col] = e.Val
		}
	}
	solver.SetObjFn(objRow)
	solver.SetMaximize()

	status := solver.Solve()
	if status != golp.OPTIMAL && status != golp.SUBOPTIMAL {
		return nil, errors.Wrapf(ErrNoSolution, "solver status %d", int(status))
	}

	values := solver.Variables()
	if len(values) < len(m.cols) {
		return nil, errors.Newf("solver returned %d columns, expected %d", len(values), len(m.cols))
	}

	return &Solution{
		values:    values[:len(m.cols)],
		objective: solver.Objective() + objOffset,
	}, nil
}

func senseToGolp(s Sense) golp.ConstraintType {
	switch s {
	case GE:
		return golp.GE
	case EQ:
		return golp.EQ
	default:
		return golp.LE
	}
}
