package lp

import "github.com/draffensperger/golp"

type term struct {
	v     Var
	coeff float64
}

// Expr is a linear expression: a weighted sum of variables plus a constant.
// Methods mutate the receiver and return it for chaining.
type Expr struct {
	terms  []term
	offset float64
}

func NewExpr() *Expr {
	return &Expr{}
}

func FromVar(v Var) *Expr {
	return NewExpr().Add(v, 1)
}

func Constant(c float64) *Expr {
	return NewExpr().AddConst(c)
}

// Add appends coeff*v to the expression.
func (e *Expr) Add(v Var, coeff float64) *Expr {
	e.terms = append(e.terms, term{v: v, coeff: coeff})
	return e
}

func (e *Expr) AddConst(c float64) *Expr {
	e.offset += c
	return e
}

// AddScaled appends scale*other to the expression.
func (e *Expr) AddScaled(other *Expr, scale float64) *Expr {
	for _, t := range other.terms {
		e.terms = append(e.terms, term{v: t.v, coeff: t.coeff * scale})
	}
	e.offset += other.offset * scale

	return e
}

func (e *Expr) Clone() *Expr {
	out := &Expr{
		terms:  make([]term, len(e.terms)),
		offset: e.offset,
	}
	copy(out.terms, e.terms)

	return out
}

// compile merges duplicate columns and drops zero coefficients, returning
// sparse solver entries plus the constant offset.
func (e *Expr) compile() ([]golp.Entry, float64) {
	merged := make(map[Var]float64, len(e.terms))
	order := make([]Var, 0, len(e.terms))
	for _, t := range e.terms {
		if _, seen := merged[t.v]; !seen {
			order = append(order, t.v)
		}
		merged[t.v] += t.coeff
	}

	entries := make([]golp.Entry, 0, len(order))
	for _, v := range order {
		if merged[v] == 0 {
			continue
		}
		entries = append(entries, golp.Entry{Col: int(v), Val: merged[v]})
	}

	return entries, e.offset
}
