// Package sat implements the propositional satisfiability engine: a
// two-watched-literal unit-propagation core over Boolean variables and
// clauses, with retraction and a conflict-analysis hook left inert for
// a future CDCL layer (spec §3.2/§4.4).
package sat

import (
	"fmt"

	"github.com/xDarkicex/ratiocore/core"
)

// Var is a Boolean variable index, allocated by Solver.NewVar.
type Var int

// Value is a Boolean variable's current assignment.
type Value int

const (
	Undef Value = iota
	True
	False
)

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "undef"
	}
}

// Literal is a signed reference to a variable: (var, sign). Negation
// toggles sign; ordering is lexicographic on (var, sign) with
// sign=false < sign=true (spec §3.1).
type Literal struct {
	v   Var
	neg bool
}

// Pos builds the positive occurrence of v.
func Pos(v Var) Literal { return Literal{v: v, neg: false} }

// Neg builds the negative occurrence of v.
func Neg(v Var) Literal { return Literal{v: v, neg: true} }

// Var returns the underlying variable.
func (l Literal) Var() Var { return l.v }

// IsPositive reports whether l is the positive occurrence of its var.
func (l Literal) IsPositive() bool { return !l.neg }

// Negation returns !l; applying it twice returns the original literal.
func (l Literal) Negation() Literal { return Literal{v: l.v, neg: !l.neg} }

// Equal reports structural equality.
func (l Literal) Equal(o Literal) bool { return l.v == o.v && l.neg == o.neg }

// Less implements the lexicographic (var, sign) ordering, sign=false
// sorting before sign=true.
func (l Literal) Less(o Literal) bool {
	if l.v != o.v {
		return l.v < o.v
	}
	return !l.neg && o.neg
}

// String renders "n" for a positive literal, "¬n" for a negative one,
// per spec §6.
func (l Literal) String() string {
	if l.neg {
		return fmt.Sprintf("¬%d", l.v)
	}
	return fmt.Sprintf("%d", l.v)
}

// wantValue is the Value that must hold for l to be satisfied.
func (l Literal) wantValue() Value {
	if l.neg {
		return False
	}
	return True
}

// Clause is an ordered sequence of literals. Positions 0 and 1 are the
// watched literals for clauses of length >= 2; positions >= 2 are
// unwatched. Mutating operations (watch migration) must preserve this
// convention (spec §3.2).
type Clause struct {
	idx  int
	Lits []Literal
}

// ID returns the clause's index within its solver.
func (c *Clause) ID() int { return c.idx }

// String joins literals with ∨, per spec §6.
func (c *Clause) String() string {
	s := ""
	for i, l := range c.Lits {
		if i > 0 {
			s += " ∨ "
		}
		s += l.String()
	}
	return s
}

// Reason re-exports core.Reason for readability within this package;
// a clause index doubles as a reason identifier.
type Reason = core.Reason
