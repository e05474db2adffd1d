// Package lin implements LinearForm, the sparse affine combination of
// LA-engine variables that both the LA engine's tableau and the
// modeling layer's Int/Real objects are built from (spec §3.1/§4.3).
package lin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xDarkicex/ratiocore/num"
)

// VarID is an LA-engine variable index. It is defined here, rather than
// in package la, so that both la and model can depend on lin without a
// cycle.
type VarID int

// LinearForm is a sparse map from VarID to a nonzero Rational
// coefficient, plus a constant known term. Implementations must never
// leave a zero coefficient in the map; every mutating operation below
// prunes zeroed entries.
type LinearForm struct {
	coeffs map[VarID]num.Rational
	known  num.Rational
}

// NewConstant builds a LinearForm with no variables, just a known term.
func NewConstant(k num.Rational) LinearForm {
	return LinearForm{coeffs: map[VarID]num.Rational{}, known: k}
}

// NewVar builds the degenerate linear form {v: 1}, representing the
// variable v on its own.
func NewVar(v VarID) LinearForm {
	return LinearForm{coeffs: map[VarID]num.Rational{v: num.FromInt(1)}, known: num.Zero}
}

// Zero is the empty, all-zero linear form.
func Zero() LinearForm { return NewConstant(num.Zero) }

func (l LinearForm) clone() LinearForm {
	m := make(map[VarID]num.Rational, len(l.coeffs))
	for k, v := range l.coeffs {
		m[k] = v
	}
	return LinearForm{coeffs: m, known: l.known}
}

// Known returns the constant term.
func (l LinearForm) Known() num.Rational { return l.known }

// Coeff returns the coefficient of v, or the zero Rational if v is
// absent (the invariant guarantees absence means zero).
func (l LinearForm) Coeff(v VarID) num.Rational {
	if c, ok := l.coeffs[v]; ok {
		return c
	}
	return num.Zero
}

// Vars returns the set of variables with a nonzero coefficient, sorted
// for deterministic iteration (used by String and by callers that need
// stable ordering, e.g. tests).
func (l LinearForm) Vars() []VarID {
	vs := make([]VarID, 0, len(l.coeffs))
	for v := range l.coeffs {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// set stores a coefficient, dropping the entry entirely if it zeroes
// out, preserving the no-zero-coefficients invariant.
func (l *LinearForm) set(v VarID, c num.Rational) {
	if c.IsZero() {
		delete(l.coeffs, v)
		return
	}
	l.coeffs[v] = c
}

// Add returns l + r, combining coefficients and known terms.
func (l LinearForm) Add(r LinearForm) (LinearForm, error) {
	out := l.clone()
	for v, c := range r.coeffs {
		sum, err := out.Coeff(v).Add(c)
		if err != nil {
			return LinearForm{}, err
		}
		out.set(v, sum)
	}
	known, err := out.known.Add(r.known)
	if err != nil {
		return LinearForm{}, err
	}
	out.known = known
	return out, nil
}

// Sub returns l - r.
func (l LinearForm) Sub(r LinearForm) (LinearForm, error) {
	return l.Add(r.Neg())
}

// Neg returns -l.
func (l LinearForm) Neg() LinearForm {
	out := l.clone()
	for v, c := range out.coeffs {
		out.coeffs[v] = c.Neg()
	}
	out.known = out.known.Neg()
	return out
}

// MulScalar returns l scaled by s.
func (l LinearForm) MulScalar(s num.Rational) (LinearForm, error) {
	out := l.clone()
	for v, c := range out.coeffs {
		p, err := c.Mul(s)
		if err != nil {
			return LinearForm{}, err
		}
		out.set(v, p)
	}
	known, err := out.known.Mul(s)
	if err != nil {
		return LinearForm{}, err
	}
	out.known = known
	return out, nil
}

// DivScalar returns l divided by s.
func (l LinearForm) DivScalar(s num.Rational) (LinearForm, error) {
	out := l.clone()
	for v, c := range out.coeffs {
		q, err := c.Div(s)
		if err != nil {
			return LinearForm{}, err
		}
		out.set(v, q)
	}
	known, err := out.known.Div(s)
	if err != nil {
		return LinearForm{}, err
	}
	out.known = known
	return out, nil
}

// Substitute replaces v with the linear form r wherever v appears: let
// c be v's coefficient, remove v, and add c*r to the form (spec §3.1).
// If v does not appear in l, Substitute returns l unchanged (by value).
func (l LinearForm) Substitute(v VarID, r LinearForm) (LinearForm, error) {
	c, ok := l.coeffs[v]
	if !ok {
		return l.clone(), nil
	}
	out := l.clone()
	delete(out.coeffs, v)
	scaled, err := r.MulScalar(c)
	if err != nil {
		return LinearForm{}, err
	}
	return out.Add(scaled)
}

// IsConstant reports whether l carries no variables.
func (l LinearForm) IsConstant() bool { return len(l.coeffs) == 0 }

// WithoutVar returns l with v's term dropped entirely, leaving the
// known term and every other coefficient untouched. Used by the LA
// engine to isolate one variable's coefficient before bounding the
// remaining terms.
func (l LinearForm) WithoutVar(v VarID) LinearForm {
	out := l.clone()
	delete(out.coeffs, v)
	return out
}

// String renders terms joined by signed coefficients with the known
// term at the end, per spec §6.
func (l LinearForm) String() string {
	vars := l.Vars()
	var parts []string
	for i, v := range vars {
		c := l.coeffs[v]
		term := fmt.Sprintf("x%d", v)
		sign := "+"
		mag := c
		if c.Sign() < 0 {
			sign = "-"
			mag = c.Neg()
		}
		coeffStr := ""
		if !(mag.Den() == 1 && mag.Num() == 1) {
			coeffStr = mag.String() + "*"
		}
		if i == 0 && sign == "+" {
			parts = append(parts, coeffStr+term)
		} else {
			parts = append(parts, sign+" "+coeffStr+term)
		}
	}
	if !l.known.IsZero() || len(parts) == 0 {
		sign := "+"
		mag := l.known
		if l.known.Sign() < 0 {
			sign = "-"
			mag = l.known.Neg()
		}
		if len(parts) == 0 {
			parts = append(parts, l.known.String())
		} else {
			parts = append(parts, sign+" "+mag.String())
		}
	}
	return strings.Join(parts, " ")
}
