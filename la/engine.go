package la

import (
	"fmt"
	"sort"

	set "github.com/hashicorp/go-set/v3"

	"github.com/xDarkicex/ratiocore/lin"
	"github.com/xDarkicex/ratiocore/num"
)

// NewVar allocates a fresh LA variable with value 0 and no bounds.
func (e *Engine) NewVar() Var {
	e.vars = append(e.vars, varRecord{
		value:       num.InfZero,
		lowerLedger: make(map[num.InfRational]*set.Set[Reason]),
		upperLedger: make(map[num.InfRational]*set.Set[Reason]),
		rows:        set.New[Var](0),
	})
	return Var(len(e.vars) - 1)
}

// NewNamedVar is NewVar plus a human-readable name used only by String
// and logging (supplemented from original_source/src/lin/var.rs, which
// gives LA variables optional diagnostic names; no semantics change).
func (e *Engine) NewNamedVar(name string) Var {
	v := e.NewVar()
	e.vars[v].name = name
	return v
}

// Value returns v's current stored value.
func (e *Engine) Value(v Var) num.InfRational { return e.vars[v].value }

// LB returns the active lower bound: the largest stored ledger key, or
// -infinity if the ledger is empty (spec §9 resolves the source's
// ambiguity this way).
func (e *Engine) LB(v Var) num.InfRational {
	return activeBound(e.vars[v].lowerLedger, true)
}

// UB returns the active upper bound: the smallest stored ledger key, or
// +infinity if the ledger is empty.
func (e *Engine) UB(v Var) num.InfRational {
	return activeBound(e.vars[v].upperLedger, false)
}

func activeBound(ledger map[num.InfRational]*set.Set[Reason], wantMax bool) num.InfRational {
	if len(ledger) == 0 {
		if wantMax {
			return num.InfNegativeInfinity
		}
		return num.InfPositiveInfinity
	}
	var best num.InfRational
	first := true
	for k := range ledger {
		if first {
			best = k
			first = false
			continue
		}
		if wantMax && k.Greater(best) {
			best = k
		}
		if !wantMax && k.Less(best) {
			best = k
		}
	}
	return best
}

// SetLB installs new_lb as a candidate lower bound for v under reason.
// With a real reason, it is inserted into the ledger (the active bound
// becomes the max of stored keys). With core.NoReason it is also
// treated as a global tightening: every ledger key weaker than new_lb
// (i.e. smaller) is dropped outright, since a global fact subsumes any
// reason-scoped bound it dominates (spec §4.5/§9). It is a conflict,
// and no mutation occurs, if new_lb exceeds the current active upper
// bound.
func (e *Engine) SetLB(v Var, newLB num.InfRational, reason Reason) (bool, error) {
	return e.setBound(v, newLB, reason, true)
}

// SetUB is SetLB's symmetric counterpart for the upper-bound ledger.
func (e *Engine) SetUB(v Var, newUB num.InfRational, reason Reason) (bool, error) {
	return e.setBound(v, newUB, reason, false)
}

func (e *Engine) setBound(v Var, newVal num.InfRational, reason Reason, lower bool) (bool, error) {
	var opposite num.InfRational
	if lower {
		opposite = e.UB(v)
	} else {
		opposite = e.LB(v)
	}
	if lower && newVal.Greater(opposite) {
		e.log.Debug("bound conflict", "var", v, "lower", lower, "value", newVal.String(), "opposite", opposite.String(), "reason", reason)
		return false, nil
	}
	if !lower && newVal.Less(opposite) {
		e.log.Debug("bound conflict", "var", v, "lower", lower, "value", newVal.String(), "opposite", opposite.String(), "reason", reason)
		return false, nil
	}

	ledger := e.vars[v].lowerLedger
	if !lower {
		ledger = e.vars[v].upperLedger
	}

	s, ok := ledger[newVal]
	if !ok {
		s = set.New[Reason](1)
		ledger[newVal] = s
	}
	s.Insert(reason)

	if !reason.HasReason() {
		for k := range ledger {
			if k == newVal {
				continue
			}
			if lower && k.Less(newVal) {
				delete(ledger, k)
			}
			if !lower && k.Greater(newVal) {
				delete(ledger, k)
			}
		}
	}

	e.log.Trace("bound set", "var", v, "lower", lower, "value", newVal.String(), "reason", reason)
	return true, nil
}

// UnsetLB removes reason from the set supporting key in v's lower-bound
// ledger; if that leaves the set empty, the key entry itself is
// removed (spec §4.5).
func (e *Engine) UnsetLB(v Var, key num.InfRational, reason Reason) {
	unsetBound(e.vars[v].lowerLedger, key, reason)
}

// UnsetUB is UnsetLB's symmetric counterpart.
func (e *Engine) UnsetUB(v Var, key num.InfRational, reason Reason) {
	unsetBound(e.vars[v].upperLedger, key, reason)
}

func unsetBound(ledger map[num.InfRational]*set.Set[Reason], key num.InfRational, reason Reason) {
	s, ok := ledger[key]
	if !ok {
		return
	}
	s.Remove(reason)
	if s.Empty() {
		delete(ledger, key)
	}
}

// LinLB bounds a LinearForm from below: for each (v, c) summed, use
// c*LB(v) when c >= 0, else c*UB(v); the loop short-circuits to
// -infinity as soon as the running sum reaches it (spec §4.5).
func (e *Engine) LinLB(l lin.LinearForm) (num.InfRational, error) {
	return e.linBound(l, true)
}

// LinUB is LinLB's symmetric counterpart.
func (e *Engine) LinUB(l lin.LinearForm) (num.InfRational, error) {
	return e.linBound(l, false)
}

func (e *Engine) linBound(l lin.LinearForm, lower bool) (num.InfRational, error) {
	sum := num.FromRational(l.Known())
	shortCircuit := num.InfNegativeInfinity
	if !lower {
		shortCircuit = num.InfPositiveInfinity
	}
	for _, v := range l.Vars() {
		c := l.Coeff(v)
		useLower := (c.Sign() >= 0) == lower
		var bound num.InfRational
		if useLower {
			bound = e.LB(v)
		} else {
			bound = e.UB(v)
		}
		term, err := bound.MulRat(c)
		if err != nil {
			return num.InfRational{}, err
		}
		next, err := sum.Add(term)
		if err != nil {
			return num.InfRational{}, err
		}
		sum = next
		if sum.Equal(shortCircuit) {
			return sum, nil
		}
	}
	return sum, nil
}

// SetRow installs expr as basic's tableau row, expressing it in terms
// of currently non-basic variables. It rejects a row in which basic
// appears in its own expression (spec §3.3 invariant).
func (e *Engine) SetRow(basic Var, expr lin.LinearForm) error {
	if !expr.Coeff(basic).IsZero() {
		return newInfeasibleError("la.Engine.SetRow", fmt.Sprintf("variable %d cannot appear in its own tableau row", basic))
	}
	e.tableau[basic] = expr
	for _, v := range expr.Vars() {
		e.vars[v].rows.Insert(basic)
	}
	return nil
}

// IsBasic reports whether v currently has a tableau row.
func (e *Engine) IsBasic(v Var) bool {
	_, ok := e.tableau[v]
	return ok
}

// reduceToNonBasic substitutes every basic variable appearing in expr
// with its tableau row, repeatedly, until only non-basic variables
// remain (spec §4.5 "new_lt ... reduced to non-basic form").
func (e *Engine) reduceToNonBasic(expr lin.LinearForm) (lin.LinearForm, error) {
	for {
		basic := Var(-1)
		for _, v := range expr.Vars() {
			if _, ok := e.tableau[v]; ok {
				basic = v
				break
			}
		}
		if basic == Var(-1) {
			return expr, nil
		}
		var err error
		expr, err = expr.Substitute(basic, e.tableau[basic])
		if err != nil {
			return lin.LinearForm{}, err
		}
	}
}

// NewLt installs lhs - rhs < 0 (strict) or lhs - rhs <= 0 (non-strict).
// The expression is reduced to non-basic form first, then used to
// tighten the bound of one participating variable by isolating it and
// bounding the remaining terms with LinLB/LinUB (spec §4.5); strict
// inequalities are encoded with an infinitesimal shift on the
// constant side, exactly as InfRational models a < b as a <= b - ε.
// It returns false iff the tightening is infeasible.
func (e *Engine) NewLt(lhs, rhs lin.LinearForm, strict bool, reason Reason) (bool, error) {
	diff, err := lhs.Sub(rhs)
	if err != nil {
		return false, err
	}
	diff, err = e.reduceToNonBasic(diff)
	if err != nil {
		return false, err
	}

	vars := diff.Vars()
	if len(vars) == 0 {
		k := diff.Known()
		if strict {
			return k.Sign() < 0, nil
		}
		return k.Sign() <= 0, nil
	}

	v := vars[0]
	c := diff.Coeff(v)
	rest := diff
	rest = rest.WithoutVar(v)

	restLB, err := e.LinLB(rest)
	if err != nil {
		return false, err
	}

	target := num.InfZero
	if strict {
		target = num.Epsilon(-1)
	}
	numerator, err := target.Sub(restLB)
	if err != nil {
		return false, err
	}
	candidate, err := numerator.DivRat(c)
	if err != nil {
		return false, err
	}

	if c.Sign() > 0 {
		return e.SetUB(v, candidate, reason)
	}
	return e.SetLB(v, candidate, reason)
}

// String renders every variable's name (or index), value and active
// bounds, sorted by index, for diagnostics (spec §6 "Textual
// rendering").
func (e *Engine) String() string {
	ids := make([]int, 0, len(e.vars))
	for i := range e.vars {
		ids = append(ids, i)
	}
	sort.Ints(ids)
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ", "
		}
		vr := e.vars[id]
		label := vr.name
		if label == "" {
			label = fmt.Sprintf("x%d", id)
		}
		out += fmt.Sprintf("%s=%s[%s,%s]", label, vr.value.String(), e.LB(Var(id)).String(), e.UB(Var(id)).String())
	}
	return out
}
