package ac

import (
	set "github.com/hashicorp/go-set/v3"
)

// NewVar installs a finite-domain variable whose initial and current
// domain both equal domain (spec §4.6). The initial domain is
// immutable thereafter; the current domain only ever shrinks.
func (e *Engine) NewVar(domain []*Value) Var {
	initial := set.New[*Value](len(domain))
	for _, v := range domain {
		initial.Insert(v)
	}
	e.vars = append(e.vars, varRecord{
		initial: initial,
		current: initial.Copy(),
	})
	return Var(len(e.vars) - 1)
}

// Domain returns v's current domain.
func (e *Engine) Domain(v Var) *set.Set[*Value] {
	return e.vars[v].current
}

// InitialDomain returns v's immutable initial domain.
func (e *Engine) InitialDomain(v Var) *set.Set[*Value] {
	return e.vars[v].initial
}

// AddListener subscribes l to every successful restriction of v's
// domain; it fires exactly once per restriction, after the restriction
// has taken effect (spec §4.6).
func (e *Engine) AddListener(v Var, l Listener) {
	e.vars[v].listeners = append(e.vars[v].listeners, l)
}

func (e *Engine) notify(v Var) {
	cur := e.vars[v].current
	for _, l := range e.vars[v].listeners {
		l.OnUpdate(cur)
	}
}

// Restrict narrows v's current domain to its intersection with allowed.
// It is a no-op (and reports false, no listener fires) if the
// intersection equals the current domain exactly; otherwise it installs
// the narrower domain and fires v's listeners once (spec §4.6 "listeners
// fire exactly once per successful restriction"). The filtering
// procedure that decides which values survive is left to the caller
// (spec §4.6 leaves it open); Restrict only enforces the subset
// invariant and the listener-firing contract.
func (e *Engine) Restrict(v Var, allowed *set.Set[*Value]) bool {
	cur := e.vars[v].current
	narrowed := set.From[*Value](cur.Intersect(allowed).Slice())
	if narrowed.Size() == cur.Size() {
		return false
	}
	e.vars[v].current = narrowed
	e.log.Trace("domain restricted", "var", v, "from", cur.Size(), "to", narrowed.Size())
	e.notify(v)
	return true
}

// Remove drops a single value from v's current domain, if present. It
// reports whether the domain actually changed.
func (e *Engine) Remove(v Var, val *Value) bool {
	cur := e.vars[v].current
	if !cur.Contains(val) {
		return false
	}
	cur.Remove(val)
	e.log.Trace("domain value removed", "var", v, "value", val.Label, "remaining", cur.Size())
	e.notify(v)
	return true
}
