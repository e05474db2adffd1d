package sat

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/xDarkicex/ratiocore/core"
)

type varRecord struct {
	assign    Value
	reason    int // clause index, or -1 for core.NoReason
	watchPos  []int
	watchNeg  []int
	occurs    []int // every clause mentioning this var, for retraction (spec Design Note)
	listeners []core.Listener[Value]
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithLogger attaches a structured logger; by default the solver logs
// nothing.
func WithLogger(l hclog.Logger) Option {
	return func(s *Solver) { s.log = core.NewComponentLogger(l, "sat") }
}

// Solver is the SAT engine: Boolean variables, clauses, and
// two-watched-literal unit propagation (spec §4.4).
type Solver struct {
	log hclog.Logger

	vars    []varRecord
	clauses []*Clause

	queue []Var
	qi    int
	trail []Var

	// Conflict scaffolding (spec §4.4 "Conflict path"): populated on the
	// drain that discovers a conflict. AnalyzeConflict is a hook for a
	// future CDCL layer; it is intentionally inert (spec Non-goals).
	conflictClause *Clause
	conflictTrail  []Var
}

// NewSolver creates an empty SAT engine.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{log: hclog.NewNullLogger()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// NewVar allocates a fresh Undef variable.
func (s *Solver) NewVar() Var {
	s.vars = append(s.vars, varRecord{assign: Undef, reason: int(core.NoReason)})
	return Var(len(s.vars) - 1)
}

// NumVars returns how many variables have been allocated.
func (s *Solver) NumVars() int { return len(s.vars) }

// Value returns v's current assignment.
func (s *Solver) Value(v Var) Value { return s.vars[v].assign }

// LitValue returns l's value honoring its sign.
func (s *Solver) LitValue(l Literal) Value {
	a := s.vars[l.v].assign
	if a == Undef {
		return Undef
	}
	if l.neg {
		if a == True {
			return False
		}
		return True
	}
	return a
}

// Reason returns the clause index that forced v's current assignment,
// or core.NoReason if v is unassigned, a decision, or was asserted
// externally.
func (s *Solver) Reason(v Var) Reason { return Reason(s.vars[v].reason) }

// AddListener subscribes l to every future assignment of v; callbacks
// fire synchronously, in registration order, right after the
// assignment that triggered them (spec §5 "Ordering guarantees").
func (s *Solver) AddListener(v Var, l core.Listener[Value]) {
	s.vars[v].listeners = append(s.vars[v].listeners, l)
}

func (s *Solver) notify(v Var) {
	val := s.vars[v].assign
	for _, l := range s.vars[v].listeners {
		l.OnUpdate(val)
	}
}

// AddClause registers clause c. It returns false iff c is immediately
// unsatisfiable: the empty clause, or a unit clause whose assertion
// conflicts with the current assignment (spec §4.4).
func (s *Solver) AddClause(lits []Literal) bool {
	if len(lits) == 0 {
		s.log.Debug("empty clause added")
		return false
	}
	if len(lits) == 1 {
		return s.Assert(lits[0])
	}

	c := &Clause{idx: len(s.clauses), Lits: append([]Literal(nil), lits...)}
	s.clauses = append(s.clauses, c)
	s.addWatch(c.Lits[0], c.idx)
	s.addWatch(c.Lits[1], c.idx)
	seen := make(map[Var]bool, len(c.Lits))
	for _, l := range c.Lits {
		if !seen[l.v] {
			seen[l.v] = true
			s.vars[l.v].occurs = append(s.vars[l.v].occurs, c.idx)
		}
	}
	s.log.Trace("clause added", "clause", c.String())
	return true
}

func (s *Solver) addWatch(l Literal, clauseIdx int) {
	if l.neg {
		s.vars[l.v].watchNeg = append(s.vars[l.v].watchNeg, clauseIdx)
	} else {
		s.vars[l.v].watchPos = append(s.vars[l.v].watchPos, clauseIdx)
	}
}

// Assert enqueues lit with no reason (a decision or external fact),
// drains the propagation queue, and returns false on conflict.
func (s *Solver) Assert(lit Literal) bool {
	defer s.resetQueue()
	if !s.enqueue(lit, core.NoReason) {
		return false
	}
	return s.drain()
}

func (s *Solver) resetQueue() {
	s.queue = s.queue[:0]
	s.qi = 0
}

// enqueue tries to make lit true. If its variable is already assigned,
// it succeeds iff the existing assignment already satisfies lit.
// Otherwise it assigns, records the reason, appends to the trail and
// propagation queue, and fires listeners.
func (s *Solver) enqueue(lit Literal, reason Reason) bool {
	want := lit.wantValue()
	cur := s.vars[lit.v].assign
	if cur != Undef {
		return cur == want
	}
	s.vars[lit.v].assign = want
	s.vars[lit.v].reason = int(reason)
	s.trail = append(s.trail, lit.v)
	s.queue = append(s.queue, lit.v)
	s.notify(lit.v)
	return true
}

// drain fans out every enqueued assignment until the queue empties or a
// conflict is found, in FIFO order (spec §5 "Ordering guarantees").
func (s *Solver) drain() bool {
	for s.qi < len(s.queue) {
		v := s.queue[s.qi]
		s.qi++
		if !s.propagate(v) {
			return false
		}
	}
	return true
}

// propagate re-examines every clause watched through the side of v
// that just became false, per spec §4.4 steps 1-3.
func (s *Solver) propagate(v Var) bool {
	assign := s.vars[v].assign
	var falseSign bool // sign of the literal of v that just became false
	var watchList []int
	if assign == True {
		falseSign = true
		watchList = s.vars[v].watchNeg
	} else {
		falseSign = false
		watchList = s.vars[v].watchPos
	}

	kept := watchList[:0]
	for i := 0; i < len(watchList); i++ {
		ci := watchList[i]
		c := s.clauses[ci]

		if c.Lits[0].v == v && c.Lits[0].neg == falseSign {
			c.Lits[0], c.Lits[1] = c.Lits[1], c.Lits[0]
		}

		if s.LitValue(c.Lits[0]) == True {
			// Lazy: clause already satisfied by its other watch, leave watches be.
			kept = append(kept, ci)
			continue
		}

		replaced := false
		for k := 2; k < len(c.Lits); k++ {
			lk := c.Lits[k]
			if s.LitValue(lk) != False {
				c.Lits[1], c.Lits[k] = lk, c.Lits[1]
				s.addWatch(lk, ci)
				replaced = true
				break
			}
		}
		if replaced {
			continue
		}

		kept = append(kept, ci)
		if !s.enqueue(c.Lits[0], Reason(ci)) {
			kept = append(kept, watchList[i+1:]...)
			s.setWatchList(v, falseSign, kept)
			s.recordConflict(c)
			return false
		}
	}
	s.setWatchList(v, falseSign, kept)
	return true
}

func (s *Solver) setWatchList(v Var, negSide bool, list []int) {
	if negSide {
		s.vars[v].watchNeg = list
	} else {
		s.vars[v].watchPos = list
	}
}

func (s *Solver) recordConflict(c *Clause) {
	s.conflictClause = c
	s.conflictTrail = append([]Var(nil), s.trail...)
	s.log.Debug("conflict", "clause", c.String())
}

// LastConflict returns the clause that falsified propagation and the
// ordered list of variables assigned up to that point, or (nil, nil)
// if no conflict has occurred since the solver's construction (spec
// §4.4 "Conflict path"). AnalyzeConflict is the hook a CDCL layer would
// replace; here it is an inert stub (spec Non-goals).
func (s *Solver) LastConflict() (*Clause, []Var) {
	return s.conflictClause, s.conflictTrail
}

// AnalyzeConflict is an intentionally empty hook: the spec mandates
// preserving the conflict/trail scaffolding so a CDCL learning policy
// can be layered on top, but does not mandate learnt-clause synthesis
// (spec §4.4, §9).
func (s *Solver) AnalyzeConflict() (learnt *Clause, backtrackTo int) {
	return nil, -1
}

// Retract unassigns var and every variable transitively reachable
// through clauses mentioning it that are currently assigned,
// traversed deterministically by clause-membership order (spec §3.2
// Design Note "Retraction scope"). Retracting an already-Undef
// variable is a programming error and panics (spec §7).
func (s *Solver) Retract(v Var) {
	if s.vars[v].assign == Undef {
		panic(fmt.Errorf("%w: variable %d", ErrNotAssigned, v))
	}

	visited := map[Var]bool{v: true}
	queue := []Var{v}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, ci := range s.vars[u].occurs {
			for _, l := range s.clauses[ci].Lits {
				w := l.v
				if s.vars[w].assign != Undef && !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}
	}

	newTrail := s.trail[:0]
	for _, u := range s.trail {
		if visited[u] {
			s.vars[u].assign = Undef
			s.vars[u].reason = int(core.NoReason)
		} else {
			newTrail = append(newTrail, u)
		}
	}
	s.trail = newTrail
}

// String renders variables as "bi: value" then clauses joined by ∨,
// per spec §6.
func (s *Solver) String() string {
	var b strings.Builder
	for i, vr := range s.vars {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "b%d: %s", i, vr.assign)
	}
	b.WriteString(" | ")
	for i, c := range s.clauses {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	return b.String()
}
