// Package la implements the linear-arithmetic engine: variables with
// multi-reason bound ledgers and a tableau of basic-row linear forms,
// over the num and lin packages (spec §3.3/§4.5).
package la

import (
	"github.com/hashicorp/go-hclog"
	set "github.com/hashicorp/go-set/v3"

	"github.com/xDarkicex/ratiocore/core"
	"github.com/xDarkicex/ratiocore/lin"
	"github.com/xDarkicex/ratiocore/num"
)

// Var is an LA-engine variable index; it is exactly lin.VarID, exposed
// under this package's name for readability at call sites.
type Var = lin.VarID

// Reason identifies why a bound was installed; core.NoReason marks a
// bound with no supporting ledger entry (a decision or external fact).
type Reason = core.Reason

type varRecord struct {
	name  string
	value num.InfRational

	lowerLedger map[num.InfRational]*set.Set[Reason]
	upperLedger map[num.InfRational]*set.Set[Reason]

	rows *set.Set[Var] // tableau rows this var currently appears in
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger attaches a structured logger; by default the engine logs
// nothing.
func WithLogger(l hclog.Logger) Option {
	return func(e *Engine) { e.log = core.NewComponentLogger(l, "la") }
}

// Engine is the linear-arithmetic engine (spec §4.5).
type Engine struct {
	log hclog.Logger

	vars    []varRecord
	tableau map[Var]lin.LinearForm // basic var -> row over non-basic vars
}

// NewEngine creates an empty LA engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{log: hclog.NewNullLogger(), tableau: make(map[Var]lin.LinearForm)}
	for _, o := range opts {
		o(e)
	}
	return e
}
