// Package ac implements the arc-consistency engine: finite-domain
// variables whose current domain narrows over time but never grows
// past its initial set (spec §3.4/§4.6).
package ac

import (
	"github.com/hashicorp/go-hclog"
	set "github.com/hashicorp/go-set/v3"

	"github.com/xDarkicex/ratiocore/core"
)

// Var is an AC-engine variable index.
type Var int

// Value is an opaque domain value. Identity is by pointer, matching the
// spec's "equality and hashing are by reference identity, not
// structural content" — two distinct *Value with equal Label are still
// distinct domain members.
type Value struct {
	// Label is an optional diagnostic label; it plays no role in
	// equality or hashing.
	Label string
}

// NewValue allocates a fresh opaque domain value.
func NewValue(label string) *Value { return &Value{Label: label} }

// Listener is notified after a successful domain restriction.
type Listener = core.Listener[*set.Set[*Value]]

type varRecord struct {
	initial   *set.Set[*Value]
	current   *set.Set[*Value]
	listeners []Listener
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger attaches a structured logger; by default the engine logs
// nothing.
func WithLogger(l hclog.Logger) Option {
	return func(e *Engine) { e.log = core.NewComponentLogger(l, "ac") }
}

// Engine is the arc-consistency engine (spec §4.6).
type Engine struct {
	log  hclog.Logger
	vars []varRecord
}

// NewEngine creates an empty AC engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{log: hclog.NewNullLogger()}
	for _, o := range opts {
		o(e)
	}
	return e
}
