package core

import "github.com/hashicorp/go-hclog"

// NewComponentLogger returns a named sub-logger for one of the three
// engines or the modeling layer, or a null logger if base is nil. Each
// engine's and the modeling layer's WithLogger option passes its
// hclog.Logger through this; without that option the constructors use
// hclog.NewNullLogger(), so callers that don't care about diagnostics
// never have to thread a logger through.
func NewComponentLogger(base hclog.Logger, name string) hclog.Logger {
	if base == nil {
		base = hclog.NewNullLogger()
	}
	return base.Named(name)
}
