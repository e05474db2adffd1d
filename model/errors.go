package model

import "github.com/xDarkicex/ratiocore/core"

// TypeError is returned when modeling-layer arithmetic is attempted
// across classes that cannot be joined (spec §4.7/§7).
type TypeError struct {
	*core.BaseError
}

func newTypeError(op, message string) *TypeError {
	return &TypeError{core.NewBaseError(op, message)}
}

// LookupError is returned when a class or field name is not registered
// (spec §7).
type LookupError struct {
	*core.BaseError
}

func newLookupError(op, message string) *LookupError {
	return &LookupError{core.NewBaseError(op, message)}
}
