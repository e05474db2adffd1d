package num

import "github.com/xDarkicex/ratiocore/core"

// ArithmeticError is returned whenever a Rational or InfRational
// operation would produce an indeterminate form (spec §4.1): infinities
// of opposite sign added together, infinities of equal sign subtracted,
// zero times infinity, or zero divided by zero/infinity divided by
// infinity. These fail fast rather than silently producing a
// non-representable value.
type ArithmeticError struct {
	*core.BaseError
}

func newArithmeticError(op, message string) *ArithmeticError {
	return &ArithmeticError{core.NewBaseError(op, message)}
}
