package la

import "github.com/xDarkicex/ratiocore/core"

// InfeasibleError is returned by SetRow when the basic variable appears
// in its own tableau row; the tableau is left unchanged. Bound conflicts
// (a lower bound above the active upper bound, or the reverse) are not
// reported through it: SetLB, SetUB and NewLt return false with a nil
// error for those.
type InfeasibleError struct {
	*core.BaseError
}

func newInfeasibleError(op, message string) *InfeasibleError {
	return &InfeasibleError{core.NewBaseError(op, message)}
}
