package sat

import "errors"

// ErrNotAssigned is the sentinel panic value for retracting a variable
// that is currently Undef — a programming error, per spec §7's
// "out-of-bound retraction" category.
var ErrNotAssigned = errors.New("sat: retract of unassigned variable")
