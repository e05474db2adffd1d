package num

import "fmt"

// InfRational represents rat + inf*ε, where ε is a positive
// infinitesimal smaller than every positive rational. It is how the LA
// engine encodes strict inequalities without perturbing the underlying
// rational geometry: a < b becomes a <= b - ε; a > b becomes a >= b + ε
// (spec §3.1/§4.2).
type InfRational struct {
	Rat Rational
	Inf Rational
}

// InfZero, InfPositiveInfinity and InfNegativeInfinity mirror
// Rational's constants with a zero infinitesimal coefficient.
var (
	InfZero             = InfRational{Rat: Zero, Inf: Zero}
	InfPositiveInfinity = InfRational{Rat: PositiveInfinity, Inf: Zero}
	InfNegativeInfinity = InfRational{Rat: NegativeInfinity, Inf: Zero}
)

// NewInfRational builds an InfRational from its two components.
func NewInfRational(rat, inf Rational) InfRational {
	return InfRational{Rat: rat, Inf: inf}
}

// FromRational lifts a plain Rational with a zero infinitesimal part.
func FromRational(r Rational) InfRational {
	return InfRational{Rat: r, Inf: Zero}
}

// Epsilon returns k*ε, useful for building "b - ε" / "b + ε" bounds:
// FromRational(b).Sub(Epsilon(1)).
func Epsilon(k int64) InfRational {
	return InfRational{Rat: Zero, Inf: FromInt(k)}
}

// Add adds component-wise.
func (a InfRational) Add(b InfRational) (InfRational, error) {
	rat, err := a.Rat.Add(b.Rat)
	if err != nil {
		return InfRational{}, err
	}
	inf, err := a.Inf.Add(b.Inf)
	if err != nil {
		return InfRational{}, err
	}
	return InfRational{Rat: rat, Inf: inf}, nil
}

// Sub subtracts component-wise.
func (a InfRational) Sub(b InfRational) (InfRational, error) {
	rat, err := a.Rat.Sub(b.Rat)
	if err != nil {
		return InfRational{}, err
	}
	inf, err := a.Inf.Sub(b.Inf)
	if err != nil {
		return InfRational{}, err
	}
	return InfRational{Rat: rat, Inf: inf}, nil
}

// Neg negates both components.
func (a InfRational) Neg() InfRational {
	return InfRational{Rat: a.Rat.Neg(), Inf: a.Inf.Neg()}
}

// MulRat scales both components by a Rational.
func (a InfRational) MulRat(s Rational) (InfRational, error) {
	rat, err := a.Rat.Mul(s)
	if err != nil {
		return InfRational{}, err
	}
	inf, err := a.Inf.Mul(s)
	if err != nil {
		return InfRational{}, err
	}
	return InfRational{Rat: rat, Inf: inf}, nil
}

// DivRat divides both components by a Rational.
func (a InfRational) DivRat(s Rational) (InfRational, error) {
	rat, err := a.Rat.Div(s)
	if err != nil {
		return InfRational{}, err
	}
	inf, err := a.Inf.Div(s)
	if err != nil {
		return InfRational{}, err
	}
	return InfRational{Rat: rat, Inf: inf}, nil
}

// MulInt scales both components by an integer.
func (a InfRational) MulInt(n int64) (InfRational, error) { return a.MulRat(FromInt(n)) }

// DivInt divides both components by an integer.
func (a InfRational) DivInt(n int64) (InfRational, error) { return a.DivRat(FromInt(n)) }

// Cmp orders lexicographically: compare Rat; on a tie, compare Inf.
// This gives, for any finite a and positive integer k, a < a + k*ε.
func (a InfRational) Cmp(b InfRational) int {
	if c := a.Rat.Cmp(b.Rat); c != 0 {
		return c
	}
	return a.Inf.Cmp(b.Inf)
}

func (a InfRational) Less(b InfRational) bool      { return a.Cmp(b) < 0 }
func (a InfRational) LessEq(b InfRational) bool    { return a.Cmp(b) <= 0 }
func (a InfRational) Greater(b InfRational) bool   { return a.Cmp(b) > 0 }
func (a InfRational) GreaterEq(b InfRational) bool { return a.Cmp(b) >= 0 }
func (a InfRational) Equal(b InfRational) bool     { return a.Cmp(b) == 0 }

// IsInfinite reports whether the rational part is an infinity; the
// infinitesimal part never carries an independent infinity.
func (a InfRational) IsInfinite() bool { return a.Rat.IsInfinite() }

// String renders "r", "kε" or "r + kε" depending on which components
// are present, per spec §6.
func (a InfRational) String() string {
	switch {
	case a.Inf.IsZero():
		return a.Rat.String()
	case a.Rat.IsZero():
		return fmt.Sprintf("%sε", a.Inf.String())
	default:
		if a.Inf.Sign() < 0 {
			return fmt.Sprintf("%s - %sε", a.Rat.String(), a.Inf.Neg().String())
		}
		return fmt.Sprintf("%s + %sε", a.Rat.String(), a.Inf.String())
	}
}
