// Package num implements the exact numeric primitives the solver core
// is built on: Rational, an exact rational extended with signed
// infinities, and InfRational, a rational augmented with an
// infinitesimal coefficient used to encode strict inequalities.
package num

import (
	"fmt"
	"math"
)

// Rational is a normalized pair (num, den) of signed 64-bit integers.
// den is always >= 0 and gcd(|num|, |den|) == 1. den == 0 encodes a
// signed infinity, sign taken from num; (0, 0) is never a valid value.
// Every constructor and arithmetic operation below runs the pair
// through normalize before returning it, per spec §4.1.
type Rational struct {
	num, den int64
}

// Zero, PositiveInfinity and NegativeInfinity are the three constants
// spec §3.1 names explicitly.
var (
	Zero             = Rational{num: 0, den: 1}
	PositiveInfinity = Rational{num: 1, den: 0}
	NegativeInfinity = Rational{num: -1, den: 0}
)

// New builds a normalized Rational from a numerator and denominator. It
// rejects the (0, 0) pair, which has no representable meaning (neither
// zero nor an infinity).
func New(n, d int64) (Rational, error) {
	if n == 0 && d == 0 {
		return Rational{}, newArithmeticError("num.Rational.New", "0/0 is not a representable rational")
	}
	return normalize(n, d), nil
}

// MustNew is New but panics on error; useful for constant tables in
// tests and call sites that construct from literals known to be valid.
func MustNew(n, d int64) Rational {
	r, err := New(n, d)
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt injects an integer as a Rational with denominator 1.
func FromInt(n int64) Rational {
	return Rational{num: n, den: 1}
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// normalize reduces (n, d) to lowest terms with den >= 0. It assumes
// (n, d) != (0, 0); callers enforce that invariant.
func normalize(n, d int64) Rational {
	if d == 0 {
		if n > 0 {
			return Rational{num: 1, den: 0}
		}
		return Rational{num: -1, den: 0}
	}
	if n == 0 {
		return Rational{num: 0, den: 1}
	}
	g := gcd(n, d)
	n, d = n/g, d/g
	if d < 0 {
		n, d = -n, -d
	}
	return Rational{num: n, den: d}
}

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool { return r.den != 0 && r.num == 0 }

// IsInfinite reports whether r is +/- infinity.
func (r Rational) IsInfinite() bool { return r.den == 0 }

// Sign returns -1, 0 or 1.
func (r Rational) Sign() int {
	switch {
	case r.num > 0:
		return 1
	case r.num < 0:
		return -1
	default:
		return 0
	}
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: -r.num, den: r.den}
}

// Add returns r + s, failing if both are infinite with opposite signs.
func (r Rational) Add(s Rational) (Rational, error) {
	if r.IsInfinite() && s.IsInfinite() {
		if r.Sign() != s.Sign() {
			return Rational{}, newArithmeticError("num.Rational.Add", "infinity + infinity of opposite sign is indeterminate")
		}
		return r, nil
	}
	if r.IsInfinite() {
		return r, nil
	}
	if s.IsInfinite() {
		return s, nil
	}
	return normalize(r.num*s.den+s.num*r.den, r.den*s.den), nil
}

// Sub returns r - s, failing if both are equal infinities.
func (r Rational) Sub(s Rational) (Rational, error) {
	if r.IsInfinite() && s.IsInfinite() {
		if r.Sign() == s.Sign() {
			return Rational{}, newArithmeticError("num.Rational.Sub", "infinity - infinity of equal sign is indeterminate")
		}
		return r, nil
	}
	if r.IsInfinite() {
		return r, nil
	}
	if s.IsInfinite() {
		return s.Neg(), nil
	}
	return normalize(r.num*s.den-s.num*r.den, r.den*s.den), nil
}

// Mul returns r * s, failing if one operand is zero and the other
// infinite.
func (r Rational) Mul(s Rational) (Rational, error) {
	if (r.IsZero() && s.IsInfinite()) || (s.IsZero() && r.IsInfinite()) {
		return Rational{}, newArithmeticError("num.Rational.Mul", "0 * infinity is indeterminate")
	}
	if r.IsInfinite() || s.IsInfinite() {
		sign := r.Sign() * s.Sign()
		if sign >= 0 {
			return PositiveInfinity, nil
		}
		return NegativeInfinity, nil
	}
	return normalize(r.num*s.num, r.den*s.den), nil
}

// Div returns r / s, failing if both are zero or both are infinite.
func (r Rational) Div(s Rational) (Rational, error) {
	if r.IsZero() && s.IsZero() {
		return Rational{}, newArithmeticError("num.Rational.Div", "0/0 is indeterminate")
	}
	if r.IsInfinite() && s.IsInfinite() {
		return Rational{}, newArithmeticError("num.Rational.Div", "infinity/infinity is indeterminate")
	}
	if s.IsZero() {
		if r.Sign() >= 0 {
			return PositiveInfinity, nil
		}
		return NegativeInfinity, nil
	}
	if r.IsInfinite() {
		sign := r.Sign() * s.Sign()
		if sign >= 0 {
			return PositiveInfinity, nil
		}
		return NegativeInfinity, nil
	}
	if s.IsInfinite() {
		return Zero, nil
	}
	return normalize(r.num*s.den, r.den*s.num), nil
}

// AddInt, SubInt, MulInt and DivInt are the integer-scalar counterparts
// spec §4.1 requires, policed identically to their Rational versions
// (e.g. infinity *= 0 still fails).
func (r Rational) AddInt(n int64) (Rational, error) { return r.Add(FromInt(n)) }
func (r Rational) SubInt(n int64) (Rational, error) { return r.Sub(FromInt(n)) }
func (r Rational) MulInt(n int64) (Rational, error) { return r.Mul(FromInt(n)) }
func (r Rational) DivInt(n int64) (Rational, error) { return r.Div(FromInt(n)) }

// AddAssign, SubAssign, MulAssign and DivAssign are the in-place
// counterparts of Add/Sub/Mul/Div, mutating the receiver.
func (r *Rational) AddAssign(s Rational) error {
	v, err := r.Add(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r *Rational) SubAssign(s Rational) error {
	v, err := r.Sub(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r *Rational) MulAssign(s Rational) error {
	v, err := r.Mul(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r *Rational) DivAssign(s Rational) error {
	v, err := r.Div(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Cmp returns -1, 0 or 1 according to whether r is less than, equal to,
// or greater than s. Comparison is total.
func (r Rational) Cmp(s Rational) int {
	if r == s {
		return 0
	}
	// cross-multiply, accounting for infinities via sign comparison.
	switch {
	case r.IsInfinite() || s.IsInfinite():
		rv, sv := r.orderKey(), s.orderKey()
		switch {
		case rv < sv:
			return -1
		case rv > sv:
			return 1
		default:
			return 0
		}
	default:
		lhs := r.num * s.den
		rhs := s.num * r.den
		switch {
		case lhs < rhs:
			return -1
		case lhs > rhs:
			return 1
		default:
			return 0
		}
	}
}

// orderKey gives infinities a value strictly outside any finite
// rational's cross-multiplied range, for ordering purposes only.
func (r Rational) orderKey() float64 {
	if r.den == 0 {
		return math.Inf(int(r.num))
	}
	return float64(r.num) / float64(r.den)
}

func (r Rational) Less(s Rational) bool    { return r.Cmp(s) < 0 }
func (r Rational) LessEq(s Rational) bool  { return r.Cmp(s) <= 0 }
func (r Rational) Greater(s Rational) bool { return r.Cmp(s) > 0 }
func (r Rational) GreaterEq(s Rational) bool {
	return r.Cmp(s) >= 0
}

// Num and Den expose the normalized components, mainly for tests.
func (r Rational) Num() int64 { return r.num }
func (r Rational) Den() int64 { return r.den }

// String renders integers bare, fractions as "num/den", and infinities
// as the Unicode ∞ / -∞, per spec §6.
func (r Rational) String() string {
	switch {
	case r.den == 0 && r.num > 0:
		return "∞"
	case r.den == 0:
		return "-∞"
	case r.den == 1:
		return fmt.Sprintf("%d", r.num)
	default:
		return fmt.Sprintf("%d/%d", r.num, r.den)
	}
}
