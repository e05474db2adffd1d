package model

import (
	"fmt"

	"github.com/xDarkicex/ratiocore/core"
	"github.com/xDarkicex/ratiocore/lin"
	"github.com/xDarkicex/ratiocore/num"
)

// join computes the arithmetic-join class of a set of arithmetic
// operands (spec §4.7): all-Int -> Int; all-Real, or a mix of Int and
// Real -> Real; anything else (a non-arithmetic operand) fails with a
// TypeError.
func (r *Registry) join(operands []*Object) (*Class, error) {
	sawReal := false
	for _, o := range operands {
		if !o.Class.IsArithmetic() {
			return nil, newTypeError("model.Registry.join", fmt.Sprintf("operand of class %q is not arithmetic", o.Class.Name))
		}
		if o.Class.Kind == KindReal {
			sawReal = true
		}
	}
	if sawReal {
		return r.Class("real")
	}
	return r.Class("int")
}

// NewSum builds the n-ary sum of operands, per the arithmetic join
// rule. The result's LinearForm is the sum of the operands' forms.
func (r *Registry) NewSum(operands ...*Object) (*Object, error) {
	class, err := r.join(operands)
	if err != nil {
		return nil, err
	}
	form := lin.Zero()
	for _, o := range operands {
		form, err = form.Add(o.Form)
		if err != nil {
			return nil, core.Wrap("model.Registry.NewSum", "summing linear forms", err)
		}
	}
	return newArithmeticObject(class, form), nil
}

// NewSub builds lhs - rhs.
func (r *Registry) NewSub(lhs, rhs *Object) (*Object, error) {
	class, err := r.join([]*Object{lhs, rhs})
	if err != nil {
		return nil, err
	}
	form, err := lhs.Form.Sub(rhs.Form)
	if err != nil {
		return nil, core.Wrap("model.Registry.NewSub", "subtracting linear forms", err)
	}
	return newArithmeticObject(class, form), nil
}

// NewProduct builds the n-ary product of operands. A LinearForm can
// only represent a product in which at most one operand is
// non-constant (otherwise the result is non-linear); at most one
// non-constant factor is therefore required, and every constant
// factor scales the running form.
func (r *Registry) NewProduct(operands ...*Object) (*Object, error) {
	class, err := r.join(operands)
	if err != nil {
		return nil, err
	}
	form := lin.NewConstant(num.FromInt(1))
	haveVariable := false
	for _, o := range operands {
		if o.Form.IsConstant() {
			form, err = form.MulScalar(o.Form.Known())
			if err != nil {
				return nil, core.Wrap("model.Registry.NewProduct", "scaling linear form by constant factor", err)
			}
			continue
		}
		if haveVariable {
			return nil, newTypeError("model.Registry.NewProduct", "product of two non-constant arithmetic operands is not linear")
		}
		haveVariable = true
		form, err = o.Form.MulScalar(form.Known())
		if err != nil {
			return nil, core.Wrap("model.Registry.NewProduct", "scaling linear form by accumulated constant", err)
		}
	}
	return newArithmeticObject(class, form), nil
}

// NewDivision builds lhs / rhs. rhs must be constant; dividing by a
// variable is not representable as a LinearForm.
func (r *Registry) NewDivision(lhs, rhs *Object) (*Object, error) {
	class, err := r.join([]*Object{lhs, rhs})
	if err != nil {
		return nil, err
	}
	if !rhs.Form.IsConstant() {
		return nil, newTypeError("model.Registry.NewDivision", "division by a non-constant arithmetic operand is not linear")
	}
	form, err := lhs.Form.DivScalar(rhs.Form.Known())
	if err != nil {
		return nil, core.Wrap("model.Registry.NewDivision", "dividing linear form by constant", err)
	}
	return newArithmeticObject(class, form), nil
}
