package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/ratiocore/ac"
	"github.com/xDarkicex/ratiocore/la"
	"github.com/xDarkicex/ratiocore/sat"
)

func TestSumOfIntsStaysInt(t *testing.T) {
	r := NewRegistry(sat.NewSolver(), la.NewEngine(), ac.NewEngine())
	a, b := r.NewInt(), r.NewInt()

	sum, err := r.NewSum(a, b)
	require.NoError(t, err)
	assert.Equal(t, KindInt, sum.Class.Kind)
}

func TestSumMixedIntRealJoinsToReal(t *testing.T) {
	r := NewRegistry(sat.NewSolver(), la.NewEngine(), ac.NewEngine())
	i, real := r.NewInt(), r.NewReal()

	sum, err := r.NewSum(i, real)
	require.NoError(t, err)
	assert.Equal(t, KindReal, sum.Class.Kind)
}

func TestSumWithNonArithmeticOperandFails(t *testing.T) {
	r := NewRegistry(sat.NewSolver(), la.NewEngine(), ac.NewEngine())
	i, b := r.NewInt(), r.NewBool()

	_, err := r.NewSum(i, b)
	assert.Error(t, err)
	var typeErr *TypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestSubOfIntsStaysInt(t *testing.T) {
	r := NewRegistry(sat.NewSolver(), la.NewEngine(), ac.NewEngine())
	a, b := r.NewInt(), r.NewInt()

	diff, err := r.NewSub(a, b)
	require.NoError(t, err)
	assert.Equal(t, KindInt, diff.Class.Kind)
}

func TestProductOfTwoNonConstantsFails(t *testing.T) {
	r := NewRegistry(sat.NewSolver(), la.NewEngine(), ac.NewEngine())
	a, b := r.NewInt(), r.NewInt()

	_, err := r.NewProduct(a, b)
	assert.Error(t, err)
}

func TestDivisionByVariableFails(t *testing.T) {
	r := NewRegistry(sat.NewSolver(), la.NewEngine(), ac.NewEngine())
	a, b := r.NewInt(), r.NewInt()

	_, err := r.NewDivision(a, b)
	assert.Error(t, err)
}
