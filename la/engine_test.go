package la

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/ratiocore/core"
	"github.com/xDarkicex/ratiocore/lin"
	"github.com/xDarkicex/ratiocore/num"
)

func TestBoundLedgerActiveIsMax(t *testing.T) {
	e := NewEngine()
	v := e.NewVar()

	ok, err := e.SetLB(v, num.FromRational(num.FromInt(10)), Reason(1))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = e.SetLB(v, num.FromRational(num.FromInt(20)), Reason(2))
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, e.LB(v).Equal(num.FromRational(num.FromInt(20))))

	e.UnsetLB(v, num.FromRational(num.FromInt(20)), Reason(2))
	assert.True(t, e.LB(v).Equal(num.FromRational(num.FromInt(10))))
}

func TestSetLBConflictsWithTighterUB(t *testing.T) {
	e := NewEngine()
	v := e.NewVar()

	_, err := e.SetUB(v, num.FromRational(num.FromInt(5)), core.NoReason)
	require.NoError(t, err)

	ok, err := e.SetLB(v, num.FromRational(num.FromInt(10)), core.NoReason)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewLtNonStrictTightensUpperBound(t *testing.T) {
	e := NewEngine()
	v := e.NewVar()

	lhs := lin.NewVar(v)
	rhs := lin.NewConstant(num.FromInt(10))

	ok, err := e.NewLt(lhs, rhs, false, Reason(1))
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, e.UB(v).Equal(num.FromRational(num.FromInt(10))))
}

func TestNewLtStrictTightensBelowBound(t *testing.T) {
	e := NewEngine()
	v := e.NewVar()

	lhs := lin.NewVar(v)
	rhs := lin.NewConstant(num.FromInt(10))

	ok, err := e.NewLt(lhs, rhs, true, Reason(1))
	require.NoError(t, err)
	require.True(t, ok)

	ub := e.UB(v)
	assert.True(t, ub.Less(num.FromRational(num.FromInt(10))))
	want, err := num.FromRational(num.FromInt(10)).Sub(num.Epsilon(1))
	require.NoError(t, err)
	assert.True(t, ub.Equal(want))
}

func TestNewLtImpliesTransitiveLowerBound(t *testing.T) {
	// -v + y <= 0, with y in [3, 10], implies v >= 3.
	e := NewEngine()
	v := e.NewVar()
	y := e.NewVar()

	ok, err := e.SetLB(y, num.FromRational(num.FromInt(3)), core.NoReason)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = e.SetUB(y, num.FromRational(num.FromInt(10)), core.NoReason)
	require.NoError(t, err)
	require.True(t, ok)

	lhs, err := lin.NewVar(v).Neg().Add(lin.NewVar(y))
	require.NoError(t, err)
	rhs := lin.Zero()

	ok, err = e.NewLt(lhs, rhs, false, Reason(1))
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, e.LB(v).Equal(num.FromRational(num.FromInt(3))))
}

func TestUnboundedVarsReportInfiniteBounds(t *testing.T) {
	e := NewEngine()
	v := e.NewVar()
	assert.True(t, e.LB(v).Equal(num.InfNegativeInfinity))
	assert.True(t, e.UB(v).Equal(num.InfPositiveInfinity))
}

func TestSetRowRejectsSelfReference(t *testing.T) {
	e := NewEngine()
	v := e.NewVar()
	err := e.SetRow(v, lin.NewVar(v))
	assert.Error(t, err)
}
