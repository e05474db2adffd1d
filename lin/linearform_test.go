package lin

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/ratiocore/num"
)

// snapshot renders l's terms as a plain map for structural diffing,
// since LinearForm's internal coefficient map is unexported.
func snapshot(l LinearForm) map[string]string {
	m := make(map[string]string, len(l.Vars())+1)
	for _, v := range l.Vars() {
		m[fmt.Sprintf("x%d", v)] = l.Coeff(v).String()
	}
	m["known"] = l.Known().String()
	return m
}

func TestSubstituteIdentity(t *testing.T) {
	l, err := NewVar(1).Add(NewVar(2))
	require.NoError(t, err)

	// substituting v by {v: 1, known: 0} must leave l unchanged.
	out, err := l.Substitute(1, NewVar(1))
	require.NoError(t, err)
	assert.Equal(t, l.Coeff(1), out.Coeff(1))
	assert.Equal(t, l.Coeff(2), out.Coeff(2))
	assert.Equal(t, l.Known(), out.Known())
}

func TestSubstituteRemovesAndAdds(t *testing.T) {
	// l = 2*x1 + x2 + 3
	l := NewConstant(num.FromInt(3))
	l, err := l.Add(mustScaled(t, NewVar(1), 2))
	require.NoError(t, err)
	l, err = l.Add(NewVar(2))
	require.NoError(t, err)

	// replace x1 with x3 + 1
	repl, err := NewVar(3).Add(NewConstant(num.FromInt(1)))
	require.NoError(t, err)

	out, err := l.Substitute(1, repl)
	require.NoError(t, err)

	assert.True(t, out.Coeff(1).IsZero())
	assert.Equal(t, num.FromInt(2), out.Coeff(3))
	assert.Equal(t, num.FromInt(1), out.Coeff(2))
	assert.Equal(t, num.FromInt(5), out.Known())
}

func TestNoZeroCoefficientsSurvive(t *testing.T) {
	l, err := NewVar(1).Sub(NewVar(1))
	require.NoError(t, err)
	assert.True(t, l.IsConstant())
	assert.True(t, l.Coeff(1).IsZero())
}

func TestSubstituteMatchesManuallyBuiltForm(t *testing.T) {
	// l = x1 + x2; substitute x1 with 2*x3.
	l, err := NewVar(1).Add(NewVar(2))
	require.NoError(t, err)

	out, err := l.Substitute(1, mustScaled(t, NewVar(3), 2))
	require.NoError(t, err)

	want, err := mustScaled(t, NewVar(3), 2).Add(NewVar(2))
	require.NoError(t, err)

	if diff := cmp.Diff(snapshot(want), snapshot(out)); diff != "" {
		t.Errorf("substituted form mismatch (-want +got):\n%s", diff)
	}
}

func mustScaled(t *testing.T, l LinearForm, n int64) LinearForm {
	t.Helper()
	out, err := l.MulScalar(num.FromInt(n))
	require.NoError(t, err)
	return out
}
