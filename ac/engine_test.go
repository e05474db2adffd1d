package ac

import (
	"testing"

	set "github.com/hashicorp/go-set/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVarInitialEqualsCurrent(t *testing.T) {
	e := NewEngine()
	red, green, blue := NewValue("red"), NewValue("green"), NewValue("blue")
	v := e.NewVar([]*Value{red, green, blue})

	assert.Equal(t, 3, e.Domain(v).Size())
	assert.True(t, e.Domain(v).Contains(red))
	assert.True(t, e.Domain(v).Contains(green))
	assert.True(t, e.Domain(v).Contains(blue))
}

func TestCurrentNeverExceedsInitial(t *testing.T) {
	e := NewEngine()
	red, green := NewValue("red"), NewValue("green")
	v := e.NewVar([]*Value{red, green})

	allowed := set.New[*Value](1)
	allowed.Insert(red)
	require.True(t, e.Restrict(v, allowed))

	assert.Equal(t, 1, e.Domain(v).Size())
	assert.True(t, e.InitialDomain(v).Subset(e.Domain(v)))
}

func TestRestrictFiresListenerExactlyOnce(t *testing.T) {
	e := NewEngine()
	red, green := NewValue("red"), NewValue("green")
	v := e.NewVar([]*Value{red, green})

	calls := 0
	e.AddListener(v, listenerFunc(func(_ *set.Set[*Value]) { calls++ }))

	allowed := set.New[*Value](1)
	allowed.Insert(red)
	require.True(t, e.Restrict(v, allowed))
	assert.Equal(t, 1, calls)

	// Restricting to the same set again is a no-op: no new listener fire.
	ok := e.Restrict(v, allowed)
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}

func TestRemoveSingleValue(t *testing.T) {
	e := NewEngine()
	red, green := NewValue("red"), NewValue("green")
	v := e.NewVar([]*Value{red, green})

	assert.True(t, e.Remove(v, red))
	assert.False(t, e.Domain(v).Contains(red))
	assert.True(t, e.Domain(v).Contains(green))

	assert.False(t, e.Remove(v, red)) // already gone
}

func TestValueIdentityIsByReference(t *testing.T) {
	a := NewValue("x")
	b := NewValue("x")
	assert.NotSame(t, a, b) // equal Label, distinct identity

	e := NewEngine()
	v := e.NewVar([]*Value{a})
	assert.False(t, e.Domain(v).Contains(b))
}

type listenerFunc func(*set.Set[*Value])

func (f listenerFunc) OnUpdate(s *set.Set[*Value]) { f(s) }
