package num

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfRationalOrdering(t *testing.T) {
	a := NewInfRational(Zero, FromInt(1)) // 0 + 1ε
	b := NewInfRational(FromInt(100), Zero)

	assert.True(t, a.Less(b))
	assert.True(t, a.Neg().Less(b))
	assert.True(t, NewInfRational(FromInt(1), FromInt(1)).Greater(a))
}

func TestInfRationalStrictBoundEncoding(t *testing.T) {
	// for any finite a and positive integer k, a < a + k*ε
	base := FromRational(MustNew(5, 1))
	for k := int64(1); k <= 5; k++ {
		bumped, err := base.Add(Epsilon(k))
		assert.NoError(t, err)
		assert.True(t, base.Less(bumped))
	}
}

func TestInfRationalDisplay(t *testing.T) {
	assert.Equal(t, "5", FromRational(MustNew(5, 1)).String())
	assert.Equal(t, "1ε", Epsilon(1).String())
	v, _ := FromRational(MustNew(5, 1)).Add(Epsilon(2))
	assert.Equal(t, "5 + 2ε", v.String())
}
