package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/ratiocore/ac"
	"github.com/xDarkicex/ratiocore/la"
	"github.com/xDarkicex/ratiocore/riddle"
	"github.com/xDarkicex/ratiocore/sat"
)

func newTestRegistry() *Registry {
	return NewRegistry(sat.NewSolver(), la.NewEngine(), ac.NewEngine())
}

func TestBuiltinClassesPreregistered(t *testing.T) {
	r := newTestRegistry()
	for _, name := range []string{"bool", "int", "real"} {
		c, err := r.Class(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name)
	}
}

func TestNewBoolWrapsFreshLiteral(t *testing.T) {
	r := newTestRegistry()
	o := r.NewBool()
	assert.Equal(t, KindBool, o.Class.Kind)
	assert.True(t, o.Lit.IsPositive())
}

func TestNewIntIsDegenerateLinearForm(t *testing.T) {
	r := newTestRegistry()
	o := r.NewInt()
	assert.Equal(t, KindInt, o.Class.Kind)
	assert.False(t, o.Form.IsConstant())
}

func TestClassLookupMiss(t *testing.T) {
	r := newTestRegistry()
	_, err := r.Class("does-not-exist")
	assert.Error(t, err)
	var lookupErr *LookupError
	assert.ErrorAs(t, err, &lookupErr)
}

func TestRegisterClassRejectsUnknownParent(t *testing.T) {
	r := newTestRegistry()
	err := r.RegisterClass(riddle.ClassDecl{
		Name:    "Widget",
		Parents: []string{"Gadget"},
	})
	assert.Error(t, err)
}

func TestRegisterClassRejectsUnknownFieldType(t *testing.T) {
	r := newTestRegistry()
	err := r.RegisterClass(riddle.ClassDecl{
		Name:   "Widget",
		Fields: []riddle.FieldDecl{{Name: "size", ClassName: "nope"}},
	})
	assert.Error(t, err)
}

func TestRegisterClassThenNewComponent(t *testing.T) {
	r := newTestRegistry()
	err := r.RegisterClass(riddle.ClassDecl{
		Name:   "Point",
		Fields: []riddle.FieldDecl{{Name: "x", ClassName: "int"}, {Name: "y", ClassName: "int"}},
	})
	require.NoError(t, err)

	obj, err := r.NewComponent("Point")
	require.NoError(t, err)
	assert.Equal(t, KindComponent, obj.Class.Kind)
	obj.Fields["x"] = r.NewInt()
	obj.Fields["y"] = r.NewInt()
	assert.Len(t, obj.Fields, 2)
}

func TestNewComponentRejectsNonComponentClass(t *testing.T) {
	r := newTestRegistry()
	_, err := r.NewComponent("int")
	assert.Error(t, err)
	var typeErr *TypeError
	assert.ErrorAs(t, err, &typeErr)
}
