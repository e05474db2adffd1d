package model

import (
	"github.com/xDarkicex/ratiocore/lin"
	"github.com/xDarkicex/ratiocore/sat"
)

// Object is a typed handle over exactly one engine-level artifact
// (spec §3.5). Exactly one of Lit, Form or Fields is populated,
// matching Class.Kind.
type Object struct {
	Class *Class

	Lit    sat.Literal     // valid iff Class.Kind == KindBool
	Form   lin.LinearForm  // valid iff Class.Kind == KindInt/KindReal
	Fields map[string]*Object // valid iff Class.Kind == KindComponent
}

func newBoolObject(class *Class, lit sat.Literal) *Object {
	return &Object{Class: class, Lit: lit}
}

func newArithmeticObject(class *Class, form lin.LinearForm) *Object {
	return &Object{Class: class, Form: form}
}

func newComponentObject(class *Class) *Object {
	return &Object{Class: class, Fields: map[string]*Object{}}
}
