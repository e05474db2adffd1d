package model

import "github.com/xDarkicex/ratiocore/riddle"

// Kind distinguishes the engine-level artifact a Class's instances are
// backed by (spec §3.5).
type Kind int

const (
	// KindBool instances wrap a SAT literal.
	KindBool Kind = iota
	// KindInt and KindReal instances wrap an LA LinearForm.
	KindInt
	KindReal
	// KindComponent instances hold a name->Object map.
	KindComponent
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindReal:
		return "real"
	case KindComponent:
		return "component"
	default:
		return "unknown"
	}
}

// Field is a named, typed member of a Class.
type Field struct {
	Name      string
	ClassName string
}

// Class is a named type with a factory for new instances (spec §3.5).
// The three built-ins (bool, int, real) have Kind set and everything
// else empty; user classes additionally carry parents, fields and the
// Riddle AST surface for their constructors/methods/predicates.
type Class struct {
	Name    string
	Kind    Kind
	Parents []string
	Fields  map[string]*Field

	Constructors []riddle.Constructor
	Methods      []riddle.Method
	Predicates   []riddle.Predicate
}

func newBuiltinClass(name string, kind Kind) *Class {
	return &Class{Name: name, Kind: kind, Fields: map[string]*Field{}}
}

// IsArithmetic reports whether instances of c carry a LinearForm
// (Int or Real).
func (c *Class) IsArithmetic() bool { return c.Kind == KindInt || c.Kind == KindReal }
