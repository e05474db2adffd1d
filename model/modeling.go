package model

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/xDarkicex/ratiocore/ac"
	"github.com/xDarkicex/ratiocore/core"
	"github.com/xDarkicex/ratiocore/la"
	"github.com/xDarkicex/ratiocore/lin"
	"github.com/xDarkicex/ratiocore/riddle"
	"github.com/xDarkicex/ratiocore/sat"
)

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithLogger attaches a structured logger; by default the registry logs
// nothing.
func WithLogger(l hclog.Logger) Option {
	return func(r *Registry) { r.log = core.NewComponentLogger(l, "model") }
}

// Registry holds the class and field namespaces and non-owning
// references to the three engines (spec §3.5/§4.7). The engines
// outlive the Registry and are constructed by the caller; Registry
// never owns them, matching the spec's "non-owning back reference"
// design note for the cyclic modeling/solver relation.
type Registry struct {
	log hclog.Logger

	sat *sat.Solver
	la  *la.Engine
	ac  *ac.Engine

	classes map[string]*Class
	fields  map[string]*Field
}

// NewRegistry builds a Registry over the three already-constructed
// engines, pre-registering the bool/int/real built-in classes.
func NewRegistry(satEngine *sat.Solver, laEngine *la.Engine, acEngine *ac.Engine, opts ...Option) *Registry {
	r := &Registry{
		log:     hclog.NewNullLogger(),
		sat:     satEngine,
		la:      laEngine,
		ac:      acEngine,
		classes: map[string]*Class{},
		fields:  map[string]*Field{},
	}
	for _, o := range opts {
		o(r)
	}
	r.classes["bool"] = newBuiltinClass("bool", KindBool)
	r.classes["int"] = newBuiltinClass("int", KindInt)
	r.classes["real"] = newBuiltinClass("real", KindReal)
	return r
}

// Class looks up a registered class by name.
func (r *Registry) Class(name string) (*Class, error) {
	c, ok := r.classes[name]
	if !ok {
		return nil, newLookupError("model.Registry.Class", fmt.Sprintf("no class named %q", name))
	}
	return c, nil
}

// Field looks up a registered field by name.
func (r *Registry) Field(name string) (*Field, error) {
	f, ok := r.fields[name]
	if !ok {
		return nil, newLookupError("model.Registry.Field", fmt.Sprintf("no field named %q", name))
	}
	return f, nil
}

// RegisterClass installs decl as a new KindComponent class. Every
// independent validation failure (duplicate name, unknown parent,
// unknown field class) is collected and returned together via
// go-multierror, rather than stopping at the first one.
func (r *Registry) RegisterClass(decl riddle.ClassDecl) error {
	var errs *multierror.Error

	if _, exists := r.classes[decl.Name]; exists {
		errs = multierror.Append(errs, fmt.Errorf("model.Registry.RegisterClass: class %q already registered", decl.Name))
	}
	for _, p := range decl.Parents {
		if _, ok := r.classes[p]; !ok {
			errs = multierror.Append(errs, fmt.Errorf("model.Registry.RegisterClass: class %q has unknown parent %q", decl.Name, p))
		}
	}
	fields := make(map[string]*Field, len(decl.Fields))
	for _, fd := range decl.Fields {
		if _, ok := r.classes[fd.ClassName]; !ok {
			errs = multierror.Append(errs, fmt.Errorf("model.Registry.RegisterClass: field %q of class %q has unknown type %q", fd.Name, decl.Name, fd.ClassName))
			continue
		}
		fields[fd.Name] = &Field{Name: fd.Name, ClassName: fd.ClassName}
	}

	if errs.ErrorOrNil() != nil {
		return errs
	}

	class := &Class{
		Name:         decl.Name,
		Kind:         KindComponent,
		Parents:      decl.Parents,
		Fields:       fields,
		Constructors: decl.Constructors,
		Methods:      decl.Methods,
		Predicates:   decl.Predicates,
	}
	r.classes[decl.Name] = class
	for name, f := range fields {
		r.fields[decl.Name+"."+name] = f
	}
	r.log.Debug("class registered", "name", decl.Name, "fields", len(fields))
	return nil
}

// Load registers every class declaration in prog, in order, failing
// fast on the first RegisterClass error (a program's classes typically
// build on one another, so partial registration on a later failure
// would leave earlier classes correctly installed).
func (r *Registry) Load(prog *riddle.Program) error {
	for _, decl := range prog.Classes {
		if err := r.RegisterClass(decl); err != nil {
			return err
		}
	}
	return nil
}

// NewBool allocates a fresh SAT variable and wraps its positive literal
// in a Boolean object (spec §4.7).
func (r *Registry) NewBool() *Object {
	v := r.sat.NewVar()
	class, _ := r.Class("bool")
	return newBoolObject(class, sat.Pos(v))
}

// NewInt allocates a fresh LA variable and wraps the degenerate linear
// form {v -> 1} in an Int object.
func (r *Registry) NewInt() *Object {
	v := r.la.NewVar()
	class, _ := r.Class("int")
	return newArithmeticObject(class, lin.NewVar(v))
}

// NewReal is NewInt's Real counterpart.
func (r *Registry) NewReal() *Object {
	v := r.la.NewVar()
	class, _ := r.Class("real")
	return newArithmeticObject(class, lin.NewVar(v))
}

// NewComponent allocates a component object of the named class, with no
// fields populated; the caller fills Fields afterward (two-phase
// construction, matching the cyclic modeling/solver relation the spec's
// design note calls out).
func (r *Registry) NewComponent(className string) (*Object, error) {
	class, err := r.Class(className)
	if err != nil {
		return nil, err
	}
	if class.Kind != KindComponent {
		return nil, newTypeError("model.Registry.NewComponent", fmt.Sprintf("class %q is not a component class", className))
	}
	return newComponentObject(class), nil
}
