package weld

import (
	"errors"
	"reflect"
	"strconv"
)

// ErrNilFunc is returned when Func is called with a nil function.
var ErrNilFunc = errors.New("weld: nil factory function")

// InvalidTargetError is returned when a binding or resolution target is
// unusable: empty (nil, "", nil pointer/func/map/slice) or not comparable.
type InvalidTargetError struct {
	Target any
	Reason string
}

// Error implements the error interface.
func (e InvalidTargetError) Error() string {
	// Example: weld: invalid target: target cannot be empty
	return "weld: invalid target: " + e.Reason
}

// StringTargetError is returned when a string target is bound without an
// explicit provider. A name cannot implicitly map to itself.
type StringTargetError struct{ Name string }

// Error implements the error interface.
func (e StringTargetError) Error() string {
	// Example: weld: string target "db" must be explicitly mapped
	return "weld: string target " + strconv.Quote(e.Name) + " must be explicitly mapped"
}

// InvalidScopeError is returned when a binding is registered with a scope
// that is not one of ScopeTransient, ScopeLocal or ScopeSingleton.
type InvalidScopeError struct{ Scope Scope }

// Error implements the error interface.
func (e InvalidScopeError) Error() string {
	// Example: weld: unknown binding scope "singelton"
	return "weld: unknown binding scope " + strconv.Quote(string(e.Scope))
}

// CollisionError is returned by Resolve when the ambient and override
// contexts bind at least one common target. It fails before any
// construction occurs.
type CollisionError struct{ Targets []any }

// Error implements the error interface.
func (e CollisionError) Error() string {
	// Example: weld: ambient and override contexts share 2 binding(s), first "db"
	msg := "weld: ambient and override contexts share " +
		strconv.Itoa(len(e.Targets)) + " binding(s)"
	if len(e.Targets) > 0 {
		msg += ", first " + targetLabel(e.Targets[0])
	}
	return msg
}

// UnresolvedTargetError is returned when a top-level string target has no
// binding. During recursive resolution the same condition is a silent
// fallback state, not an error; it only surfaces at the API boundary.
type UnresolvedTargetError struct{ Target any }

// Error implements the error interface.
func (e UnresolvedTargetError) Error() string {
	// Example: weld: no binding for target "db"
	return "weld: no binding for target " + targetLabel(e.Target)
}

// MissingArgumentError is returned when a required factory parameter has no
// name or annotation binding and would have to be omitted from the call.
type MissingArgumentError struct {
	Factory string
	Param   string
}

// Error implements the error interface.
func (e MissingArgumentError) Error() string {
	// Example: weld: factory pkg.NewDB missing required argument "dsn"
	return "weld: factory " + e.Factory + " missing required argument " + e.Param
}

// ArgumentTypeError is returned when a resolved value is not assignable to
// the factory parameter (or struct field) it was resolved for.
type ArgumentTypeError struct {
	Factory string
	Param   string
	Got     reflect.Type
	Want    reflect.Type
}

// Error implements the error interface.
func (e ArgumentTypeError) Error() string {
	// Example: weld: factory pkg.NewDB argument "dsn" has wrong type (got int, want string)
	return "weld: factory " + e.Factory + " argument " + e.Param +
		" has wrong type (got " + typeLabel(e.Got) + ", want " + typeLabel(e.Want) + ")"
}

// NotConstructibleError is returned when a type target has no binding and
// its kind cannot be self-constructed (interfaces, funcs, channels).
type NotConstructibleError struct{ Type reflect.Type }

// Error implements the error interface.
func (e NotConstructibleError) Error() string {
	// Example: weld: type io.Reader is not constructible and has no binding
	return "weld: type " + typeLabel(e.Type) + " is not constructible and has no binding"
}

// DepthExceededError is returned when resolution recurses past the
// injector's depth limit, usually because the binding graph is cyclic.
type DepthExceededError struct{ Limit int }

// Error implements the error interface.
func (e DepthExceededError) Error() string {
	// Example: weld: resolution depth 100 exceeded (cyclic binding graph?)
	return "weld: resolution depth " + strconv.Itoa(e.Limit) + " exceeded (cyclic binding graph?)"
}

// WrongTypeError is returned by As when a resolved value has a different
// dynamic type than requested.
type WrongTypeError struct {
	Got  reflect.Type
	Want reflect.Type
}

// Error implements the error interface.
func (e WrongTypeError) Error() string {
	// Example: weld: resolved value has wrong type (got *pkg.DB, want *pkg.Logger)
	return "weld: resolved value has wrong type (got " + typeLabel(e.Got) +
		", want " + typeLabel(e.Want) + ")"
}

// InvalidFactoryError is returned by Func when a function cannot serve as a
// factory (wrong shape, mismatched parameter metadata).
type InvalidFactoryError struct{ Reason string }

// Error implements the error interface.
func (e InvalidFactoryError) Error() string {
	// Example: weld: invalid factory: variadic functions are not supported
	return "weld: invalid factory: " + e.Reason
}

func typeLabel(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
