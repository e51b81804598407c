package weld

import (
	"context"
	"reflect"
	"runtime"
	"strconv"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// Param declares resolution metadata for one factory parameter. Go offers
// no runtime access to parameter names, so the name-to-target mapping is
// supplied at registration time instead of inspected from a live signature.
//
// Resolution tries Name first (as a string target), then Annotation. The
// Annotation defaults to the parameter's own type and may be overridden
// with any target, including another name.
//
// A required parameter with no resolution fails the invocation with
// MissingArgumentError; an Optional one is passed its zero value.
type Param struct {
	Name       string
	Annotation any
	Optional   bool
}

// P builds a Param carrying just a lookup name.
func P(name string) Param {
	return Param{Name: name}
}

// Of returns a copy of the Param with its annotation replaced.
func (p Param) Of(annotation any) Param {
	p.Annotation = annotation
	return p
}

// Opt returns a copy of the Param marked optional.
func (p Param) Opt() Param {
	p.Optional = true
	return p
}

// Factory is an invocable provider: a function plus the declared metadata
// used to resolve its arguments. Factories are comparable by identity and
// may themselves be used as targets.
type Factory struct {
	fn       reflect.Value
	fnType   reflect.Type
	params   []Param
	takesCtx bool
	hasErr   bool
	name     string
}

// Func wraps fn as a Factory.
//
// fn must be a non-variadic function returning a value or (value, error).
// An optional leading context.Context parameter is not a dependency: it
// receives the Resolve call's context (context.Background for the blocking
// injector).
//
// params, if given, must match fn's remaining arity one-to-one. When params
// are omitted entirely, every argument is resolved by its type alone. A
// Param with a nil Annotation gets the parameter's own type as annotation.
func Func(fn any, params ...Param) (*Factory, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return nil, InvalidFactoryError{Reason: "provider must be a function, got " + t.String()}
	}
	if t.IsVariadic() {
		return nil, InvalidFactoryError{Reason: "variadic functions are not supported"}
	}

	numOut := t.NumOut()
	if numOut == 0 || numOut > 2 {
		return nil, InvalidFactoryError{
			Reason: "factory must return a value or (value, error), got " +
				strconv.Itoa(numOut) + " return values",
		}
	}
	hasErr := false
	if numOut == 2 {
		if t.Out(1) != errorType {
			return nil, InvalidFactoryError{
				Reason: "second return value must be error, got " + t.Out(1).String(),
			}
		}
		hasErr = true
	}

	takesCtx := t.NumIn() > 0 && t.In(0) == contextType
	offset := 0
	if takesCtx {
		offset = 1
	}
	arity := t.NumIn() - offset
	if len(params) != 0 && len(params) != arity {
		return nil, InvalidFactoryError{
			Reason: "declared " + strconv.Itoa(len(params)) +
				" parameters for a function taking " + strconv.Itoa(arity),
		}
	}

	declared := make([]Param, arity)
	for i := 0; i < arity; i++ {
		var p Param
		if len(params) > 0 {
			p = params[i]
		}
		if p.Annotation == nil {
			p.Annotation = t.In(offset + i)
		}
		declared[i] = p
	}

	name := t.String()
	if fnName := runtime.FuncForPC(v.Pointer()); fnName != nil && fnName.Name() != "" {
		name = fnName.Name()
	}

	return &Factory{
		fn:       v,
		fnType:   t,
		params:   declared,
		takesCtx: takesCtx,
		hasErr:   hasErr,
		name:     name,
	}, nil
}

// MustFunc is Func but panics on error. Useful in composition roots where a
// malformed factory is a programming mistake.
func MustFunc(fn any, params ...Param) *Factory {
	f, err := Func(fn, params...)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the factory's function name, as used in error messages.
func (f *Factory) Name() string {
	return f.name
}

// paramType returns the reflect type of declared parameter i.
func (f *Factory) paramType(i int) reflect.Type {
	if f.takesCtx {
		i++
	}
	return f.fnType.In(i)
}

// paramLabel renders parameter i for error messages.
func (f *Factory) paramLabel(i int) string {
	if f.params[i].Name != "" {
		return strconv.Quote(f.params[i].Name)
	}
	return "#" + strconv.Itoa(i)
}

// call invokes the factory with already-resolved argument values, aligned
// with its declared parameters. A (value, error) factory's non-nil error is
// returned unchanged.
func (f *Factory) call(ctx context.Context, args []reflect.Value) (any, error) {
	in := make([]reflect.Value, 0, f.fnType.NumIn())
	if f.takesCtx {
		in = append(in, reflect.ValueOf(ctx))
	}
	in = append(in, args...)

	out := f.fn.Call(in)
	if f.hasErr && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}
