package weld

import (
	"context"
	"errors"
	"reflect"
	"strconv"
)

// DefaultMaxDepth is the resolution depth limit applied unless overridden
// with WithMaxDepth. The binding graph is not checked for cycles; the limit
// converts runaway recursion into DepthExceededError instead of exhausting
// the stack.
const DefaultMaxDepth = 100

// injectorCore carries the state shared by the blocking and cooperative
// injectors: the ambient context, the default scope, the injector-lifetime
// cache and the struct-field metadata cache.
type injectorCore struct {
	context      *BindingContext
	defaultScope Scope
	singletons   map[any]any
	fields       *fieldCache
	maxDepth     int
}

func newCore(context *BindingContext, opts []Option) *injectorCore {
	if context == nil {
		context = NewContext()
	}
	core := &injectorCore{
		context:      context,
		defaultScope: ScopeLocal,
		singletons:   make(map[any]any),
		fields:       newFieldCache(),
		maxDepth:     DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(core)
	}
	return core
}

// resolver is the per-call state of one top-level resolution: the override
// context, the call-scoped cache and, in cooperative mode, the call context
// plus Future awaiting.
type resolver struct {
	core     *injectorCore
	override *BindingContext
	locals   map[any]any
	ctx      context.Context
	await    bool
}

// run is the shared entry point behind both injectors' Resolve methods.
// await selects the cooperative variant; it is the only difference between
// the two.
func (c *injectorCore) run(ctx context.Context, target any, override *BindingContext, await bool) (any, error) {
	if override == nil {
		override = NewContext()
	}
	if shared := c.context.intersect(override); len(shared) > 0 {
		return nil, CollisionError{Targets: shared}
	}

	r := &resolver{
		core:     c,
		override: override,
		locals:   make(map[any]any),
		ctx:      ctx,
		await:    await,
	}
	value, ok, err := r.resolve(target, 0)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, UnresolvedTargetError{Target: target}
	}
	return value, nil
}

// resolve recursively resolves one target. The boolean reports presence:
// false means "no value found", which is distinct from any resolved value
// including zero ones. Only unbound string targets are unresolved; every
// other miss falls back to self-construction under the default scope.
func (r *resolver) resolve(target any, depth int) (any, bool, error) {
	if depth > r.core.maxDepth {
		return nil, false, DepthExceededError{Limit: r.core.maxDepth}
	}
	if err := validateTarget(target); err != nil {
		return nil, false, err
	}

	// Caches first, call-scoped before injector-lifetime. Presence is the
	// comma-ok, so cached zero values hit like any other.
	if value, ok := r.locals[target]; ok {
		return value, true, nil
	}
	if value, ok := r.core.singletons[target]; ok {
		return value, true, nil
	}

	binding, bound := r.override.Lookup(target)
	if !bound {
		binding, bound = r.core.context.Lookup(target)
	}

	if !bound {
		if _, isName := target.(string); isName {
			return nil, false, nil
		}
		binding = Binding{Provider: target, Scope: r.core.defaultScope}
	}

	value, err := r.build(binding.Provider, depth)
	if err != nil {
		return nil, false, err
	}

	switch binding.Scope {
	case ScopeSingleton:
		r.core.singletons[target] = value
	case ScopeLocal:
		r.locals[target] = value
	}
	return value, true, nil
}

// build produces a value from a concrete provider: factories and plain
// functions are invoked, type tokens are constructed, anything else is a
// literal passed through unchanged.
func (r *resolver) build(provider any, depth int) (any, error) {
	switch p := provider.(type) {
	case *Factory:
		return r.invoke(p, depth)
	case reflect.Type:
		return r.construct(p, depth)
	}
	if reflect.ValueOf(provider).Kind() == reflect.Func {
		f, err := Func(provider)
		if err != nil {
			return nil, err
		}
		return r.invoke(f, depth)
	}
	return provider, nil
}

// invoke resolves a factory's declared parameters in order, name first then
// annotation, and calls it. Later parameters may observe cache
// entries populated by earlier ones, so siblings are never resolved out of
// declared order.
func (r *resolver) invoke(f *Factory, depth int) (any, error) {
	args := make([]reflect.Value, 0, len(f.params))
	for i, p := range f.params {
		value, found, err := r.resolveParam(p, depth)
		if err != nil {
			return nil, err
		}

		want := f.paramType(i)
		if !found {
			if !p.Optional {
				return nil, MissingArgumentError{Factory: f.name, Param: f.paramLabel(i)}
			}
			args = append(args, reflect.Zero(want))
			continue
		}

		arg, ok := coerce(value, want)
		if !ok {
			return nil, ArgumentTypeError{
				Factory: f.name,
				Param:   f.paramLabel(i),
				Got:     reflect.TypeOf(value),
				Want:    want,
			}
		}
		args = append(args, arg)
	}

	result, err := f.call(r.ctx, args)
	if err != nil {
		return nil, err
	}
	if r.await {
		if future, ok := result.(Future); ok {
			return future.Await(r.ctx)
		}
	}
	return result, nil
}

// resolveParam applies the name-first / annotation-second policy for one
// parameter. An optional parameter additionally absorbs a not-constructible
// annotation, so Opt() works for unbound interface-typed arguments.
func (r *resolver) resolveParam(p Param, depth int) (any, bool, error) {
	if p.Name != "" {
		value, found, err := r.resolve(p.Name, depth+1)
		if err != nil || found {
			return value, found, err
		}
	}
	if p.Annotation == nil {
		return nil, false, nil
	}
	value, found, err := r.resolve(p.Annotation, depth+1)
	if err != nil && p.Optional {
		var nce NotConstructibleError
		if errors.As(err, &nce) {
			return nil, false, nil
		}
	}
	return value, found, err
}

// construct self-builds a type target that has no binding. Structs (and
// pointers to structs) are built field by field; other constructible kinds
// yield their zero value. Interfaces, funcs and channels have no meaningful
// zero construction and fail.
func (r *resolver) construct(t reflect.Type, depth int) (any, error) {
	switch t.Kind() {
	case reflect.Interface, reflect.Func, reflect.Chan:
		return nil, NotConstructibleError{Type: t}
	case reflect.Ptr:
		if t.Elem().Kind() == reflect.Interface || t.Elem().Kind() == reflect.Func ||
			t.Elem().Kind() == reflect.Chan {
			return nil, NotConstructibleError{Type: t}
		}
		v := reflect.New(t.Elem())
		if t.Elem().Kind() == reflect.Struct {
			if err := r.wireFields(v.Elem(), depth); err != nil {
				return nil, err
			}
		}
		return v.Interface(), nil
	case reflect.Struct:
		v := reflect.New(t).Elem()
		if err := r.wireFields(v, depth); err != nil {
			return nil, err
		}
		return v.Interface(), nil
	default:
		return reflect.Zero(t).Interface(), nil
	}
}

// wireFields resolves every wireable field of a struct under construction,
// field name first, field type second. Fields with no resolution stay zero:
// struct fields are never required. A not-constructible field type (e.g. an
// unbound interface) likewise leaves the field zero.
func (r *resolver) wireFields(v reflect.Value, depth int) error {
	for _, f := range r.core.fields.get(v.Type()) {
		value, found, err := r.resolve(f.name, depth+1)
		if err != nil {
			return err
		}
		if !found {
			value, found, err = r.resolve(f.typ, depth+1)
			if err != nil {
				var nce NotConstructibleError
				if errors.As(err, &nce) {
					continue
				}
				return err
			}
		}
		if !found {
			continue
		}

		arg, ok := coerce(value, f.typ)
		if !ok {
			return ArgumentTypeError{
				Factory: v.Type().String(),
				Param:   strconv.Quote(f.name),
				Got:     reflect.TypeOf(value),
				Want:    f.typ,
			}
		}
		v.Field(f.index).Set(arg)
	}
	return nil
}

// coerce adapts a resolved value to the type of the slot it will fill.
// A nil value maps to the zero value of nilable kinds only.
func coerce(value any, want reflect.Type) (reflect.Value, bool) {
	if value == nil {
		switch want.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice,
			reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return reflect.Zero(want), true
		}
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(want) {
		return reflect.Value{}, false
	}
	return v, true
}
