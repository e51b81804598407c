package weld

import (
	"context"
	"reflect"
)

// Injector owns an ambient BindingContext, a default scope and an
// injector-lifetime cache, and resolves targets against them. It is the
// blocking variant: resolution runs to completion with no suspension
// points, and a factory returning a Future gets that Future cached and
// returned raw.
//
// An Injector is not safe for concurrent use. The singleton cache is
// mutated without synchronization on the assumption of a single resolution
// in flight per injector; callers needing concurrent resolution must use
// separate injectors or serialize access externally.
type Injector struct {
	core *injectorCore
}

// New creates an Injector over the given ambient context. A nil context
// means an empty one. The ambient context reference is kept as-is; bindings
// added to it later are visible to subsequent Resolve calls.
func New(context *BindingContext, opts ...Option) *Injector {
	return &Injector{core: newCore(context, opts)}
}

// Resolve builds the target against the ambient context alone.
//
// Errors are those of the resolution engine (CollisionError never applies
// here, the rest of the Resolve error surface does); errors raised by
// providers themselves propagate unchanged.
func (in *Injector) Resolve(target any) (any, error) {
	return in.core.run(context.Background(), target, nil, false)
}

// ResolveWith builds the target with an additional per-call override
// context. The override's targets must be disjoint from the ambient
// context's; any overlap fails with CollisionError before construction.
// Override bindings take precedence during lookup.
func (in *Injector) ResolveWith(target any, override *BindingContext) (any, error) {
	return in.core.run(context.Background(), target, override, false)
}

// As adapts a Resolve result to a concrete type:
//
//	db, err := weld.As[*DB](in.Resolve(weld.Type[*DB]()))
//
// It passes a non-nil err through and otherwise type-asserts the value,
// returning WrongTypeError on a dynamic type mismatch.
func As[T any](value any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, WrongTypeError{Got: reflect.TypeOf(value), Want: Type[T]()}
	}
	return typed, nil
}
