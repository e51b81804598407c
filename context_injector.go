package weld

import "context"

// ContextInjector is the suspend-capable injector variant. It shares the
// blocking Injector's resolution algorithm exactly, with two additions: the
// call's context is passed to context-aware factories, and a factory result
// implementing Future is awaited before caching, which is the sole
// suspension point.
//
// Sibling parameters are still resolved strictly in declared order, one at
// a time: later parameters may depend on cache entries populated while
// resolving earlier ones. Like Injector, a ContextInjector assumes a single
// resolution in flight and is not safe for concurrent use.
type ContextInjector struct {
	core *injectorCore
}

// NewContextInjector creates a ContextInjector over the given ambient
// context. A nil context means an empty one.
func NewContextInjector(context *BindingContext, opts ...Option) *ContextInjector {
	return &ContextInjector{core: newCore(context, opts)}
}

// Resolve builds the target against the ambient context alone, awaiting
// any Future-valued factory results along the way.
func (in *ContextInjector) Resolve(ctx context.Context, target any) (any, error) {
	return in.core.run(orBackground(ctx), target, nil, true)
}

// ResolveWith builds the target with an additional per-call override
// context, under the same disjointness precondition as the blocking
// variant.
func (in *ContextInjector) ResolveWith(ctx context.Context, target any, override *BindingContext) (any, error) {
	return in.core.run(orBackground(ctx), target, override, true)
}

func orBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
