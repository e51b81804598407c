package weld

// Bindings is a convenience map of target -> provider used to pre-populate
// one scope of a BindingContext (see NewContextFrom).
type Bindings map[any]any

// Binding is a target's registered (provider, scope) pair.
//
// Provider is either an invocable (a *Factory or a plain function) called
// with resolved arguments, or a literal value returned as-is. Zero and empty
// literals ("", 0, empty maps) are valid providers and are passed through
// unchanged.
type Binding struct {
	Provider any
	Scope    Scope
}

// BindingContext is an explicit registry mapping a target to its Binding.
//
// It is pure data plus bind-time validation; all resolution logic lives in
// the injectors. Contexts are always passed objects; there is no
// process-wide default registry.
type BindingContext struct {
	bindings map[any]Binding
}

// NewContext creates an empty BindingContext.
func NewContext() *BindingContext {
	return &BindingContext{bindings: make(map[any]Binding)}
}

// NewContextFrom creates a BindingContext pre-populated from up to three
// target -> provider maps, one per scope. Any map may be nil. Each entry
// goes through the corresponding scope's bind operation, so bind-time
// validation applies.
func NewContextFrom(singletons, locals, transients Bindings) (*BindingContext, error) {
	c := NewContext()
	for target, provider := range singletons {
		if err := c.Singleton(target, provider); err != nil {
			return nil, err
		}
	}
	for target, provider := range locals {
		if err := c.Local(target, provider); err != nil {
			return nil, err
		}
	}
	for target, provider := range transients {
		if err := c.Transient(target, provider); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Bind registers provider for target under the given scope.
//
// A nil provider self-binds the target (the target is its own provider,
// e.g. a type token constructed from itself). Self-binding is illegal for
// string targets: a name must always be explicitly mapped.
//
// Rebinding a target overwrites the previous binding.
//
// It returns:
//   - InvalidTargetError if target is empty or not comparable
//   - StringTargetError if target is a string and provider is nil
//   - InvalidScopeError if scope is not a known scope
func (c *BindingContext) Bind(target, provider any, scope Scope) error {
	if err := validateTarget(target); err != nil {
		return err
	}
	if name, ok := target.(string); ok && provider == nil {
		return StringTargetError{Name: name}
	}
	if !scope.valid() {
		return InvalidScopeError{Scope: scope}
	}
	if provider == nil {
		provider = target
	}
	c.bindings[target] = Binding{Provider: provider, Scope: scope}
	return nil
}

// Singleton registers a binding cached for the owning injector's lifetime.
func (c *BindingContext) Singleton(target, provider any) error {
	return c.Bind(target, provider, ScopeSingleton)
}

// Local registers a binding cached for the duration of one Resolve call.
func (c *BindingContext) Local(target, provider any) error {
	return c.Bind(target, provider, ScopeLocal)
}

// Transient registers a binding that is never cached.
func (c *BindingContext) Transient(target, provider any) error {
	return c.Bind(target, provider, ScopeTransient)
}

// MustSingleton is Singleton but panics on error and returns the context
// for chaining. Useful in composition roots and tests where an invalid
// binding should fail fast.
func (c *BindingContext) MustSingleton(target, provider any) *BindingContext {
	if err := c.Singleton(target, provider); err != nil {
		panic(err)
	}
	return c
}

// MustLocal is Local but panics on error and returns the context for
// chaining.
func (c *BindingContext) MustLocal(target, provider any) *BindingContext {
	if err := c.Local(target, provider); err != nil {
		panic(err)
	}
	return c
}

// MustTransient is Transient but panics on error and returns the context
// for chaining.
func (c *BindingContext) MustTransient(target, provider any) *BindingContext {
	if err := c.Transient(target, provider); err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the binding registered for target. Absence is reported via
// the second return value, never via a zero Binding: a bound zero-value
// provider is present.
func (c *BindingContext) Lookup(target any) (Binding, bool) {
	b, ok := c.bindings[target]
	return b, ok
}

// Has reports whether target has a binding.
func (c *BindingContext) Has(target any) bool {
	_, ok := c.bindings[target]
	return ok
}

// Len returns the number of registered bindings.
func (c *BindingContext) Len() int {
	return len(c.bindings)
}

// Targets returns the bound targets in unspecified order.
func (c *BindingContext) Targets() []any {
	targets := make([]any, 0, len(c.bindings))
	for target := range c.bindings {
		targets = append(targets, target)
	}
	return targets
}

// intersect returns the targets bound in both c and other.
func (c *BindingContext) intersect(other *BindingContext) []any {
	var shared []any
	for target := range other.bindings {
		if _, ok := c.bindings[target]; ok {
			shared = append(shared, target)
		}
	}
	return shared
}
