package weld

// Option configures an injector at construction time.
type Option func(*injectorCore)

// WithDefaultScope sets the scope applied to targets that have no binding
// and are built via self-construction. The default is ScopeLocal. Invalid
// scopes are ignored.
func WithDefaultScope(scope Scope) Option {
	return func(c *injectorCore) {
		if scope.valid() {
			c.defaultScope = scope
		}
	}
}

// WithMaxDepth sets the resolution depth limit guarding against cyclic
// binding graphs. Non-positive limits are ignored. The default is
// DefaultMaxDepth.
func WithMaxDepth(limit int) Option {
	return func(c *injectorCore) {
		if limit > 0 {
			c.maxDepth = limit
		}
	}
}
