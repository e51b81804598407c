package weld

// Scope is the caching policy attached to a binding.
type Scope string

const (
	// ScopeTransient never caches: every reference to the target constructs
	// a fresh value, even within a single Resolve call.
	ScopeTransient Scope = "transient"

	// ScopeLocal caches for the duration of one top-level Resolve call.
	// The call-scoped cache is discarded when Resolve returns.
	ScopeLocal Scope = "local"

	// ScopeSingleton caches for the lifetime of the owning injector.
	// The singleton cache grows monotonically and is never evicted.
	ScopeSingleton Scope = "singleton"
)

// String returns the string representation of the scope.
func (s Scope) String() string {
	return string(s)
}

func (s Scope) valid() bool {
	switch s {
	case ScopeTransient, ScopeLocal, ScopeSingleton:
		return true
	}
	return false
}
