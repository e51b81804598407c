// Package weld builds object graphs from explicit binding registries.
//
// It models a registry (BindingContext) mapping a target (a string name, a
// type token, or a factory) to a concrete provider plus a caching scope
// (transient / call-scoped / singleton). An Injector owns one ambient
// BindingContext and resolves a target by recursively building its
// dependencies, name-first then type-second.
//
// Design goals:
//   - Lightweight: no centralized registry file, no process-wide container.
//   - Explicit: contexts and injectors are always passed objects.
//   - Safe defaults: invalid bindings fail at registration time, ambient /
//     override collisions fail before any construction.
//   - Test-friendly: per-call override contexts make swapping dependencies
//     in tests trivial.
//
// Two injector variants share one resolution algorithm: Injector runs to
// completion with no suspension points, while ContextInjector threads a
// context.Context through factories and awaits Future-valued results.
//
// Scope of the library is intentionally small: there is no cycle detection
// (a depth guard converts runaway recursion into DepthExceededError), no
// multi-binding-per-target support, and no lifecycle hooks beyond caching.
//
// Start with examples/basic for end-to-end wiring style.
package weld
