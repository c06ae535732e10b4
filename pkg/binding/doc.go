// Package binding adapts lumen's reactive accessors to its notifying
// property objects.
//
// Every helper here is a thin adapter between two systems that already
// exist: pkg/reactive (pull/subscribe accessors with explicit scopes) and
// pkg/object (named-property hosts emitting notify::<kebab-case> signals).
// There is no machinery of its own beyond the glue.
//
// # Plain or reactive
//
// Several helpers accept "a plain value or an accessor". That choice is an
// explicit tagged union, Value[T], decided at the call site:
//
//	binding.Of(5)                    // plain
//	binding.FromAccessor(src)        // reactive
//
// # Lifecycle
//
// Helpers that install listeners take a *reactive.Scope and register the
// release on it, so scope teardown never leaks a live subscription. The one
// exception is Construct, which returns its release functions to the
// caller, matching its use during object assembly before a scope exists.
//
// # Error handling
//
// Two runtime-lifecycle races are deliberately swallowed: disconnecting
// from an already-disposed object, and reading a property that has been
// removed (which falls back to the configured default). Everything else -
// a panicking mapping function, a bad field name in Construct - propagates
// to the caller.
package binding
