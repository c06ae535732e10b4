// Package reactive provides the accessor primitives underlying lumen's
// binding layer.
//
// An Accessor[T] is a read/subscribe handle to a possibly-changing value:
//
//	src := reactive.NewSource(0)
//	value := src.Get()                       // Read
//	unsub := src.Subscribe(func() { ... })   // Observe changes
//	src.Set(5)                               // Write (notifies subscribers)
//
// Derived accessors compute their value from upstream state. They are built
// from a getter and an attach function that wires upstream notification:
//
//	doubled := reactive.Map[int, int](src, func(n int) int { return n * 2 })
//
// A Derived attaches to its upstream lazily: the attach function runs when
// the first subscriber arrives and its teardown runs after the last
// subscriber leaves, so an unobserved derived accessor holds no upstream
// listener.
//
// # Scopes
//
// A Scope is an explicit lifecycle context. Cleanup callbacks registered
// with OnCleanup run exactly once, in reverse registration order, when the
// scope is disposed. Scopes form a hierarchy; disposing a parent disposes
// its children first. There is no ambient "current scope": helpers that
// tie subscriptions to a lifecycle take the *Scope as a parameter.
//
// # Threading
//
// The primitives are safe for concurrent use, but the binding layer built
// on top of them assumes a single event loop; notification callbacks run
// synchronously on the goroutine that performed the write.
package reactive
