package binding

import (
	"github.com/lumen-ui/lumen/pkg/object"
	"github.com/lumen-ui/lumen/pkg/reactive"
)

// Track subscribes fn to the accessor for the lifetime of the scope: fn
// runs on every value change, and the subscription is released when the
// scope is disposed.
func Track[T any](scope *reactive.Scope, acc reactive.Accessor[T], fn func()) {
	scope.OnCleanup(acc.Subscribe(fn))
}

// Connect attaches handler to the named signal on host for the lifetime of
// the scope. The emitting object is dropped from the handler's arguments;
// the signal's own arguments are forwarded. Disconnection on scope
// teardown ignores hosts that are already disposed.
func Connect(scope *reactive.Scope, host *object.Object, signal string, handler func(args ...any)) {
	id := host.Connect(signal, func(args ...any) {
		handler(args[1:]...)
	})
	scope.OnCleanup(func() {
		// Already-disposed hosts are a benign teardown race.
		_ = host.Disconnect(id)
	})
}
