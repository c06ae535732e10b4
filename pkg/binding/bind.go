package binding

import (
	"sync"

	"github.com/lumen-ui/lumen/pkg/object"
	"github.com/lumen-ui/lumen/pkg/reactive"
)

// BindProperty returns an accessor tracking the named property on host.
// Reading yields the property's current value, or def when the host is nil
// or the property no longer exists. The property-change listener is
// installed when the first subscriber arrives and removed after the last
// leaves; removal ignores hosts that are already disposed.
func BindProperty(host *object.Object, name string, def any) reactive.Accessor[any] {
	get := func() any {
		if host == nil {
			return def
		}
		if v, ok := host.Get(name); ok {
			return v
		}
		return def
	}

	return reactive.NewDerived(get, func(invalidate func()) func() {
		if host == nil {
			return func() {}
		}
		id := host.Connect(object.NotifySignal(name), func(...any) {
			invalidate()
		})
		return func() {
			// Already-disposed hosts are a benign teardown race.
			_ = host.Disconnect(id)
		}
	})
}

// BindNested returns an accessor tracking the named property on whichever
// host the outer accessor currently resolves to. When the outer accessor
// changes, the listener moves from the old host to the new one; an absent
// host reads as nil. A host arriving after subscribe-time is treated the
// same as a host replacement, so the inner listener is (re)established.
func BindNested(outer reactive.Accessor[*object.Object], name string) reactive.Accessor[any] {
	return bindNested(outer, name, nil)
}

// BindNestedDefault is BindNested returning def instead of nil whenever the
// resolved host is absent or lacks the property.
func BindNestedDefault(outer reactive.Accessor[*object.Object], name string, def any) reactive.Accessor[any] {
	return bindNested(outer, name, def)
}

func bindNested(outer reactive.Accessor[*object.Object], name string, def any) reactive.Accessor[any] {
	get := func() any {
		host := outer.Get()
		if host == nil {
			return def
		}
		if v, ok := host.Get(name); ok {
			return v
		}
		return def
	}

	return reactive.NewDerived(get, func(invalidate func()) func() {
		signal := object.NotifySignal(name)

		var mu sync.Mutex
		var host *object.Object
		var id uint64

		// attach moves the inner listener to the given host. A nil host
		// leaves no inner listener until one arrives.
		attach := func(next *object.Object) {
			mu.Lock()
			defer mu.Unlock()
			if host != nil {
				_ = host.Disconnect(id)
			}
			host, id = next, 0
			if next != nil {
				id = next.Connect(signal, func(...any) {
					invalidate()
				})
			}
		}

		attach(outer.Get())
		unsubOuter := outer.Subscribe(func() {
			attach(outer.Get())
			invalidate()
		})

		return func() {
			unsubOuter()
			attach(nil)
		}
	})
}
