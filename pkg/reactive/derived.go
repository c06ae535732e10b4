package reactive

import "sync"

// Derived is an accessor whose value is computed from upstream state.
//
// A Derived is built from a getter and an attach function. The getter pulls
// the current value; the attach function wires upstream change notification
// and returns a teardown. Attachment is lazy: attach runs when the first
// subscriber arrives, teardown after the last unsubscribes. An unobserved
// Derived therefore holds no upstream listener.
type Derived[T any] struct {
	base subscribers

	get    func() T
	attach func(invalidate func()) (detach func())

	mu     sync.Mutex
	detach func()
}

// NewDerived creates a derived accessor from a getter and an attach
// function. The attach function receives an invalidate callback that must
// be invoked whenever the upstream value may have changed; it returns the
// teardown releasing whatever listeners it installed. attach may be nil for
// values that can change only through Invalidate.
func NewDerived[T any](get func() T, attach func(invalidate func()) (detach func())) *Derived[T] {
	d := &Derived[T]{get: get, attach: attach}
	d.base.onFirst = d.attachUpstream
	d.base.onLast = d.detachUpstream
	return d
}

// Get returns the current value by pulling through the getter.
func (d *Derived[T]) Get() T {
	return d.get()
}

// Subscribe registers fn to run after every upstream change.
// The first subscription attaches the upstream listeners.
func (d *Derived[T]) Subscribe(fn func()) func() {
	return d.base.add(fn)
}

// Invalidate notifies subscribers that the derived value may have changed.
// Exposed for adapters that manage their own upstream wiring.
func (d *Derived[T]) Invalidate() {
	d.base.notify()
}

func (d *Derived[T]) attachUpstream() {
	if d.attach == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.detach == nil {
		d.detach = d.attach(d.Invalidate)
	}
}

func (d *Derived[T]) detachUpstream() {
	d.mu.Lock()
	detach := d.detach
	d.detach = nil
	d.mu.Unlock()

	if detach != nil {
		detach()
	}
}

// Map returns a derived accessor applying a pure transform to the upstream
// value, recomputed on every upstream change.
func Map[T, U any](acc Accessor[T], fn func(T) U) Accessor[U] {
	return NewDerived(
		func() U { return fn(acc.Get()) },
		func(invalidate func()) func() {
			return acc.Subscribe(invalidate)
		},
	)
}
