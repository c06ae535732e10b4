package reactive

import (
	"sync"
	"sync/atomic"
)

// Accessor is a read/subscribe handle to a possibly-changing value.
// Get returns the current value. Subscribe registers fn to run after every
// value change and returns an idempotent unsubscribe function.
type Accessor[T any] interface {
	Get() T
	Subscribe(fn func()) (unsubscribe func())
}

// globalIDCounter is the source of unique IDs for subscribers.
// Atomic operations keep ID generation lock-free.
var globalIDCounter uint64

// nextID returns the next unique subscriber ID. IDs are never reused.
func nextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}

// subscriber pairs a callback with its registration ID.
type subscriber struct {
	id uint64
	fn func()
}

// subscribers manages a notification list shared by Source and Derived.
// Notification copies the list before invoking callbacks so a callback may
// subscribe or unsubscribe without deadlocking.
type subscribers struct {
	mu   sync.Mutex
	subs []subscriber

	// onFirst runs when the list goes from empty to non-empty,
	// onLast when it goes back to empty. Used by Derived for lazy
	// upstream attachment. Either may be nil.
	onFirst func()
	onLast  func()
}

// add registers fn and returns an idempotent removal function.
func (s *subscribers) add(fn func()) func() {
	s.mu.Lock()
	id := nextID()
	wasEmpty := len(s.subs) == 0
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	onFirst := s.onFirst
	s.mu.Unlock()

	if wasEmpty && onFirst != nil {
		onFirst()
	}

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

// remove drops the subscriber with the given ID.
func (s *subscribers) remove(id uint64) {
	s.mu.Lock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			break
		}
	}
	nowEmpty := len(s.subs) == 0
	onLast := s.onLast
	s.mu.Unlock()

	if nowEmpty && onLast != nil {
		onLast()
	}
}

// notify invokes every subscriber callback in registration order.
func (s *subscribers) notify() {
	s.mu.Lock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn()
	}
}

// len reports the current subscriber count.
func (s *subscribers) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Const returns an accessor for a value that never changes.
// Subscribe returns a no-op unsubscribe and fn is never invoked.
func Const[T any](value T) Accessor[T] {
	return constant[T]{value: value}
}

type constant[T any] struct {
	value T
}

func (c constant[T]) Get() T { return c.value }

func (c constant[T]) Subscribe(func()) func() { return func() {} }
