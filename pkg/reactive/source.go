package reactive

import (
	"reflect"
	"sync"
)

// Source is a settable reactive value container.
// Writes notify subscribers only when the value actually changed, as
// determined by the configured equality function.
type Source[T any] struct {
	base subscribers

	// value is the current value, guarded by mu.
	value T
	mu    sync.RWMutex

	// equal overrides the default equality check when non-nil.
	equal func(T, T) bool
}

// NewSource creates a source holding the given initial value.
func NewSource[T any](initial T) *Source[T] {
	return &Source[T]{value: initial}
}

// Get returns the current value.
func (s *Source[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Peek is an alias for Get kept for symmetry with derived accessors,
// where Get may recompute.
func (s *Source[T]) Peek() T {
	return s.Get()
}

// Set updates the value and notifies subscribers if it changed.
func (s *Source[T]) Set(value T) {
	s.mu.Lock()
	changed := !s.equals(s.value, value)
	if changed {
		s.value = value
	}
	s.mu.Unlock()

	if changed {
		s.base.notify()
	}
}

// Update atomically transforms the value and notifies subscribers if the
// result differs from the previous value.
func (s *Source[T]) Update(fn func(T) T) {
	s.mu.Lock()
	oldValue := s.value
	newValue := fn(oldValue)
	changed := !s.equals(oldValue, newValue)
	if changed {
		s.value = newValue
	}
	s.mu.Unlock()

	if changed {
		s.base.notify()
	}
}

// Subscribe registers fn to run after every value change.
func (s *Source[T]) Subscribe(fn func()) func() {
	return s.base.add(fn)
}

// WithEquals configures a custom equality function and returns the source.
// Useful where reflect.DeepEqual is too expensive or has wrong semantics.
func (s *Source[T]) WithEquals(fn func(T, T) bool) *Source[T] {
	s.equal = fn
	return s
}

func (s *Source[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals uses == for common comparable kinds and falls back to
// reflect.DeepEqual for slices, maps, and structs.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return reflect.DeepEqual(a, b)
	}
}
