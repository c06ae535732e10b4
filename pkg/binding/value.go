package binding

import "github.com/lumen-ui/lumen/pkg/reactive"

// Value is a tagged union holding either a plain value or a reactive
// accessor. Adapters that accept "plain or reactive" input take a Value
// and preserve the input's reactive-ness in their output.
type Value[T any] struct {
	acc   reactive.Accessor[T]
	plain T
}

// Of wraps a plain value.
func Of[T any](v T) Value[T] {
	return Value[T]{plain: v}
}

// FromAccessor wraps a reactive accessor.
func FromAccessor[T any](acc reactive.Accessor[T]) Value[T] {
	return Value[T]{acc: acc}
}

// IsReactive reports whether the value is backed by an accessor.
func (v Value[T]) IsReactive() bool {
	return v.acc != nil
}

// Get returns the current value, pulling through the accessor when
// reactive.
func (v Value[T]) Get() T {
	if v.acc != nil {
		return v.acc.Get()
	}
	return v.plain
}

// Accessor returns the backing accessor, wrapping a plain value in a
// constant accessor that never notifies.
func (v Value[T]) Accessor() reactive.Accessor[T] {
	if v.acc != nil {
		return v.acc
	}
	return reactive.Const(v.plain)
}
