package binding

import "github.com/lumen-ui/lumen/pkg/reactive"

// MapValue applies a pure transform to a plain-or-reactive value,
// preserving the input's reactive-ness: plain input maps eagerly, reactive
// input yields a derived accessor recomputing on every upstream change.
func MapValue[T, U any](v Value[T], fn func(T) U) Value[U] {
	if v.IsReactive() {
		return FromAccessor(reactive.Map(v.acc, fn))
	}
	return Of(fn(v.plain))
}

// Filter applies a predicate to a plain-or-reactive slice, preserving
// order and the input's reactive-ness. The predicate receives the value,
// its index, and the full slice.
func Filter[T any](v Value[[]T], pred func(value T, index int, all []T) bool) Value[[]T] {
	filter := func(items []T) []T {
		out := make([]T, 0, len(items))
		for i, item := range items {
			if pred(item, i, items) {
				out = append(out, item)
			}
		}
		return out
	}

	if v.IsReactive() {
		return FromAccessor(reactive.Map(v.acc, filter))
	}
	return Of(filter(v.plain))
}
