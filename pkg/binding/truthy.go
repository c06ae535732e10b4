package binding

import (
	"reflect"

	"github.com/lumen-ui/lumen/pkg/reactive"
)

// Truthy coerces a value to a boolean. Nil, false, empty strings, and
// numeric zero are false; slices and arrays are true iff non-empty;
// everything else is true.
func Truthy(v any) bool {
	if v == nil {
		return false
	}

	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Array:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Chan, reflect.Func:
		return !rv.IsNil()
	default:
		return true
	}
}

// TruthyValue coerces a plain-or-reactive value to a plain-or-reactive
// boolean, matching the input's reactive-ness. Reactive input yields a
// derived accessor recomputing on every upstream change.
func TruthyValue(v Value[any]) Value[bool] {
	if v.IsReactive() {
		return FromAccessor(reactive.Map[any, bool](v.acc, Truthy))
	}
	return Of(Truthy(v.plain))
}
