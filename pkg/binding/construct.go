package binding

import (
	"fmt"
	"reflect"

	"github.com/lumen-ui/lumen/pkg/object"
)

// Construct bulk-assigns properties onto target from a mix of plain and
// reactive values. Plain entries are assigned once. Reactive entries are
// assigned immediately and re-assigned on every change; when the target is
// an *object.Object, each re-assignment also emits the property's
// notify::<kebab-case> signal so other bindings on the host observe it.
// Entries holding a plain nil are skipped entirely.
//
// The returned release functions stop the reactive re-assignments. They
// are NOT registered on any scope: the caller owns them.
func Construct(target any, props map[string]Value[any]) []func() {
	assign := assignerFor(target)

	var releases []func()
	for name, prop := range props {
		if !prop.IsReactive() {
			if prop.plain == nil {
				continue
			}
			assign(name, prop.plain)
			continue
		}

		acc := prop.acc
		assign(name, acc.Get())
		name := name
		releases = append(releases, acc.Subscribe(func() {
			assign(name, acc.Get())
		}))
	}
	return releases
}

// assignerFor returns the field-assignment strategy for target. Notifying
// objects assign through Set, which emits the change signal; any other
// struct pointer is assigned via its exported fields.
func assignerFor(target any) func(name string, value any) {
	if obj, ok := target.(*object.Object); ok {
		return obj.Set
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("binding: Construct target must be *object.Object or a struct pointer, got %T", target))
	}
	elem := rv.Elem()

	return func(name string, value any) {
		field := elem.FieldByName(name)
		if !field.IsValid() || !field.CanSet() {
			panic(fmt.Sprintf("binding: Construct: no settable field %q on %T", name, target))
		}
		if value == nil {
			field.Set(reflect.Zero(field.Type()))
			return
		}
		v := reflect.ValueOf(value)
		if !v.Type().AssignableTo(field.Type()) {
			if !v.Type().ConvertibleTo(field.Type()) {
				panic(fmt.Sprintf("binding: Construct: cannot assign %T to field %q", value, name))
			}
			v = v.Convert(field.Type())
		}
		field.Set(v)
	}
}
