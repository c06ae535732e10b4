package binding

import (
	"github.com/lumen-ui/lumen/pkg/reactive"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// RenderOne renders a plain-or-reactive scalar. Plain input renders once
// and the result never changes. Reactive input renders through a
// single-slot reconciler: only the slot's child is re-rendered when the
// value changes, so a scalar change never tears down surrounding structure.
func RenderOne[T any](scope *reactive.Scope, v Value[T], render func(scope *reactive.Scope, value T) *vdom.Node) reactive.Accessor[*vdom.Node] {
	if v.IsReactive() {
		return vdom.NewSlot(scope, v.acc, render)
	}
	return reactive.Const(render(scope, v.plain))
}

// RenderEach renders a plain-or-reactive slice. Plain input renders each
// item eagerly and collects the results into a fragment. Reactive input
// renders through the keyed list reconciler: each item gets its own item
// and index accessors so item-level changes update rows in place instead
// of re-rendering the list. A nil keyFn uses vdom.DefaultKey.
func RenderEach[T any](scope *reactive.Scope, v Value[[]T], keyFn vdom.KeyFunc[T], render vdom.ItemRender[T]) reactive.Accessor[*vdom.Node] {
	if v.IsReactive() {
		return vdom.NewForEach(scope, v.acc, keyFn, render)
	}

	items := v.plain
	children := make([]*vdom.Node, 0, len(items))
	for i, item := range items {
		node := render(reactive.NewScope(scope), reactive.Const(item), reactive.Const(i))
		if node != nil {
			children = append(children, node)
		}
	}
	return reactive.Const(vdom.Fragment(children...))
}
