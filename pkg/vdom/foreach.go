package vdom

import (
	"fmt"
	"sync"

	"github.com/lumen-ui/lumen/pkg/reactive"
)

// KeyFunc derives the reconciliation key for an item.
type KeyFunc[T any] func(item T, index int) string

// DefaultKey keys an item by its formatted value.
func DefaultKey[T any](item T, _ int) string {
	return fmt.Sprint(item)
}

// ItemRender renders one list item. The item and index are accessors so a
// row can update in place when its value or position changes, without the
// list re-rendering. The scope is the row's own lifecycle: it is disposed
// when the row's key leaves the list.
type ItemRender[T any] func(scope *reactive.Scope, item reactive.Accessor[T], index reactive.Accessor[int]) *Node

// ForEach is a keyed list reconciler over a reactive slice. Each key is
// rendered exactly once; on upstream change, surviving rows receive the new
// item and index through their accessors, removed rows have their scopes
// disposed, and only new keys are rendered.
//
// ForEach is itself an Accessor[*Node]: Get returns the current fragment
// and subscribers are notified when the list structure changes.
type ForEach[T any] struct {
	*reactive.Derived[*Node]

	items  reactive.Accessor[[]T]
	render ItemRender[T]
	keyFn  KeyFunc[T]

	mu    sync.Mutex
	rows  map[string]*row[T]
	order []string
	frag  *Node
}

// row holds the live state of one keyed list item.
type row[T any] struct {
	scope *reactive.Scope
	item  *reactive.Source[T]
	index *reactive.Source[int]
	node  *Node
}

// NewForEach creates a keyed list reconciler bound to the given scope.
// The upstream subscription is released when the scope is disposed, along
// with every row's child scope. A nil keyFn uses DefaultKey.
func NewForEach[T any](scope *reactive.Scope, items reactive.Accessor[[]T], keyFn KeyFunc[T], render ItemRender[T]) *ForEach[T] {
	if keyFn == nil {
		keyFn = DefaultKey[T]
	}

	f := &ForEach[T]{
		items:  items,
		render: render,
		keyFn:  keyFn,
		rows:   make(map[string]*row[T]),
	}
	f.Derived = reactive.NewDerived(f.fragment, nil)

	f.reconcile(scope)
	scope.OnCleanup(items.Subscribe(func() {
		if f.reconcile(scope) {
			f.Invalidate()
		}
	}))

	return f
}

// fragment returns the current rendered fragment.
func (f *ForEach[T]) fragment() *Node {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frag
}

// reconcile brings rows in line with the upstream slice. Reports whether
// the list structure (keys or order) changed.
func (f *ForEach[T]) reconcile(scope *reactive.Scope) bool {
	items := f.items.Get()

	f.mu.Lock()
	defer f.mu.Unlock()

	nextOrder := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))

	for i, item := range items {
		key := f.keyFn(item, i)
		if seen[key] {
			// Duplicate keys fall back to positional uniqueness
			key = fmt.Sprintf("%s@%d", key, i)
		}
		seen[key] = true
		nextOrder = append(nextOrder, key)

		if r, ok := f.rows[key]; ok {
			// Surviving row: push new item and index through its accessors
			r.item.Set(item)
			r.index.Set(i)
			continue
		}

		r := &row[T]{
			scope: reactive.NewScope(scope),
			item:  reactive.NewSource(item),
			index: reactive.NewSource(i),
		}
		r.node = f.render(r.scope, r.item, r.index)
		if r.node != nil {
			r.node.Key = key
		}
		f.rows[key] = r
	}

	// Dispose rows whose keys are gone
	for key, r := range f.rows {
		if !seen[key] {
			r.scope.Dispose()
			delete(f.rows, key)
		}
	}

	changed := !sameOrder(f.order, nextOrder)
	f.order = nextOrder

	children := make([]*Node, 0, len(nextOrder))
	for _, key := range nextOrder {
		if r := f.rows[key]; r.node != nil {
			children = append(children, r.node)
		}
	}
	f.frag = Fragment(children...)

	return changed
}

// Len reports the current row count.
func (f *ForEach[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.order)
}

func sameOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
