package vdom

import (
	"sync"

	"github.com/lumen-ui/lumen/pkg/reactive"
)

// Slot is a single-child reconciler over a reactive scalar. When the bound
// accessor changes, the previous child's scope is disposed and the child is
// re-rendered; siblings are untouched, so a scalar change never tears down
// a surrounding list.
//
// Slot is itself an Accessor[*Node].
type Slot[T any] struct {
	*reactive.Derived[*Node]

	acc    reactive.Accessor[T]
	render func(scope *reactive.Scope, value T) *Node

	mu    sync.Mutex
	child *reactive.Scope
	node  *Node
}

// NewSlot creates a single-child reconciler bound to the given scope.
// The renderer receives a child scope that is disposed before every
// re-render and on teardown of the outer scope.
func NewSlot[T any](scope *reactive.Scope, acc reactive.Accessor[T], render func(scope *reactive.Scope, value T) *Node) *Slot[T] {
	s := &Slot[T]{acc: acc, render: render}
	s.Derived = reactive.NewDerived(s.current, nil)

	s.rerender(scope)
	scope.OnCleanup(acc.Subscribe(func() {
		s.rerender(scope)
		s.Invalidate()
	}))

	return s
}

// current returns the most recently rendered child.
func (s *Slot[T]) current() *Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.node
}

func (s *Slot[T]) rerender(scope *reactive.Scope) {
	value := s.acc.Get()

	s.mu.Lock()
	prev := s.child
	s.child = reactive.NewScope(scope)
	child := s.child
	s.mu.Unlock()

	if prev != nil {
		prev.Dispose()
	}

	node := s.render(child, value)

	s.mu.Lock()
	s.node = node
	s.mu.Unlock()
}
