package reactive

import (
	"sync"
	"sync/atomic"
)

// Scope is an explicit lifecycle context. Cleanup callbacks registered with
// OnCleanup run exactly once when the scope is disposed, in reverse
// registration order. Scopes form a hierarchy: disposing a parent disposes
// its children (last created first) before running its own cleanups.
//
// There is no ambient current scope. Helpers that tie a subscription to a
// lifecycle take the *Scope explicitly.
type Scope struct {
	parent *Scope

	children   []*Scope
	childrenMu sync.Mutex

	cleanups   []func()
	cleanupsMu sync.Mutex

	disposed atomic.Bool
}

// NewScope creates a scope with the given parent. A nil parent creates a
// root scope. The new scope is registered as a child of the parent and is
// disposed with it.
func NewScope(parent *Scope) *Scope {
	s := &Scope{parent: parent}
	if parent != nil {
		parent.addChild(s)
	}
	return s
}

// Parent returns the parent scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// IsDisposed reports whether the scope has been disposed.
func (s *Scope) IsDisposed() bool {
	return s.disposed.Load()
}

// OnCleanup registers fn to run when the scope is disposed.
// Registering on an already-disposed scope runs fn immediately.
func (s *Scope) OnCleanup(fn func()) {
	if s.disposed.Load() {
		fn()
		return
	}

	s.cleanupsMu.Lock()
	defer s.cleanupsMu.Unlock()
	s.cleanups = append(s.cleanups, fn)
}

// Dispose tears down the scope: children are disposed in reverse creation
// order, then cleanups run in reverse registration order. Dispose is
// idempotent.
func (s *Scope) Dispose() {
	if s.disposed.Swap(true) {
		return
	}

	if s.parent != nil {
		s.parent.removeChild(s)
	}

	s.childrenMu.Lock()
	children := make([]*Scope, len(s.children))
	copy(children, s.children)
	s.children = nil
	s.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	s.cleanupsMu.Lock()
	cleanups := s.cleanups
	s.cleanups = nil
	s.cleanupsMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

func (s *Scope) addChild(child *Scope) {
	s.childrenMu.Lock()
	defer s.childrenMu.Unlock()
	s.children = append(s.children, child)
}

func (s *Scope) removeChild(child *Scope) {
	s.childrenMu.Lock()
	defer s.childrenMu.Unlock()

	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}
