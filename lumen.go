// Package lumen provides the public API for the Lumen binding library.
//
// This is the recommended import for most applications:
//
//	import "github.com/lumen-ui/lumen"
//
// Usage:
//
//	scope := lumen.NewScope(nil)
//	title := lumen.NewSource("Bohemian Rhapsody")
//	lumen.Track[string](scope, title, func() { refresh() })
//	label := lumen.BindProperty(host, "label", "")
package lumen

import (
	"github.com/lumen-ui/lumen/pkg/binding"
	"github.com/lumen-ui/lumen/pkg/object"
	"github.com/lumen-ui/lumen/pkg/reactive"
)

// =============================================================================
// Reactive primitives (re-export from pkg/reactive)
// =============================================================================

// Accessor is a readable reactive value.
type Accessor[T any] = reactive.Accessor[T]

// Source is a writable reactive value.
type Source[T any] = reactive.Source[T]

// Derived is an accessor computed from upstream state.
type Derived[T any] = reactive.Derived[T]

// Scope owns subscriptions and releases them on Dispose.
type Scope = reactive.Scope

// NewSource creates a writable reactive value.
func NewSource[T any](initial T) *Source[T] {
	return reactive.NewSource(initial)
}

// NewDerived creates a derived accessor from a getter and an attach function.
func NewDerived[T any](get func() T, attach func(invalidate func()) (detach func())) *Derived[T] {
	return reactive.NewDerived(get, attach)
}

// NewScope creates a scope; passing a parent ties its lifetime to the parent.
func NewScope(parent *Scope) *Scope {
	return reactive.NewScope(parent)
}

// Const wraps a fixed value as an accessor that never notifies.
func Const[T any](value T) Accessor[T] {
	return reactive.Const(value)
}

// Map derives an accessor by applying a pure transform to another.
func Map[T, U any](acc Accessor[T], fn func(T) U) Accessor[U] {
	return reactive.Map(acc, fn)
}

// =============================================================================
// Object model (re-export from pkg/object)
// =============================================================================

// Object is a property bag with signal-based change notification.
type Object = object.Object

// ErrDisposed reports use of a disposed object.
var ErrDisposed = object.ErrDisposed

// NewObject creates an empty object.
func NewObject() *Object {
	return object.New()
}

// NotifySignal returns the change signal name for a property.
var NotifySignal = object.NotifySignal

// =============================================================================
// Binding adapters (re-export from pkg/binding)
// =============================================================================

// Value is either a plain value or a reactive accessor.
type Value[T any] = binding.Value[T]

// Of wraps a plain value.
func Of[T any](v T) Value[T] {
	return binding.Of(v)
}

// FromAccessor wraps a reactive accessor.
func FromAccessor[T any](acc Accessor[T]) Value[T] {
	return binding.FromAccessor(acc)
}

// Track runs fn on every change of acc until the scope is disposed.
func Track[T any](scope *Scope, acc Accessor[T], fn func()) {
	binding.Track(scope, acc, fn)
}

// Connect wires a signal handler released with the scope.
var Connect = binding.Connect

// BindProperty exposes an object property as an accessor.
var BindProperty = binding.BindProperty

// BindNested exposes a property of a host that is itself reactive.
var BindNested = binding.BindNested

// BindNestedDefault is BindNested with a fallback for absent hosts.
var BindNestedDefault = binding.BindNestedDefault

// Truthy reports whether a value is considered set.
var Truthy = binding.Truthy

// Construct assigns a property map to a target object.
var Construct = binding.Construct
