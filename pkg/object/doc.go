// Package object provides the notifying property host consumed by lumen's
// binding layer.
//
// An Object holds named properties and emits signals when they change.
// Handlers connect to named signals and receive the emitting object as the
// first argument, followed by the signal's own arguments:
//
//	obj := object.New()
//	obj.Set("iconName", "audio")
//	id := obj.Connect(object.NotifySignal("iconName"), func(args ...any) {
//	    // args[0] is obj
//	})
//	obj.Set("iconName", "video") // emits "notify::icon-name"
//	obj.Disconnect(id)
//
// Property-change signals are named "notify::<kebab-case-property>"; the
// camelCase-to-kebab-case mapping lives in KebabCase and NotifySignal.
//
// Disposal is a benign terminal state: Disconnect on a disposed object
// returns ErrDisposed, and callers that race against disposal are expected
// to ignore it.
package object
