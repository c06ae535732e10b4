// Package vdom provides the renderable element tree produced by lumen's
// binding layer, plus the reconcilers that keep it in sync with reactive
// state.
//
// A Node is a plain value tree (elements, text, fragments). Diff compares
// two trees and returns the patches transforming one into the other; keyed
// children are matched by key so reorders become moves instead of
// teardown/rebuild.
//
// ForEach and Slot are the live reconcilers: ForEach maintains a keyed list
// where each item is rendered once and updated through its own item and
// index accessors, and Slot re-renders a single child when a scalar
// accessor changes.
package vdom
