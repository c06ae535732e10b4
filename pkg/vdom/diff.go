package vdom

import (
	"fmt"
	"reflect"
)

// Diff compares two trees and returns the patches needed to transform prev
// into next. Patches address nodes by child-index path in the prev tree.
func Diff(prev, next *Node) []Patch {
	var patches []Patch
	diff(prev, next, nil, &patches)
	return patches
}

func diff(prev, next *Node, path []int, patches *[]Patch) {
	// Both nil - nothing to do
	if prev == nil && next == nil {
		return
	}

	// Node added (handled by parent via InsertNode)
	if prev == nil {
		return
	}

	// Node removed
	if next == nil {
		*patches = append(*patches, Patch{Op: PatchRemoveNode, Path: clonePath(path)})
		return
	}

	// Different kinds - replace
	if prev.Kind != next.Kind {
		*patches = append(*patches, Patch{Op: PatchReplaceNode, Path: clonePath(path), Node: next})
		return
	}

	switch prev.Kind {
	case KindText:
		if prev.Text != next.Text {
			*patches = append(*patches, Patch{Op: PatchSetText, Path: clonePath(path), Value: next.Text})
		}
	case KindElement:
		// Different tag - replace the entire node
		if prev.Tag != next.Tag {
			*patches = append(*patches, Patch{Op: PatchReplaceNode, Path: clonePath(path), Node: next})
			return
		}
		diffProps(prev, next, path, patches)
		diffChildren(prev, next, path, patches)
	case KindFragment:
		diffChildren(prev, next, path, patches)
	}
}

// diffProps compares and patches attributes.
func diffProps(prev, next *Node, path []int, patches *[]Patch) {
	for key, prevVal := range prev.Props {
		nextVal, exists := next.Props[key]
		if !exists {
			*patches = append(*patches, Patch{Op: PatchRemoveAttr, Path: clonePath(path), Key: key})
		} else if !propsEqual(prevVal, nextVal) {
			*patches = append(*patches, Patch{
				Op: PatchSetAttr, Path: clonePath(path), Key: key, Value: propToString(nextVal),
			})
		}
	}

	for key, nextVal := range next.Props {
		if _, exists := prev.Props[key]; !exists {
			*patches = append(*patches, Patch{
				Op: PatchSetAttr, Path: clonePath(path), Key: key, Value: propToString(nextVal),
			})
		}
	}
}

// diffChildren compares child lists, using keyed matching when any child
// carries a key and positional matching otherwise.
func diffChildren(prev, next *Node, path []int, patches *[]Patch) {
	if hasKeys(prev.Children) || hasKeys(next.Children) {
		diffKeyedChildren(prev.Children, next.Children, path, patches)
	} else {
		diffUnkeyedChildren(prev.Children, next.Children, path, patches)
	}
}

// diffUnkeyedChildren matches children by position.
func diffUnkeyedChildren(prev, next []*Node, path []int, patches *[]Patch) {
	maxLen := len(prev)
	if len(next) > maxLen {
		maxLen = len(next)
	}

	for i := 0; i < maxLen; i++ {
		var prevChild, nextChild *Node
		if i < len(prev) {
			prevChild = prev[i]
		}
		if i < len(next) {
			nextChild = next[i]
		}

		childPath := append(clonePath(path), i)
		if prevChild == nil && nextChild != nil {
			*patches = append(*patches, Patch{
				Op: PatchInsertNode, Parent: clonePath(path), Index: i, Node: nextChild,
			})
		} else {
			diff(prevChild, nextChild, childPath, patches)
		}
	}
}

// diffKeyedChildren matches children by key so reorders become moves.
func diffKeyedChildren(prev, next []*Node, path []int, patches *[]Patch) {
	prevKeyMap := make(map[string]int)
	for i, child := range prev {
		if child.Key != "" {
			prevKeyMap[child.Key] = i
		}
	}

	matched := make(map[int]bool)

	for nextIdx, nextChild := range next {
		if nextChild.Key != "" {
			if prevIdx, exists := prevKeyMap[nextChild.Key]; exists {
				matched[prevIdx] = true
				childPath := append(clonePath(path), prevIdx)

				if prevIdx != nextIdx {
					*patches = append(*patches, Patch{
						Op: PatchMoveNode, Path: childPath, Parent: clonePath(path), Index: nextIdx,
					})
				}
				diff(prev[prevIdx], nextChild, childPath, patches)
				continue
			}
		}

		// New or unkeyed child - insert
		*patches = append(*patches, Patch{
			Op: PatchInsertNode, Parent: clonePath(path), Index: nextIdx, Node: nextChild,
		})
	}

	// Remove prev children that were never matched
	for prevIdx, prevChild := range prev {
		if !matched[prevIdx] && prevChild.Key != "" {
			*patches = append(*patches, Patch{
				Op: PatchRemoveNode, Path: append(clonePath(path), prevIdx),
			})
		}
	}
}

func hasKeys(children []*Node) bool {
	for _, child := range children {
		if child != nil && child.Key != "" {
			return true
		}
	}
	return false
}

func propsEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

func propToString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}

func clonePath(path []int) []int {
	if path == nil {
		return nil
	}
	out := make([]int, len(path))
	copy(out, path)
	return out
}
