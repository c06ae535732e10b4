package vdom

import (
	"strconv"
	"testing"

	"github.com/lumen-ui/lumen/pkg/reactive"
)

// itemLabel renders a list row whose text tracks the item accessor.
func itemLabel(_ *reactive.Scope, item reactive.Accessor[string], index reactive.Accessor[int]) *Node {
	return Element("li", Text(item.Get()))
}

func TestForEachRendersInitialItems(t *testing.T) {
	scope := reactive.NewScope(nil)
	defer scope.Dispose()

	items := reactive.NewSource([]string{"a", "b", "c"})
	list := NewForEach[string](scope, items, nil, itemLabel)

	frag := list.Get()
	if len(frag.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(frag.Children))
	}
	if frag.Children[0].Key != "a" || frag.Children[2].Key != "c" {
		t.Errorf("unexpected keys %q, %q", frag.Children[0].Key, frag.Children[2].Key)
	}
}

func TestForEachRendersEachKeyOnce(t *testing.T) {
	scope := reactive.NewScope(nil)
	defer scope.Dispose()

	renders := 0
	items := reactive.NewSource([]string{"a", "b"})
	NewForEach[string](scope, items, nil, func(rowScope *reactive.Scope, item reactive.Accessor[string], index reactive.Accessor[int]) *Node {
		renders++
		return Element("li")
	})

	// Appending must render only the new key
	items.Set([]string{"a", "b", "c"})
	if renders != 3 {
		t.Errorf("expected 3 renders total, got %d", renders)
	}

	// Reordering must render nothing
	items.Set([]string{"c", "a", "b"})
	if renders != 3 {
		t.Errorf("expected no renders on reorder, got %d", renders)
	}
}

func TestForEachItemAccessorUpdatesInPlace(t *testing.T) {
	type track struct {
		ID    int
		Title string
	}

	scope := reactive.NewScope(nil)
	defer scope.Dispose()

	items := reactive.NewSource([]track{{1, "one"}, {2, "two"}})
	keyFn := func(tr track, _ int) string { return strconv.Itoa(tr.ID) }

	itemChanges := map[int]int{}
	fe := NewForEach[track](scope, items, keyFn, func(rowScope *reactive.Scope, item reactive.Accessor[track], index reactive.Accessor[int]) *Node {
		id := item.Get().ID
		rowScope.OnCleanup(item.Subscribe(func() { itemChanges[id]++ }))
		return Element("li")
	})

	structural := 0
	unsub := fe.Subscribe(func() { structural++ })
	defer unsub()

	// Same keys, one changed title: no structural notification,
	// exactly one item-level change.
	items.Set([]track{{1, "one"}, {2, "deux"}})

	if itemChanges[2] != 1 {
		t.Errorf("expected 1 item-level change for id 2, got %d", itemChanges[2])
	}
	if itemChanges[1] != 0 {
		t.Errorf("expected no item-level change for id 1, got %d", itemChanges[1])
	}
	if structural != 0 {
		t.Errorf("expected no structural notification for in-place update, got %d", structural)
	}
}

func TestForEachIndexAccessorTracksPosition(t *testing.T) {
	scope := reactive.NewScope(nil)
	defer scope.Dispose()

	items := reactive.NewSource([]string{"a", "b"})

	var indexOfB reactive.Accessor[int]
	NewForEach[string](scope, items, nil, func(rowScope *reactive.Scope, item reactive.Accessor[string], index reactive.Accessor[int]) *Node {
		if item.Get() == "b" {
			indexOfB = index
		}
		return Element("li")
	})

	if indexOfB.Get() != 1 {
		t.Fatalf("expected index 1, got %d", indexOfB.Get())
	}

	items.Set([]string{"b", "a"})
	if indexOfB.Get() != 0 {
		t.Errorf("expected index 0 after reorder, got %d", indexOfB.Get())
	}
}

func TestForEachDisposesRemovedRows(t *testing.T) {
	scope := reactive.NewScope(nil)
	defer scope.Dispose()

	items := reactive.NewSource([]string{"a", "b"})

	disposed := map[string]bool{}
	fe := NewForEach[string](scope, items, nil, func(rowScope *reactive.Scope, item reactive.Accessor[string], index reactive.Accessor[int]) *Node {
		key := item.Get()
		rowScope.OnCleanup(func() { disposed[key] = true })
		return Element("li")
	})

	items.Set([]string{"a"})

	if !disposed["b"] {
		t.Error("expected removed row's scope to be disposed")
	}
	if disposed["a"] {
		t.Error("expected surviving row's scope to stay live")
	}
	if fe.Len() != 1 {
		t.Errorf("expected 1 row after removal, got %d", fe.Len())
	}
	frag := fe.Get()
	if len(frag.Children) != 1 || frag.Children[0].Key != "a" {
		t.Errorf("unexpected fragment after removal: %+v", frag.Children)
	}
}

func TestForEachStructuralNotification(t *testing.T) {
	scope := reactive.NewScope(nil)
	defer scope.Dispose()

	items := reactive.NewSource([]string{"a"})
	fe := NewForEach[string](scope, items, nil, itemLabel)

	structural := 0
	unsub := fe.Subscribe(func() { structural++ })
	defer unsub()

	items.Set([]string{"a", "b"})
	if structural != 1 {
		t.Errorf("expected 1 structural notification on append, got %d", structural)
	}

	items.Set([]string{"b", "a"})
	if structural != 2 {
		t.Errorf("expected structural notification on reorder, got %d", structural)
	}
}

func TestForEachScopeTeardownStopsReconciliation(t *testing.T) {
	scope := reactive.NewScope(nil)

	items := reactive.NewSource([]string{"a"})
	fe := NewForEach[string](scope, items, nil, itemLabel)

	structural := 0
	unsub := fe.Subscribe(func() { structural++ })
	defer unsub()

	scope.Dispose()
	items.Set([]string{"a", "b"})

	if structural != 0 {
		t.Errorf("expected no reconciliation after scope teardown, got %d", structural)
	}
	if fe.Len() != 1 {
		t.Errorf("expected row count frozen at 1, got %d", fe.Len())
	}
}
