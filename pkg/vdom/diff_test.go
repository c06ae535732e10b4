package vdom

import "testing"

func TestDiffIdenticalTrees(t *testing.T) {
	tree := Element("div", Text("hello"))
	other := Element("div", Text("hello"))

	patches := Diff(tree, other)
	if len(patches) != 0 {
		t.Errorf("expected no patches for identical trees, got %d", len(patches))
	}
}

func TestDiffTextChange(t *testing.T) {
	prev := Element("div", Text("hello"))
	next := Element("div", Text("world"))

	patches := Diff(prev, next)
	if len(patches) != 1 {
		t.Fatalf("expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchSetText || patches[0].Value != "world" {
		t.Errorf("unexpected patch %+v", patches[0])
	}
	if len(patches[0].Path) != 1 || patches[0].Path[0] != 0 {
		t.Errorf("expected path [0], got %v", patches[0].Path)
	}
}

func TestDiffTagChangeReplaces(t *testing.T) {
	prev := Element("div")
	next := Element("span")

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != PatchReplaceNode {
		t.Fatalf("expected single replace patch, got %+v", patches)
	}
	if patches[0].Node != next {
		t.Error("expected replacement node to be the next tree")
	}
}

func TestDiffAttrChanges(t *testing.T) {
	prev := Element("div").WithProp("class", "old").WithProp("id", "x")
	next := Element("div").WithProp("class", "new").WithProp("title", "t")

	patches := Diff(prev, next)

	ops := map[PatchOp]int{}
	for _, p := range patches {
		ops[p.Op]++
	}
	if ops[PatchSetAttr] != 2 {
		t.Errorf("expected 2 SetAttr patches (class change, title add), got %d", ops[PatchSetAttr])
	}
	if ops[PatchRemoveAttr] != 1 {
		t.Errorf("expected 1 RemoveAttr patch for id, got %d", ops[PatchRemoveAttr])
	}
}

func TestDiffUnkeyedInsertAndRemove(t *testing.T) {
	prev := Element("ul", Element("li"), Element("li"))
	next := Element("ul", Element("li"))

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != PatchRemoveNode {
		t.Fatalf("expected single remove patch, got %+v", patches)
	}

	patches = Diff(next, prev)
	if len(patches) != 1 || patches[0].Op != PatchInsertNode || patches[0].Index != 1 {
		t.Fatalf("expected single insert at index 1, got %+v", patches)
	}
}

func TestDiffKeyedReorderMovesInsteadOfRebuild(t *testing.T) {
	prev := Element("ul",
		Element("li", Text("a")).WithKey("a"),
		Element("li", Text("b")).WithKey("b"),
		Element("li", Text("c")).WithKey("c"),
	)
	next := Element("ul",
		Element("li", Text("c")).WithKey("c"),
		Element("li", Text("a")).WithKey("a"),
		Element("li", Text("b")).WithKey("b"),
	)

	patches := Diff(prev, next)
	for _, p := range patches {
		if p.Op == PatchInsertNode || p.Op == PatchRemoveNode || p.Op == PatchReplaceNode {
			t.Errorf("expected only moves for keyed reorder, got %v", p.Op)
		}
	}

	moves := 0
	for _, p := range patches {
		if p.Op == PatchMoveNode {
			moves++
		}
	}
	if moves == 0 {
		t.Error("expected at least one move patch")
	}
}

func TestDiffKeyedRemoval(t *testing.T) {
	prev := Element("ul",
		Element("li").WithKey("a"),
		Element("li").WithKey("b"),
	)
	next := Element("ul",
		Element("li").WithKey("b"),
	)

	patches := Diff(prev, next)

	removed := false
	for _, p := range patches {
		if p.Op == PatchRemoveNode && len(p.Path) == 1 && p.Path[0] == 0 {
			removed = true
		}
	}
	if !removed {
		t.Errorf("expected removal of keyed child at index 0, got %+v", patches)
	}
}

func TestDiffKeyedUpdateInPlace(t *testing.T) {
	prev := Element("ul", Element("li", Text("1")).WithKey("a"))
	next := Element("ul", Element("li", Text("2")).WithKey("a"))

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != PatchSetText || patches[0].Value != "2" {
		t.Fatalf("expected single text patch, got %+v", patches)
	}
}
