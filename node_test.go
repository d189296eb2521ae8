package uievents

import (
	"slices"
	"testing"
)

func TestNewNodeDefaults(t *testing.T) {
	tree := NewTree()
	id := tree.NewNode("test")
	if !tree.Valid(id) {
		t.Fatal("new node should be valid")
	}
	if tree.Name(id) != "test" {
		t.Errorf("Name = %q, want %q", tree.Name(id), "test")
	}
	if !tree.ActiveSelf(id) || !tree.ActiveAndEnabled(id) {
		t.Error("new node should be active and enabled")
	}
	if tree.Parent(id) != NoNode {
		t.Errorf("Parent = %d, want NoNode", tree.Parent(id))
	}
	if tree.Valid(NoNode) {
		t.Error("NoNode should never be valid")
	}
}

func TestAddChildOrder(t *testing.T) {
	tree := NewTree()
	root := tree.NewNode("root")
	a := tree.NewChild(root, "a")
	b := tree.NewChild(root, "b")
	c := tree.NewChild(root, "c")

	got := tree.Children(root, nil)
	if want := []NodeID{a, b, c}; !slices.Equal(got, want) {
		t.Errorf("Children = %v, want %v", got, want)
	}
	if tree.NumChildren(root) != 3 {
		t.Errorf("NumChildren = %d, want 3", tree.NumChildren(root))
	}

	tree.RemoveFromParent(b)
	got = tree.Children(root, nil)
	if want := []NodeID{a, c}; !slices.Equal(got, want) {
		t.Errorf("after remove: Children = %v, want %v", got, want)
	}
	if tree.Parent(b) != NoNode {
		t.Error("removed node should have no parent")
	}
}

func TestAddChildReparents(t *testing.T) {
	tree := NewTree()
	p1 := tree.NewNode("p1")
	p2 := tree.NewNode("p2")
	c := tree.NewChild(p1, "c")

	tree.AddChild(p2, c)
	if tree.Parent(c) != p2 {
		t.Errorf("Parent = %d, want %d", tree.Parent(c), p2)
	}
	if tree.NumChildren(p1) != 0 {
		t.Errorf("old parent still has %d children", tree.NumChildren(p1))
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	tree := NewTree()
	a := tree.NewNode("a")
	b := tree.NewChild(a, "b")
	c := tree.NewChild(b, "c")

	tests := []struct {
		name          string
		parent, child NodeID
	}{
		{"self", a, a},
		{"grandparent under grandchild", c, a},
		{"parent under child", c, b},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tree.AddChild(tt.parent, tt.child)
		})
	}
}

func TestInvalidNodePanics(t *testing.T) {
	tree := NewTree()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on invalid node")
		}
	}()
	tree.SetActive(NodeID(42), false)
}

func TestDestroyRecursive(t *testing.T) {
	tree := NewTree()
	root := tree.NewNode("root")
	a := tree.NewChild(root, "a")
	b := tree.NewChild(a, "b")
	tree.AddHandler(b, PointerClickFunc(func(*PointerEvent) {}))

	tree.Destroy(a)
	if tree.Valid(a) || tree.Valid(b) {
		t.Error("destroyed subtree should be invalid")
	}
	if tree.NumChildren(root) != 0 {
		t.Error("destroyed node still attached")
	}
	if tree.NumHandlers(b) != 0 {
		t.Error("handlers survive Destroy")
	}
	// Destroying again is a no-op.
	tree.Destroy(a)
}

func TestActiveInHierarchy(t *testing.T) {
	tree := NewTree()
	root := tree.NewNode("root")
	mid := tree.NewChild(root, "mid")
	leaf := tree.NewChild(mid, "leaf")

	tree.SetActive(mid, false)
	if tree.ActiveInHierarchy(leaf) {
		t.Error("leaf under inactive parent should be inactive in hierarchy")
	}
	if !tree.ActiveSelf(leaf) {
		t.Error("leaf's own flag should stay active")
	}
	tree.SetActive(mid, true)
	if !tree.ActiveInHierarchy(leaf) {
		t.Error("leaf should be active again")
	}

	tree.SetEnabled(leaf, false)
	if tree.ActiveAndEnabled(leaf) {
		t.Error("disabled node should not be ActiveAndEnabled")
	}
	if !tree.ActiveInHierarchy(leaf) {
		t.Error("disabling does not deactivate")
	}
}

func TestIsAncestorAndDepth(t *testing.T) {
	tree := NewTree()
	root := tree.NewNode("root")
	a := tree.NewChild(root, "a")
	b := tree.NewChild(a, "b")

	if !tree.IsAncestor(root, b) || !tree.IsAncestor(b, b) {
		t.Error("IsAncestor should include ancestors and self")
	}
	if tree.IsAncestor(b, root) {
		t.Error("descendant is not an ancestor")
	}
	if d := tree.Depth(b); d != 2 {
		t.Errorf("Depth = %d, want 2", d)
	}
	if p := tree.Path(b); p != "root/a/b" {
		t.Errorf("Path = %q, want root/a/b", p)
	}
}

func TestHandlerHandleRemove(t *testing.T) {
	tree := NewTree()
	id := tree.NewNode("n")
	h1 := tree.AddHandler(id, PointerClickFunc(func(*PointerEvent) {}))
	tree.AddHandler(id, DragFunc(func(*PointerEvent) {}))

	if got := tree.Capabilities(id); !got.Has(CapPointerClick) || !got.Has(CapDrag) {
		t.Errorf("Capabilities = %v", got)
	}
	h1.Remove()
	h1.Remove()
	if tree.NumHandlers(id) != 1 {
		t.Errorf("NumHandlers = %d, want 1", tree.NumHandlers(id))
	}
	if tree.Capabilities(id).Has(CapPointerClick) {
		t.Error("removed handler still reported")
	}
}

func TestAddNilHandlerPanics(t *testing.T) {
	tree := NewTree()
	id := tree.NewNode("n")
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	tree.AddHandler(id, nil)
}

func TestEntityAndUserData(t *testing.T) {
	tree := NewTree()
	id := tree.NewNode("n")
	tree.SetEntityID(id, 9)
	tree.SetUserData(id, "payload")
	if tree.EntityID(id) != 9 {
		t.Errorf("EntityID = %d, want 9", tree.EntityID(id))
	}
	if tree.UserData(id) != "payload" {
		t.Errorf("UserData = %v", tree.UserData(id))
	}
	tree.Destroy(id)
	if tree.UserData(id) != nil || tree.EntityID(id) != 0 {
		t.Error("destroyed node still reports data")
	}
}
