package uievents

import (
	"slices"
	"testing"
)

type grid struct {
	group          *SelectableGroup
	tl, tr, bl, br *Button
}

// newGrid lays out four 50x50 buttons at (0,0), (100,0), (0,100), (100,100).
func newGrid(e *testEnv) *grid {
	g := &grid{group: NewSelectableGroup(e.tree)}
	add := func(name string, x, y float64) *Button {
		id := e.node(e.root, name, x, y, 50, 50)
		return g.group.NewButton(id, Rect{X: x, Y: y, Width: 50, Height: 50}, nil)
	}
	g.tl = add("tl", 0, 0)
	g.tr = add("tr", 100, 0)
	g.bl = add("bl", 0, 100)
	g.br = add("br", 100, 100)
	return g
}

func (e *testEnv) navigate(axis string, v float64) {
	e.in.SetAxis(AxisHorizontal, 0)
	e.in.SetAxis(AxisVertical, 0)
	e.in.SetAxis(axis, v)
	e.in.PressButton(axis)
	e.frame()
	e.in.SetAxis(axis, 0)
}

func TestFindSelectableGrid(t *testing.T) {
	e := newTestEnv(t, Config{})
	g := newGrid(e)

	tests := []struct {
		name string
		from *Button
		find func(*Selectable) *Selectable
		want *Button
	}{
		{"tl right", g.tl, (*Selectable).FindSelectableOnRight, g.tr},
		{"tl down", g.tl, (*Selectable).FindSelectableOnDown, g.bl},
		{"tl left", g.tl, (*Selectable).FindSelectableOnLeft, nil},
		{"tl up", g.tl, (*Selectable).FindSelectableOnUp, nil},
		{"br up", g.br, (*Selectable).FindSelectableOnUp, g.tr},
		{"br left", g.br, (*Selectable).FindSelectableOnLeft, g.bl},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.find(tt.from.Selectable)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("found %s, want none", e.tree.Name(got.Node))
			case tt.want != nil && got != tt.want.Selectable:
				t.Errorf("found %v, want %s", got, e.tree.Name(tt.want.Node))
			}
		})
	}
}

func TestFindSelectableSkipsUnavailable(t *testing.T) {
	e := newTestEnv(t, Config{})
	g := newGrid(e)

	g.tr.Interactable = false
	if got := g.tl.FindSelectableOnRight(); got != g.br.Selectable {
		t.Errorf("with tr disabled found %v, want br", got)
	}

	g.tr.Interactable = true
	g.tr.Navigation.Mode = NavigationNone
	if got := g.tl.FindSelectableOnRight(); got != g.br.Selectable {
		t.Errorf("with tr unnavigable found %v, want br", got)
	}

	g.br.Navigation.Mode = NavigationNone
	if got := g.tl.FindSelectableOnRight(); got != nil {
		t.Errorf("found %v, want none", got)
	}
}

func TestFindSelectableInactiveNode(t *testing.T) {
	e := newTestEnv(t, Config{})
	g := newGrid(e)
	e.tree.SetActive(g.tr.Node, false)
	if got := g.tl.FindSelectableOnRight(); got != g.br.Selectable {
		t.Errorf("found %v, want br while tr inactive", got)
	}
}

func TestNavigationModes(t *testing.T) {
	e := newTestEnv(t, Config{})
	g := newGrid(e)

	g.tl.Navigation = Navigation{Mode: NavigationHorizontal}
	if g.tl.FindSelectableOnDown() != nil || g.tl.FindSelectableOnRight() != g.tr.Selectable {
		t.Error("horizontal mode should only navigate left and right")
	}

	g.tl.Navigation = Navigation{Mode: NavigationExplicit, SelectOnRight: g.br.Node}
	if got := g.tl.FindSelectableOnRight(); got != g.br.Selectable {
		t.Errorf("explicit right = %v, want br", got)
	}
	if got := g.tl.FindSelectableOnDown(); got != nil {
		t.Errorf("explicit down = %v, want none", got)
	}
}

func TestNavigateMovesSelection(t *testing.T) {
	e := newTestEnv(t, Config{})
	g := newGrid(e)
	e.sys.SetSelected(g.tl.Node, nil)

	e.navigate(AxisHorizontal, 1)
	if e.sys.Selected() != g.tr.Node {
		t.Fatalf("after right: %s", e.tree.Path(e.sys.Selected()))
	}
	e.navigate(AxisVertical, -1)
	if e.sys.Selected() != g.br.Node {
		t.Fatalf("after down: %s", e.tree.Path(e.sys.Selected()))
	}
	e.navigate(AxisHorizontal, -1)
	if e.sys.Selected() != g.bl.Node {
		t.Fatalf("after left: %s", e.tree.Path(e.sys.Selected()))
	}
	// Nothing further left: selection stays.
	e.navigate(AxisHorizontal, -1)
	if e.sys.Selected() != g.bl.Node {
		t.Errorf("after blocked left: %s", e.tree.Path(e.sys.Selected()))
	}
	if g.bl.State() != StateSelected || g.tl.State() == StateSelected {
		t.Errorf("states bl=%v tl=%v", g.bl.State(), g.tl.State())
	}
}

func TestSelectableStates(t *testing.T) {
	e := newTestEnv(t, Config{})
	g := newGrid(e)
	var states []SelectionState
	g.tl.OnStateChange = func(s SelectionState) { states = append(states, s) }

	e.moveTo(20, 20)
	e.press(MouseButtonLeft)
	e.release(MouseButtonLeft)
	e.moveTo(300, 300)
	e.click(120, 20)

	want := []SelectionState{StateHighlighted, StateSelected, StatePressed, StateSelected, StateNormal}
	if !slices.Equal(states, want) {
		t.Errorf("states = %v, want %v", states, want)
	}
	if e.sys.Selected() != g.tr.Node {
		t.Errorf("Selected = %s, want tr", e.tree.Path(e.sys.Selected()))
	}
}

func TestNonInteractableNotSelectedByPointer(t *testing.T) {
	e := newTestEnv(t, Config{})
	g := newGrid(e)
	g.tl.Interactable = false

	e.click(20, 20)
	if e.sys.Selected() != NoNode {
		t.Errorf("Selected = %s, want none", e.tree.Path(e.sys.Selected()))
	}
	if g.tl.State() != StateDisabled {
		t.Errorf("state = %v, want disabled", g.tl.State())
	}
}

func TestButtonOnClick(t *testing.T) {
	e := newTestEnv(t, Config{})
	g := newGrid(e)
	clicks := 0
	g.tl.OnClick = func() { clicks++ }

	e.click(20, 20)
	if clicks != 1 {
		t.Fatalf("clicks after pointer click = %d, want 1", clicks)
	}

	e.in.PressButton(ButtonSubmit)
	e.frame()
	if clicks != 2 {
		t.Fatalf("clicks after submit = %d, want 2", clicks)
	}

	e.in.Press(MouseButtonRight)
	e.frame()
	e.in.Release(MouseButtonRight)
	e.frame()
	if clicks != 2 {
		t.Errorf("right click pressed the button")
	}

	g.tl.Interactable = false
	e.in.PressButton(ButtonSubmit)
	e.frame()
	if clicks != 2 {
		t.Errorf("non-interactable button clicked")
	}
}

func TestGroupRemove(t *testing.T) {
	e := newTestEnv(t, Config{})
	g := newGrid(e)
	g.group.Remove(g.tr.Selectable)
	if g.group.Len() != 3 || g.group.Find(g.tr.Node) != nil {
		t.Error("removed selectable still in group")
	}
	if got := g.tl.FindSelectableOnRight(); got != g.br.Selectable {
		t.Errorf("found %v, want br after removing tr", got)
	}
}
