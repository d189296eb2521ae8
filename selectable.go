package uievents

import "math"

// NavigationMode controls how a Selectable finds its neighbours.
type NavigationMode uint8

const (
	NavigationNone       NavigationMode = 0
	NavigationHorizontal NavigationMode = 1
	NavigationVertical   NavigationMode = 2
	NavigationAutomatic  NavigationMode = 3 // horizontal and vertical
	NavigationExplicit   NavigationMode = 4
)

// Navigation configures directional navigation for a Selectable. The
// SelectOn fields are only used in NavigationExplicit mode.
type Navigation struct {
	Mode          NavigationMode
	SelectOnUp    NodeID
	SelectOnDown  NodeID
	SelectOnLeft  NodeID
	SelectOnRight NodeID
}

// SelectionState is the visual state of a Selectable.
type SelectionState uint8

const (
	StateNormal SelectionState = iota
	StateHighlighted
	StatePressed
	StateSelected
	StateDisabled
)

func (s SelectionState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHighlighted:
		return "highlighted"
	case StatePressed:
		return "pressed"
	case StateSelected:
		return "selected"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// SelectableGroup tracks the selectables that automatic navigation
// searches.
type SelectableGroup struct {
	tree  *Tree
	items []*Selectable
}

// NewSelectableGroup creates an empty group over tree.
func NewSelectableGroup(tree *Tree) *SelectableGroup {
	return &SelectableGroup{tree: tree}
}

// NewSelectable creates a Selectable for node, attaches it as a handler and
// adds it to the group. bounds is the node's rectangle in canvas space.
func (g *SelectableGroup) NewSelectable(node NodeID, bounds Rect) *Selectable {
	s := g.newSelectable(node, bounds)
	s.handle = g.tree.AddHandler(node, s)
	return s
}

func (g *SelectableGroup) newSelectable(node NodeID, bounds Rect) *Selectable {
	s := &Selectable{
		Node:         node,
		Bounds:       bounds,
		Interactable: true,
		Navigation:   Navigation{Mode: NavigationAutomatic},
		group:        g,
	}
	g.items = append(g.items, s)
	return s
}

// Remove detaches s from its node and the group.
func (g *SelectableGroup) Remove(s *Selectable) {
	s.handle.Remove()
	for i, v := range g.items {
		if v == s {
			g.items = append(g.items[:i], g.items[i+1:]...)
			return
		}
	}
}

// Find returns the selectable attached to node, or nil.
func (g *SelectableGroup) Find(node NodeID) *Selectable {
	for _, s := range g.items {
		if s.Node == node {
			return s
		}
	}
	return nil
}

// Len returns the number of selectables in the group.
func (g *SelectableGroup) Len() int { return len(g.items) }

// Selectable is a handler that makes its node selectable by pointer and
// reachable by directional navigation.
type Selectable struct {
	Node         NodeID
	Navigation   Navigation
	Interactable bool
	// Bounds is the node's rectangle in canvas space.
	Bounds Rect
	// OnStateChange is called when the selection state changes.
	OnStateChange func(SelectionState)

	group  *SelectableGroup
	handle HandlerHandle

	hasSelection    bool
	isPointerInside bool
	isPointerDown   bool
	state           SelectionState
}

// State returns the current selection state.
func (s *Selectable) State() SelectionState { return s.state }

// IsInteractable reports whether the selectable accepts input and its node
// is active.
func (s *Selectable) IsInteractable() bool {
	return s.Interactable && s.group.tree.ActiveAndEnabled(s.Node)
}

func (s *Selectable) evaluate() {
	next := StateNormal
	switch {
	case !s.Interactable:
		next = StateDisabled
	case s.isPointerDown:
		next = StatePressed
	case s.hasSelection:
		next = StateSelected
	case s.isPointerInside:
		next = StateHighlighted
	}
	if next == s.state {
		return
	}
	s.state = next
	if s.OnStateChange != nil {
		s.OnStateChange(next)
	}
}

func (s *Selectable) OnPointerDown(ev *PointerEvent) {
	if ev.Button != MouseButtonLeft {
		return
	}
	if sys := ev.System(); sys != nil && s.IsInteractable() && s.Navigation.Mode != NavigationNone {
		sys.SetSelected(s.Node, &ev.BaseEvent)
	}
	s.isPointerDown = true
	s.evaluate()
}

func (s *Selectable) OnPointerUp(ev *PointerEvent) {
	if ev.Button != MouseButtonLeft {
		return
	}
	s.isPointerDown = false
	s.evaluate()
}

func (s *Selectable) OnPointerEnter(*PointerEvent) {
	s.isPointerInside = true
	s.evaluate()
}

func (s *Selectable) OnPointerExit(*PointerEvent) {
	s.isPointerInside = false
	s.evaluate()
}

func (s *Selectable) OnSelect(*BaseEvent) {
	s.hasSelection = true
	s.evaluate()
}

func (s *Selectable) OnDeselect(*BaseEvent) {
	s.hasSelection = false
	s.evaluate()
}

// OnMove navigates to the neighbour in the move direction.
func (s *Selectable) OnMove(ev *AxisEvent) {
	var target *Selectable
	switch ev.MoveDir {
	case MoveLeft:
		target = s.FindSelectableOnLeft()
	case MoveRight:
		target = s.FindSelectableOnRight()
	case MoveUp:
		target = s.FindSelectableOnUp()
	case MoveDown:
		target = s.FindSelectableOnDown()
	}
	s.navigate(ev, target)
}

func (s *Selectable) navigate(ev *AxisEvent, target *Selectable) {
	if target == nil || !target.IsInteractable() {
		return
	}
	ev.Use()
	if sys := ev.System(); sys != nil {
		sys.SetSelected(target.Node, &ev.BaseEvent)
	}
}

func (s *Selectable) FindSelectableOnLeft() *Selectable {
	return s.findInDirection(MoveLeft, s.Navigation.SelectOnLeft, NavigationHorizontal)
}

func (s *Selectable) FindSelectableOnRight() *Selectable {
	return s.findInDirection(MoveRight, s.Navigation.SelectOnRight, NavigationHorizontal)
}

func (s *Selectable) FindSelectableOnUp() *Selectable {
	return s.findInDirection(MoveUp, s.Navigation.SelectOnUp, NavigationVertical)
}

func (s *Selectable) FindSelectableOnDown() *Selectable {
	return s.findInDirection(MoveDown, s.Navigation.SelectOnDown, NavigationVertical)
}

func (s *Selectable) findInDirection(dir MoveDirection, explicit NodeID, axis NavigationMode) *Selectable {
	mode := s.Navigation.Mode
	if mode == NavigationExplicit {
		return s.group.Find(explicit)
	}
	if mode&axis != 0 {
		return s.FindSelectable(dir.vector())
	}
	return nil
}

// FindSelectable returns the interactable selectable that lies most
// directly in dir from this one's edge, favouring near candidates.
func (s *Selectable) FindSelectable(dir Vec2) *Selectable {
	if dir.IsZero() {
		return nil
	}
	dir = dir.Scale(1 / math.Sqrt(dir.LenSq()))
	pos := pointOnRectEdge(s.Bounds, dir)

	maxScore := math.Inf(-1)
	var best *Selectable
	for _, sel := range s.group.items {
		if sel == s || !sel.IsInteractable() || sel.Navigation.Mode == NavigationNone {
			continue
		}
		v := sel.Bounds.Center().Sub(pos)
		dot := dir.Dot(v)
		if dot <= 0 {
			continue
		}
		score := dot / v.LenSq()
		if score > maxScore {
			maxScore = score
			best = sel
		}
	}
	return best
}

// pointOnRectEdge projects dir from the rectangle centre onto its edge.
func pointOnRectEdge(r Rect, dir Vec2) Vec2 {
	if !dir.IsZero() {
		dir = dir.Scale(1 / math.Max(math.Abs(dir.X), math.Abs(dir.Y)))
	}
	c := r.Center()
	return Vec2{c.X + r.Width*dir.X*0.5, c.Y + r.Height*dir.Y*0.5}
}

// Button is a Selectable that calls OnClick when clicked or submitted.
type Button struct {
	*Selectable
	OnClick func()
}

// NewButton creates a Button for node, attaches it and adds its Selectable
// to the group.
func (g *SelectableGroup) NewButton(node NodeID, bounds Rect, onClick func()) *Button {
	b := &Button{Selectable: g.newSelectable(node, bounds), OnClick: onClick}
	b.handle = g.tree.AddHandler(node, b)
	return b
}

func (b *Button) OnPointerClick(ev *PointerEvent) {
	if ev.Button != MouseButtonLeft {
		return
	}
	b.press()
}

func (b *Button) OnSubmit(*BaseEvent) {
	b.press()
}

func (b *Button) press() {
	if !b.IsInteractable() || b.OnClick == nil {
		return
	}
	b.OnClick()
}
