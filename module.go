package uievents

// InputModule turns sampled input into events. An EventSystem ticks every
// registered module each frame but only the active one processes input.
type InputModule interface {
	// UpdateModule refreshes the module's per-frame input snapshot. Called
	// every frame on every module, active or not.
	UpdateModule()
	// IsModuleSupported reports whether the input the module needs exists.
	IsModuleSupported() bool
	// ShouldActivateModule reports whether relevant input changed this frame.
	ShouldActivateModule() bool
	ActivateModule()
	DeactivateModule()
	// Process runs one frame of event processing.
	Process()
	// IsPointerOverNode reports whether the pointer is over any node.
	IsPointerOverNode(pointerID int) bool
}

// baseModule holds the state shared by all input modules.
type baseModule struct {
	sys      *EventSystem
	input    InputSource
	disabled bool

	baseEvent BaseEvent
	axisEvent AxisEvent
}

func (m *baseModule) init(sys *EventSystem, input InputSource) {
	m.sys = sys
	m.input = input
	m.baseEvent.system = sys
	m.axisEvent.system = sys
}

// Input returns the module's input source.
func (m *baseModule) Input() InputSource { return m.input }

// SetInput replaces the module's input source.
func (m *baseModule) SetInput(in InputSource) { m.input = in }

// SetEnabled enables or disables the module. A disabled module never
// activates.
func (m *baseModule) SetEnabled(enabled bool) { m.disabled = !enabled }

// Enabled reports whether the module may activate.
func (m *baseModule) Enabled() bool { return !m.disabled }

func (m *baseModule) pollInput() {
	if p, ok := m.input.(Poller); ok {
		p.Poll()
	}
}

// baseEventData returns the module's reusable BaseEvent, reset.
func (m *baseModule) baseEventData() *BaseEvent {
	m.baseEvent.Reset()
	return &m.baseEvent
}

// axisEventData returns the module's reusable AxisEvent, reset and filled.
func (m *baseModule) axisEventData(x, y, deadZone float64) *AxisEvent {
	m.axisEvent.Reset()
	m.axisEvent.MoveVector = Vec2{x, y}
	m.axisEvent.MoveDir = DetermineMoveDirection(x, y, deadZone)
	return &m.axisEvent
}

// raycast hit-tests the pointer position and returns the topmost hit.
func (m *baseModule) raycast(ev *PointerEvent) RaycastResult {
	hits := m.sys.results.Acquire()
	defer func() { m.sys.results.Release(hits) }()

	hits = m.sys.RaycastAll(ev, hits)
	m.sys.stats.raycasts++
	m.sys.stats.hits += len(hits)
	return FindFirstRaycast(hits)
}

// findCommonRoot returns the nearest node that is an ancestor of both a and
// b, counting each node as its own ancestor.
func findCommonRoot(tree *Tree, a, b NodeID) NodeID {
	if a == NoNode || b == NoNode {
		return NoNode
	}
	for x := a; x != NoNode; x = tree.Parent(x) {
		for y := b; y != NoNode; y = tree.Parent(y) {
			if x == y {
				return x
			}
		}
	}
	return NoNode
}

// handlePointerExitAndEnter moves the pointer's hover chain to newEnter.
// Nodes leaving the chain get exit events, nodes joining it get enter
// events, and nodes above the common root are left alone.
func (m *baseModule) handlePointerExitAndEnter(ev *PointerEvent, newEnter NodeID) {
	tree := m.sys.tree
	d := m.sys.dispatcher

	if ev.PointerEnter != NoNode && !tree.Valid(ev.PointerEnter) {
		// The enter node was destroyed; its ancestor links are gone.
		ev.PointerEnter = NoNode
	}

	if newEnter == NoNode || ev.PointerEnter == NoNode {
		m.exitAll(ev)
		if newEnter == NoNode {
			ev.PointerEnter = NoNode
			return
		}
	}

	if ev.PointerEnter == newEnter {
		return
	}

	root := findCommonRoot(tree, ev.PointerEnter, newEnter)
	for n := ev.PointerEnter; n != NoNode && n != root; n = tree.Parent(n) {
		if ev.hovered.Remove(n) {
			d.Execute(n, ev, CapPointerExit)
		}
	}

	ev.PointerEnter = newEnter
	for n := newEnter; n != NoNode && n != root; n = tree.Parent(n) {
		if ev.hovered.Add(n) {
			d.Execute(n, ev, CapPointerEnter)
		}
	}
}

// exitAll fires exit on every hovered node in stored order and empties the
// chain.
func (m *baseModule) exitAll(ev *PointerEvent) {
	nodes := m.sys.nodes.Acquire()
	defer func() { m.sys.nodes.Release(nodes) }()

	nodes = append(nodes, ev.hovered.items...)
	ev.hovered.Clear()
	for _, n := range nodes {
		m.sys.dispatcher.Execute(n, ev, CapPointerExit)
	}
}
