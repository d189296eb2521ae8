package uievents

import "math"

// StandaloneInputModule drives the pipeline from a mouse, touches and
// keyboard/gamepad navigation axes.
type StandaloneInputModule struct {
	PointerInputModule

	HorizontalAxis string
	VerticalAxis   string
	SubmitButton   string
	CancelButton   string

	// InputActionsPerSecond is the navigation repeat rate once repeating.
	InputActionsPerSecond float64
	// RepeatDelay is the wait before a held direction starts repeating.
	RepeatDelay  float64
	MoveDeadZone float64
	// ForceModuleActive keeps the module supported and activating even
	// without input.
	ForceModuleActive bool

	prevActionTime       float64
	lastMoveVector       Vec2
	consecutiveMoveCount int

	lastMousePosition Vec2
	mousePosition     Vec2
}

// NewStandaloneInputModule creates a module reading from input with the
// system's configuration. Register it with EventSystem.AddModule.
func NewStandaloneInputModule(sys *EventSystem, input InputSource) *StandaloneInputModule {
	cfg := sys.cfg
	m := &StandaloneInputModule{
		HorizontalAxis:        cfg.HorizontalAxis,
		VerticalAxis:          cfg.VerticalAxis,
		SubmitButton:          cfg.SubmitButton,
		CancelButton:          cfg.CancelButton,
		InputActionsPerSecond: cfg.InputActionsPerSecond,
		RepeatDelay:           cfg.RepeatDelay,
		MoveDeadZone:          cfg.MoveDeadZone,
		ForceModuleActive:     cfg.ForceModuleActive,
	}
	m.initPointers(sys, input)
	return m
}

// UpdateModule polls the input source and tracks mouse movement.
func (m *StandaloneInputModule) UpdateModule() {
	m.pollInput()
	m.lastMousePosition = m.mousePosition
	m.mousePosition = m.input.MousePosition()
}

func (m *StandaloneInputModule) IsModuleSupported() bool {
	return m.ForceModuleActive || m.input.MousePresent() || m.input.TouchSupported()
}

func (m *StandaloneInputModule) ShouldActivateModule() bool {
	if m.disabled {
		return false
	}
	activate := m.ForceModuleActive
	activate = activate || m.input.ButtonDown(m.SubmitButton)
	activate = activate || m.input.ButtonDown(m.CancelButton)
	activate = activate || !approximately(m.input.AxisRaw(m.HorizontalAxis), 0)
	activate = activate || !approximately(m.input.AxisRaw(m.VerticalAxis), 0)
	activate = activate || m.mousePosition.Sub(m.lastMousePosition).LenSq() > 0
	activate = activate || m.input.MouseButtonDown(MouseButtonLeft)
	return activate || m.input.TouchCount() > 0
}

// ActivateModule seeds mouse tracking and restores the selection, falling
// back to the system's first selected node.
func (m *StandaloneInputModule) ActivateModule() {
	m.mousePosition = m.input.MousePosition()
	m.lastMousePosition = m.mousePosition

	toSelect := m.sys.Selected()
	if toSelect == NoNode {
		toSelect = m.sys.FirstSelected()
	}
	m.sys.SetSelected(toSelect, m.baseEventData())
}

// DeactivateModule clears hover for every pointer and deselects.
func (m *StandaloneInputModule) DeactivateModule() {
	m.clearSelection()
}

// Process sends selection, navigation, touch and mouse events for one frame.
func (m *StandaloneInputModule) Process() {
	used := m.sendUpdateEventToSelected()
	if !m.sys.cfg.DisableNavigation {
		if !used {
			used = m.sendMoveEventToSelected()
		}
		if !used {
			m.sendSubmitEventToSelected()
		}
	}

	if !m.processTouchEvents() && m.input.MousePresent() {
		m.processMouseEvent()
	}
}

func (m *StandaloneInputModule) processTouchEvents() bool {
	n := m.input.TouchCount()
	for i := 0; i < n; i++ {
		t := m.input.Touch(i)
		if t.Type == TouchIndirect {
			continue
		}

		ev, pressed, released := m.touchPointerEventData(t)
		m.processPress(ev, pressed, released, true)

		if !released {
			m.processMove(ev)
			m.processDrag(ev)
		} else {
			m.pointers.remove(ev.PointerID)
		}
	}
	return n > 0
}

func (m *StandaloneInputModule) processMouseEvent() {
	mouse := m.mousePointerEventData()
	left := mouse.buttons[MouseButtonLeft]

	m.processPress(left.ev, left.state.pressedThisFrame(), left.state.releasedThisFrame(), true)
	m.processMove(left.ev)
	m.processDrag(left.ev)

	for _, b := range []MouseButton{MouseButtonRight, MouseButtonMiddle} {
		bs := mouse.buttons[b]
		m.processPress(bs.ev, bs.state.pressedThisFrame(), bs.state.releasedThisFrame(), false)
		m.processDrag(bs.ev)
	}

	if left.ev.IsScrolling() {
		d := m.sys.dispatcher
		target := d.GetEventHandler(left.ev.PointerCurrentRaycast.Node, CapScroll)
		d.ExecuteHierarchy(target, left.ev, CapScroll)
	}
}

func (m *StandaloneInputModule) sendUpdateEventToSelected() bool {
	sel := m.sys.Selected()
	if sel == NoNode {
		return false
	}
	ev := m.baseEventData()
	m.sys.dispatcher.Execute(sel, ev, CapUpdateSelected)
	return ev.Used()
}

func (m *StandaloneInputModule) sendSubmitEventToSelected() bool {
	sel := m.sys.Selected()
	if sel == NoNode {
		return false
	}
	ev := m.baseEventData()
	if m.input.ButtonDown(m.SubmitButton) {
		m.sys.dispatcher.Execute(sel, ev, CapSubmit)
	}
	if m.input.ButtonDown(m.CancelButton) {
		m.sys.dispatcher.Execute(sel, ev, CapCancel)
	}
	return ev.Used()
}

// sendMoveEventToSelected sends a move for the navigation axes. A held
// direction fires once, again after RepeatDelay, then at
// InputActionsPerSecond.
func (m *StandaloneInputModule) sendMoveEventToSelected() bool {
	now := m.sys.UnscaledTime()
	movement := m.rawMoveVector()
	if approximately(movement.X, 0) && approximately(movement.Y, 0) {
		m.consecutiveMoveCount = 0
		return false
	}

	allow := m.input.ButtonDown(m.HorizontalAxis) || m.input.ButtonDown(m.VerticalAxis)
	similarDir := movement.Dot(m.lastMoveVector) > 0
	if !allow {
		if similarDir && m.consecutiveMoveCount == 1 {
			allow = now > m.prevActionTime+m.RepeatDelay
		} else {
			allow = now > m.prevActionTime+1/m.InputActionsPerSecond
		}
	}
	if !allow {
		return false
	}

	ev := m.axisEventData(movement.X, movement.Y, m.MoveDeadZone)
	if ev.MoveDir == MoveNone {
		m.consecutiveMoveCount = 0
		return ev.Used()
	}

	m.sys.dispatcher.Execute(m.sys.Selected(), ev, CapMove)
	if !similarDir {
		m.consecutiveMoveCount = 0
	}
	m.consecutiveMoveCount++
	m.prevActionTime = now
	m.lastMoveVector = movement
	return ev.Used()
}

// rawMoveVector reads the navigation axes, snapping to unit values on the
// frame a direction is first pressed.
func (m *StandaloneInputModule) rawMoveVector() Vec2 {
	move := Vec2{
		X: m.input.AxisRaw(m.HorizontalAxis),
		Y: m.input.AxisRaw(m.VerticalAxis),
	}
	if m.input.ButtonDown(m.HorizontalAxis) {
		move.X = sign(move.X)
	}
	if m.input.ButtonDown(m.VerticalAxis) {
		move.Y = sign(move.Y)
	}
	return move
}

func sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func approximately(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
