package uievents

// FramePressState describes what a button did this frame.
type FramePressState uint8

const (
	Pressed FramePressState = iota
	Released
	PressedAndReleased
	NotChanged
)

func (s FramePressState) pressedThisFrame() bool {
	return s == Pressed || s == PressedAndReleased
}

func (s FramePressState) releasedThisFrame() bool {
	return s == Released || s == PressedAndReleased
}

func (s FramePressState) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	case PressedAndReleased:
		return "pressedAndReleased"
	default:
		return "notChanged"
	}
}

// buttonState pairs one mouse button's record with its frame press state.
type buttonState struct {
	button MouseButton
	ev     *PointerEvent
	state  FramePressState
}

// mouseState holds the three mouse button records for one frame.
type mouseState struct {
	buttons [3]buttonState
}

func (s *mouseState) set(b MouseButton, state FramePressState, ev *PointerEvent) {
	s.buttons[b] = buttonState{button: b, ev: ev, state: state}
}

// anyPressesThisFrame reports whether any button went down this frame.
func (s *mouseState) anyPressesThisFrame() bool {
	for _, b := range s.buttons {
		if b.ev != nil && b.state.pressedThisFrame() {
			return true
		}
	}
	return false
}

// PointerInputModule implements the per-pointer press, drag, click and
// hover machinery shared by pointer-driven modules.
type PointerInputModule struct {
	baseModule

	pointers *pointerStore
	mouse    mouseState
}

func (m *PointerInputModule) initPointers(sys *EventSystem, input InputSource) {
	m.baseModule.init(sys, input)
	m.pointers = newPointerStore(sys)
}

// PointerData returns the record for a pointer id, if it exists.
func (m *PointerInputModule) PointerData(id int) (*PointerEvent, bool) {
	return m.pointers.get(id)
}

// PointerIDs returns the ids of all tracked pointers in ascending order.
func (m *PointerInputModule) PointerIDs() []int { return m.pointers.ids() }

// IsPointerOverNode reports whether the pointer with the given id is over
// a node. Mouse ids map to the left-button record, which owns mouse hover.
func (m *PointerInputModule) IsPointerOverNode(pointerID int) bool {
	if pointerID == MouseRightID || pointerID == MouseMiddleID {
		pointerID = MouseLeftID
	}
	ev, ok := m.pointers.get(pointerID)
	return ok && ev.PointerEnter != NoNode
}

// touchPointerEventData updates the record for a touch and hit-tests it.
func (m *PointerInputModule) touchPointerEventData(t Touch) (ev *PointerEvent, pressed, released bool) {
	ev, created := m.pointers.getOrCreate(t.ID)
	ev.Reset()

	pressed = created || t.Phase == TouchBegan
	released = t.Phase == TouchCanceled || t.Phase == TouchEnded

	if created {
		ev.Position = t.Position
	}
	if pressed {
		ev.Delta = Vec2{}
	} else {
		ev.Delta = t.Position.Sub(ev.Position)
	}
	ev.Position = t.Position
	ev.Button = MouseButtonLeft
	ev.PointerCurrentRaycast = m.raycast(ev)
	return ev, pressed, released
}

// mousePointerEventData updates the three mouse records. Right and middle
// share position, scroll and raycast with the left record.
func (m *PointerInputModule) mousePointerEventData() *mouseState {
	pos := m.input.MousePosition()

	left, created := m.pointers.getOrCreate(MouseLeftID)
	left.Reset()
	if created {
		left.Position = pos
	}
	left.Delta = pos.Sub(left.Position)
	left.Position = pos
	left.ScrollDelta = m.input.MouseScrollDelta()
	left.Button = MouseButtonLeft
	left.PointerCurrentRaycast = m.raycast(left)

	right, _ := m.pointers.getOrCreate(MouseRightID)
	right.Reset()
	right.copyFrom(left)
	right.Button = MouseButtonRight

	middle, _ := m.pointers.getOrCreate(MouseMiddleID)
	middle.Reset()
	middle.copyFrom(left)
	middle.Button = MouseButtonMiddle

	m.mouse.set(MouseButtonLeft, m.stateForMouseButton(MouseButtonLeft), left)
	m.mouse.set(MouseButtonRight, m.stateForMouseButton(MouseButtonRight), right)
	m.mouse.set(MouseButtonMiddle, m.stateForMouseButton(MouseButtonMiddle), middle)
	return &m.mouse
}

func (m *PointerInputModule) stateForMouseButton(b MouseButton) FramePressState {
	pressed := m.input.MouseButtonDown(b)
	released := m.input.MouseButtonUp(b)
	switch {
	case pressed && released:
		return PressedAndReleased
	case pressed:
		return Pressed
	case released:
		return Released
	default:
		return NotChanged
	}
}

func shouldStartDrag(pressPos, currentPos Vec2, threshold float64, useDragThreshold bool) bool {
	if !useDragThreshold {
		return true
	}
	return currentPos.Sub(pressPos).LenSq() >= threshold*threshold
}

// processMove updates hover to whatever the pointer is over now.
func (m *PointerInputModule) processMove(ev *PointerEvent) {
	m.handlePointerExitAndEnter(ev, ev.PointerCurrentRaycast.Node)
}

// processDrag starts a drag once the pointer passes the threshold and sends
// drag events while the pointer moves.
func (m *PointerInputModule) processDrag(ev *PointerEvent) {
	if !ev.IsPointerMoving() || ev.PointerDrag == NoNode {
		return
	}
	d := m.sys.dispatcher

	if !ev.Dragging && shouldStartDrag(ev.PressPosition, ev.Position, m.sys.cfg.DragThreshold, ev.UseDragThreshold) {
		d.Execute(ev.PointerDrag, ev, CapBeginDrag)
		ev.Dragging = true
	}

	if ev.Dragging {
		// A drag on another node cancels the press.
		if ev.PointerPress() != ev.PointerDrag {
			d.Execute(ev.PointerPress(), ev, CapPointerUp)
			ev.EligibleForClick = false
			ev.SetPointerPress(NoNode)
			ev.RawPointerPress = NoNode
		}
		d.Execute(ev.PointerDrag, ev, CapDrag)
	}
}

// processPress handles press and release transitions for one pointer. A
// release exits the whole hover chain; the following processMove enters it
// again. Records with hover false (the secondary mouse buttons) leave hover
// to the left-button record.
func (m *PointerInputModule) processPress(ev *PointerEvent, pressed, released, hover bool) {
	d := m.sys.dispatcher
	current := ev.PointerCurrentRaycast.Node

	if pressed {
		ev.EligibleForClick = true
		ev.Delta = Vec2{}
		ev.Dragging = false
		ev.UseDragThreshold = true
		ev.PressPosition = ev.Position
		ev.PointerPressRaycast = ev.PointerCurrentRaycast

		m.deselectIfSelectionChanged(current, &ev.BaseEvent)

		if hover && ev.PointerEnter != current {
			m.handlePointerExitAndEnter(ev, current)
		}

		newPress := d.ExecuteHierarchy(current, ev, CapPointerDown)
		if newPress == NoNode {
			// No press handler: press the click handler so click still fires.
			newPress = d.GetEventHandler(current, CapPointerClick)
		}

		now := m.sys.UnscaledTime()
		if newPress == ev.LastPress && now-ev.ClickTime < m.sys.cfg.ClickInterval {
			ev.ClickCount++
		} else {
			ev.ClickCount = 1
		}

		ev.SetPointerPress(newPress)
		ev.RawPointerPress = current
		ev.ClickTime = now

		ev.PointerDrag = d.GetEventHandler(current, CapDrag)
		if ev.PointerDrag != NoNode {
			d.Execute(ev.PointerDrag, ev, CapInitializePotentialDrag)
		}
		m.sys.stats.presses++
	}

	if released {
		d.Execute(ev.PointerPress(), ev, CapPointerUp)

		upHandler := d.GetEventHandler(current, CapPointerClick)
		if ev.PointerPress() == upHandler && ev.EligibleForClick {
			d.Execute(ev.PointerPress(), ev, CapPointerClick)
		} else if ev.PointerDrag != NoNode && ev.Dragging {
			d.ExecuteHierarchy(current, ev, CapDrop)
		}

		ev.EligibleForClick = false
		ev.SetPointerPress(NoNode)
		ev.RawPointerPress = NoNode

		if ev.PointerDrag != NoNode && ev.Dragging {
			d.Execute(ev.PointerDrag, ev, CapEndDrag)
		}
		ev.Dragging = false
		ev.PointerDrag = NoNode

		if hover {
			m.handlePointerExitAndEnter(ev, NoNode)
		}
	}
}

// deselectIfSelectionChanged clears the selection when the pointer went
// down over something other than the selected node.
func (m *PointerInputModule) deselectIfSelectionChanged(current NodeID, ev *BaseEvent) {
	selectHandler := m.sys.dispatcher.GetEventHandler(current, CapSelect)
	if selectHandler != m.sys.Selected() {
		m.sys.SetSelected(NoNode, ev)
	}
}

// clearSelection exits every pointer's hover chain, forgets all pointers
// and deselects.
func (m *PointerInputModule) clearSelection() {
	ev := m.baseEventData()
	for _, id := range m.pointers.ids() {
		if rec, ok := m.pointers.get(id); ok {
			m.handlePointerExitAndEnter(rec, NoNode)
		}
	}
	m.pointers.clear()
	m.sys.SetSelected(NoNode, ev)
}
