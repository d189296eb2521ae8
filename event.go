package uievents

import (
	"fmt"
	"strings"
)

// Event is an event envelope passed by reference through dispatch. Handlers
// mark it used to stop further processing where the pipeline checks for it.
type Event interface {
	Used() bool
	Use()
	Reset()
	baseEvent() *BaseEvent
}

// BaseEvent is the envelope used by selection, submit and cancel events.
// It is embedded by every other event type.
type BaseEvent struct {
	used   bool
	system *EventSystem
}

// Used reports whether a handler consumed the event.
func (e *BaseEvent) Used() bool { return e.used }

// Use marks the event consumed.
func (e *BaseEvent) Use() { e.used = true }

// Reset clears the consumed flag.
func (e *BaseEvent) Reset() { e.used = false }

func (e *BaseEvent) baseEvent() *BaseEvent { return e }

// System returns the event system that produced the event, or nil.
func (e *BaseEvent) System() *EventSystem { return e.system }

// SelectedNode returns the currently selected node of the producing system.
func (e *BaseEvent) SelectedNode() NodeID {
	if e.system == nil {
		return NoNode
	}
	return e.system.Selected()
}

// AxisEvent carries directional navigation input.
type AxisEvent struct {
	BaseEvent
	MoveVector Vec2
	MoveDir    MoveDirection
}

// PointerEvent is both the per-pointer state record kept across frames and
// the envelope delivered to pointer handlers.
type PointerEvent struct {
	BaseEvent

	PointerID int
	Button    MouseButton

	Position      Vec2
	Delta         Vec2
	PressPosition Vec2
	ScrollDelta   Vec2

	// PointerEnter is the deepest node the pointer is currently over.
	PointerEnter NodeID
	// LastPress is the press target before the current one.
	LastPress NodeID
	// RawPointerPress is the node hit on press, before the click fallback.
	RawPointerPress NodeID
	// PointerDrag is the node receiving drag events.
	PointerDrag NodeID

	PointerCurrentRaycast RaycastResult
	PointerPressRaycast   RaycastResult

	Dragging         bool
	UseDragThreshold bool
	EligibleForClick bool
	ClickCount       int
	ClickTime        float64

	pointerPress NodeID
	hovered      nodeSet
}

func newPointerEvent(sys *EventSystem, id int) *PointerEvent {
	return &PointerEvent{
		BaseEvent:        BaseEvent{system: sys},
		PointerID:        id,
		Button:           MouseButtonLeft,
		UseDragThreshold: true,
	}
}

// PointerPress returns the node that received the press, or NoNode.
func (e *PointerEvent) PointerPress() NodeID { return e.pointerPress }

// SetPointerPress sets the press target. The previous target is kept in
// LastPress when it changes.
func (e *PointerEvent) SetPointerPress(id NodeID) {
	if e.pointerPress == id {
		return
	}
	e.LastPress = e.pointerPress
	e.pointerPress = id
}

// Hovered returns the nodes the pointer is over, from the enter node
// toward the root. The slice is owned by the event and must not be modified.
func (e *PointerEvent) Hovered() []NodeID { return e.hovered.items }

// IsHovering reports whether id is in the pointer's hover chain.
func (e *PointerEvent) IsHovering(id NodeID) bool { return e.hovered.Contains(id) }

// IsPointerMoving reports whether the pointer moved this frame.
func (e *PointerEvent) IsPointerMoving() bool { return e.Delta.LenSq() > 0 }

// IsScrolling reports whether a scroll delta was reported this frame.
func (e *PointerEvent) IsScrolling() bool { return e.ScrollDelta.LenSq() > 0 }

// copyFrom copies the frame-shared fields used by the secondary mouse
// button records. Hover state stays with the left-button record.
func (e *PointerEvent) copyFrom(o *PointerEvent) {
	e.Position = o.Position
	e.Delta = o.Delta
	e.ScrollDelta = o.ScrollDelta
	e.PointerCurrentRaycast = o.PointerCurrentRaycast
}

func (e *PointerEvent) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "pointer %d (%s)\n", e.PointerID, e.Button)
	fmt.Fprintf(&sb, "  position: %.1f,%.1f delta: %.1f,%.1f\n", e.Position.X, e.Position.Y, e.Delta.X, e.Delta.Y)
	fmt.Fprintf(&sb, "  enter: %d press: %d lastPress: %d drag: %d\n", e.PointerEnter, e.pointerPress, e.LastPress, e.PointerDrag)
	fmt.Fprintf(&sb, "  eligible: %t dragging: %t threshold: %t clicks: %d\n", e.EligibleForClick, e.Dragging, e.UseDragThreshold, e.ClickCount)
	fmt.Fprintf(&sb, "  hovered: %v\n", e.hovered.items)
	fmt.Fprintf(&sb, "  raycast: node=%d distance=%.2f", e.PointerCurrentRaycast.Node, e.PointerCurrentRaycast.Distance)
	return sb.String()
}
