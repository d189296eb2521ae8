package uievents

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Capability names one handler contract a node may implement. The dispatcher
// asks "does this handler implement capability X" through a type switch; no
// reflection is involved.
type Capability uint8

const (
	CapPointerEnter Capability = iota
	CapPointerExit
	CapPointerDown
	CapPointerUp
	CapPointerClick
	CapInitializePotentialDrag
	CapBeginDrag
	CapDrag
	CapEndDrag
	CapDrop
	CapScroll
	CapUpdateSelected
	CapSelect
	CapDeselect
	CapMove
	CapSubmit
	CapCancel

	numCapabilities
)

var capabilityNames = [numCapabilities]string{
	CapPointerEnter:            "pointerEnter",
	CapPointerExit:             "pointerExit",
	CapPointerDown:             "pointerDown",
	CapPointerUp:               "pointerUp",
	CapPointerClick:            "pointerClick",
	CapInitializePotentialDrag: "initializePotentialDrag",
	CapBeginDrag:               "beginDrag",
	CapDrag:                    "drag",
	CapEndDrag:                 "endDrag",
	CapDrop:                    "drop",
	CapScroll:                  "scroll",
	CapUpdateSelected:          "updateSelected",
	CapSelect:                  "select",
	CapDeselect:                "deselect",
	CapMove:                    "move",
	CapSubmit:                  "submit",
	CapCancel:                  "cancel",
}

func (c Capability) String() string {
	if c < numCapabilities {
		return capabilityNames[c]
	}
	return fmt.Sprintf("Capability(%d)", uint8(c))
}

// --- Handler interfaces ---

// PointerEnterHandler receives an event when a pointer enters the node or
// one of its descendants.
type PointerEnterHandler interface{ OnPointerEnter(ev *PointerEvent) }

// PointerExitHandler receives an event when a pointer leaves the node's
// hover chain.
type PointerExitHandler interface{ OnPointerExit(ev *PointerEvent) }

type PointerDownHandler interface{ OnPointerDown(ev *PointerEvent) }

type PointerUpHandler interface{ OnPointerUp(ev *PointerEvent) }

// PointerClickHandler receives a click when the pointer is pressed and
// released over the same node.
type PointerClickHandler interface{ OnPointerClick(ev *PointerEvent) }

// InitializePotentialDragHandler is called on press, before the drag
// threshold is crossed. Handlers may clear UseDragThreshold here.
type InitializePotentialDragHandler interface {
	OnInitializePotentialDrag(ev *PointerEvent)
}

type BeginDragHandler interface{ OnBeginDrag(ev *PointerEvent) }

type DragHandler interface{ OnDrag(ev *PointerEvent) }

type EndDragHandler interface{ OnEndDrag(ev *PointerEvent) }

// DropHandler receives the drop when a drag ends over the node.
type DropHandler interface{ OnDrop(ev *PointerEvent) }

type ScrollHandler interface{ OnScroll(ev *PointerEvent) }

// UpdateSelectedHandler is called every frame on the selected node.
type UpdateSelectedHandler interface{ OnUpdateSelected(ev *BaseEvent) }

type SelectHandler interface{ OnSelect(ev *BaseEvent) }

type DeselectHandler interface{ OnDeselect(ev *BaseEvent) }

// MoveHandler receives directional navigation on the selected node.
type MoveHandler interface{ OnMove(ev *AxisEvent) }

type SubmitHandler interface{ OnSubmit(ev *BaseEvent) }

type CancelHandler interface{ OnCancel(ev *BaseEvent) }

// Enabler may be implemented by a handler to opt out of dispatch without
// being detached.
type Enabler interface{ Enabled() bool }

func handlerEnabled(h any) bool {
	if e, ok := h.(Enabler); ok {
		return e.Enabled()
	}
	return true
}

// Supports reports whether h implements the capability's interface.
func (c Capability) Supports(h any) bool {
	var ok bool
	switch c {
	case CapPointerEnter:
		_, ok = h.(PointerEnterHandler)
	case CapPointerExit:
		_, ok = h.(PointerExitHandler)
	case CapPointerDown:
		_, ok = h.(PointerDownHandler)
	case CapPointerUp:
		_, ok = h.(PointerUpHandler)
	case CapPointerClick:
		_, ok = h.(PointerClickHandler)
	case CapInitializePotentialDrag:
		_, ok = h.(InitializePotentialDragHandler)
	case CapBeginDrag:
		_, ok = h.(BeginDragHandler)
	case CapDrag:
		_, ok = h.(DragHandler)
	case CapEndDrag:
		_, ok = h.(EndDragHandler)
	case CapDrop:
		_, ok = h.(DropHandler)
	case CapScroll:
		_, ok = h.(ScrollHandler)
	case CapUpdateSelected:
		_, ok = h.(UpdateSelectedHandler)
	case CapSelect:
		_, ok = h.(SelectHandler)
	case CapDeselect:
		_, ok = h.(DeselectHandler)
	case CapMove:
		_, ok = h.(MoveHandler)
	case CapSubmit:
		_, ok = h.(SubmitHandler)
	case CapCancel:
		_, ok = h.(CancelHandler)
	}
	if f, filtered := h.(CapabilityFilter); ok && filtered {
		ok = f.Handles(c)
	}
	return ok
}

// CapabilityFilter may be implemented by a handler that implements more
// interfaces than it wants to receive.
type CapabilityFilter interface{ Handles(c Capability) bool }

// ParseCapability returns the capability with the given name, as printed
// by Capability.String. Matching ignores case.
func ParseCapability(name string) (Capability, error) {
	for c := Capability(0); c < numCapabilities; c++ {
		if strings.EqualFold(capabilityNames[c], name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("uievents: unknown capability %q", name)
}

// ParseCapabilitySet parses a list of capability names. "all" selects
// every capability.
func ParseCapabilitySet(names []string) (CapabilitySet, error) {
	var s CapabilitySet
	for _, n := range names {
		if strings.EqualFold(n, "all") {
			return AllCapabilities, nil
		}
		c, err := ParseCapability(n)
		if err != nil {
			return 0, err
		}
		s = s.With(c)
	}
	return s, nil
}

// ErrTypeMismatch is reported when a handler or event does not match the
// capability being dispatched.
var ErrTypeMismatch = errors.New("uievents: handler type mismatch")

func mismatch(c Capability, expected string, got any) error {
	return fmt.Errorf("%w: %s: %s expected, %T received", ErrTypeMismatch, c, expected, got)
}

// invoke calls the capability's method on h with ev.
func (c Capability) invoke(h any, ev Event) error {
	switch c {
	case CapUpdateSelected, CapSelect, CapDeselect, CapSubmit, CapCancel:
		return c.invokeBase(h, ev.baseEvent())
	case CapMove:
		ae, ok := ev.(*AxisEvent)
		if !ok {
			return mismatch(c, "*AxisEvent", ev)
		}
		mh, ok := h.(MoveHandler)
		if !ok {
			return mismatch(c, "MoveHandler", h)
		}
		mh.OnMove(ae)
		return nil
	}

	pe, ok := ev.(*PointerEvent)
	if !ok {
		return mismatch(c, "*PointerEvent", ev)
	}
	switch c {
	case CapPointerEnter:
		if x, ok := h.(PointerEnterHandler); ok {
			x.OnPointerEnter(pe)
			return nil
		}
	case CapPointerExit:
		if x, ok := h.(PointerExitHandler); ok {
			x.OnPointerExit(pe)
			return nil
		}
	case CapPointerDown:
		if x, ok := h.(PointerDownHandler); ok {
			x.OnPointerDown(pe)
			return nil
		}
	case CapPointerUp:
		if x, ok := h.(PointerUpHandler); ok {
			x.OnPointerUp(pe)
			return nil
		}
	case CapPointerClick:
		if x, ok := h.(PointerClickHandler); ok {
			x.OnPointerClick(pe)
			return nil
		}
	case CapInitializePotentialDrag:
		if x, ok := h.(InitializePotentialDragHandler); ok {
			x.OnInitializePotentialDrag(pe)
			return nil
		}
	case CapBeginDrag:
		if x, ok := h.(BeginDragHandler); ok {
			x.OnBeginDrag(pe)
			return nil
		}
	case CapDrag:
		if x, ok := h.(DragHandler); ok {
			x.OnDrag(pe)
			return nil
		}
	case CapEndDrag:
		if x, ok := h.(EndDragHandler); ok {
			x.OnEndDrag(pe)
			return nil
		}
	case CapDrop:
		if x, ok := h.(DropHandler); ok {
			x.OnDrop(pe)
			return nil
		}
	case CapScroll:
		if x, ok := h.(ScrollHandler); ok {
			x.OnScroll(pe)
			return nil
		}
	default:
		return fmt.Errorf("%w: unknown capability %d", ErrTypeMismatch, uint8(c))
	}
	return mismatch(c, c.String()+" handler", h)
}

func (c Capability) invokeBase(h any, ev *BaseEvent) error {
	switch c {
	case CapUpdateSelected:
		if x, ok := h.(UpdateSelectedHandler); ok {
			x.OnUpdateSelected(ev)
			return nil
		}
	case CapSelect:
		if x, ok := h.(SelectHandler); ok {
			x.OnSelect(ev)
			return nil
		}
	case CapDeselect:
		if x, ok := h.(DeselectHandler); ok {
			x.OnDeselect(ev)
			return nil
		}
	case CapSubmit:
		if x, ok := h.(SubmitHandler); ok {
			x.OnSubmit(ev)
			return nil
		}
	case CapCancel:
		if x, ok := h.(CancelHandler); ok {
			x.OnCancel(ev)
			return nil
		}
	}
	return mismatch(c, c.String()+" handler", h)
}

// --- CapabilitySet ---

// CapabilitySet is a bitmask of capabilities.
type CapabilitySet uint32

// AllCapabilities holds every capability.
const AllCapabilities CapabilitySet = 1<<numCapabilities - 1

// With returns s with c added.
func (s CapabilitySet) With(c Capability) CapabilitySet { return s | 1<<c }

// Has reports whether c is in s.
func (s CapabilitySet) Has(c Capability) bool { return s&(1<<c) != 0 }

// Len returns the number of capabilities in s.
func (s CapabilitySet) Len() int { return bits.OnesCount32(uint32(s)) }

func (s CapabilitySet) String() string {
	var names []string
	for c := Capability(0); c < numCapabilities; c++ {
		if s.Has(c) {
			names = append(names, c.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// --- Func adapters ---

// PointerEnterFunc adapts a function to PointerEnterHandler.
type PointerEnterFunc func(ev *PointerEvent)

func (f PointerEnterFunc) OnPointerEnter(ev *PointerEvent) { f(ev) }

// PointerExitFunc adapts a function to PointerExitHandler.
type PointerExitFunc func(ev *PointerEvent)

func (f PointerExitFunc) OnPointerExit(ev *PointerEvent) { f(ev) }

// PointerDownFunc adapts a function to PointerDownHandler.
type PointerDownFunc func(ev *PointerEvent)

func (f PointerDownFunc) OnPointerDown(ev *PointerEvent) { f(ev) }

// PointerUpFunc adapts a function to PointerUpHandler.
type PointerUpFunc func(ev *PointerEvent)

func (f PointerUpFunc) OnPointerUp(ev *PointerEvent) { f(ev) }

// PointerClickFunc adapts a function to PointerClickHandler.
type PointerClickFunc func(ev *PointerEvent)

func (f PointerClickFunc) OnPointerClick(ev *PointerEvent) { f(ev) }

// BeginDragFunc adapts a function to BeginDragHandler.
type BeginDragFunc func(ev *PointerEvent)

func (f BeginDragFunc) OnBeginDrag(ev *PointerEvent) { f(ev) }

// DragFunc adapts a function to DragHandler.
type DragFunc func(ev *PointerEvent)

func (f DragFunc) OnDrag(ev *PointerEvent) { f(ev) }

// EndDragFunc adapts a function to EndDragHandler.
type EndDragFunc func(ev *PointerEvent)

func (f EndDragFunc) OnEndDrag(ev *PointerEvent) { f(ev) }

// DropFunc adapts a function to DropHandler.
type DropFunc func(ev *PointerEvent)

func (f DropFunc) OnDrop(ev *PointerEvent) { f(ev) }

// ScrollFunc adapts a function to ScrollHandler.
type ScrollFunc func(ev *PointerEvent)

func (f ScrollFunc) OnScroll(ev *PointerEvent) { f(ev) }

// SelectFunc adapts a function to SelectHandler.
type SelectFunc func(ev *BaseEvent)

func (f SelectFunc) OnSelect(ev *BaseEvent) { f(ev) }

// DeselectFunc adapts a function to DeselectHandler.
type DeselectFunc func(ev *BaseEvent)

func (f DeselectFunc) OnDeselect(ev *BaseEvent) { f(ev) }

// SubmitFunc adapts a function to SubmitHandler.
type SubmitFunc func(ev *BaseEvent)

func (f SubmitFunc) OnSubmit(ev *BaseEvent) { f(ev) }

// MoveFunc adapts a function to MoveHandler.
type MoveFunc func(ev *AxisEvent)

func (f MoveFunc) OnMove(ev *AxisEvent) { f(ev) }
