package uievents

import (
	"errors"
	"strings"
	"testing"
)

// multiHandler implements several capabilities at once.
type multiHandler struct {
	calls   []string
	enabled bool
}

func (h *multiHandler) OnPointerDown(*PointerEvent)  { h.calls = append(h.calls, "down") }
func (h *multiHandler) OnPointerClick(*PointerEvent) { h.calls = append(h.calls, "click") }
func (h *multiHandler) OnSelect(*BaseEvent)          { h.calls = append(h.calls, "select") }
func (h *multiHandler) Enabled() bool                { return h.enabled }

func TestCapabilitySupports(t *testing.T) {
	h := &multiHandler{enabled: true}
	tests := []struct {
		c    Capability
		want bool
	}{
		{CapPointerDown, true},
		{CapPointerClick, true},
		{CapSelect, true},
		{CapPointerUp, false},
		{CapDrag, false},
		{CapMove, false},
	}
	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			if got := tt.c.Supports(h); got != tt.want {
				t.Errorf("Supports = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCapabilitySet(t *testing.T) {
	s := CapabilitySet(0).With(CapDrag).With(CapDrop).With(CapDrag)
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
	if !s.Has(CapDrop) || s.Has(CapScroll) {
		t.Errorf("unexpected membership: %v", s)
	}
	if got := s.String(); got != "{drag,drop}" {
		t.Errorf("String = %q", got)
	}
	if AllCapabilities.Len() != int(numCapabilities) {
		t.Errorf("AllCapabilities.Len = %d, want %d", AllCapabilities.Len(), numCapabilities)
	}
}

func TestParseCapabilitySet(t *testing.T) {
	s, err := ParseCapabilitySet([]string{"pointerClick", "BEGINDRAG"})
	if err != nil {
		t.Fatal(err)
	}
	if !s.Has(CapPointerClick) || !s.Has(CapBeginDrag) || s.Len() != 2 {
		t.Errorf("set = %v", s)
	}
	if all, _ := ParseCapabilitySet([]string{"all"}); all != AllCapabilities {
		t.Errorf("all = %v", all)
	}
	if _, err := ParseCapabilitySet([]string{"hover"}); err == nil {
		t.Error("expected error for unknown capability")
	}
}

func TestTracerFiltersCapabilities(t *testing.T) {
	tr := NewTracer(CapabilitySet(0).With(CapDrop), nil)
	if !CapDrop.Supports(tr) {
		t.Error("tracer should support drop")
	}
	if CapDrag.Supports(tr) {
		t.Error("tracer should not support drag outside its set")
	}
}

func TestExecuteOrderAndEnabler(t *testing.T) {
	tree := NewTree()
	id := tree.NewNode("n")
	var order []int
	tree.AddHandler(id, PointerDownFunc(func(*PointerEvent) { order = append(order, 1) }))
	off := &multiHandler{enabled: false}
	tree.AddHandler(id, off)
	tree.AddHandler(id, PointerDownFunc(func(*PointerEvent) { order = append(order, 2) }))

	d := NewDispatcher(tree)
	if !d.Execute(id, &PointerEvent{}, CapPointerDown) {
		t.Fatal("Execute reported no handlers")
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
	if len(off.calls) != 0 {
		t.Error("disabled handler was called")
	}

	off.enabled = true
	d.Execute(id, &PointerEvent{}, CapPointerDown)
	if len(off.calls) != 1 {
		t.Errorf("enabled handler calls = %v", off.calls)
	}
}

func TestExecuteSkipsInactive(t *testing.T) {
	tree := NewTree()
	root := tree.NewNode("root")
	id := tree.NewChild(root, "n")
	called := false
	tree.AddHandler(id, PointerClickFunc(func(*PointerEvent) { called = true }))
	tree.SetActive(root, false)

	d := NewDispatcher(tree)
	if d.Execute(id, &PointerEvent{}, CapPointerClick) || called {
		t.Error("inactive subtree received an event")
	}
	if d.Execute(NoNode, &PointerEvent{}, CapPointerClick) {
		t.Error("NoNode has no handlers")
	}
}

func TestExecutePanicIsolation(t *testing.T) {
	logs := captureLog(t)
	tree := NewTree()
	id := tree.NewNode("n")
	tree.AddHandler(id, PointerClickFunc(func(*PointerEvent) { panic("boom") }))
	second := false
	tree.AddHandler(id, PointerClickFunc(func(*PointerEvent) { second = true }))

	d := NewDispatcher(tree)
	var failures []error
	d.failed = func(_ NodeID, _ Capability, err error) { failures = append(failures, err) }

	d.Execute(id, &PointerEvent{}, CapPointerClick)
	if !second {
		t.Error("handler after the panicking one did not run")
	}
	if len(failures) != 1 {
		t.Fatalf("failures = %d, want 1", len(failures))
	}
	var pe *HandlerPanicError
	if !errors.As(failures[0], &pe) {
		t.Fatalf("error %T is not a HandlerPanicError", failures[0])
	}
	if pe.Node != id || pe.Capability != CapPointerClick || pe.Value != "boom" {
		t.Errorf("panic error = %+v", pe)
	}
	if !strings.Contains(logs.String(), "dispatch failed") {
		t.Errorf("panic not logged: %s", logs.String())
	}
	if n := d.handlers.Outstanding(); n != 0 {
		t.Errorf("handler lists outstanding = %d, want 0", n)
	}
}

func TestExecuteTypeMismatch(t *testing.T) {
	captureLog(t)
	tree := NewTree()
	id := tree.NewNode("n")
	tree.AddHandler(id, PointerClickFunc(func(*PointerEvent) {}))

	d := NewDispatcher(tree)
	var got error
	d.failed = func(_ NodeID, _ Capability, err error) { got = err }

	d.Execute(id, &AxisEvent{}, CapPointerClick)
	if !errors.Is(got, ErrTypeMismatch) {
		t.Errorf("err = %v, want ErrTypeMismatch", got)
	}
}

func TestExecuteHierarchyAndGetEventHandler(t *testing.T) {
	tree := NewTree()
	root := tree.NewNode("root")
	mid := tree.NewChild(root, "mid")
	leaf := tree.NewChild(mid, "leaf")
	var hit NodeID
	tree.AddHandler(mid, ScrollFunc(func(*PointerEvent) { hit = mid }))

	d := NewDispatcher(tree)
	if got := d.GetEventHandler(leaf, CapScroll); got != mid {
		t.Errorf("GetEventHandler = %d, want %d", got, mid)
	}
	if got := d.ExecuteHierarchy(leaf, &PointerEvent{}, CapScroll); got != mid || hit != mid {
		t.Errorf("ExecuteHierarchy = %d, hit %d, want %d", got, hit, mid)
	}
	if got := d.GetEventHandler(leaf, CapDrop); got != NoNode {
		t.Errorf("GetEventHandler(drop) = %d, want NoNode", got)
	}
	if d.CanHandleEvent(leaf, CapScroll) {
		t.Error("leaf itself cannot handle scroll")
	}
}

func TestDispatchBaseEvents(t *testing.T) {
	tree := NewTree()
	id := tree.NewNode("n")
	h := &multiHandler{enabled: true}
	tree.AddHandler(id, h)
	d := NewDispatcher(tree)

	// Pointer events carry a BaseEvent, so selection capabilities accept them.
	d.Execute(id, &PointerEvent{}, CapSelect)
	d.Execute(id, &BaseEvent{}, CapSelect)
	if len(h.calls) != 2 {
		t.Errorf("calls = %v", h.calls)
	}
}

func TestListPool(t *testing.T) {
	var p listPool[int]
	a := p.Acquire()
	a = append(a, 1, 2, 3)
	b := p.Acquire()
	if p.Outstanding() != 2 {
		t.Errorf("Outstanding = %d, want 2", p.Outstanding())
	}
	p.Release(b)
	p.Release(a)
	if p.Outstanding() != 0 {
		t.Errorf("Outstanding = %d, want 0", p.Outstanding())
	}
	c := p.Acquire()
	if len(c) != 0 {
		t.Errorf("reused slice not empty: %v", c)
	}
	if full := c[:3]; full[0] != 0 || full[2] != 0 {
		t.Errorf("released slice not cleared: %v", full)
	}
}
