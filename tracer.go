package uievents

// Tracer is a handler that reports every event it receives to Fn. Caps
// limits which capabilities it accepts, so attaching a Tracer does not
// change routing for capabilities outside the set.
type Tracer struct {
	Caps CapabilitySet
	Fn   func(c Capability, ev Event)
}

// NewTracer returns a Tracer accepting caps.
func NewTracer(caps CapabilitySet, fn func(c Capability, ev Event)) *Tracer {
	return &Tracer{Caps: caps, Fn: fn}
}

// Handles implements CapabilityFilter.
func (t *Tracer) Handles(c Capability) bool { return t.Caps.Has(c) }

func (t *Tracer) report(c Capability, ev Event) {
	if t.Fn != nil {
		t.Fn(c, ev)
	}
}

func (t *Tracer) OnPointerEnter(ev *PointerEvent) { t.report(CapPointerEnter, ev) }
func (t *Tracer) OnPointerExit(ev *PointerEvent)  { t.report(CapPointerExit, ev) }
func (t *Tracer) OnPointerDown(ev *PointerEvent)  { t.report(CapPointerDown, ev) }
func (t *Tracer) OnPointerUp(ev *PointerEvent)    { t.report(CapPointerUp, ev) }
func (t *Tracer) OnPointerClick(ev *PointerEvent) { t.report(CapPointerClick, ev) }
func (t *Tracer) OnInitializePotentialDrag(ev *PointerEvent) {
	t.report(CapInitializePotentialDrag, ev)
}
func (t *Tracer) OnBeginDrag(ev *PointerEvent)     { t.report(CapBeginDrag, ev) }
func (t *Tracer) OnDrag(ev *PointerEvent)          { t.report(CapDrag, ev) }
func (t *Tracer) OnEndDrag(ev *PointerEvent)       { t.report(CapEndDrag, ev) }
func (t *Tracer) OnDrop(ev *PointerEvent)          { t.report(CapDrop, ev) }
func (t *Tracer) OnScroll(ev *PointerEvent)        { t.report(CapScroll, ev) }
func (t *Tracer) OnUpdateSelected(ev *BaseEvent)   { t.report(CapUpdateSelected, ev) }
func (t *Tracer) OnSelect(ev *BaseEvent)           { t.report(CapSelect, ev) }
func (t *Tracer) OnDeselect(ev *BaseEvent)         { t.report(CapDeselect, ev) }
func (t *Tracer) OnMove(ev *AxisEvent)             { t.report(CapMove, ev) }
func (t *Tracer) OnSubmit(ev *BaseEvent)           { t.report(CapSubmit, ev) }
func (t *Tracer) OnCancel(ev *BaseEvent)           { t.report(CapCancel, ev) }
